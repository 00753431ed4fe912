package celestial

import (
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
	"github.com/MyriadColors/repl-space-miner-go/pkg/utils"
)

// Region is a sector of the galaxy holding uniquely named solar systems on a
// 2D light-year grid.
type Region struct {
	Name    string
	Systems []*SolarSystem
}

// NewRegion creates an empty region.
func NewRegion(name string) *Region {
	return &Region{Name: name}
}

// AddSystem appends a system to the region.
func (r *Region) AddSystem(s *SolarSystem) {
	r.Systems = append(r.Systems, s)
}

// SystemByName resolves a system by its display name.
func (r *Region) SystemByName(name string) (*SolarSystem, bool) {
	for _, s := range r.Systems {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Distance computes the plane Euclidean distance between two named systems in
// light-years, rounded to 2 decimals.
func (r *Region) Distance(nameA, nameB string) (float64, error) {
	a, ok := r.SystemByName(nameA)
	if !ok {
		return 0, shared.NewNotFoundError("system", nameA)
	}
	b, ok := r.SystemByName(nameB)
	if !ok {
		return 0, shared.NewNotFoundError("system", nameB)
	}
	return utils.Round2(a.Coordinates.DistanceTo(b.Coordinates)), nil
}
