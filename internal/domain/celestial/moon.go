package celestial

import (
	"fmt"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/habitability"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// Luna-like defaults for moon bulk properties.
const (
	DefaultMoonRadius = 0.03
	DefaultMoonMass   = 0.012
)

// Moon orbits a planet. The parent link is held as an id (plus a display
// name), never as a live reference, so a tree rebuilt from persisted data
// needs no pointer fixup beyond id resolution.
type Moon struct {
	body
	parentPlanetID   int
	parentPlanetName string
	habitability     habitability.Result
}

// NewMoon constructs a moon. The orbital distance is fixed at the
// generation-time Euclidean distance to the parent and is never re-derived.
func NewMoon(id int, name string, pos shared.Position, radius, mass float64, parentPlanetID int, parentPlanetName string, parent *Planet) *Moon {
	m := &Moon{
		body:             newBody(id, name, pos, radius, mass),
		parentPlanetID:   parentPlanetID,
		parentPlanetName: parentPlanetName,
	}
	if parent != nil {
		m.body.orbitalDistance = pos.DistanceTo(parent.Position())
	}
	m.habitability = habitability.AssessMoon(habitability.MoonProfile{
		OrbitalDistance: m.body.orbitalDistance,
		Radius:          radius,
		Mass:            mass,
	})
	return m
}

func (m *Moon) Kind() BodyKind { return KindMoon }

func (m *Moon) ParentPlanetID() int               { return m.parentPlanetID }
func (m *Moon) ParentPlanetName() string          { return m.parentPlanetName }
func (m *Moon) Habitability() habitability.Result { return m.habitability }

// SetOrbitalDistance restores a persisted orbital distance. Used only by the
// snapshot decoder, which cannot re-derive the generation-time value.
func (m *Moon) SetOrbitalDistance(d float64) {
	m.body.orbitalDistance = d
}

// Relink refreshes the cached parent display name after a two-pass load.
func (m *Moon) Relink(parent *Planet) {
	if parent != nil {
		m.parentPlanetName = parent.Name()
	}
}

func (m *Moon) String() string {
	return fmt.Sprintf("🌙 %s (Moon of %s)", m.name, m.parentPlanetName)
}
