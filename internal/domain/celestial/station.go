package celestial

import (
	"fmt"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/ore"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// OreCargo is one station inventory line. Quantity mutates under trading;
// everything else is fixed at generation time.
type OreCargo struct {
	Ore       *ore.Ore
	Quantity  int
	BuyPrice  float64
	SellPrice float64
}

// Station is an orbital trading post. It is attached to an orbital parent
// (star or planet) by kind and id; independent stations are attached to the
// star for bookkeeping.
type Station struct {
	object     SpaceObject
	name       string
	parentKind BodyKind
	parentID   int

	FuelTankCap float64
	FuelTank    float64
	FuelPrice   float64
	cargo       []*OreCargo
	Visited     bool
}

// NewStation constructs a station bound to its orbital parent.
func NewStation(id int, name string, pos shared.Position, parentKind BodyKind, parentID int) *Station {
	return &Station{
		object:     SpaceObject{Position: pos, ID: id},
		name:       name,
		parentKind: parentKind,
		parentID:   parentID,
	}
}

func (s *Station) ID() int                   { return s.object.ID }
func (s *Station) Name() string              { return s.name }
func (s *Station) Position() shared.Position { return s.object.Position }
func (s *Station) ParentKind() BodyKind      { return s.parentKind }
func (s *Station) ParentID() int             { return s.parentID }
func (s *Station) Cargo() []*OreCargo        { return s.cargo }

// AddCargo appends an inventory line.
func (s *Station) AddCargo(c *OreCargo) {
	s.cargo = append(s.cargo, c)
}

// CargoByOreName finds an inventory line by ore name.
func (s *Station) CargoByOreName(name string) (*OreCargo, bool) {
	for _, c := range s.cargo {
		if c.Ore.Name == name {
			return c, true
		}
	}
	return nil, false
}

// CargoVolume is the total volume currently held, in m³.
func (s *Station) CargoVolume() float64 {
	total := 0.0
	for _, c := range s.cargo {
		total += float64(c.Quantity) * c.Ore.Volume
	}
	return total
}

func (s *Station) String() string {
	return fmt.Sprintf("Station %s, Position: %s, ID: %d", s.name, s.object.Position, s.object.ID)
}
