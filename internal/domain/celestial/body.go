package celestial

import (
	"fmt"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// SpaceObject is the identity and position substrate shared by every
// placeable entity. IDs are unique only within a body kind; global
// deduplication pairs (kind, id).
type SpaceObject struct {
	Position shared.Position `json:"position"`
	ID       int             `json:"id"`
}

// Body is the common surface of the four celestial variants. Concrete types
// are *Star, *Planet, *Moon and *AsteroidBelt; consumers that need
// variant-specific fields type-switch on the concrete type or on Kind().
type Body interface {
	Kind() BodyKind
	Name() string
	ID() int
	Position() shared.Position
	Radius() float64
	Mass() float64
	OrbitalDistance() float64
	Children() []Body
	Stations() []*Station
}

// body is the shared substrate embedded by every variant. A body exclusively
// owns its children and stations.
type body struct {
	name            string
	object          SpaceObject
	radius          float64 // physical radius in AU
	mass            float64 // relative mass, Earth = 1.0
	orbitalDistance float64 // AU from the gravitational parent
	children        []Body
	stations        []*Station
}

func newBody(id int, name string, pos shared.Position, radius, mass float64) body {
	return body{
		name:   name,
		object: SpaceObject{Position: pos, ID: id},
		radius: radius,
		mass:   mass,
	}
}

func (b *body) Name() string              { return b.name }
func (b *body) ID() int                   { return b.object.ID }
func (b *body) Position() shared.Position { return b.object.Position }
func (b *body) Radius() float64           { return b.radius }
func (b *body) Mass() float64             { return b.mass }
func (b *body) OrbitalDistance() float64  { return b.orbitalDistance }
func (b *body) Children() []Body          { return b.children }
func (b *body) Stations() []*Station      { return b.stations }

// AddChild attaches a child body (e.g. a moon to a planet).
func (b *body) AddChild(child Body) {
	b.children = append(b.children, child)
}

// AddStation attaches a station orbiting this body.
func (b *body) AddStation(s *Station) {
	b.stations = append(b.stations, s)
}

// Describe renders the short scan line for a body.
func Describe(b Body, from *shared.Position) string {
	s := fmt.Sprintf("%s (%s), Position: %s, ID: %d", b.Name(), b.Kind(), b.Position(), b.ID())
	if from != nil {
		s += fmt.Sprintf(", Distance: %.2f AU", b.Position().DistanceTo(*from))
	}
	return s
}
