package celestial

import (
	"fmt"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/habitability"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// Planet orbits a star. Host-star metadata (class, age) is carried only for
// habitability scoring and is refreshed through UpdateStellarProperties.
type Planet struct {
	body
	planetType   PlanetType
	zone         Zone
	atmosphere   Atmosphere
	stellarClass StellarClass
	stellarAge   float64
	habitability habitability.Result
}

// NewPlanet constructs a planet and computes its cached habitability result.
func NewPlanet(id int, name string, pos shared.Position, orbitalDistance float64, planetType PlanetType, radius, mass float64, zone Zone, atmosphere Atmosphere, stellarClass StellarClass, stellarAge float64) *Planet {
	p := &Planet{
		body:         newBody(id, name, pos, radius, mass),
		planetType:   planetType,
		zone:         zone,
		atmosphere:   atmosphere,
		stellarClass: stellarClass,
		stellarAge:   stellarAge,
	}
	p.body.orbitalDistance = orbitalDistance
	p.habitability = p.assess()
	return p
}

func (p *Planet) Kind() BodyKind { return KindPlanet }

func (p *Planet) Type() PlanetType                  { return p.planetType }
func (p *Planet) TemperatureZone() Zone             { return p.zone }
func (p *Planet) Atmosphere() Atmosphere            { return p.atmosphere }
func (p *Planet) StellarClass() StellarClass        { return p.stellarClass }
func (p *Planet) StellarAge() float64               { return p.stellarAge }
func (p *Planet) Habitability() habitability.Result { return p.habitability }

// Moons returns the planet's owned moons.
func (p *Planet) Moons() []*Moon {
	moons := make([]*Moon, 0, len(p.children))
	for _, child := range p.children {
		if m, ok := child.(*Moon); ok {
			moons = append(moons, m)
		}
	}
	return moons
}

// UpdateStellarProperties refreshes host-star metadata and recomputes the
// cached habitability result.
func (p *Planet) UpdateStellarProperties(class StellarClass, age float64) {
	p.stellarClass = class
	p.stellarAge = age
	p.habitability = p.assess()
}

func (p *Planet) assess() habitability.Result {
	return habitability.AssessPlanet(habitability.PlanetProfile{
		OrbitalDistance: p.orbitalDistance,
		PlanetType:      string(p.planetType),
		Atmosphere:      string(p.atmosphere),
		Radius:          p.radius,
		Mass:            p.mass,
		TemperatureZone: string(p.zone),
		StellarClass:    string(p.stellarClass),
		StellarAge:      p.stellarAge,
	})
}

func (p *Planet) String() string {
	return fmt.Sprintf("🪐 %s (%s)", p.name, p.planetType)
}
