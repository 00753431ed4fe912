package celestial

import (
	"fmt"
	"math"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// frostLineBase is the frost line of a Sun-like star (luminosity 1.0) in AU.
const frostLineBase = 2.7

// Star is the central body of a solar system. Its stellar class determines
// the frost line and feeds every planet's habitability assessment.
type Star struct {
	body
	class       StellarClass
	temperature float64 // Kelvin
	luminosity  float64 // solar luminosities
	age         float64 // billion years
	color       string
	frostLine   float64 // AU
}

// NewStar constructs a star from sampled physical properties. The frost line
// scales with the square root of luminosity.
func NewStar(id int, name string, pos shared.Position, class StellarClass, color string, temperature, luminosity, mass, radius, age float64) *Star {
	return &Star{
		body:        newBody(id, name, pos, radius, mass),
		class:       class,
		temperature: temperature,
		luminosity:  luminosity,
		age:         age,
		color:       color,
		frostLine:   frostLineBase * math.Sqrt(luminosity),
	}
}

func (s *Star) Kind() BodyKind { return KindStar }

func (s *Star) Class() StellarClass  { return s.class }
func (s *Star) Temperature() float64 { return s.temperature }
func (s *Star) Luminosity() float64  { return s.luminosity }
func (s *Star) Age() float64         { return s.age }
func (s *Star) Color() string        { return s.color }

// FrostLine is the distance beyond which volatile ices condense, in AU.
func (s *Star) FrostLine() float64 { return s.frostLine }

func (s *Star) String() string {
	return fmt.Sprintf("★ %s (%s-type %s star)", s.name, s.class, s.color)
}
