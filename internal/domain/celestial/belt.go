package celestial

import (
	"fmt"
	"math"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// beltMass is the nominal relative mass of a whole belt.
const beltMass = 0.01

// AsteroidBelt is a ring-shaped region between an inner and outer radius,
// centered on the star, containing asteroid fields. The belt's body radius is
// its outer radius.
type AsteroidBelt struct {
	body
	innerRadius float64
	outerRadius float64
	fields      []*AsteroidField
}

// NewAsteroidBelt constructs a belt. Callers must have validated that
// 0 < inner < outer; invalid annuli are skipped upstream.
func NewAsteroidBelt(id int, name string, center shared.Position, innerRadius, outerRadius float64) *AsteroidBelt {
	b := &AsteroidBelt{
		body:        newBody(id, name, center, outerRadius, beltMass),
		innerRadius: innerRadius,
		outerRadius: outerRadius,
	}
	b.body.orbitalDistance = (innerRadius + outerRadius) / 2
	return b
}

func (b *AsteroidBelt) Kind() BodyKind { return KindAsteroidBelt }

func (b *AsteroidBelt) InnerRadius() float64     { return b.innerRadius }
func (b *AsteroidBelt) OuterRadius() float64     { return b.outerRadius }
func (b *AsteroidBelt) Fields() []*AsteroidField { return b.fields }

// Center is the middle orbital distance of the annulus.
func (b *AsteroidBelt) Center() float64 {
	return (b.innerRadius + b.outerRadius) / 2
}

// AddField attaches a generated asteroid field.
func (b *AsteroidBelt) AddField(f *AsteroidField) {
	b.fields = append(b.fields, f)
}

// Density is the number of fields per square AU of annulus area.
func (b *AsteroidBelt) Density() float64 {
	area := math.Pi * (b.outerRadius*b.outerRadius - b.innerRadius*b.innerRadius)
	if area <= 0 {
		return 0.0
	}
	return float64(len(b.fields)) / area
}

func (b *AsteroidBelt) String() string {
	return fmt.Sprintf("🪨 %s (Asteroid Belt %.2f-%.2f AU)", b.name, b.innerRadius, b.outerRadius)
}
