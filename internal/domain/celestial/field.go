package celestial

import (
	"fmt"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/ore"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// Asteroid is a single minable rock. Volume depletes under mining; the ore
// reference is immutable catalog data.
type Asteroid struct {
	Name   string
	Volume float64 // m³
	Ore    *ore.Ore
}

// Deplete removes up to the requested volume and reports how much was
// actually extracted.
func (a *Asteroid) Deplete(volume float64) float64 {
	if volume <= 0 || a.Volume <= 0 {
		return 0
	}
	if volume > a.Volume {
		volume = a.Volume
	}
	a.Volume -= volume
	return volume
}

// AsteroidField is a cluster of asteroids inside a belt's annulus. Fields
// orbit the star within the belt's band, so their positions are anchored at
// the star origin rather than the belt's nominal position.
type AsteroidField struct {
	object    SpaceObject
	radius    float64 // AU
	ores      []*ore.Ore
	asteroids []*Asteroid
	Visited   bool
}

// NewAsteroidField constructs an empty field; the builder spawns asteroids
// into it.
func NewAsteroidField(id int, pos shared.Position, radius float64, ores []*ore.Ore) *AsteroidField {
	return &AsteroidField{
		object: SpaceObject{Position: pos, ID: id},
		radius: radius,
		ores:   ores,
	}
}

func (f *AsteroidField) ID() int                   { return f.object.ID }
func (f *AsteroidField) Position() shared.Position { return f.object.Position }
func (f *AsteroidField) Radius() float64           { return f.radius }
func (f *AsteroidField) Ores() []*ore.Ore          { return f.ores }
func (f *AsteroidField) Asteroids() []*Asteroid    { return f.asteroids }

// AddAsteroid attaches a spawned asteroid.
func (f *AsteroidField) AddAsteroid(a *Asteroid) {
	f.asteroids = append(f.asteroids, a)
}

// Contains reports whether a position lies inside the field's radius.
func (f *AsteroidField) Contains(pos shared.Position) bool {
	return f.object.Position.DistanceTo(pos) <= f.radius
}

// TotalVolume sums the remaining volume across all asteroids.
func (f *AsteroidField) TotalVolume() float64 {
	total := 0.0
	for _, a := range f.asteroids {
		total += a.Volume
	}
	return total
}

func (f *AsteroidField) String() string {
	return fmt.Sprintf("Field id: %d, Position: %s, Radius: %.3f AU", f.object.ID, f.object.Position, f.radius)
}
