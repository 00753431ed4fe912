// Package celestial models the generated celestial hierarchy: a star owning
// planets and asteroid belts, planets owning moons, and stations attached to
// their orbital parents. Bodies are constructed once during generation and
// are immutable in topology afterwards; only leaf gameplay state (asteroid
// volume, station cargo) mutates.
package celestial

// BodyKind tags the four body variants. Consumers switch over it exhaustively
// for serialization, scanning and display.
type BodyKind string

const (
	KindStar         BodyKind = "star"
	KindPlanet       BodyKind = "planet"
	KindMoon         BodyKind = "moon"
	KindAsteroidBelt BodyKind = "asteroid_belt"
)

// Zone is a solar-system temperature zone derived from orbital distance and
// the star's frost line.
type Zone string

const (
	ZoneInnerHot   Zone = "inner_hot"
	ZoneMiddleWarm Zone = "middle_warm"
	ZoneOuterCold  Zone = "outer_cold"
)

// PlanetType classifies planets by their bulk composition.
type PlanetType string

const (
	PlanetRocky      PlanetType = "rocky"
	PlanetGasGiant   PlanetType = "gas_giant"
	PlanetIceGiant   PlanetType = "ice_giant"
	PlanetSuperEarth PlanetType = "super_earth"
)

// Atmosphere categorizes atmospheric composition.
type Atmosphere string

const (
	AtmosphereNone       Atmosphere = "none"
	AtmosphereThin       Atmosphere = "thin"
	AtmosphereThick      Atmosphere = "thick"
	AtmosphereDense      Atmosphere = "dense"
	AtmosphereToxic      Atmosphere = "toxic"
	AtmosphereCorrosive  Atmosphere = "corrosive"
	AtmosphereBreathable Atmosphere = "breathable"
	AtmosphereIdeal      Atmosphere = "ideal"
)

// ZoneForDistance derives the temperature zone from an orbital distance and
// the host star's frost line. Distances under 2 AU are always inner-hot.
func ZoneForDistance(distance, frostLine float64) Zone {
	switch {
	case distance < 2.0:
		return ZoneInnerHot
	case distance < frostLine:
		return ZoneMiddleWarm
	default:
		return ZoneOuterCold
	}
}

// PlanetTypeForDistance derives the planet type from orbital distance bands.
func PlanetTypeForDistance(distance float64) PlanetType {
	switch {
	case distance < 1.5:
		return PlanetRocky
	case distance < 5.0:
		return PlanetGasGiant
	default:
		return PlanetIceGiant
	}
}
