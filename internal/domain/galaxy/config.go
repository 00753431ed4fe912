// Package galaxy orchestrates procedural generation: spatial placement,
// orbital distance allocation, and the solar-system and region builders.
// All randomness flows through a single generation context so that a fixed
// seed reproduces a byte-identical output tree.
package galaxy

import (
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/ore"
	"github.com/MyriadColors/repl-space-miner-go/pkg/utils"
)

// Range is a float sampling interval, shared with the stellar catalog.
type Range = celestial.Range

// IntRange is a closed [Min, Max] integer sampling interval.
type IntRange struct {
	Min int `mapstructure:"min" json:"min"`
	Max int `mapstructure:"max" json:"max"`
}

// PlanetBand holds the radius and mass sampling bands for one planet type.
type PlanetBand struct {
	Radius celestial.Range
	Mass   celestial.Range
}

// Config carries every generation tunable. Zero values are not meaningful;
// start from DefaultConfig and override.
type Config struct {
	// Planets and moons.
	PlanetCount   IntRange
	PlanetBands   map[celestial.PlanetType]PlanetBand
	MoonCount     IntRange
	MoonChanceCap float64
	MoonDistance  celestial.Range
	StellarAge    celestial.Range

	// Asteroid belts and fields.
	BeltCount         IntRange
	BeltOffset        celestial.Range // AU beyond the outermost planet
	BeltFallbackBand  celestial.Range // inner band used when the outer region is full
	BeltWidth         celestial.Range
	FieldsPerBelt     IntRange
	FieldRadius       celestial.Range
	AsteroidsPerField IntRange
	AsteroidVolume    celestial.Range // m³ multiplier base per unit ore volume
	OreTypesPerField  IntRange

	// Stations.
	StationQuota        int
	StarStationChance   float64
	PlanetStationChance float64
	StationOrbitOffset  celestial.Range
	StationSeparation   float64 // AU between independent stations
	StationFuelTank     celestial.Range
	StationFuelPrice    celestial.Range
	StationOreCapacity  celestial.Range

	// System and region geometry.
	SystemBound      float64 // AU half-extent for independent station placement
	RegionHalfExtent float64 // LY
	SystemSeparation float64 // LY between systems

	// Placement budgets.
	PlacementAttempts int
	RelaxAttempts     int
	SeparationFloor   float64

	// Orbital distance allocation.
	OrbitZones              []celestial.Range // ordered inner to outer
	OrbitAttemptsPerZone    int
	OrbitMinSeparation      float64
	OrbitFallbackCandidates []float64
	OrbitFallbackSeparation float64

	// Catalogs and weight tables.
	StellarClasses    []celestial.StellarClassSpec
	AtmosphereWeights map[celestial.Zone][]utils.Weighted[celestial.Atmosphere]
	GiantAtmospheres  map[celestial.PlanetType][]celestial.Atmosphere
	Ores              []*ore.Ore
	NamePool          []string
}

// DefaultConfig returns the standard tunables.
func DefaultConfig() Config {
	return Config{
		PlanetCount: IntRange{Min: 3, Max: 8},
		PlanetBands: map[celestial.PlanetType]PlanetBand{
			celestial.PlanetRocky:    {Radius: celestial.Range{Min: 0.05, Max: 0.15}, Mass: celestial.Range{Min: 0.5, Max: 1.5}},
			celestial.PlanetGasGiant: {Radius: celestial.Range{Min: 0.3, Max: 0.8}, Mass: celestial.Range{Min: 1.5, Max: 3.0}},
			celestial.PlanetIceGiant: {Radius: celestial.Range{Min: 0.2, Max: 0.6}, Mass: celestial.Range{Min: 0.8, Max: 2.0}},
		},
		MoonCount:     IntRange{Min: 1, Max: 3},
		MoonChanceCap: 0.8,
		MoonDistance:  celestial.Range{Min: 0.1, Max: 0.5},
		StellarAge:    celestial.Range{Min: 1.0, Max: 10.0},

		BeltCount:         IntRange{Min: 1, Max: 3},
		BeltOffset:        celestial.Range{Min: 1.5, Max: 6.0},
		BeltFallbackBand:  celestial.Range{Min: 0.5, Max: 2.0},
		BeltWidth:         celestial.Range{Min: 0.2, Max: 1.5},
		FieldsPerBelt:     IntRange{Min: 2, Max: 6},
		FieldRadius:       celestial.Range{Min: 0.05, Max: 0.2},
		AsteroidsPerField: IntRange{Min: 15, Max: 50},
		AsteroidVolume:    celestial.Range{Min: 100.0, Max: 100000.0},
		OreTypesPerField:  IntRange{Min: 1, Max: 3},

		StationQuota:        8,
		StarStationChance:   0.3,
		PlanetStationChance: 0.4,
		StationOrbitOffset:  celestial.Range{Min: 0.05, Max: 0.2},
		StationSeparation:   2.0,
		StationFuelTank:     celestial.Range{Min: 5000, Max: 20000},
		StationFuelPrice:    celestial.Range{Min: 8, Max: 20},
		StationOreCapacity:  celestial.Range{Min: 25000, Max: 75000},

		SystemBound:      30.0,
		RegionHalfExtent: 100.0,
		SystemSeparation: 2.0,

		PlacementAttempts: 200,
		RelaxAttempts:     50,
		SeparationFloor:   0.01,

		OrbitZones: []celestial.Range{
			{Min: 0.4, Max: 2.0},  // inner
			{Min: 0.8, Max: 2.5},  // habitable
			{Min: 2.5, Max: 8.0},  // outer
			{Min: 8.0, Max: 30.0}, // far
		},
		OrbitAttemptsPerZone:    20,
		OrbitMinSeparation:      0.8,
		OrbitFallbackCandidates: []float64{0.4, 1.2, 2.5, 4.0, 8.0, 15.0, 25.0},
		OrbitFallbackSeparation: 0.5,

		StellarClasses: celestial.DefaultStellarCatalog(),
		AtmosphereWeights: map[celestial.Zone][]utils.Weighted[celestial.Atmosphere]{
			celestial.ZoneInnerHot: {
				{Item: celestial.AtmosphereNone, Weight: 0.4},
				{Item: celestial.AtmosphereThin, Weight: 0.3},
				{Item: celestial.AtmosphereToxic, Weight: 0.2},
				{Item: celestial.AtmosphereCorrosive, Weight: 0.1},
			},
			celestial.ZoneMiddleWarm: {
				{Item: celestial.AtmosphereNone, Weight: 0.1},
				{Item: celestial.AtmosphereThin, Weight: 0.2},
				{Item: celestial.AtmosphereDense, Weight: 0.3},
				{Item: celestial.AtmosphereBreathable, Weight: 0.3},
				{Item: celestial.AtmosphereIdeal, Weight: 0.1},
			},
			celestial.ZoneOuterCold: {
				{Item: celestial.AtmosphereNone, Weight: 0.2},
				{Item: celestial.AtmosphereThin, Weight: 0.2},
				{Item: celestial.AtmosphereThick, Weight: 0.3},
				{Item: celestial.AtmosphereDense, Weight: 0.3},
			},
		},
		GiantAtmospheres: map[celestial.PlanetType][]celestial.Atmosphere{
			celestial.PlanetGasGiant: {celestial.AtmosphereThick, celestial.AtmosphereDense, celestial.AtmosphereToxic},
			celestial.PlanetIceGiant: {celestial.AtmosphereThick, celestial.AtmosphereDense, celestial.AtmosphereCorrosive},
		},
		Ores:     ore.DefaultCatalog(),
		NamePool: DefaultNamePool(),
	}
}
