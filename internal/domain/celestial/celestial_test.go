package celestial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/ore"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

func TestZoneForDistance(t *testing.T) {
	frostLine := 2.7

	assert.Equal(t, ZoneInnerHot, ZoneForDistance(0.5, frostLine))
	assert.Equal(t, ZoneInnerHot, ZoneForDistance(1.99, frostLine))
	assert.Equal(t, ZoneMiddleWarm, ZoneForDistance(2.0, frostLine))
	assert.Equal(t, ZoneMiddleWarm, ZoneForDistance(2.69, frostLine))
	assert.Equal(t, ZoneOuterCold, ZoneForDistance(2.7, frostLine))
	assert.Equal(t, ZoneOuterCold, ZoneForDistance(25.0, frostLine))
}

func TestPlanetTypeForDistance(t *testing.T) {
	assert.Equal(t, PlanetRocky, PlanetTypeForDistance(0.4))
	assert.Equal(t, PlanetRocky, PlanetTypeForDistance(1.49))
	assert.Equal(t, PlanetGasGiant, PlanetTypeForDistance(1.5))
	assert.Equal(t, PlanetGasGiant, PlanetTypeForDistance(4.99))
	assert.Equal(t, PlanetIceGiant, PlanetTypeForDistance(5.0))
}

func TestStarFrostLineScalesWithLuminosity(t *testing.T) {
	dim := NewStar(0, "Dim", shared.Position{}, ClassM, "red", 3000, 0.04, 0.3, 0.004, 5.0)
	bright := NewStar(1, "Bright", shared.Position{}, ClassA, "white", 8500, 25.0, 2.0, 0.018, 1.0)

	assert.InDelta(t, 2.7*math.Sqrt(0.04), dim.FrostLine(), 1e-9)
	assert.InDelta(t, 2.7*math.Sqrt(25.0), bright.FrostLine(), 1e-9)
	assert.Greater(t, bright.FrostLine(), dim.FrostLine())
}

func TestMoonOrbitalDistanceDerivedFromParent(t *testing.T) {
	planet := NewPlanet(0, "Test b", shared.NewPosition(1.0, 0), 1.0,
		PlanetRocky, 0.1, 1.0, ZoneMiddleWarm, AtmosphereBreathable, ClassG, 5.0)
	moon := NewMoon(0, "Test b I", shared.NewPosition(1.0, 0.25), DefaultMoonRadius, DefaultMoonMass,
		planet.ID(), planet.Name(), planet)

	assert.InDelta(t, 0.25, moon.OrbitalDistance(), 1e-9)
	assert.Equal(t, planet.ID(), moon.ParentPlanetID())
}

func TestBeltDensity(t *testing.T) {
	belt := NewAsteroidBelt(0, "Test Belt A", shared.Position{}, 2.0, 3.0)
	belt.AddField(NewAsteroidField(0, shared.NewPosition(2.5, 0), 0.1, nil))
	belt.AddField(NewAsteroidField(1, shared.NewPosition(0, 2.5), 0.1, nil))

	area := math.Pi * (3.0*3.0 - 2.0*2.0)
	assert.InDelta(t, 2.0/area, belt.Density(), 1e-9)
	assert.InDelta(t, 2.5, belt.Center(), 1e-9)
}

func TestBeltDensityDegenerateAnnulus(t *testing.T) {
	belt := NewAsteroidBelt(0, "Degenerate", shared.Position{}, 3.0, 3.0)
	assert.Equal(t, 0.0, belt.Density())
}

func TestAsteroidDeplete(t *testing.T) {
	catalog := ore.DefaultCatalog()
	a := &Asteroid{Name: "Pyrogen-1", Volume: 100, Ore: catalog[0]}

	assert.Equal(t, 30.0, a.Deplete(30))
	assert.Equal(t, 70.0, a.Volume)
	assert.Equal(t, 70.0, a.Deplete(500), "depletion caps at the remaining volume")
	assert.Equal(t, 0.0, a.Volume)
	assert.Equal(t, 0.0, a.Deplete(10))
}

func TestFieldContains(t *testing.T) {
	field := NewAsteroidField(0, shared.NewPosition(2.0, 0), 0.2, nil)

	assert.True(t, field.Contains(shared.NewPosition(2.1, 0)))
	assert.True(t, field.Contains(shared.NewPosition(2.0, 0.2)))
	assert.False(t, field.Contains(shared.NewPosition(2.3, 0)))
}

func newTestSystem() *SolarSystem {
	star := NewStar(0, "Testos", shared.Position{}, ClassG, "yellow", 5700, 1.0, 1.0, 0.01, 5.0)
	system := &SolarSystem{Name: "Testos", Coordinates: shared.NewPosition(10, -4), Star: star}

	planet := NewPlanet(0, "Testos A", shared.NewPosition(1.0, 0), 1.0,
		PlanetRocky, 0.1, 1.0, ZoneMiddleWarm, AtmosphereBreathable, ClassG, 5.0)
	star.AddChild(planet)

	belt := NewAsteroidBelt(0, "Testos Belt A", shared.Position{}, 3.0, 3.5)
	field := NewAsteroidField(0, shared.NewPosition(3.2, 0), 0.1, nil)
	belt.AddField(field)
	star.AddChild(belt)

	near := NewStation(0, "Near Station", shared.NewPosition(0.5, 0), KindStar, 0)
	far := NewStation(1, "Far Station", shared.NewPosition(8.0, 8.0), KindStar, 0)
	star.AddStation(near)
	star.AddStation(far)

	return system
}

func TestSystemNearestStation(t *testing.T) {
	system := newTestSystem()

	station, ok := system.NearestStation(shared.NewPosition(0, 0))
	require.True(t, ok)
	assert.Equal(t, "Near Station", station.Name())

	station, ok = system.NearestStation(shared.NewPosition(9, 9))
	require.True(t, ok)
	assert.Equal(t, "Far Station", station.Name())
}

func TestSystemFieldLookup(t *testing.T) {
	system := newTestSystem()

	assert.True(t, system.IsInsideAnyField(shared.NewPosition(3.25, 0)))
	assert.False(t, system.IsInsideAnyField(shared.NewPosition(5.0, 5.0)))

	field, ok := system.FieldAt(shared.NewPosition(3.25, 0))
	require.True(t, ok)
	assert.Equal(t, 0, field.ID())
}

func TestSystemScanOrdersByDistance(t *testing.T) {
	system := newTestSystem()

	entries := system.Scan(shared.NewPosition(0, 0), 0)
	require.NotEmpty(t, entries)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i].Distance, entries[i-1].Distance)
	}

	limited := system.Scan(shared.NewPosition(0, 0), 2)
	assert.Len(t, limited, 2)
}

func TestRegionDistance(t *testing.T) {
	region := NewRegion("Frontier")
	a := newTestSystem()
	a.Name = "Alpha"
	a.Coordinates = shared.NewPosition(0, 0)
	b := newTestSystem()
	b.Name = "Beta"
	b.Coordinates = shared.NewPosition(3, 4)
	region.AddSystem(a)
	region.AddSystem(b)

	d, err := region.Distance("Alpha", "Beta")
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	_, err = region.Distance("Alpha", "Gamma")
	assert.Error(t, err)
}
