package galaxy_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/galaxy"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

func newContext(seed int64) *galaxy.Context {
	return galaxy.NewContext(seed, galaxy.DefaultConfig(), nil, galaxy.NopObserver{})
}

func TestContextDrawSequenceIsDeterministic(t *testing.T) {
	a := newContext(99)
	b := newContext(99)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(galaxy.Range{Min: 0, Max: 10}), b.Float(galaxy.Range{Min: 0, Max: 10}))
		assert.Equal(t, a.IntBetween(galaxy.IntRange{Min: 1, Max: 6}), b.IntBetween(galaxy.IntRange{Min: 1, Max: 6}))
	}
}

func TestContextSeedsDiverge(t *testing.T) {
	a := newContext(1)
	b := newContext(2)

	same := true
	for i := 0; i < 20; i++ {
		if a.Uniform(galaxy.Range{Min: 0, Max: 1}) != b.Uniform(galaxy.Range{Min: 0, Max: 1}) {
			same = false
		}
	}
	assert.False(t, same)
}

func TestFloatRoundsToTwoDecimals(t *testing.T) {
	ctx := newContext(5)
	for i := 0; i < 100; i++ {
		v := ctx.Float(galaxy.Range{Min: 0, Max: 1000})
		assert.Equal(t, math.Round(v*100)/100, v)
	}
}

func TestIDCountersArePerKind(t *testing.T) {
	ctx := newContext(1)

	assert.Equal(t, 0, ctx.NextStarID())
	assert.Equal(t, 1, ctx.NextStarID())
	assert.Equal(t, 0, ctx.NextPlanetID())
	assert.Equal(t, 0, ctx.NextStationID())
	assert.Equal(t, 1, ctx.NextPlanetID())
}

func TestPlacePointRespectsSeparation(t *testing.T) {
	ctx := newContext(3)
	bounds := galaxy.Bounds{Min: -100, Max: 100}

	var placed []shared.Position
	for i := 0; i < 20; i++ {
		pos, outcome := ctx.PlacePoint("system", bounds, 2.0, placed, i, nil)
		assert.Equal(t, galaxy.PlacedClean, outcome)
		placed = append(placed, pos)
	}

	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			assert.GreaterOrEqual(t, placed[i].DistanceTo(placed[j]), 2.0)
		}
	}
}

func TestPlacePointFallbackIsDeterministic(t *testing.T) {
	rejectAll := func(shared.Position) bool { return false }

	ctx := newContext(3)
	posA, outcomeA := ctx.PlacePoint("station", galaxy.Bounds{Min: -30, Max: 30}, 2.0, nil, 4, rejectAll)
	require.Equal(t, galaxy.PlacedFallback, outcomeA)

	ctx = newContext(77) // fallback must not depend on the RNG stream
	posB, outcomeB := ctx.PlacePoint("station", galaxy.Bounds{Min: -30, Max: 30}, 2.0, nil, 4, rejectAll)
	require.Equal(t, galaxy.PlacedFallback, outcomeB)

	assert.Equal(t, posA, posB)
}

func TestAllocateOrbitKeepsOrbitsDistinct(t *testing.T) {
	ctx := newContext(8)

	var orbits []float64
	for i := 0; i < 8; i++ {
		d := ctx.AllocateOrbit(orbits)
		assert.Greater(t, d, 0.0)
		for _, u := range orbits {
			assert.NotEqual(t, u, d)
		}
		orbits = append(orbits, d)
	}
}

func TestLetterDesignation(t *testing.T) {
	assert.Equal(t, "A", galaxy.LetterDesignation(0))
	assert.Equal(t, "Z", galaxy.LetterDesignation(25))
	assert.Equal(t, "AA", galaxy.LetterDesignation(26))
	assert.Equal(t, "AB", galaxy.LetterDesignation(27))
}

func TestRomanNumeral(t *testing.T) {
	assert.Equal(t, "I", galaxy.RomanNumeral(1))
	assert.Equal(t, "IV", galaxy.RomanNumeral(4))
	assert.Equal(t, "VIII", galaxy.RomanNumeral(8))
	assert.Equal(t, "9", galaxy.RomanNumeral(9))
}

func TestGenerateName(t *testing.T) {
	ctx := newContext(12)
	for i := 0; i < 20; i++ {
		name := ctx.GenerateName(3)
		require.NotEmpty(t, name)
		assert.Equal(t, strings.ToUpper(name[:1]), name[:1])
	}
}

func TestSystemBuilderIsDeterministic(t *testing.T) {
	systemA := galaxy.NewSystemBuilder(newContext(42)).Build("Vega", shared.Position{})
	systemB := galaxy.NewSystemBuilder(newContext(42)).Build("Vega", shared.Position{})

	assert.Equal(t, systemA.Star.Class(), systemB.Star.Class())
	assert.Equal(t, systemA.Star.Temperature(), systemB.Star.Temperature())

	planetsA := systemA.Planets()
	planetsB := systemB.Planets()
	require.Equal(t, len(planetsA), len(planetsB))
	for i := range planetsA {
		assert.Equal(t, planetsA[i].Name(), planetsB[i].Name())
		assert.Equal(t, planetsA[i].OrbitalDistance(), planetsB[i].OrbitalDistance())
		assert.Equal(t, planetsA[i].Type(), planetsB[i].Type())
		assert.Equal(t, planetsA[i].Atmosphere(), planetsB[i].Atmosphere())
		assert.Equal(t, planetsA[i].Position(), planetsB[i].Position())
		assert.Equal(t, len(planetsA[i].Moons()), len(planetsB[i].Moons()))
	}

	assert.Equal(t, len(systemA.Belts()), len(systemB.Belts()))
	assert.Equal(t, len(systemA.AllStations()), len(systemB.AllStations()))
	assert.Equal(t, len(systemA.AllFields()), len(systemB.AllFields()))
}

func TestSystemBuilderStructure(t *testing.T) {
	system := galaxy.NewSystemBuilder(newContext(7)).Build("Altair", shared.Position{})
	cfg := galaxy.DefaultConfig()

	assert.Equal(t, shared.Position{}, system.Star.Position(), "bodies are system-local with the star at the origin")

	planets := system.Planets()
	assert.GreaterOrEqual(t, len(planets), cfg.PlanetCount.Min)
	assert.LessOrEqual(t, len(planets), cfg.PlanetCount.Max)
	for _, planet := range planets {
		// Position must sit on the allocated orbit.
		assert.InDelta(t, planet.OrbitalDistance(), planet.Position().DistanceTo(system.Star.Position()), 1e-9)
		assert.True(t, strings.HasPrefix(planet.Name(), "Altair "))
	}

	for _, belt := range system.Belts() {
		assert.Greater(t, belt.InnerRadius(), 0.0)
		assert.Greater(t, belt.OuterRadius(), belt.InnerRadius())
		for _, field := range belt.Fields() {
			r := field.Position().DistanceTo(system.Star.Position())
			assert.GreaterOrEqual(t, r, belt.InnerRadius()-1e-9)
			assert.LessOrEqual(t, r, belt.OuterRadius()+1e-9)
			assert.NotEmpty(t, field.Ores())
			assert.NotEmpty(t, field.Asteroids())
		}
	}

	for _, station := range system.AllStations() {
		assert.NotEmpty(t, station.Name())
		assert.Greater(t, station.FuelTankCap, 0.0)
		assert.Greater(t, station.FuelPrice, 0.0)
	}
}

func TestRegionBuilderUniqueNames(t *testing.T) {
	// A 10-name pool with 25 systems forces name reuse, so the region must
	// fall back to numeric suffixes to stay unique.
	cfg := galaxy.DefaultConfig()
	cfg.NamePool = cfg.NamePool[:10]
	ctx := galaxy.NewContext(21, cfg, nil, galaxy.NopObserver{})
	region := galaxy.NewRegionBuilder(ctx).Build("Frontier", 25)
	require.Len(t, region.Systems, 25)

	seen := map[string]bool{}
	suffixed := 0
	for _, system := range region.Systems {
		assert.False(t, seen[system.Name], "duplicate system name %q", system.Name)
		seen[system.Name] = true
		if strings.HasSuffix(system.Name, " 2") || strings.HasSuffix(system.Name, " 3") {
			suffixed++
		}
	}
	assert.Equal(t, 15, suffixed, "15 of 25 systems carry a reuse suffix")
}

func TestRegionBuilderEmptyRegion(t *testing.T) {
	region := galaxy.NewRegionBuilder(newContext(21)).Build("Empty", 0)
	assert.Empty(t, region.Systems)
}

func TestRegionBuilderPlacesWithinBounds(t *testing.T) {
	cfg := galaxy.DefaultConfig()
	region := galaxy.NewRegionBuilder(newContext(33)).Build("Frontier", 12)

	for _, system := range region.Systems {
		assert.LessOrEqual(t, math.Abs(system.Coordinates.X), cfg.RegionHalfExtent)
		assert.LessOrEqual(t, math.Abs(system.Coordinates.Y), cfg.RegionHalfExtent)
	}
}
