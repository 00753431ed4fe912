package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/galaxy"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

func TestCollectorCountsObserverEvents(t *testing.T) {
	// Arrange
	collector := NewGenerationMetricsCollector()
	registry := prometheus.NewRegistry()
	require.NoError(t, collector.Register(registry))

	var obs galaxy.Observer = collector

	// Act
	obs.PlacementRelaxed("system", 1.0)
	obs.PlacementRelaxed("system", 0.5)
	obs.PlacementFellBack("station")
	obs.StepSkipped("belt", "degenerate annulus")
	obs.BodyGenerated("planet")
	obs.SystemGenerated("Vega", 5*time.Millisecond)

	// Assert
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.placementRelaxations.WithLabelValues("system")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.placementFallbacks.WithLabelValues("station")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.stepsSkipped.WithLabelValues("belt", "degenerate annulus")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.bodiesGenerated.WithLabelValues("planet")))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.systemDuration))
}

func TestCollectorObservesFullSystemBuild(t *testing.T) {
	// Arrange
	collector := NewGenerationMetricsCollector()
	registry := prometheus.NewRegistry()
	require.NoError(t, collector.Register(registry))

	// Act - drive a real generation run through the observer port
	ctx := galaxy.NewContext(7, galaxy.DefaultConfig(), nil, collector)
	system := galaxy.NewSystemBuilder(ctx).Build("Vega", shared.Position{})

	// Assert - every body the builder reports shows up in the counters
	moons := 0
	for _, planet := range system.Planets() {
		moons += len(planet.Moons())
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.bodiesGenerated.WithLabelValues("star")))
	assert.Equal(t, float64(len(system.Planets())), testutil.ToFloat64(collector.bodiesGenerated.WithLabelValues("planet")))
	assert.Equal(t, float64(moons), testutil.ToFloat64(collector.bodiesGenerated.WithLabelValues("moon")))
	assert.Equal(t, float64(len(system.Belts())), testutil.ToFloat64(collector.bodiesGenerated.WithLabelValues("asteroid_belt")))
	assert.Equal(t, float64(len(system.AllFields())), testutil.ToFloat64(collector.bodiesGenerated.WithLabelValues("asteroid_field")))
	assert.Equal(t, float64(len(system.AllStations())), testutil.ToFloat64(collector.bodiesGenerated.WithLabelValues("station")))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.systemDuration))
}

func TestCollectorRejectsDoubleRegistration(t *testing.T) {
	collector := NewGenerationMetricsCollector()
	registry := prometheus.NewRegistry()
	require.NoError(t, collector.Register(registry))

	assert.Error(t, collector.Register(registry))
}
