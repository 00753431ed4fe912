package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "spaceminer"
	// Subsystem for generation metrics
	subsystem = "generation"
)

// GenerationMetricsCollector implements galaxy.Observer and exposes
// generation telemetry as Prometheus metrics
type GenerationMetricsCollector struct {
	placementRelaxations *prometheus.CounterVec
	placementFallbacks   *prometheus.CounterVec
	stepsSkipped         *prometheus.CounterVec
	bodiesGenerated      *prometheus.CounterVec
	systemDuration       prometheus.Histogram
}

// NewGenerationMetricsCollector creates a new generation metrics collector
func NewGenerationMetricsCollector() *GenerationMetricsCollector {
	return &GenerationMetricsCollector{
		placementRelaxations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "placement_relaxations_total",
				Help:      "Total number of placement separation relaxations by scope",
			},
			[]string{"scope"},
		),

		placementFallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "placement_fallbacks_total",
				Help:      "Total number of deterministic placement fallbacks by scope",
			},
			[]string{"scope"},
		),

		stepsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "steps_skipped_total",
				Help:      "Total number of generation steps skipped by scope and reason",
			},
			[]string{"scope", "reason"},
		),

		bodiesGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "bodies_generated_total",
				Help:      "Total number of generated objects by kind",
			},
			[]string{"kind"},
		),

		systemDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "system_build_duration_seconds",
				Help:      "Solar system build duration distribution",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
		),
	}
}

// Register registers all generation metrics with the given registry
func (c *GenerationMetricsCollector) Register(registry *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		c.placementRelaxations,
		c.placementFallbacks,
		c.stepsSkipped,
		c.bodiesGenerated,
		c.systemDuration,
	}

	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}

	return nil
}

// PlacementRelaxed records a separation relaxation event
func (c *GenerationMetricsCollector) PlacementRelaxed(scope string, minSeparation float64) {
	c.placementRelaxations.WithLabelValues(scope).Inc()
}

// PlacementFellBack records a deterministic placement fallback
func (c *GenerationMetricsCollector) PlacementFellBack(scope string) {
	c.placementFallbacks.WithLabelValues(scope).Inc()
}

// StepSkipped records a gracefully skipped generation step
func (c *GenerationMetricsCollector) StepSkipped(scope, reason string) {
	c.stepsSkipped.WithLabelValues(scope, reason).Inc()
}

// BodyGenerated records one generated object
func (c *GenerationMetricsCollector) BodyGenerated(kind string) {
	c.bodiesGenerated.WithLabelValues(kind).Inc()
}

// SystemGenerated records a completed system build
func (c *GenerationMetricsCollector) SystemGenerated(name string, elapsed time.Duration) {
	c.systemDuration.Observe(elapsed.Seconds())
}
