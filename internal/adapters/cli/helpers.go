package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"gorm.io/gorm"

	"github.com/MyriadColors/repl-space-miner-go/internal/adapters/metrics"
	"github.com/MyriadColors/repl-space-miner-go/internal/adapters/persistence"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/galaxy"
	"github.com/MyriadColors/repl-space-miner-go/internal/infrastructure/config"
	"github.com/MyriadColors/repl-space-miner-go/internal/infrastructure/database"
	"github.com/MyriadColors/repl-space-miner-go/internal/infrastructure/logging"
)

// appEnv bundles the wiring every command needs.
type appEnv struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *gorm.DB
	repo     celestial.RegionRepository
	registry *prometheus.Registry
	metrics  *metrics.GenerationMetricsCollector
}

// newAppEnv loads configuration and builds the logger and the generation
// metrics collector. The database opens lazily through openDB, so read-only
// commands never touch it.
func newAppEnv() (*appEnv, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	registry := prometheus.NewRegistry()
	collector := metrics.NewGenerationMetricsCollector()
	if err := collector.Register(registry); err != nil {
		return nil, fmt.Errorf("failed to register generation metrics: %w", err)
	}
	return &appEnv{
		cfg:      cfg,
		logger:   logging.New(cfg.Logging),
		registry: registry,
		metrics:  collector,
	}, nil
}

// openDB connects to the configured database, migrates it, and builds the
// region repository.
func (e *appEnv) openDB() error {
	db, err := database.NewConnection(&e.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	e.db = db
	e.repo = persistence.NewGormRegionRepository(db, galaxy.DefaultConfig().Ores)
	return nil
}

// close releases the database connection if one was opened.
func (e *appEnv) close() {
	if e.db != nil {
		_ = database.Close(e.db)
	}
}

// generationContext builds a generation context from the loaded config,
// honoring a per-command seed override (0 keeps the configured seed).
func (e *appEnv) generationContext(seedOverride int64) (*galaxy.Context, int64) {
	seed := e.cfg.Generation.Seed
	if seedOverride != 0 {
		seed = seedOverride
	}
	domainCfg := e.cfg.Generation.Apply(galaxy.DefaultConfig())
	return galaxy.NewContext(seed, domainCfg, e.logger, e.metrics), seed
}

// dumpMetrics writes the collected generation telemetry to stdout in the
// Prometheus text exposition format.
func (e *appEnv) dumpMetrics() error {
	families, err := e.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather generation metrics: %w", err)
	}
	fmt.Println()
	enc := expfmt.NewEncoder(os.Stdout, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("failed to encode generation metrics: %w", err)
		}
	}
	return nil
}
