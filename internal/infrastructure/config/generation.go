package config

import "github.com/MyriadColors/repl-space-miner-go/internal/domain/galaxy"

// GenerationConfig holds the user-tunable slice of the generation
// parameters. Everything else keeps the domain defaults.
type GenerationConfig struct {
	// Seed for the deterministic RNG stream. The same seed, config and
	// engine version reproduce the same universe.
	Seed int64 `mapstructure:"seed"`

	// Number of systems per generated region
	Systems int `mapstructure:"systems" validate:"min=1"`

	// Planet count bounds per system (0 keeps the default)
	PlanetMin int `mapstructure:"planet_min" validate:"min=0"`
	PlanetMax int `mapstructure:"planet_max" validate:"omitempty,gtefield=PlanetMin"`

	// Belt count bounds per system (0 keeps the default)
	BeltMin int `mapstructure:"belt_min" validate:"min=0"`
	BeltMax int `mapstructure:"belt_max" validate:"omitempty,gtefield=BeltMin"`

	// Station quota per system (0 keeps the default)
	StationQuota int `mapstructure:"station_quota" validate:"min=0"`

	// Region map half-extent in light years (0 keeps the default)
	RegionHalfExtent float64 `mapstructure:"region_half_extent" validate:"min=0"`

	// Minimum separation between systems in light years (0 keeps the default)
	SystemSeparation float64 `mapstructure:"system_separation" validate:"min=0"`
}

// Apply overlays the user-tunable fields onto a domain config. Zero values
// leave the base untouched.
func (g GenerationConfig) Apply(base galaxy.Config) galaxy.Config {
	if g.PlanetMin > 0 {
		base.PlanetCount.Min = g.PlanetMin
	}
	if g.PlanetMax > 0 {
		base.PlanetCount.Max = g.PlanetMax
	}
	if g.BeltMin > 0 {
		base.BeltCount.Min = g.BeltMin
	}
	if g.BeltMax > 0 {
		base.BeltCount.Max = g.BeltMax
	}
	if g.StationQuota > 0 {
		base.StationQuota = g.StationQuota
	}
	if g.RegionHalfExtent > 0 {
		base.RegionHalfExtent = g.RegionHalfExtent
	}
	if g.SystemSeparation > 0 {
		base.SystemSeparation = g.SystemSeparation
	}
	return base
}
