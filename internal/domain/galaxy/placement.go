package galaxy

import (
	"math"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// PlacementOutcome reports how a point was obtained.
type PlacementOutcome int

const (
	// PlacedClean means sampling succeeded at the requested separation.
	PlacedClean PlacementOutcome = iota
	// PlacedRelaxed means the separation was halved at least once.
	PlacedRelaxed
	// PlacedFallback means sampling gave up and a deterministic grid
	// point was used.
	PlacedFallback
)

// Bounds is a square region [Min, Max] on both axes.
type Bounds struct {
	Min float64
	Max float64
}

// PlacePoint samples a position inside bounds keeping minSeparation from
// every existing position. When the attempt budget runs out the separation
// is halved and sampling retried, down to the configured floor. If even the
// floor cannot be satisfied a deterministic diagonal offset derived from
// index is returned, so generation always terminates with a position.
// valid, when non-nil, filters candidates before the separation check.
func (c *Context) PlacePoint(scope string, bounds Bounds, minSeparation float64, existing []shared.Position, index int, valid func(shared.Position) bool) (shared.Position, PlacementOutcome) {
	sep := minSeparation
	attempts := c.cfg.PlacementAttempts
	relaxed := false
	for {
		for i := 0; i < attempts; i++ {
			p := shared.NewPosition(c.Uniform(Range{Min: bounds.Min, Max: bounds.Max}), c.Uniform(Range{Min: bounds.Min, Max: bounds.Max}))
			if valid != nil && !valid(p) {
				continue
			}
			if separated(p, existing, sep) {
				if relaxed {
					return p, PlacedRelaxed
				}
				return p, PlacedClean
			}
		}
		if sep <= c.cfg.SeparationFloor {
			break
		}
		sep = math.Max(sep/2, c.cfg.SeparationFloor)
		attempts = c.cfg.RelaxAttempts
		relaxed = true
		c.log.Warn("placement separation relaxed", "scope", scope, "min_separation", sep)
		c.obs.PlacementRelaxed(scope, sep)
	}

	span := bounds.Max - bounds.Min
	step := math.Max(minSeparation, span*0.01)
	offset := math.Mod(float64(index+1)*step, span)
	p := shared.NewPosition(bounds.Min+offset, bounds.Min+offset)
	c.log.Warn("placement fell back to deterministic offset", "scope", scope, "index", index)
	c.obs.PlacementFellBack(scope)
	return p, PlacedFallback
}

func separated(p shared.Position, existing []shared.Position, minSeparation float64) bool {
	for _, q := range existing {
		if p.DistanceTo(q) < minSeparation {
			return false
		}
	}
	return true
}
