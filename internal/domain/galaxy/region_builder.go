package galaxy

import (
	"fmt"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// RegionBuilder lays out systems on the region map and delegates each one
// to the system builder.
type RegionBuilder struct {
	ctx     *Context
	systems *SystemBuilder
}

func NewRegionBuilder(ctx *Context) *RegionBuilder {
	return &RegionBuilder{ctx: ctx, systems: NewSystemBuilder(ctx)}
}

// Build generates a region of numSystems solar systems. Names come from a
// shuffled pool; once the pool runs dry, reused or colliding names get a
// numeric suffix so every system name in the region stays unique. A
// non-positive numSystems yields an empty region.
func (b *RegionBuilder) Build(name string, numSystems int) *celestial.Region {
	ctx := b.ctx
	region := celestial.NewRegion(name)
	if numSystems <= 0 {
		ctx.log.Warn("region requested with no systems", "region", name, "count", numSystems)
		ctx.obs.StepSkipped("region", "non-positive system count")
		return region
	}

	names := b.systemNames(numSystems)
	bounds := Bounds{Min: -ctx.cfg.RegionHalfExtent, Max: ctx.cfg.RegionHalfExtent}
	positions := make([]shared.Position, 0, numSystems)
	for i := 0; i < numSystems; i++ {
		pos, _ := ctx.PlacePoint("system", bounds, ctx.cfg.SystemSeparation, positions, i, nil)
		positions = append(positions, pos)
		region.AddSystem(b.systems.Build(names[i], pos))
	}

	ctx.log.Info("region generated", "region", name, "systems", numSystems)
	return region
}

func (b *RegionBuilder) systemNames(count int) []string {
	ctx := b.ctx
	pool := make([]string, len(ctx.cfg.NamePool))
	copy(pool, ctx.cfg.NamePool)
	ctx.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	names := make([]string, count)
	seen := make(map[string]bool, count)
	for i := 0; i < count; i++ {
		var name string
		switch {
		case len(pool) == 0:
			name = ctx.GenerateName(3)
		case i < len(pool):
			name = pool[i]
		default:
			name = fmt.Sprintf("%s %d", pool[i%len(pool)], i/len(pool)+1)
		}
		// Synthesized names can collide; suffix until unique.
		base := name
		for n := 2; seen[name]; n++ {
			name = fmt.Sprintf("%s %d", base, n)
		}
		seen[name] = true
		names[i] = name
	}
	return names
}
