package galaxy

import (
	"fmt"
	"math"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/ore"
	"github.com/MyriadColors/repl-space-miner-go/pkg/utils"
)

// zoneInfluenceReach is the AU distance at which a planet stops biasing a
// belt's ore mix.
const zoneInfluenceReach = 2.0

func (b *SystemBuilder) buildBelts(star *celestial.Star, orbits []float64) {
	ctx := b.ctx
	if len(ctx.cfg.Ores) == 0 {
		ctx.log.Warn("ore catalog empty, skipping belt generation", "system", star.Name())
		ctx.obs.StepSkipped("belt", "empty ore catalog")
		return
	}

	outermost := 0.0
	for _, d := range orbits {
		if d > outermost {
			outermost = d
		}
	}

	count := ctx.IntBetween(ctx.cfg.BeltCount)
	for i := 0; i < count; i++ {
		var center float64
		if outermost+ctx.cfg.BeltOffset.Min >= ctx.cfg.SystemBound {
			// Planet orbits already fill the outer region; fall back to an
			// inner band.
			center = ctx.Float(ctx.cfg.BeltFallbackBand)
			ctx.log.Warn("belt fell back to inner band", "system", star.Name(), "center", center)
			ctx.obs.PlacementFellBack("belt")
		} else {
			center = outermost + ctx.Float(ctx.cfg.BeltOffset)
		}
		width := ctx.Float(ctx.cfg.BeltWidth)
		inner := center - width/2
		outer := center + width/2
		if inner <= 0 || inner >= outer {
			ctx.log.Warn("belt annulus degenerate, skipping", "inner", inner, "outer", outer)
			ctx.obs.StepSkipped("belt", "degenerate annulus")
			continue
		}

		name := fmt.Sprintf("%s Belt %s", star.Name(), LetterDesignation(i))
		belt := celestial.NewAsteroidBelt(ctx.NextBeltID(), name, star.Position(), inner, outer)
		b.buildFields(star, belt)
		star.AddChild(belt)
		ctx.obs.BodyGenerated(string(celestial.KindAsteroidBelt))
	}
}

func (b *SystemBuilder) buildFields(star *celestial.Star, belt *celestial.AsteroidBelt) {
	ctx := b.ctx
	count := ctx.IntBetween(ctx.cfg.FieldsPerBelt)
	for i := 0; i < count; i++ {
		distance := ctx.Uniform(Range{Min: belt.InnerRadius(), Max: belt.OuterRadius()})
		pos := star.Position().PolarOffset(distance, ctx.Angle())
		radius := ctx.Float(ctx.cfg.FieldRadius)
		ores := b.selectBeltOres(star, belt)
		if len(ores) == 0 {
			ctx.obs.StepSkipped("field", "no ores selected")
			continue
		}

		field := celestial.NewAsteroidField(ctx.NextFieldID(), pos, radius, ores)
		asteroids := ctx.IntBetween(ctx.cfg.AsteroidsPerField)
		for j := 0; j < asteroids; j++ {
			picked := ores[ctx.rng.IntN(len(ores))]
			volume := ctx.Float(ctx.cfg.AsteroidVolume) * picked.Volume
			field.AddAsteroid(&celestial.Asteroid{
				Name:   fmt.Sprintf("%s-%d", picked.Name, j+1),
				Volume: volume,
				Ore:    picked,
			})
		}
		belt.AddField(field)
		ctx.obs.BodyGenerated("asteroid_field")
	}
}

// beltCategoryWeights biases a belt's ore mix toward the temperature zones
// of nearby planets. Each planet within reach contributes influence that
// falls off linearly with its orbital distance from the belt center. Belts
// with no planet in reach use a static distance profile instead.
func (b *SystemBuilder) beltCategoryWeights(star *celestial.Star, belt *celestial.AsteroidBelt) map[ore.MaterialCategory]float64 {
	weights := map[ore.MaterialCategory]float64{}
	total := 0.0
	center := belt.Center()
	for _, child := range star.Children() {
		planet, ok := child.(*celestial.Planet)
		if !ok {
			continue
		}
		influence := (zoneInfluenceReach - math.Abs(planet.OrbitalDistance()-center)) / zoneInfluenceReach
		if influence <= 0 {
			continue
		}
		weights[categoryForZone(planet.TemperatureZone())] += influence
		total += influence
	}
	if total <= 0 {
		switch {
		case center < 2.0:
			return map[ore.MaterialCategory]float64{ore.HighTemp: 0.7, ore.MidTemp: 0.2, ore.LowTemp: 0.1}
		case center < 4.5:
			return map[ore.MaterialCategory]float64{ore.HighTemp: 0.3, ore.MidTemp: 0.5, ore.LowTemp: 0.2}
		default:
			return map[ore.MaterialCategory]float64{ore.HighTemp: 0.1, ore.MidTemp: 0.3, ore.LowTemp: 0.6}
		}
	}
	for cat := range weights {
		weights[cat] /= total
	}
	return weights
}

func categoryForZone(zone celestial.Zone) ore.MaterialCategory {
	switch zone {
	case celestial.ZoneInnerHot:
		return ore.HighTemp
	case celestial.ZoneOuterCold:
		return ore.LowTemp
	default:
		return ore.MidTemp
	}
}

// selectBeltOres picks the distinct ore types a field carries, weighted by
// the belt's category profile. Candidate categories are walked in the fixed
// catalog order so map iteration never leaks into the draw sequence.
func (b *SystemBuilder) selectBeltOres(star *celestial.Star, belt *celestial.AsteroidBelt) []*ore.Ore {
	ctx := b.ctx

	buckets := map[ore.MaterialCategory][]*ore.Ore{}
	for _, o := range ctx.cfg.Ores {
		buckets[o.Category()] = append(buckets[o.Category()], o)
	}
	catWeights := b.beltCategoryWeights(star, belt)
	var choices []utils.Weighted[ore.MaterialCategory]
	for _, cat := range ore.Categories() {
		if len(buckets[cat]) == 0 {
			continue
		}
		choices = append(choices, utils.Weighted[ore.MaterialCategory]{Item: cat, Weight: catWeights[cat]})
	}

	maxTypes := ctx.cfg.OreTypesPerField.Max
	if len(ctx.cfg.Ores) < maxTypes {
		maxTypes = len(ctx.cfg.Ores)
	}
	minTypes := ctx.cfg.OreTypesPerField.Min
	if minTypes > maxTypes {
		minTypes = maxTypes
	}
	numTypes := ctx.IntBetween(IntRange{Min: minTypes, Max: maxTypes})

	selected := make([]*ore.Ore, 0, numTypes)
	seen := map[int]bool{}
	for tries := 0; len(selected) < numTypes && tries < numTypes*10; tries++ {
		cat, ok := utils.WeightedChoice(ctx.rng, choices)
		if !ok {
			// All candidate categories carry zero weight; fall back to an
			// even draw across them.
			cat, ok = utils.WeightedChoice(ctx.rng, utils.EqualWeights(categoryItems(choices)))
			if !ok {
				break
			}
		}
		bucket := buckets[cat]
		picked := bucket[ctx.rng.IntN(len(bucket))]
		if seen[picked.ID] {
			continue
		}
		seen[picked.ID] = true
		selected = append(selected, picked)
	}

	if len(selected) == 0 && len(ctx.cfg.Ores) > 0 {
		ctx.log.Warn("weighted ore selection came up empty, sampling uniformly", "belt", belt.Name())
		ctx.obs.StepSkipped("field_ores", "weighted selection empty")
		pool := make([]*ore.Ore, len(ctx.cfg.Ores))
		copy(pool, ctx.cfg.Ores)
		ctx.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		selected = pool[:numTypes]
	}
	return selected
}

func categoryItems(choices []utils.Weighted[ore.MaterialCategory]) []ore.MaterialCategory {
	items := make([]ore.MaterialCategory, len(choices))
	for i, c := range choices {
		items[i] = c.Item
	}
	return items
}
