package galaxy

import (
	"fmt"
	"math"
	"time"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
	"github.com/MyriadColors/repl-space-miner-go/pkg/utils"
)

// SystemBuilder generates one solar system per call, drawing from the
// shared generation context.
type SystemBuilder struct {
	ctx *Context
}

func NewSystemBuilder(ctx *Context) *SystemBuilder {
	return &SystemBuilder{ctx: ctx}
}

// Build generates a full solar system; coords locate it on the region map
// (light years) while every body position is system-local AU with the star
// at the origin. The draw order is fixed: star, planets, moons per planet,
// belts with their fields and ores, then stations. Reordering any of these
// changes every downstream value for a given seed.
func (b *SystemBuilder) Build(name string, coords shared.Position) *celestial.SolarSystem {
	start := time.Now()
	ctx := b.ctx

	star := b.buildStar(name)
	system := &celestial.SolarSystem{Name: name, Coordinates: coords, Star: star}

	orbits := b.buildPlanets(star)
	b.buildMoons(star)
	b.buildBelts(star, orbits)
	b.buildStations(system)

	ctx.log.Info("system generated",
		"system", name,
		"star_class", star.Class(),
		"planets", len(system.Planets()),
		"belts", len(system.Belts()),
		"stations", len(system.AllStations()),
	)
	ctx.obs.SystemGenerated(name, time.Since(start))
	return system
}

func (b *SystemBuilder) buildStar(name string) *celestial.Star {
	ctx := b.ctx
	classes := make([]utils.Weighted[celestial.StellarClassSpec], len(ctx.cfg.StellarClasses))
	for i, spec := range ctx.cfg.StellarClasses {
		classes[i] = utils.Weighted[celestial.StellarClassSpec]{Item: spec, Weight: spec.Weight}
	}
	spec, ok := utils.WeightedChoice(ctx.rng, classes)
	if !ok {
		// Empty catalog degrades to a G-type baseline rather than failing
		// the whole build.
		spec = celestial.DefaultStellarCatalog()[4]
		ctx.log.Warn("stellar catalog empty, using baseline class", "class", spec.Class)
		ctx.obs.StepSkipped("star", "empty stellar catalog")
	}

	temperature := ctx.Float(spec.Temperature)
	luminosity := ctx.Uniform(spec.Luminosity)
	mass := ctx.Float(spec.Mass)
	radius := ctx.Float(spec.Radius) * 0.01 // solar radii to AU-scale extents
	age := ctx.Float(ctx.cfg.StellarAge)

	star := celestial.NewStar(ctx.NextStarID(), name, shared.Position{}, spec.Class, spec.Color,
		temperature, luminosity, mass, radius, age)
	ctx.obs.BodyGenerated(string(celestial.KindStar))
	return star
}

// buildPlanets returns the allocated orbital distances so belt placement
// can sit beyond the outermost one.
func (b *SystemBuilder) buildPlanets(star *celestial.Star) []float64 {
	ctx := b.ctx
	count := ctx.IntBetween(ctx.cfg.PlanetCount)
	orbits := make([]float64, 0, count)
	for i := 0; i < count; i++ {
		distance := ctx.AllocateOrbit(orbits)
		orbits = append(orbits, distance)

		planetType := celestial.PlanetTypeForDistance(distance)
		band, ok := ctx.cfg.PlanetBands[planetType]
		if !ok {
			ctx.log.Warn("no size band for planet type, skipping", "type", planetType)
			ctx.obs.StepSkipped("planet", "missing size band")
			continue
		}
		radius := ctx.Float(band.Radius)
		mass := ctx.Float(band.Mass)
		zone := celestial.ZoneForDistance(distance, star.FrostLine())
		atmosphere := b.sampleAtmosphere(planetType, zone)
		pos := star.Position().PolarOffset(distance, ctx.Angle())
		name := fmt.Sprintf("%s %s", star.Name(), LetterDesignation(i))

		planet := celestial.NewPlanet(ctx.NextPlanetID(), name, pos, distance,
			planetType, radius, mass, zone, atmosphere, star.Class(), star.Age())
		star.AddChild(planet)
		ctx.obs.BodyGenerated(string(celestial.KindPlanet))
	}
	return orbits
}

func (b *SystemBuilder) sampleAtmosphere(planetType celestial.PlanetType, zone celestial.Zone) celestial.Atmosphere {
	ctx := b.ctx
	if options, ok := ctx.cfg.GiantAtmospheres[planetType]; ok && len(options) > 0 {
		return options[ctx.rng.IntN(len(options))]
	}
	if weights, ok := ctx.cfg.AtmosphereWeights[zone]; ok {
		if atmosphere, ok := utils.WeightedChoice(ctx.rng, weights); ok {
			return atmosphere
		}
	}
	return celestial.AtmosphereNone
}

func (b *SystemBuilder) buildMoons(star *celestial.Star) {
	ctx := b.ctx
	for _, child := range star.Children() {
		planet, ok := child.(*celestial.Planet)
		if !ok {
			continue
		}
		// Larger planets are likelier to hold moons, capped so even giants
		// sometimes come up empty.
		chance := math.Min(ctx.cfg.MoonChanceCap, planet.Radius()*10)
		if !ctx.Chance(chance) {
			continue
		}
		count := ctx.IntBetween(ctx.cfg.MoonCount)
		for j := 0; j < count; j++ {
			distance := ctx.Float(ctx.cfg.MoonDistance)
			pos := planet.Position().PolarOffset(distance, ctx.Angle())
			name := fmt.Sprintf("%s %s", planet.Name(), RomanNumeral(j+1))
			moon := celestial.NewMoon(ctx.NextMoonID(), name, pos,
				celestial.DefaultMoonRadius, celestial.DefaultMoonMass,
				planet.ID(), planet.Name(), planet)
			planet.AddChild(moon)
			ctx.obs.BodyGenerated(string(celestial.KindMoon))
		}
	}
}

func (b *SystemBuilder) buildStations(system *celestial.SolarSystem) {
	ctx := b.ctx
	star := system.Star
	placed := 0

	if ctx.Chance(ctx.cfg.StarStationChance) {
		offset := star.Radius() + ctx.Float(ctx.cfg.StationOrbitOffset)
		pos := star.Position().PolarOffset(offset, ctx.Angle())
		b.attachStation(pos, celestial.KindStar, star.ID(), star)
		placed++
	}

	for _, planet := range system.Planets() {
		if !ctx.Chance(ctx.cfg.PlanetStationChance) {
			continue
		}
		offset := planet.Radius() + ctx.Float(ctx.cfg.StationOrbitOffset)
		pos := planet.Position().PolarOffset(offset, ctx.Angle())
		b.attachStation(pos, celestial.KindPlanet, planet.ID(), planet)
		placed++
	}

	// Independent stations fill the remaining quota. They must stay clear
	// of asteroid fields and planet surfaces.
	planets := system.Planets()
	valid := func(p shared.Position) bool {
		if system.IsInsideAnyField(p) {
			return false
		}
		for _, planet := range planets {
			if p.DistanceTo(planet.Position()) < planet.Radius()+0.1 {
				return false
			}
		}
		return true
	}
	bounds := Bounds{Min: -ctx.cfg.SystemBound, Max: ctx.cfg.SystemBound}
	existing := make([]shared.Position, 0, ctx.cfg.StationQuota)
	for _, s := range system.AllStations() {
		existing = append(existing, s.Position())
	}
	for i := placed; i < ctx.cfg.StationQuota; i++ {
		pos, _ := ctx.PlacePoint("station", bounds, ctx.cfg.StationSeparation, existing, i, valid)
		b.attachStation(pos, celestial.KindStar, star.ID(), star)
		existing = append(existing, pos)
	}
}

// attachStation creates, stocks and attaches one station to its orbital
// parent.
func (b *SystemBuilder) attachStation(pos shared.Position, parentKind celestial.BodyKind, parentID int, parent interface{ AddStation(*celestial.Station) }) {
	ctx := b.ctx
	name := fmt.Sprintf("%s Station", ctx.GenerateName(ctx.IntBetween(IntRange{Min: 2, Max: 4})))
	station := celestial.NewStation(ctx.NextStationID(), name, pos, parentKind, parentID)
	b.stockStation(station)
	parent.AddStation(station)
	ctx.obs.BodyGenerated("station")
}

// stockStation fills a fresh station's fuel tank and ore inventory.
func (b *SystemBuilder) stockStation(station *celestial.Station) {
	ctx := b.ctx
	station.FuelTankCap = ctx.Float(ctx.cfg.StationFuelTank)
	station.FuelTank = station.FuelTankCap / float64(ctx.IntBetween(IntRange{Min: 1, Max: 4}))
	station.FuelPrice = ctx.Float(ctx.cfg.StationFuelPrice)

	if len(ctx.cfg.Ores) == 0 {
		ctx.log.Warn("ore catalog empty, station stocked without cargo", "station", station.Name())
		ctx.obs.StepSkipped("station", "empty ore catalog")
		return
	}

	// Five draws with dedup give each station one to five tradable ores.
	for i := 0; i < 5; i++ {
		picked := ctx.cfg.Ores[ctx.rng.IntN(len(ctx.cfg.Ores))]
		if _, exists := station.CargoByOreName(picked.Name); exists {
			continue
		}
		station.AddCargo(&celestial.OreCargo{
			Ore:       picked,
			Quantity:  0,
			BuyPrice:  utils.Round2(picked.BaseValue * ctx.Float(Range{Min: 0.8, Max: 1.2})),
			SellPrice: utils.Round2(picked.BaseValue * ctx.Float(Range{Min: 0.8, Max: 1.2})),
		})
	}

	capacity := ctx.Float(ctx.cfg.StationOreCapacity)
	target := capacity / float64(ctx.IntBetween(IntRange{Min: 2, Max: 4}))
	for station.CargoVolume() < target {
		grew := false
		for _, cargo := range station.Cargo() {
			if cargo.Ore.Volume <= 0 {
				continue
			}
			cargo.Quantity++
			grew = true
		}
		if !grew {
			break
		}
	}
}
