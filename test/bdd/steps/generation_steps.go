package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/MyriadColors/repl-space-miner-go/internal/adapters/persistence"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/galaxy"
)

type generationContext struct {
	seed      int64
	region    *celestial.Region
	snapshotA string
	snapshotB string
}

func (ctx *generationContext) reset() {
	ctx.seed = 1
	ctx.region = nil
	ctx.snapshotA = ""
	ctx.snapshotB = ""
}

func InitializeGenerationSteps(sc *godog.ScenarioContext) {
	genCtx := &generationContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		genCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a generation seed of (\d+)$`, genCtx.setSeed)
	sc.Step(`^I generate a region named "([^"]*)" with (\d+) systems$`, genCtx.generateRegion)
	sc.Step(`^I generate a region named "([^"]*)" with (\d+) systems twice$`, genCtx.generateRegionTwice)
	sc.Step(`^I generate a region named "([^"]*)" with (\d+) systems using seeds (\d+) and (\d+)$`, genCtx.generateRegionTwoSeeds)
	sc.Step(`^both regions should be identical$`, genCtx.regionsShouldBeIdentical)
	sc.Step(`^the two regions should differ$`, genCtx.regionsShouldDiffer)
	sc.Step(`^every system should have between (\d+) and (\d+) planets$`, genCtx.systemsShouldHavePlanets)
	sc.Step(`^every system should have at most (\d+) asteroid belts$`, genCtx.systemsShouldHaveAtMostBelts)
	sc.Step(`^every asteroid belt should have a valid annulus$`, genCtx.beltsShouldHaveValidAnnuli)
}

func buildRegion(seed int64, name string, systems int) *celestial.Region {
	ctx := galaxy.NewContext(seed, galaxy.DefaultConfig(), nil, galaxy.NopObserver{})
	return galaxy.NewRegionBuilder(ctx).Build(name, systems)
}

func regionSnapshot(region *celestial.Region) (string, error) {
	out := ""
	for _, system := range region.Systems {
		data, err := persistence.MarshalSystem(system)
		if err != nil {
			return "", err
		}
		out += data + "\n"
	}
	return out, nil
}

func (ctx *generationContext) setSeed(seed int) error {
	ctx.seed = int64(seed)
	return nil
}

func (ctx *generationContext) generateRegion(name string, systems int) error {
	ctx.region = buildRegion(ctx.seed, name, systems)
	if len(ctx.region.Systems) != systems {
		return fmt.Errorf("expected %d systems, got %d", systems, len(ctx.region.Systems))
	}
	return nil
}

func (ctx *generationContext) generateRegionTwice(name string, systems int) error {
	var err error
	ctx.snapshotA, err = regionSnapshot(buildRegion(ctx.seed, name, systems))
	if err != nil {
		return err
	}
	ctx.snapshotB, err = regionSnapshot(buildRegion(ctx.seed, name, systems))
	return err
}

func (ctx *generationContext) generateRegionTwoSeeds(name string, systems, seedA, seedB int) error {
	var err error
	ctx.snapshotA, err = regionSnapshot(buildRegion(int64(seedA), name, systems))
	if err != nil {
		return err
	}
	ctx.snapshotB, err = regionSnapshot(buildRegion(int64(seedB), name, systems))
	return err
}

func (ctx *generationContext) regionsShouldBeIdentical() error {
	if ctx.snapshotA != ctx.snapshotB {
		return fmt.Errorf("regions generated from the same seed differ")
	}
	return nil
}

func (ctx *generationContext) regionsShouldDiffer() error {
	if ctx.snapshotA == ctx.snapshotB {
		return fmt.Errorf("regions generated from different seeds are identical")
	}
	return nil
}

func (ctx *generationContext) systemsShouldHavePlanets(min, max int) error {
	for _, system := range ctx.region.Systems {
		n := len(system.Planets())
		if n < min || n > max {
			return fmt.Errorf("system %s has %d planets, want %d-%d", system.Name, n, min, max)
		}
	}
	return nil
}

func (ctx *generationContext) systemsShouldHaveAtMostBelts(max int) error {
	for _, system := range ctx.region.Systems {
		n := len(system.Belts())
		if n > max {
			return fmt.Errorf("system %s has %d belts, want at most %d", system.Name, n, max)
		}
	}
	return nil
}

func (ctx *generationContext) beltsShouldHaveValidAnnuli() error {
	for _, system := range ctx.region.Systems {
		for _, belt := range system.Belts() {
			if belt.InnerRadius() <= 0 || belt.InnerRadius() >= belt.OuterRadius() {
				return fmt.Errorf("belt %s has invalid annulus [%.2f, %.2f]",
					belt.Name(), belt.InnerRadius(), belt.OuterRadius())
			}
		}
	}
	return nil
}
