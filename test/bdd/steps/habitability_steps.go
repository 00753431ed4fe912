package steps

import (
	"context"
	"fmt"
	"math"

	"github.com/cucumber/godog"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/habitability"
)

type habitabilityContext struct {
	profile habitability.PlanetProfile
	result  habitability.Result
}

func (ctx *habitabilityContext) reset() {
	ctx.profile = habitability.PlanetProfile{Radius: 0.1, Mass: 1.0}
	ctx.result = habitability.Result{}
}

func InitializeHabitabilitySteps(sc *godog.ScenarioContext) {
	habCtx := &habitabilityContext{}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		habCtx.reset()
		return ctx, nil
	})

	sc.Step(`^a "([^"]*)" planet at ([\d.]+) AU with "([^"]*)" atmosphere$`, habCtx.setPlanet)
	sc.Step(`^the planet orbits a "([^"]*)" class star aged ([\d.]+) Gyr$`, habCtx.setStar)
	sc.Step(`^I assess its habitability$`, habCtx.assess)
	sc.Step(`^the planet should be viable$`, habCtx.shouldBeViable)
	sc.Step(`^the critical viability factor should be at least ([\d.]+)$`, habCtx.cvfShouldBeAtLeast)
	sc.Step(`^the rating should be "([^"]*)"$`, habCtx.ratingShouldBe)
	sc.Step(`^the score should be ([\d.]+)$`, habCtx.scoreShouldBe)
}

func (ctx *habitabilityContext) setPlanet(planetType string, distance float64, atmosphere string) error {
	ctx.profile.PlanetType = planetType
	ctx.profile.OrbitalDistance = distance
	ctx.profile.Atmosphere = atmosphere
	ctx.profile.TemperatureZone = string(celestial.ZoneForDistance(distance, 2.7))
	return nil
}

func (ctx *habitabilityContext) setStar(class string, age float64) error {
	ctx.profile.StellarClass = class
	ctx.profile.StellarAge = age
	return nil
}

func (ctx *habitabilityContext) assess() error {
	ctx.result = habitability.AssessPlanet(ctx.profile)
	return nil
}

func (ctx *habitabilityContext) shouldBeViable() error {
	if !ctx.result.Viable {
		return fmt.Errorf("expected a viable planet, got rating %q (CVF %.4f)", ctx.result.Rating, ctx.result.CVF)
	}
	return nil
}

func (ctx *habitabilityContext) cvfShouldBeAtLeast(min float64) error {
	if ctx.result.CVF < min {
		return fmt.Errorf("CVF %.4f is below %.4f", ctx.result.CVF, min)
	}
	return nil
}

func (ctx *habitabilityContext) ratingShouldBe(rating string) error {
	if ctx.result.Rating != rating {
		return fmt.Errorf("expected rating %q, got %q", rating, ctx.result.Rating)
	}
	return nil
}

func (ctx *habitabilityContext) scoreShouldBe(score float64) error {
	if math.Abs(ctx.result.UHS-score) > 1e-9 {
		return fmt.Errorf("expected UHS %.2f, got %.2f", score, ctx.result.UHS)
	}
	return nil
}
