package habitability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func earthlikeProfile() PlanetProfile {
	return PlanetProfile{
		OrbitalDistance: 1.0,
		PlanetType:      "rocky",
		Atmosphere:      "breathable",
		Radius:          1.0,
		Mass:            1.0,
		TemperatureZone: "middle_warm",
		StellarClass:    "G",
		StellarAge:      5.0,
	}
}

func TestAssessPlanetEarthlike(t *testing.T) {
	result := AssessPlanet(earthlikeProfile())

	assert.True(t, result.Viable)
	assert.Equal(t, 1.0, result.Factors.LiquidWaterAvailability)
	assert.Equal(t, 1.0, result.Factors.BiocompatibleTemperature)
	assert.Equal(t, 90.0, result.Factors.AtmosphericConditions)
	assert.Equal(t, 80.0, result.Factors.SubstrateGeochemistry)
	assert.Equal(t, 95.0, result.Factors.EnergyAvailability)
	assert.Equal(t, 85.0, result.Factors.EnvironmentalStability)
	assert.Equal(t, 100.0, result.Factors.PlanetaryCharacteristics)
	assert.Equal(t, 85.0, result.Factors.StellarCharacteristics)
	assert.Greater(t, result.UHS, 60.0)
}

func TestAssessPlanetGasGiantIsUninhabitable(t *testing.T) {
	profile := PlanetProfile{
		OrbitalDistance: 5.2,
		PlanetType:      "gas_giant",
		Atmosphere:      "dense",
		Radius:          11.0,
		Mass:            300.0,
		TemperatureZone: "outer_cold",
		StellarClass:    "G",
		StellarAge:      5.0,
	}

	result := AssessPlanet(profile)

	assert.Equal(t, 0.0, result.CVF)
	assert.Equal(t, 0.0, result.UHS)
	assert.Equal(t, "Uninhabitable", result.Rating)
	assert.False(t, result.Viable)
}

func TestAssessPlanetAirlessInnerWorld(t *testing.T) {
	profile := PlanetProfile{
		OrbitalDistance: 0.4,
		PlanetType:      "rocky",
		Atmosphere:      "none",
		Radius:          0.4,
		Mass:            0.06,
		TemperatureZone: "inner_hot",
		StellarClass:    "G",
		StellarAge:      5.0,
	}

	result := AssessPlanet(profile)

	// Inside 0.7 AU there is no water at all, so the whole score collapses.
	assert.Equal(t, 0.0, result.Factors.LiquidWaterAvailability)
	assert.False(t, result.Viable)
	assert.Equal(t, "Uninhabitable", result.Rating)
}

func TestAssessPlanetVenuslikeRetainsSomeWater(t *testing.T) {
	profile := PlanetProfile{
		OrbitalDistance: 0.72,
		PlanetType:      "rocky",
		Atmosphere:      "toxic",
		Radius:          0.95,
		Mass:            0.82,
		TemperatureZone: "inner_hot",
		StellarClass:    "G",
		StellarAge:      5.0,
	}

	result := AssessPlanet(profile)

	assert.Equal(t, 0.2, result.Factors.LiquidWaterAvailability)
	// A toxic atmosphere zeroes temperature compatibility.
	assert.Equal(t, 0.0, result.Factors.BiocompatibleTemperature)
	assert.False(t, result.Viable)
}

func TestAssessPlanetGreenhouseOuterWorld(t *testing.T) {
	profile := PlanetProfile{
		OrbitalDistance: 4.0,
		PlanetType:      "rocky",
		Atmosphere:      "dense",
		Radius:          1.2,
		Mass:            1.8,
		TemperatureZone: "outer_cold",
		StellarClass:    "K",
		StellarAge:      6.0,
	}

	result := AssessPlanet(profile)

	assert.Equal(t, 0.6, result.Factors.LiquidWaterAvailability)
	assert.True(t, result.Viable)
}

func TestAssessPlanetHostileStarClasses(t *testing.T) {
	profile := earthlikeProfile()
	profile.StellarClass = "O"

	result := AssessPlanet(profile)

	// O-type radiation zeroes the protection factor outright.
	assert.Equal(t, 0.0, result.Factors.RadiationProtection)
	assert.False(t, result.Viable)
}

func TestAssessPlanetYoungStarPenalty(t *testing.T) {
	young := earthlikeProfile()
	young.StellarAge = 0.5
	mature := earthlikeProfile()

	youngResult := AssessPlanet(young)
	matureResult := AssessPlanet(mature)

	assert.Less(t, youngResult.Factors.StellarCharacteristics, matureResult.Factors.StellarCharacteristics)
}

func TestAssessMoonUsesFixedProfile(t *testing.T) {
	result := AssessMoon(MoonProfile{OrbitalDistance: 0.3, Radius: 0.03, Mass: 0.012})

	assert.False(t, result.Viable)
	assert.Equal(t, "Uninhabitable", result.Rating)
}
