package habitability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func perfectFactors() Factors {
	return Factors{
		LiquidWaterAvailability:  1.0,
		BiocompatibleTemperature: 1.0,
		RadiationProtection:      1.0,
		AtmosphericConditions:    100,
		SubstrateGeochemistry:    100,
		EnergyAvailability:       100,
		EnvironmentalStability:   100,
		PlanetaryCharacteristics: 100,
		StellarCharacteristics:   100,
	}
}

func TestCalculatePerfectWorld(t *testing.T) {
	result := Calculate(perfectFactors())

	assert.Equal(t, 1.0, result.CVF)
	assert.Equal(t, 100.0, result.PHF)
	assert.Equal(t, 100.0, result.UHS)
	assert.Equal(t, "Paradise World", result.Rating)
	assert.True(t, result.Viable)
}

func TestCalculateBelowViabilityThreshold(t *testing.T) {
	factors := perfectFactors()
	factors.LiquidWaterAvailability = 0.02
	factors.BiocompatibleTemperature = 0.4
	factors.RadiationProtection = 0.5

	result := Calculate(factors)

	assert.Equal(t, 0.004, result.CVF)
	assert.False(t, result.Viable)
	assert.Equal(t, "Uninhabitable", result.Rating)
}

func TestCalculateExactlyAtThreshold(t *testing.T) {
	factors := perfectFactors()
	factors.LiquidWaterAvailability = 0.01

	result := Calculate(factors)

	assert.True(t, result.Viable, "a CVF equal to the threshold still counts as viable")
	assert.Equal(t, 1.0, result.UHS)
}

func TestCalculateZeroFactorKillsScore(t *testing.T) {
	factors := perfectFactors()
	factors.RadiationProtection = 0

	result := Calculate(factors)

	assert.Equal(t, 0.0, result.UHS)
	assert.Equal(t, 0.0, result.CVF)
	assert.False(t, result.Viable)
}

func TestRatingLadder(t *testing.T) {
	cases := []struct {
		phf    float64
		rating string
	}{
		{95, "Paradise World"},
		{85, "Excellent"},
		{75, "Very Good"},
		{65, "Good"},
		{55, "Moderate"},
		{45, "Challenging"},
		{35, "Difficult"},
		{25, "Harsh"},
		{15, "Extreme"},
		{5, "Barely Habitable"},
	}

	for _, tc := range cases {
		factors := Factors{
			LiquidWaterAvailability:  1.0,
			BiocompatibleTemperature: 1.0,
			RadiationProtection:      1.0,
			AtmosphericConditions:    tc.phf,
			SubstrateGeochemistry:    tc.phf,
			EnergyAvailability:       tc.phf,
			EnvironmentalStability:   tc.phf,
			PlanetaryCharacteristics: tc.phf,
			StellarCharacteristics:   tc.phf,
		}
		result := Calculate(factors)
		assert.Equal(t, tc.rating, result.Rating, "PHF %.0f", tc.phf)
	}
}

func TestPHFWeightsSumToOne(t *testing.T) {
	sum := weightAtmosphericConditions +
		weightSubstrateGeochemistry +
		weightEnergyAvailability +
		weightEnvironmentalStability +
		weightPlanetaryCharacteristics +
		weightStellarCharacteristics
	assert.InDelta(t, 1.0, sum, 1e-12)
}
