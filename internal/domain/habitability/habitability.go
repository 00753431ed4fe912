// Package habitability implements the Universal Habitability Score (UHS)
// system: a two-stage assessment rating celestial bodies from 0 (completely
// uninhabitable) to 100 (paradise world) for carbon-based life requiring
// liquid water.
//
// Stage one computes the Critical Viability Factor (CVF), the product of
// three deal-breaker scores in [0, 1]. Stage two computes the Primary
// Habitability Factor (PHF), a weighted sum of six quality scores in
// [0, 100]. The final score is UHS = CVF × PHF.
package habitability

import "github.com/MyriadColors/repl-space-miner-go/pkg/utils"

// Factors holds every assessment input after derivation, before combination.
type Factors struct {
	// Critical Viability Factors, each in [0, 1].
	LiquidWaterAvailability  float64 `json:"liquid_water_availability"`
	BiocompatibleTemperature float64 `json:"biocompatible_temperature"`
	RadiationProtection      float64 `json:"radiation_protection"`

	// Primary Habitability Factors, each in [0, 100].
	AtmosphericConditions    float64 `json:"atmospheric_conditions"`
	SubstrateGeochemistry    float64 `json:"substrate_geochemistry"`
	EnergyAvailability       float64 `json:"energy_availability"`
	EnvironmentalStability   float64 `json:"environmental_stability"`
	PlanetaryCharacteristics float64 `json:"planetary_characteristics"`
	StellarCharacteristics   float64 `json:"stellar_characteristics"`
}

// Result is the outcome of a habitability assessment.
type Result struct {
	UHS     float64 `json:"uhs_score"` // final score, rounded to 2 decimals
	CVF     float64 `json:"cvf_score"` // rounded to 4 decimals
	PHF     float64 `json:"phf_score"` // rounded to 2 decimals
	Factors Factors `json:"factors"`
	Rating  string  `json:"rating_text"`
	Viable  bool    `json:"is_viable"`
}

// PHF weights; they sum to exactly 1.0.
const (
	weightAtmosphericConditions    = 0.20
	weightSubstrateGeochemistry    = 0.15
	weightEnergyAvailability       = 0.20
	weightEnvironmentalStability   = 0.15
	weightPlanetaryCharacteristics = 0.15
	weightStellarCharacteristics   = 0.15
)

// CVFThreshold is the minimum Critical Viability Factor for a body to count
// as viable at all.
const CVFThreshold = 0.01

// Calculate combines derived factors into the final score. It is pure and
// side-effect free; callers re-invoke it whenever the underlying attributes
// change.
func Calculate(factors Factors) Result {
	cvf := factors.LiquidWaterAvailability *
		factors.BiocompatibleTemperature *
		factors.RadiationProtection

	phf := factors.AtmosphericConditions*weightAtmosphericConditions +
		factors.SubstrateGeochemistry*weightSubstrateGeochemistry +
		factors.EnergyAvailability*weightEnergyAvailability +
		factors.EnvironmentalStability*weightEnvironmentalStability +
		factors.PlanetaryCharacteristics*weightPlanetaryCharacteristics +
		factors.StellarCharacteristics*weightStellarCharacteristics

	uhs := cvf * phf
	viable := cvf >= CVFThreshold

	return Result{
		UHS:     utils.Round2(uhs),
		CVF:     utils.Round4(cvf),
		PHF:     utils.Round2(phf),
		Factors: factors,
		Rating:  ratingText(uhs, viable),
		Viable:  viable,
	}
}

func ratingText(uhs float64, viable bool) string {
	switch {
	case !viable:
		return "Uninhabitable"
	case uhs >= 90:
		return "Paradise World"
	case uhs >= 80:
		return "Excellent"
	case uhs >= 70:
		return "Very Good"
	case uhs >= 60:
		return "Good"
	case uhs >= 50:
		return "Moderate"
	case uhs >= 40:
		return "Challenging"
	case uhs >= 30:
		return "Difficult"
	case uhs >= 20:
		return "Harsh"
	case uhs >= 10:
		return "Extreme"
	default:
		return "Barely Habitable"
	}
}
