package habitability

// MoonProfile carries the moon attributes relevant to assessment. Moons keep a
// parent-planet snapshot because tidal heating and shielding depend on it.
type MoonProfile struct {
	OrbitalDistance float64 // AU from the parent planet
	Radius          float64
	Mass            float64
	ParentType      string
	ParentDistance  float64 // parent planet's AU from the star
}

// AssessMoon rates a moon with the simplified fixed-factor model: mostly
// subsurface water, low temperature compatibility and limited radiation
// protection, reflecting the lower habitability ceiling of moons.
func AssessMoon(profile MoonProfile) Result {
	factors := Factors{
		LiquidWaterAvailability:  0.1, // subsurface only
		BiocompatibleTemperature: 0.3, // usually too cold
		RadiationProtection:      0.2, // limited protection

		AtmosphericConditions:    10.0,
		SubstrateGeochemistry:    40.0,
		EnergyAvailability:       20.0,
		EnvironmentalStability:   30.0,
		PlanetaryCharacteristics: 20.0,
		StellarCharacteristics:   50.0,
	}
	return Calculate(factors)
}
