package habitability

import "math"

// PlanetProfile carries the planetary attributes the assessment derives its
// factors from. String fields use the same wire values as the celestial
// package enums ("rocky", "gas_giant", "breathable", "middle_warm", ...).
type PlanetProfile struct {
	OrbitalDistance float64 // AU from the host star
	PlanetType      string
	Atmosphere      string
	Radius          float64 // AU, relative scale
	Mass            float64 // Earth = 1.0
	TemperatureZone string
	StellarClass    string  // spectral letter: O B A F G K M
	StellarAge      float64 // billion years
}

func (p PlanetProfile) isGiant() bool {
	return p.PlanetType == "gas_giant" || p.PlanetType == "ice_giant"
}

// AssessPlanet derives all nine factors from a planet profile and combines
// them into a Result. Gas and ice giants score zero on every critical factor
// and are uninhabitable by construction.
func AssessPlanet(profile PlanetProfile) Result {
	factors := Factors{
		LiquidWaterAvailability:  assessWaterAvailability(profile),
		BiocompatibleTemperature: assessTemperatureCompatibility(profile),
		RadiationProtection:      assessRadiationProtection(profile),
		AtmosphericConditions:    assessAtmosphericConditions(profile),
		SubstrateGeochemistry:    assessSubstrateGeochemistry(profile),
		EnergyAvailability:       assessEnergyAvailability(profile),
		EnvironmentalStability:   assessEnvironmentalStability(profile),
		PlanetaryCharacteristics: assessPlanetaryCharacteristics(profile),
		StellarCharacteristics:   assessStellarCharacteristics(profile),
	}
	return Calculate(factors)
}

func assessWaterAvailability(p PlanetProfile) float64 {
	// Gas giants can't have surface liquid water.
	if p.isGiant() {
		return 0.0
	}

	switch p.TemperatureZone {
	case "inner_hot":
		if p.OrbitalDistance > 0.7 { // Venus-like distance might allow some water
			return 0.2
		}
		return 0.0
	case "outer_cold":
		if p.Atmosphere == "dense" || p.Atmosphere == "breathable" { // greenhouse effect
			return 0.6
		}
		if p.OrbitalDistance < 10.0 { // subsurface only
			return 0.3
		}
		return 0.0
	default: // middle_warm, the habitable zone
		switch p.Atmosphere {
		case "breathable", "ideal":
			return 1.0
		case "thin", "dense":
			return 0.8
		case "none":
			return 0.1 // subsurface only
		default:
			return 0.4
		}
	}
}

func assessTemperatureCompatibility(p PlanetProfile) float64 {
	if p.isGiant() {
		return 0.0
	}

	// Rough habitable zone for a G-type star: 0.8 - 1.5 AU.
	const (
		optimalMin, optimalMax   = 0.8, 1.5
		extendedMin, extendedMax = 0.5, 2.5
	)

	var base float64
	switch {
	case p.OrbitalDistance >= optimalMin && p.OrbitalDistance <= optimalMax:
		base = 1.0
	case p.OrbitalDistance >= extendedMin && p.OrbitalDistance <= extendedMax:
		base = 0.6
	case p.OrbitalDistance < extendedMin:
		base = math.Max(0.0, 0.8-(extendedMin-p.OrbitalDistance)*0.4)
	default:
		base = math.Max(0.0, 0.8-(p.OrbitalDistance-extendedMax)*0.2)
	}

	switch p.Atmosphere {
	case "breathable", "ideal":
		return base
	case "dense":
		return base * 0.8 // greenhouse effect might be too much
	case "thin":
		return base * 0.6 // limited temperature regulation
	case "none":
		return base * 0.2 // extreme temperature swings
	default: // toxic, corrosive
		return 0.0
	}
}

func assessRadiationProtection(p PlanetProfile) float64 {
	if p.isGiant() {
		return 0.0
	}

	// Larger planets have stronger magnetic fields.
	baseProtection := math.Min(1.0, p.Mass*0.8)

	atmoProtection := map[string]float64{
		"none":       0.0,
		"thin":       0.3,
		"dense":      0.8,
		"breathable": 1.0,
		"ideal":      1.0,
		"toxic":      0.6,
		"corrosive":  0.4,
	}[p.Atmosphere]

	stellarFactor, ok := map[string]float64{
		"M": 1.0,
		"K": 1.0,
		"G": 1.0,
		"F": 0.7,
		"A": 0.3,
		"B": 0.1,
		"O": 0.0,
	}[p.StellarClass]
	if !ok {
		stellarFactor = 0.8
	}

	// Both the magnetic field and the atmosphere contribute.
	combined := (baseProtection + atmoProtection) / 2.0
	return math.Min(1.0, combined*stellarFactor)
}

func assessAtmosphericConditions(p PlanetProfile) float64 {
	if p.isGiant() {
		return 0.0
	}

	base := map[string]float64{
		"ideal":      100.0,
		"breathable": 90.0,
		"dense":      60.0,
		"thin":       40.0,
		"toxic":      20.0,
		"corrosive":  10.0,
		"none":       5.0,
	}[p.Atmosphere]

	// Mass affects atmospheric retention.
	massFactor := math.Min(1.0, p.Mass*1.2)
	return base * massFactor
}

func assessSubstrateGeochemistry(p PlanetProfile) float64 {
	base, ok := map[string]float64{
		"rocky":       80.0,
		"super_earth": 85.0,
		"gas_giant":   0.0,
		"ice_giant":   10.0,
	}[p.PlanetType]
	if !ok {
		base = 50.0
	}

	zoneFactor, ok := map[string]float64{
		"inner_hot":   0.6, // limited chemistry due to heat
		"middle_warm": 1.0,
		"outer_cold":  0.8,
	}[p.TemperatureZone]
	if !ok {
		zoneFactor = 0.5
	}

	return base * zoneFactor
}

func assessEnergyAvailability(p PlanetProfile) float64 {
	// Solar energy falls off with the inverse square of distance.
	solar := math.Min(100.0, 100.0/(p.OrbitalDistance*p.OrbitalDistance))

	stellarFactor, ok := map[string]float64{
		"M": 0.6, // mainly infrared
		"K": 0.8,
		"G": 1.0,
		"F": 0.9,
		"A": 0.7,
		"B": 0.3,
		"O": 0.1,
	}[p.StellarClass]
	if !ok {
		stellarFactor = 0.8
	}

	atmoFactor, ok := map[string]float64{
		"ideal":      1.0,
		"breathable": 0.95,
		"dense":      0.7, // filters too much
		"thin":       0.9,
		"toxic":      0.6,
		"corrosive":  0.4,
		"none":       0.8, // no filtering, but also no protection
	}[p.Atmosphere]
	if !ok {
		atmoFactor = 0.5
	}

	return solar * stellarFactor * atmoFactor
}

func assessEnvironmentalStability(p PlanetProfile) float64 {
	var orbitalStability float64
	switch {
	case p.OrbitalDistance >= 0.5 && p.OrbitalDistance <= 5.0:
		orbitalStability = 90.0
	case p.OrbitalDistance >= 0.3 && p.OrbitalDistance <= 10.0:
		orbitalStability = 70.0
	default:
		orbitalStability = 30.0
	}

	var geologicalStability float64
	if p.isGiant() {
		geologicalStability = 20.0 // chaotic atmospheres
	} else {
		switch {
		case p.Mass >= 0.5 && p.Mass <= 2.0:
			geologicalStability = 80.0
		case p.Mass >= 0.1 && p.Mass < 0.5:
			geologicalStability = 60.0 // less active
		default:
			geologicalStability = 40.0 // too active or too small
		}
	}

	return (orbitalStability + geologicalStability) / 2.0
}

func assessPlanetaryCharacteristics(p PlanetProfile) float64 {
	if p.isGiant() {
		return 10.0 // not suitable for surface life
	}

	radiusScore := math.Max(0, 100-math.Abs(1.0-p.Radius)*100)
	massScore := math.Max(0, 100-math.Abs(1.0-p.Mass)*80)

	var gravity float64
	if p.Radius > 0 {
		gravity = p.Mass / (p.Radius * p.Radius)
	}
	gravityScore := math.Max(0, 100-math.Abs(1.0-gravity)*50)

	return (radiusScore + massScore + gravityScore) / 3.0
}

func assessStellarCharacteristics(p PlanetProfile) float64 {
	classScore, ok := map[string]float64{
		"M": 60.0, // long-lived but tidal locking issues
		"K": 85.0,
		"G": 90.0,
		"F": 70.0,
		"A": 40.0,
		"B": 10.0,
		"O": 5.0,
	}[p.StellarClass]
	if !ok {
		classScore = 50.0
	}

	var ageScore float64
	switch {
	case p.StellarAge < 1.0:
		ageScore = p.StellarAge * 50 // too young
	case p.StellarAge <= 8.0:
		ageScore = 80.0
	case p.StellarAge <= 12.0:
		ageScore = 60.0
	default:
		ageScore = 20.0 // star becoming unstable
	}

	return (classScore + ageScore) / 2.0
}
