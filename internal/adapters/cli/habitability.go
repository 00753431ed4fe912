package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/habitability"
)

// NewHabitabilityCommand creates the habitability command
func NewHabitabilityCommand() *cobra.Command {
	var (
		distance     float64
		planetType   string
		atmosphere   string
		radius       float64
		mass         float64
		zone         string
		stellarClass string
		stellarAge   float64
	)

	cmd := &cobra.Command{
		Use:   "habitability",
		Short: "Score a hypothetical planet's habitability",
		Long: `Run the habitability assessor against a planet profile and print the
Universal Habitability Score breakdown.

The temperature zone is derived from the orbital distance when not given
explicitly (assuming a Sun-like frost line).

Examples:
  spaceminer habitability --distance 1.0 --type rocky --atmosphere breathable
  spaceminer habitability --distance 0.5 --type rocky --atmosphere none --stellar-class M`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if zone == "" {
				zone = string(celestial.ZoneForDistance(distance, 2.7))
			}

			result := habitability.AssessPlanet(habitability.PlanetProfile{
				OrbitalDistance: distance,
				PlanetType:      planetType,
				Atmosphere:      atmosphere,
				Radius:          radius,
				Mass:            mass,
				TemperatureZone: zone,
				StellarClass:    stellarClass,
				StellarAge:      stellarAge,
			})

			fmt.Printf("Universal Habitability Score: %.2f (%s)\n\n", result.UHS, result.Rating)
			fmt.Printf("Critical Viability Factor: %.4f (threshold %.2f)\n", result.CVF, habitability.CVFThreshold)
			fmt.Printf("  liquid water availability:  %.2f\n", result.Factors.LiquidWaterAvailability)
			fmt.Printf("  biocompatible temperature:  %.2f\n", result.Factors.BiocompatibleTemperature)
			fmt.Printf("  radiation protection:       %.2f\n", result.Factors.RadiationProtection)
			fmt.Printf("\nPrimary Habitability Factor: %.2f\n", result.PHF)
			fmt.Printf("  atmospheric conditions:     %.1f\n", result.Factors.AtmosphericConditions)
			fmt.Printf("  substrate geochemistry:     %.1f\n", result.Factors.SubstrateGeochemistry)
			fmt.Printf("  energy availability:        %.1f\n", result.Factors.EnergyAvailability)
			fmt.Printf("  environmental stability:    %.1f\n", result.Factors.EnvironmentalStability)
			fmt.Printf("  planetary characteristics:  %.1f\n", result.Factors.PlanetaryCharacteristics)
			fmt.Printf("  stellar characteristics:    %.1f\n", result.Factors.StellarCharacteristics)
			return nil
		},
	}

	cmd.Flags().Float64Var(&distance, "distance", 1.0, "Orbital distance in AU")
	cmd.Flags().StringVar(&planetType, "type", "rocky", "Planet type: rocky, gas_giant, ice_giant, super_earth")
	cmd.Flags().StringVar(&atmosphere, "atmosphere", "none", "Atmosphere: none, thin, thick, dense, toxic, corrosive, breathable, ideal")
	cmd.Flags().Float64Var(&radius, "radius", 0.1, "Planet radius")
	cmd.Flags().Float64Var(&mass, "mass", 1.0, "Planet mass in Earth masses")
	cmd.Flags().StringVar(&zone, "zone", "", "Temperature zone: inner_hot, middle_warm, outer_cold (derived when empty)")
	cmd.Flags().StringVar(&stellarClass, "stellar-class", "G", "Host star class: O, B, A, F, G, K, M")
	cmd.Flags().Float64Var(&stellarAge, "stellar-age", 5.0, "Host star age in Gyr")

	return cmd
}
