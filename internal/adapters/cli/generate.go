package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MyriadColors/repl-space-miner-go/internal/domain/celestial"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/galaxy"
	"github.com/MyriadColors/repl-space-miner-go/internal/domain/shared"
)

// NewGenerateCommand creates the generate command with subcommands
func NewGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate regions and solar systems",
		Long: `Generate procedural universes. The same seed and configuration always
produce the same result.

Examples:
  spaceminer generate region --name Frontier --systems 15 --seed 42
  spaceminer generate region --name Frontier --seed 42 --no-save
  spaceminer generate system --name Vega --seed 7`,
	}

	cmd.AddCommand(newGenerateRegionCommand())
	cmd.AddCommand(newGenerateSystemCommand())

	return cmd
}

func newGenerateRegionCommand() *cobra.Command {
	var (
		name    string
		systems int
		seed    int64
		noSave  bool
	)

	cmd := &cobra.Command{
		Use:   "region",
		Short: "Generate a full region of solar systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.close()

			if systems > 0 {
				env.cfg.Generation.Systems = systems
			}
			ctx, usedSeed := env.generationContext(seed)
			region := galaxy.NewRegionBuilder(ctx).Build(name, env.cfg.Generation.Systems)

			fmt.Printf("Region %q (seed %d, %d systems)\n", region.Name, usedSeed, len(region.Systems))
			for _, system := range region.Systems {
				printSystemSummary(system)
			}
			if verbose {
				if err := env.dumpMetrics(); err != nil {
					return err
				}
			}

			if noSave {
				return nil
			}
			if err := env.openDB(); err != nil {
				return err
			}
			runID := uuid.NewString()
			if err := env.repo.Save(context.Background(), runID, usedSeed, region); err != nil {
				return err
			}
			fmt.Printf("\nSaved region %q (run %s)\n", region.Name, runID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Frontier", "Region name")
	cmd.Flags().IntVar(&systems, "systems", 0, "Number of systems (0 uses the configured default)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generation seed (0 uses the configured default)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip persisting the region")

	return cmd
}

func newGenerateSystemCommand() *cobra.Command {
	var (
		name string
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "system",
		Short: "Generate a single solar system and print its tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.close()

			ctx, usedSeed := env.generationContext(seed)
			system := galaxy.NewSystemBuilder(ctx).Build(name, shared.Position{})

			fmt.Printf("System %q (seed %d)\n\n", system.Name, usedSeed)
			printSystemTree(system)
			if verbose {
				return env.dumpMetrics()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "Sol", "System name")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generation seed (0 uses the configured default)")

	return cmd
}

func printSystemSummary(s *celestial.SolarSystem) {
	fmt.Printf("  %s at %s: %s-type star, %d planets, %d belts, %d stations\n",
		s.Name, s.Coordinates.String(), s.Star.Class(),
		len(s.Planets()), len(s.Belts()), len(s.AllStations()))
}

func printSystemTree(s *celestial.SolarSystem) {
	star := s.Star
	fmt.Printf("%s\n", star.String())
	fmt.Printf("  class=%s temp=%.0fK luminosity=%.2f mass=%.2f age=%.2fGyr frost_line=%.2fAU\n",
		star.Class(), star.Temperature(), star.Luminosity(), star.Mass(), star.Age(), star.FrostLine())

	for _, planet := range s.Planets() {
		h := planet.Habitability()
		fmt.Printf("  %s\n", planet.String())
		fmt.Printf("    orbit=%.2fAU zone=%s atmosphere=%s radius=%.2f mass=%.2f\n",
			planet.OrbitalDistance(), planet.TemperatureZone(), planet.Atmosphere(),
			planet.Radius(), planet.Mass())
		fmt.Printf("    habitability: UHS=%.2f (%s)\n", h.UHS, h.Rating)
		for _, moon := range planet.Moons() {
			mh := moon.Habitability()
			fmt.Printf("    %s UHS=%.2f\n", moon.String(), mh.UHS)
		}
		for _, station := range planet.Stations() {
			fmt.Printf("    %s\n", station.String())
		}
	}

	for _, belt := range s.Belts() {
		fmt.Printf("  %s\n", belt.String())
		for _, field := range belt.Fields() {
			fmt.Printf("    %s\n", field.String())
		}
	}

	for _, station := range star.Stations() {
		fmt.Printf("  %s\n", station.String())
	}
}
