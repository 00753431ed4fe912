package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spaceminer",
		Short: "Space Miner - procedural universe generation and habitability scoring",
		Long: `Space Miner generates deterministic regions of solar systems: stars,
planets, moons, asteroid belts with ore fields, and trading stations.
Every run is reproducible from its seed.

Examples:
  spaceminer generate region --name Frontier --systems 15 --seed 42
  spaceminer generate system --name Vega --seed 7
  spaceminer habitability --distance 1.0 --type rocky --atmosphere breathable
  spaceminer region list
  spaceminer region distance Frontier Vega Sirius
  spaceminer config show`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in . or ./configs)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewGenerateCommand())
	rootCmd.AddCommand(NewHabitabilityCommand())
	rootCmd.AddCommand(NewRegionCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
