package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MyriadColors/repl-space-miner-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage Space Miner configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SM_* prefix)
2. Config file (config.yaml)
3. Default values

Example:
  spaceminer config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			fmt.Println("Space Miner Configuration")
			fmt.Println("=========================")

			fmt.Println("\nDatabase:")
			fmt.Printf("  Type: %s\n", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				fmt.Printf("  Path: %s\n", cfg.Database.Path)
			} else {
				fmt.Printf("  Host: %s:%d\n", cfg.Database.Host, cfg.Database.Port)
				fmt.Printf("  Name: %s\n", cfg.Database.Name)
				fmt.Printf("  SSL Mode: %s\n", cfg.Database.SSLMode)
			}

			fmt.Println("\nGeneration:")
			fmt.Printf("  Seed: %d\n", cfg.Generation.Seed)
			fmt.Printf("  Systems per region: %d\n", cfg.Generation.Systems)
			if cfg.Generation.PlanetMin > 0 || cfg.Generation.PlanetMax > 0 {
				fmt.Printf("  Planet count override: %d-%d\n", cfg.Generation.PlanetMin, cfg.Generation.PlanetMax)
			}
			if cfg.Generation.StationQuota > 0 {
				fmt.Printf("  Station quota override: %d\n", cfg.Generation.StationQuota)
			}

			fmt.Println("\nLogging:")
			fmt.Printf("  Level: %s\n", cfg.Logging.Level)
			fmt.Printf("  Format: %s\n", cfg.Logging.Format)
			fmt.Printf("  Output: %s\n", cfg.Logging.Output)
			return nil
		},
	}
}
