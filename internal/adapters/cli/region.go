package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewRegionCommand creates the region command with subcommands
func NewRegionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "region",
		Short: "Inspect persisted regions",
		Long: `Inspect regions saved by 'generate region'.

Examples:
  spaceminer region list
  spaceminer region show Frontier
  spaceminer region distance Frontier Vega Sirius
  spaceminer region delete Frontier`,
	}

	cmd.AddCommand(newRegionListCommand())
	cmd.AddCommand(newRegionShowCommand())
	cmd.AddCommand(newRegionDistanceCommand())
	cmd.AddCommand(newRegionDeleteCommand())

	return cmd
}

func newRegionListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List persisted regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.close()
			if err := env.openDB(); err != nil {
				return err
			}

			records, err := env.repo.List(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No regions saved.")
				return nil
			}
			fmt.Printf("%-20s %-8s %-8s %-36s %s\n", "NAME", "SYSTEMS", "SEED", "RUN", "CREATED")
			for _, r := range records {
				fmt.Printf("%-20s %-8d %-8d %-36s %s\n", r.Name, r.Systems, r.Seed, r.RunID, r.CreatedAt)
			}
			return nil
		},
	}
}

func newRegionShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <region>",
		Short: "Show a persisted region's systems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.close()
			if err := env.openDB(); err != nil {
				return err
			}

			region, err := env.repo.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Region %q (%d systems)\n", region.Name, len(region.Systems))
			for _, system := range region.Systems {
				printSystemSummary(system)
			}
			return nil
		},
	}
}

func newRegionDistanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <region> <system-a> <system-b>",
		Short: "Distance in light years between two systems of a region",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.close()
			if err := env.openDB(); err != nil {
				return err
			}

			region, err := env.repo.Load(context.Background(), args[0])
			if err != nil {
				return err
			}
			d, err := region.Distance(args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Printf("%s -> %s: %s ly\n", args[1], args[2], strconv.FormatFloat(d, 'f', 2, 64))
			return nil
		},
	}
}

func newRegionDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <region>",
		Short: "Delete a persisted region",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newAppEnv()
			if err != nil {
				return err
			}
			defer env.close()
			if err := env.openDB(); err != nil {
				return err
			}

			if err := env.repo.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted region %q\n", args[0])
			return nil
		},
	}
}
