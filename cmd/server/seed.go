package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alignment/internal/seed"
)

var seedTimeout time.Duration

var seedCmd = &cobra.Command{
	Use:   "seed [roster.yaml]",
	Short: "Import characters and starting alignments from a YAML file",
	Long: `Register every character in a roster file against the configured storage.

Each entry may give an explicit alignment, a preset name, and a list of
shifts to replay into the history. See configs/roster.yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().DurationVar(&seedTimeout, "timeout", time.Minute, "Import timeout")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer func() { _ = f.Close() }()

	roster, err := seed.Parse(f)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	svcs, err := buildServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svcs.close()

	results, err := seed.Apply(ctx, svcs.alignment, roster)
	for _, r := range results {
		fmt.Printf("%-24s %-10s %s %s\n",
			r.Character.Name, r.Character.ID, r.Ledger.Abbreviation, r.Ledger.Record.Values.Labels())
	}
	if err != nil {
		return err
	}

	fmt.Printf("\nSeeded %d characters\n", len(results))
	return nil
}
