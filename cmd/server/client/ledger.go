package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alignment/internal/handlers/alignment/v1alpha1"
)

var (
	shiftLaw   int
	shiftMoral int
	shiftInfo  string
	presetYes  bool
)

var getCmd = &cobra.Command{
	Use:   "get [character-id]",
	Short: "Show a character's alignment and history",
	Args:  cobra.ExactArgs(1),
	RunE:  getLedger,
}

var shiftCmd = &cobra.Command{
	Use:   "shift [character-id]",
	Short: "Shift a character's alignment and record why",
	Long: `Apply a law/moral shift. Values are clamped to 0-44. Examples:

  shift char_123 --law 3 --moral -2 --info "Broke an oath to save a child"
  shift char_123 --moral -5`,
	Args: cobra.ExactArgs(1),
	RunE: shiftAlignment,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List starting alignment presets",
	Args:  cobra.NoArgs,
	RunE:  listPresets,
}

var presetCmd = &cobra.Command{
	Use:   "preset [character-id] [preset name]",
	Short: "Reset a character to a preset, clearing history",
	Long: `Reset to one of the nine presets. This wipes the character's history,
so it asks for confirmation unless --yes is given.

  preset char_123 "Lawful Good" --yes`,
	Args: cobra.MinimumNArgs(2),
	RunE: setPreset,
}

var syncTraitCmd = &cobra.Command{
	Use:   "sync-trait [character-id]",
	Short: "Write the alignment trait slug onto the character",
	Args:  cobra.ExactArgs(1),
	RunE:  syncTrait,
}

func init() {
	shiftCmd.Flags().IntVar(&shiftLaw, "law", 0, "Law delta")
	shiftCmd.Flags().IntVar(&shiftMoral, "moral", 0, "Moral delta")
	shiftCmd.Flags().StringVar(&shiftInfo, "info", "", "Reason recorded in the history")

	presetCmd.Flags().BoolVarP(&presetYes, "yes", "y", false, "Skip the history reset confirmation")
}

func getLedger(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetLedger(ctx, &v1alpha1.GetLedgerRequest{CharacterId: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get ledger: %w", err)
	}

	printLedger(resp.Character.Name, resp.Ledger)
	return nil
}

func shiftAlignment(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ApplyDelta(ctx, &v1alpha1.ApplyDeltaRequest{
		CharacterId: args[0],
		LawDelta:    int32(shiftLaw),
		MoralDelta:  int32(shiftMoral),
		Info:        shiftInfo,
	})
	if err != nil {
		return fmt.Errorf("failed to shift alignment: %w", err)
	}

	if !resp.Applied {
		fmt.Println(mutedStyle.Render("Nothing to record"))
		return nil
	}

	fmt.Printf("Recorded: %s\n\n", resp.Entry)
	printLedger(args[0], resp.Ledger)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListPresets(ctx, &v1alpha1.ListPresetsRequest{})
	if err != nil {
		return fmt.Errorf("failed to list presets: %w", err)
	}

	fmt.Println(headerStyle.Render("Presets"))
	for _, p := range resp.Presets {
		fmt.Printf("  %-16s law %2d, moral %2d\n", p.Name, p.Alignment.Law, p.Alignment.Moral)
	}
	fmt.Println()
	fmt.Println(warnStyle.Render(resp.Warning))
	return nil
}

func setPreset(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	characterID := args[0]
	name := strings.Join(args[1:], " ")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if !presetYes {
		presets, err := client.ListPresets(ctx, &v1alpha1.ListPresetsRequest{})
		if err != nil {
			return fmt.Errorf("failed to list presets: %w", err)
		}
		fmt.Println(warnStyle.Render(presets.Warning))
		fmt.Print("Continue? [y/N] ")

		var answer string
		_, _ = fmt.Scanln(&answer) // nolint:errcheck // empty input means no
		if !strings.EqualFold(strings.TrimSpace(answer), "y") {
			fmt.Println("Cancelled")
			return nil
		}
	}

	resp, err := client.SetPreset(ctx, &v1alpha1.SetPresetRequest{CharacterId: characterID, Preset: name})
	if err != nil {
		return fmt.Errorf("failed to set preset: %w", err)
	}

	if !resp.Applied {
		return fmt.Errorf("unknown preset %q, see the presets command", name)
	}

	printLedger(characterID, resp.Ledger)
	return nil
}

func syncTrait(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SyncTrait(ctx, &v1alpha1.SyncTraitRequest{CharacterId: args[0]})
	if err != nil {
		return fmt.Errorf("failed to sync trait: %w", err)
	}

	state := "unchanged"
	if resp.Changed {
		state = "updated"
	}
	fmt.Printf("%s: trait %s (%s)\n", resp.Character.Name, resp.Trait, state)
	return nil
}
