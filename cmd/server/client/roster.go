package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alignment/internal/handlers/alignment/v1alpha1"
)

var (
	registerType   string
	registerNPC    bool
	registerTraits []string
	registerLaw    int
	registerMoral  int
	listParty      bool
)

var registerCmd = &cobra.Command{
	Use:   "register [name]",
	Short: "Add a character to the roster",
	Long: `Register a character. Player-owned characters of type "character" appear
on the party grid. Pass --law and --moral to store a starting alignment.

  register Valeria --law 37 --moral 37
  register "Innkeeper Dorn" --npc`,
	Args: cobra.ExactArgs(1),
	RunE: registerCharacter,
}

var removeCmd = &cobra.Command{
	Use:   "remove [character-id]",
	Short: "Remove a character and its alignment history",
	Args:  cobra.ExactArgs(1),
	RunE:  removeCharacter,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster with each character's alignment",
	Args:  cobra.NoArgs,
	RunE:  listCharacters,
}

func init() {
	registerCmd.Flags().StringVar(&registerType, "type", "character", "Character type")
	registerCmd.Flags().BoolVar(&registerNPC, "npc", false, "Register as not player-owned")
	registerCmd.Flags().StringSliceVar(&registerTraits, "trait", nil, "Trait slugs (repeatable)")
	registerCmd.Flags().IntVar(&registerLaw, "law", 0, "Starting law value, clamped to 0-44")
	registerCmd.Flags().IntVar(&registerMoral, "moral", 0, "Starting moral value, clamped to 0-44")

	listCmd.Flags().BoolVar(&listParty, "party", false, "Only player-owned characters")
}

func registerCharacter(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.RegisterCharacterRequest{
		Name:        args[0],
		Type:        registerType,
		PlayerOwned: !registerNPC,
		Traits:      registerTraits,
	}
	lawSet, moralSet := cmd.Flags().Changed("law"), cmd.Flags().Changed("moral")
	if lawSet || moralSet {
		if lawSet != moralSet {
			return fmt.Errorf("--law and --moral must be given together")
		}
		req.Alignment = &v1alpha1.Alignment{Law: int32(registerLaw), Moral: int32(registerMoral)}
	}

	resp, err := client.RegisterCharacter(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to register character: %w", err)
	}

	fmt.Printf("Registered %s\n\n", resp.Character.Id)
	printLedger(resp.Character.Name, resp.Ledger)
	return nil
}

func removeCharacter(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.RemoveCharacter(ctx, &v1alpha1.RemoveCharacterRequest{CharacterId: args[0]}); err != nil {
		return fmt.Errorf("failed to remove character: %w", err)
	}

	fmt.Printf("Removed %s\n", args[0])
	return nil
}

func listCharacters(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListCharacters(ctx, &v1alpha1.ListCharactersRequest{PlayerCharactersOnly: listParty})
	if err != nil {
		return fmt.Errorf("failed to list characters: %w", err)
	}

	if len(resp.Characters) == 0 {
		fmt.Println(mutedStyle.Render("No characters"))
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%d characters", len(resp.Characters))))
	for _, cl := range resp.Characters {
		owner := "player"
		if !cl.Character.PlayerOwned {
			owner = "npc"
		}
		fmt.Printf("  %s  %-24s %-42s %s %s\n",
			abbrStyle.Render(cl.Ledger.Abbreviation),
			cl.Character.Name,
			cl.Character.Id,
			mutedStyle.Render(owner),
			mutedStyle.Render(cl.Character.Type))
	}
	return nil
}
