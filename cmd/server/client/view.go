package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-alignment/internal/handlers/alignment/v1alpha1"
)

var (
	gridOut       string
	gridHighlight string
	tabOut        string
	tabActive     string
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Render the party grid to a PNG and print the legend",
	Args:  cobra.NoArgs,
	RunE:  renderGrid,
}

var hoverCmd = &cobra.Command{
	Use:   "hover [x] [y]",
	Short: "Show the tooltip for a point on the party grid",
	Long: `Hit-test a point in grid space, where (0, 0) is the grid's top-left
corner. Prints the tooltip of the first marker under the point.`,
	Args: cobra.ExactArgs(2),
	RunE: hover,
}

var tabCmd = &cobra.Command{
	Use:   "tab [character-id]",
	Short: "Render a character's alignment tab to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE:  renderTab,
}

func init() {
	gridCmd.Flags().StringVarP(&gridOut, "out", "o", "party-grid.png", "Output file")
	gridCmd.Flags().StringVar(&gridHighlight, "highlight", "", "Character ID to point at")

	tabCmd.Flags().StringVarP(&tabOut, "out", "o", "alignment-tab.png", "Output file")
	tabCmd.Flags().StringVar(&tabActive, "tab", "", "Active sheet tab to keep open")
}

func renderGrid(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RenderParty(ctx, &v1alpha1.RenderPartyRequest{HighlightId: gridHighlight})
	if err != nil {
		return fmt.Errorf("failed to render grid: %w", err)
	}

	if err := os.WriteFile(gridOut, resp.Png, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", gridOut, err)
	}

	fmt.Printf("Wrote %s (%dx%d)\n\n", gridOut, resp.Width, resp.Height)
	if len(resp.Markers) == 0 {
		fmt.Println(mutedStyle.Render("No player characters"))
		return nil
	}
	printLegend(resp.Markers, gridHighlight)
	if gridHighlight != "" && !resp.Highlighted {
		fmt.Println(mutedStyle.Render("\nHighlighted character is not on the grid"))
	}
	return nil
}

func hover(cmd *cobra.Command, args []string) error {
	var x, y float64
	if _, err := fmt.Sscan(args[0], &x); err != nil {
		return fmt.Errorf("invalid x %q: %w", args[0], err)
	}
	if _, err := fmt.Sscan(args[1], &y); err != nil {
		return fmt.Errorf("invalid y %q: %w", args[1], err)
	}

	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Hover(ctx, &v1alpha1.HoverRequest{X: x, Y: y})
	if err != nil {
		return fmt.Errorf("failed to hover: %w", err)
	}

	if !resp.Found {
		fmt.Println(mutedStyle.Render("Nothing here"))
		return nil
	}

	fmt.Printf("%s %s  (tooltip at %.1f, %.1f)\n",
		swatch(resp.Marker.Color), resp.Tooltip.Text, resp.Tooltip.X, resp.Tooltip.Y)
	return nil
}

func renderTab(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createAlignmentClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RenderTab(ctx, &v1alpha1.RenderTabRequest{CharacterId: args[0], ActiveTab: tabActive})
	if err != nil {
		return fmt.Errorf("failed to render tab: %w", err)
	}

	if err := os.WriteFile(tabOut, resp.Png, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tabOut, err)
	}

	tab := resp.Tab
	fmt.Printf("Wrote %s (tab %q)\n\n", tabOut, resp.ActiveTab)
	fmt.Println(headerStyle.Render(tab.Name))
	fmt.Printf("  %s (%s %s)\n", abbrStyle.Render(tab.Abbreviation), tab.LawLabel, tab.MoralLabel)
	for _, entry := range tab.History {
		fmt.Printf("    - %s\n", entry)
	}
	return nil
}
