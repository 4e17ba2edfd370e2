package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/rpg-alignment/internal/handlers/alignment/v1alpha1"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	abbrStyle   = lipgloss.NewStyle().Bold(true).Width(3)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e67e22")).Bold(true)
)

// swatch renders a colored dot for a marker color
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

func printLedger(name string, ledger *v1alpha1.Ledger) {
	if ledger == nil {
		return
	}

	fmt.Println(headerStyle.Render(name))
	fmt.Printf("  %s %s  law %d, moral %d\n",
		abbrStyle.Render(ledger.Abbreviation),
		ledger.Labels,
		ledger.Alignment.Law,
		ledger.Alignment.Moral)
	if !ledger.Stored {
		fmt.Println(mutedStyle.Render("  (default, nothing stored yet)"))
	}

	if len(ledger.History) == 0 {
		fmt.Println(mutedStyle.Render("  no history"))
		return
	}
	fmt.Println("  History:")
	for _, entry := range ledger.History {
		fmt.Printf("    - %s\n", entry)
	}
}

func printLegend(markers []*v1alpha1.Marker, highlight string) {
	width := 0
	for _, m := range markers {
		if len(m.Name) > width {
			width = len(m.Name)
		}
	}

	for _, m := range markers {
		pointer := "  "
		if m.Id == highlight {
			pointer = "▶ "
		}
		fmt.Printf("%s%s %s%s (%d, %d)\n",
			pointer,
			swatch(m.Color),
			m.Name,
			strings.Repeat(" ", width-len(m.Name)),
			m.Alignment.Law,
			m.Alignment.Moral)
	}
}
