package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all available themes",
	Long:  `Shows a list of all registered visual themes.`,
	Run:   runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	themes := registry.List()

	if len(themes) == 0 {
		fmt.Println("No themes available.")
		return
	}

	fmt.Println("Available themes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range themes {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, t := range themes {
		title := t.Title
		if t.ID == registry.DefaultTheme {
			title += " (default)"
		}
		fmt.Printf("  %-*s  %s\n", maxIDLen, t.ID, title)
	}

	fmt.Println()
	fmt.Println("Run 'runner play <id>' to play with a theme.")
}
