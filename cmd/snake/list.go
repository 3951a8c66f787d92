package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-game/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available platforms",
	Long:  `Shows every platform the game can run on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	platforms := registry.List()

	if len(platforms) == 0 {
		fmt.Println("No platforms available.")
		return
	}

	fmt.Println("Available platforms:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range platforms {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range platforms {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snake --platform <id>' to play.")
}
