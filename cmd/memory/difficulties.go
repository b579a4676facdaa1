package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var difficultiesCmd = &cobra.Command{
	Use:     "difficulties",
	Aliases: []string{"list"},
	Short:   "List board sizes",
	Long:    `Shows the configured board sizes with their aliases and pair counts.`,
	Args:    cobra.NoArgs,
	Run:     runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	tiers := cfg.DeckTiers()

	if len(tiers) == 0 {
		fmt.Println("No board sizes configured.")
		return
	}

	fmt.Println("Board sizes:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range tiers {
		if len(t.Difficulty) > maxNameLen {
			maxNameLen = len(t.Difficulty)
		}
	}

	fmt.Printf("  %-*s  %-8s  %5s  %s\n", maxNameLen, "Name", "Alias", "Pairs", "Grid")
	fmt.Printf("  %-*s  %-8s  %5s  %s\n", maxNameLen, "----", "-----", "-----", "----")

	for _, t := range tiers {
		marker := ""
		if cfg.DefaultDifficulty == string(t.Difficulty) || cfg.DefaultDifficulty == t.Alias {
			marker = "  (default)"
		}
		fmt.Printf("  %-*s  %-8s  %5d  %dx%d%s\n",
			maxNameLen, t.Difficulty, t.Alias, t.Pairs, t.Columns, t.Rows(), marker)
	}

	fmt.Println()
	fmt.Println("Run 'memory play --difficulty <name>' to play one.")
}
