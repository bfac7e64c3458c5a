package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows every registered game mode.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Game modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play' to play.")
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List levels",
	Long: `Shows the levels a new game plays through, with their brick counts.

Examples:
  arkanoid levels
  arkanoid levels --levels ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files")
}

func runLevels(_ *cobra.Command, _ []string) {
	arkanoid.SetLevelsDir(flagLevelsDir)
	levels, err := arkanoid.LoadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-3s  %-20s  %-6s  %s\n", "#", "Name", "Bricks", "Silver")
	fmt.Printf("  %-3s  %-20s  %-6s  %s\n", "-", "----", "------", "------")
	for i, l := range levels {
		silver := 0
		for _, b := range l.Bricks {
			if b.Color == arkanoid.ColorSilver {
				silver++
			}
		}
		fmt.Printf("  %-3d  %-20s  %-6d  %d\n", i+1, l.Name, len(l.Bricks), silver)
	}
}
