package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a game mode (default: arkanoid).

Examples:
  arkanoid scores
  arkanoid scores arkanoid_endless
  arkanoid scores --all
  arkanoid scores arkanoid --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every mode")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "arkanoid"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !flagScoresAll && !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arkanoid list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresAll:
		err = printSummary(store)
	case flagScoresClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Scores for %s cleared.\n", gameID)
		}
	default:
		err = printScores(store, gameID)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-18s  %-6s  %-8s  %-10s  %s\n", "Mode", "Games", "Best", "Best level", "Last played")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-18s  %-6d  %-8d  %-10d  %s\n",
			id, s.GamesCount, s.HighScore, s.BestLevel, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
