package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

var (
	flagLevel   int
	flagEndless bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing. Without --level or --endless a mode picker is shown first.

Controls:
  Left/Right, A/D  - Move the Vaus
  Space/Up         - Launch the ball
  P                - Pause
  C                - Toggle cheat mode (scores are not recorded)
  Esc/B            - Pause, or leave a paused or finished game
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower ball, extra life
  normal - Default settings
  hard   - Faster ball, fewer lives
  fixed  - No speed-up between levels

Examples:
  arkanoid play
  arkanoid play --level 4
  arkanoid play --endless --difficulty hard
  arkanoid play --levels ./my-levels --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Cycle levels until game over")
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	configureGame()
	cfg := runtimeConfig()

	gameID := "arkanoid"
	level := flagLevel
	if flagEndless {
		gameID = "arkanoid_endless"
	}

	if !cmd.Flags().Changed("level") && !cmd.Flags().Changed("endless") {
		// Show the mode/level selector
		selection, updatedCfg, err := tui.RunArkanoidModeSelector(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		gameID = selection.Mode.GameID()
		level = selection.Level
	}
	arkanoid.SetStartLevel(level)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	stopSound := startSound()
	store := openStore()

	runErr := tui.Run(game, store, cfg, logger)

	// Close before potential exit
	stopSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
