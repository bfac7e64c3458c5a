// arkanoid is a terminal brick breaker.
//
// Usage:
//
//	arkanoid                  - Pick a mode and play
//	arkanoid play             - Play a game
//	arkanoid menu             - Start menu to pick modes interactively
//	arkanoid list             - List game modes
//	arkanoid levels           - List levels
//	arkanoid scores [mode]    - Show high scores
//	arkanoid serve            - Start SSH server for remote play
//	arkanoid sim              - Run a headless game with an autopilot
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/arkanoid.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write logs to a file instead of stderr
//
// Defaults can be set with ARKANOID_* environment variables or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arkanoid"})
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `A terminal brick breaker. Steer the Vaus, keep the ball in play and
clear every brick to reach the next level.

Available commands:
  play     - Play directly
  menu     - Interactive mode picker
  list     - Show game modes
  levels   - Show levels
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a headless game

Examples:
  arkanoid play --level 3
  arkanoid play --endless --sound
  arkanoid serve --ssh :2222
  arkanoid scores arkanoid_endless`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	Run:               runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", env.DB, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", env.LogFile, "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setupLogging configures the shared logger from the global flags.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
		logger.SetReportTimestamp(true)
	}

	arkanoid.SetLogger(logger)
	return nil
}

// fpsOrDefault guards the tick loop against a zero or negative rate.
func fpsOrDefault() int {
	if flagFPS <= 0 {
		logger.Warn("invalid tick rate, using 60", "fps", flagFPS)
		return 60
	}
	return flagFPS
}
