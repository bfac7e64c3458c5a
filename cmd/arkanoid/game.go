package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/sound"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

// addGameFlags registers the flags shared by commands that start games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (replaces the built-in levels)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", env.Sound, "Play sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

// configureGame hands the game flags to the arkanoid package.
func configureGame() {
	arkanoid.SetConfigPath(flagConfig)
	arkanoid.SetDifficultyPreset(flagDifficulty)
	arkanoid.SetLevelsDir(flagLevelsDir)
}

// runtimeConfig builds the runtime config from the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fpsOrDefault(),
		Seed:     flagSeed,
	}
}

// startSound wires the buzzer to game events when --sound is set.
// The returned function releases the audio device.
func startSound() func() {
	if !flagSound {
		arkanoid.SetEventHook(nil)
		return func() {}
	}

	sp, err := sound.NewSpeaker(flagVolume)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return func() {}
	}
	buzzer := sound.NewBuzzer(sp)
	arkanoid.SetEventHook(buzzer.Handle)

	return func() {
		arkanoid.SetEventHook(nil)
		sp.Close()
	}
}

// openStore opens the score database, logging instead of failing.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
