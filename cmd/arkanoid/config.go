package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the default game configuration as YAML.

With --write the file is saved to ~/.arcade/configs/arkanoid.yaml, where
every later game picks it up. An existing file is left alone.

Examples:
  arkanoid config > my-arkanoid.yaml
  arkanoid config --write`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Save to the user config directory")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	data := config.GetDefaultYAML("arkanoid")
	if !flagConfigWrite {
		_, err := os.Stdout.Write(data)
		return err
	}

	path := config.UserConfigPath("arkanoid.yaml")
	if path == "" {
		return fmt.Errorf("cannot find the home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	logger.Info("wrote config", "path", path)
	fmt.Println(path)
	return nil
}
