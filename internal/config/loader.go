package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArkanoid loads Arkanoid configuration.
// Search order: customPath -> ~/.arcade/configs/arkanoid.yaml -> ./configs/arkanoid.yaml -> embedded default
//
// Every source is decoded over the defaults, so a partial file only
// overrides the keys it names.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	cfg := DefaultArkanoidConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("arkanoid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultArkanoidConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/arkanoid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultArkanoidConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultArkanoidYAML, &cfg); err != nil {
		return DefaultArkanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// UserConfigPath returns ~/.arcade/configs/<filename>, or "" if the home
// directory is unknown.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyArkanoidPreset modifies the config based on a difficulty preset.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 6
		cfg.Physics.BallSpeed = 0.2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 3
		cfg.Physics.BallSpeed = 0.32
		cfg.PowerUps.SpawnChance /= 2
	}
}
