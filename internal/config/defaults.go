package config

import _ "embed"

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default Arkanoid configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Zone: ArkanoidZone{
			Width:  26,
			Height: 22,
		},
		Physics: ArkanoidPhysics{
			BallSpeed:     0.25,
			MaxBallSpeed:  0.6,
			SpeedPerLevel: 0.05,
			MaxContacts:   4,
		},
		Paddle: ArkanoidPaddle{
			Width:          4,
			Speed:          0.6,
			MaxBounceAngle: 60,
		},
		Gameplay: ArkanoidGameplay{
			Lives:           3,
			CooldownTicks:   120, // 2 seconds
			LevelDelayTicks: 90,
		},
		PowerUps: ArkanoidPowerUps{
			Enabled:     true,
			SpawnChance: 15,
			FallSpeed:   0.1,
			ExpandWidth: 2,
			SlowFactor:  0.7,
			Weights: CapsuleWeights{
				Disruption: 25,
				Slow:       25,
				Expand:     25,
				Player:     5,
				Catch:      20,
			},
			Durations: CapsuleDurations{
				Disruption: 900,
				Slow:       600,
				Expand:     900,
				Catch:      600,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressScore,
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game mode, or nil
// for unknown modes.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arkanoid", "arkanoid_endless":
		return defaultArkanoidYAML
	default:
		return nil
	}
}
