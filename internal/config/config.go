// Package config provides YAML-based game configuration loading and
// difficulty management for Arkanoid.
package config

// ArkanoidConfig contains all configuration for the Arkanoid game.
type ArkanoidConfig struct {
	Zone       ArkanoidZone     `yaml:"zone"`
	Physics    ArkanoidPhysics  `yaml:"physics"`
	Paddle     ArkanoidPaddle   `yaml:"paddle"`
	Gameplay   ArkanoidGameplay `yaml:"gameplay"`
	PowerUps   ArkanoidPowerUps `yaml:"powerups"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArkanoidZone is the playfield size in zone units. A brick is 2x1 units.
type ArkanoidZone struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ArkanoidPhysics defines ball physics. Speeds are in zone units per tick.
type ArkanoidPhysics struct {
	BallSpeed     float64 `yaml:"ball_speed"`
	MaxBallSpeed  float64 `yaml:"max_ball_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level"` // fraction of ball_speed added per level
	MaxContacts   int     `yaml:"max_contacts"`    // contacts resolved per ball per tick
}

// ArkanoidPaddle defines the Vaus.
type ArkanoidPaddle struct {
	Width          float64 `yaml:"width"`
	Speed          float64 `yaml:"speed"`
	MaxBounceAngle float64 `yaml:"max_bounce_angle"` // degrees from vertical
}

// ArkanoidGameplay defines session rules.
type ArkanoidGameplay struct {
	Lives           int `yaml:"lives"`
	CooldownTicks   int `yaml:"cooldown_ticks"`    // pause after a ball-out
	LevelDelayTicks int `yaml:"level_delay_ticks"` // pause before the next level starts
}

// ArkanoidPowerUps defines capsule drops and effect durations.
type ArkanoidPowerUps struct {
	Enabled     bool    `yaml:"enabled"`
	SpawnChance int     `yaml:"spawn_chance"` // percent per destroyed brick
	FallSpeed   float64 `yaml:"fall_speed"`
	ExpandWidth float64 `yaml:"expand_width"`
	SlowFactor  float64 `yaml:"slow_factor"`

	Weights   CapsuleWeights   `yaml:"weights"`
	Durations CapsuleDurations `yaml:"durations"`
}

// CapsuleWeights are relative drop weights per capsule type.
type CapsuleWeights struct {
	Disruption int `yaml:"disruption"`
	Slow       int `yaml:"slow"`
	Expand     int `yaml:"expand"`
	Player     int `yaml:"player"`
	Catch      int `yaml:"catch"`
}

// CapsuleDurations are effect lengths in ticks.
type CapsuleDurations struct {
	Disruption int `yaml:"disruption"`
	Slow       int `yaml:"slow"`
	Expand     int `yaml:"expand"`
	Catch      int `yaml:"catch"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset returns the preset named s, or false if there is none.
func ParsePreset(s string) (DifficultyPreset, bool) {
	for _, p := range Presets {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
