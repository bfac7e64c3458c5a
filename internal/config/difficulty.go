package config

import "github.com/vovakirdan/tui-arkanoid/internal/geom"

// Progression types.
const (
	ProgressScore = "score"
	ProgressTime  = "time"
	ProgressNone  = "none"
)

// DifficultyManager ramps the ball speed as the session goes on.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = geom.Clamp(cfg.InitialLevel, 0, 1)
	return &DifficultyManager{cfg: cfg}
}

// Progressive reports whether the level moves away from the initial level.
func (d *DifficultyManager) Progressive() bool {
	switch d.cfg.Progression.Type {
	case ProgressScore, ProgressTime:
		return d.cfg.Enabled
	default:
		return false
	}
}

// Level returns the difficulty in [0, 1] for the given score and tick count.
// It moves linearly from the initial level to 1 as the score (or tick
// count) approaches progression.max_at.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.Progressive() {
		return d.cfg.InitialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	progress := float64(score) / maxAt
	if d.cfg.Progression.Type == ProgressTime {
		progress = float64(ticks) / maxAt
	}
	progress = geom.Clamp(progress, 0, 1)

	return d.cfg.InitialLevel + progress*(1-d.cfg.InitialLevel)
}

// Speed scales baseSpeed by up to 1 + scaling.speed_multiplier at full
// difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}
