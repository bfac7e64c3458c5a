package core

// DefaultTickRate is the simulation rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform tells a game when it starts a session.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; equal seeds replay equal sessions
}

// DefaultConfig returns an 80x24 screen at the default tick rate.
// A zero seed tells the platform to pick one from the clock.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Normalize replaces a non-positive tick rate or screen size with the
// defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	d := DefaultConfig()
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		c.ScreenW, c.ScreenH = d.ScreenW, d.ScreenH
	}
	return c
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	Level    int // counted from 1
	GameOver bool
	Paused   bool
	Cheat    bool // cheats were used; the score is not recorded
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
