// Package tui runs game modes in a terminal with Bubble Tea, locally or
// over SSH. It maps keys to game actions, paces the simulation and stores
// finished scores.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the simulation by one tick.
type TickMsg time.Time

// tickInterval returns the time between ticks, falling back to 60 per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
