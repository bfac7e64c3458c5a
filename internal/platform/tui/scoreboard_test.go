package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardModes(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{300, 900, 600} {
		if _, err := store.SaveScore("arkanoid", s, 2); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if m.modes[m.current].ID != "arkanoid" {
		t.Fatalf("first mode = %q", m.modes[m.current].ID)
	}
	if len(m.scores) != 3 || m.scores[0].Score != 900 {
		t.Fatalf("scores = %+v, want 3 sorted scores", m.scores)
	}
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Stats", "900", "Best level"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.modes[m.current].ID != "arkanoid_endless" || len(m.scores) != 0 {
		t.Errorf("after tab: mode %q with %d scores", m.modes[m.current].ID, len(m.scores))
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty mode should say so")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.modes[m.current].ID != "arkanoid" {
		t.Errorf("shift+tab should wrap back to arkanoid")
	}
}

func TestScoreboardNarrowAndBack(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveScore("arkanoid", 120, 1); err != nil {
		t.Fatal(err)
	}

	m := NewScoreboardModel(store, 60, 24)
	if !strings.Contains(m.View(), "Games: 1") {
		t.Error("narrow layout should show the stats line")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("esc should go back")
	}
}
