package tui

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func sessionKey(t *testing.T, m SessionModel, msg tea.KeyMsg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionFlow(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewSessionModel(nil, cfg, "tester")

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = sessionKey(t, m, enter)
	if m.screen != screenModeSelect {
		t.Fatalf("screen = %v, want mode select", m.screen)
	}

	m = sessionKey(t, m, esc)
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu after back", m.screen)
	}

	m = sessionKey(t, m, enter)
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyDown}) // endless
	m = sessionKey(t, m, enter)
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if got := m.gameModel.game.ID(); got != "arkanoid_endless" {
		t.Errorf("game = %q, want arkanoid_endless", got)
	}
	if m.quitting {
		t.Error("session quit while switching screens")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), "tester")

	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, want scoreboard", m.screen)
	}
	m = sessionKey(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Errorf("screen = %v quitting = %v, want menu", m.screen, m.quitting)
	}

	m = sessionKey(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q should end the session")
	}
}

func TestSSHServerServeStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewSSHServer(SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: filepath.Join(dir, "keys", "host_key"),
		DBPath:      filepath.Join(dir, "scores.db"),
		IdleTimeout: time.Minute,
		Logger:      log.New(io.Discard),
	})
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.config.TickRate != core.DefaultTickRate {
		t.Errorf("TickRate = %d, want the default", srv.config.TickRate)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d", srv.ActiveSessions())
	}
}
