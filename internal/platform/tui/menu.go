package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// menuEntryKind says what a main menu line does.
type menuEntryKind int

const (
	entryGame menuEntryKind = iota
	entryScores
	entryQuit
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // best recorded score, 0 if none
}

type menuEntry struct {
	kind menuEntryKind
	item MenuItem
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	entries        []menuEntry
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // Set by Tab or the scores entry
}

// NewMenuModel creates the main menu. Best scores are read from store when
// it is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var entries []menuEntry
	for _, g := range registry.List() {
		// Variants are reached through the mode selector
		if g.Variant {
			continue
		}
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.Best = best
			}
		}
		entries = append(entries, menuEntry{kind: entryGame, item: item})
	}
	entries = append(entries,
		menuEntry{kind: entryScores, item: MenuItem{Title: "High Scores"}},
		menuEntry{kind: entryQuit, item: MenuItem{Title: "Quit"}},
	)

	return MenuModel{
		entries:   entries,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.entries)-1)

	case MenuActionSelect:
		switch e := m.entries[m.cursor]; e.kind {
		case entryGame:
			item := e.item
			m.selected = &item
		case entryScores:
			m.openScoreboard = true
		case entryQuit:
			m.quitting = true
		}
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("A R K A N O I D"), m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		line := "  " + e.item.Title
		if i == m.cursor {
			line = menuCursor.Render("> ") + e.item.Title
		}
		if e.kind == entryGame && e.item.Best > 0 {
			line += menuDimStyle.Render(fmt.Sprintf("  best %d", e.item.Best))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width. Escape sequences take no room.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
