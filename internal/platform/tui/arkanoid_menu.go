package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

// ArkanoidMode represents the selected game mode.
type ArkanoidMode int

const (
	ArkanoidModeCampaign ArkanoidMode = iota
	ArkanoidModeEndless
)

// GameID returns the registry ID of the mode.
func (m ArkanoidMode) GameID() string {
	if m == ArkanoidModeEndless {
		return "arkanoid_endless"
	}
	return "arkanoid"
}

// ArkanoidSelection holds the user's selection from the Arkanoid menu.
type ArkanoidSelection struct {
	Mode  ArkanoidMode
	Level int // 0 = start from the beginning
}

// ArkanoidModeModel lets users choose game mode and starting level.
type ArkanoidModeModel struct {
	levels        []string // level names
	loadErr       error
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     ArkanoidSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewArkanoidModeModel creates a new Arkanoid mode selection model.
func NewArkanoidModeModel(width, height int) ArkanoidModeModel {
	m := ArkanoidModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}

	levels, err := arkanoid.LoadLevels()
	if err != nil {
		m.loadErr = err
		return m
	}
	for i, l := range levels {
		name := l.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		m.levels = append(m.levels, name)
	}
	return m
}

// Init initializes the model.
func (m ArkanoidModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ArkanoidModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ArkanoidModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m ArkanoidModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Campaign, Endless, Select Level
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			return m.choose(ArkanoidSelection{Mode: ArkanoidModeCampaign})
		case 1:
			return m.choose(ArkanoidSelection{Mode: ArkanoidModeEndless})
		case 2:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m ArkanoidModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.choose(ArkanoidSelection{
			Mode:  ArkanoidModeCampaign,
			Level: m.levelCursor + 1, // 1-indexed
		})
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m ArkanoidModeModel) choose(sel ArkanoidSelection) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = sel
	return m, tea.Quit
}

// View renders the mode/level selection.
func (m ArkanoidModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m ArkanoidModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("A R K A N O I D", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		fmt.Sprintf("Campaign (%d levels)", len(m.levels)),
		"Endless Mode",
		"Select Level...",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	if m.loadErr != nil {
		b.WriteString("\n")
		b.WriteString(centerText(truncateText("Levels: "+m.loadErr.Error(), m.width-2), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m ArkanoidModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, name := range m.levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, name)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m ArkanoidModeModel) Selected() *ArkanoidSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m ArkanoidModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m ArkanoidModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ArkanoidModeModel) WantsBack() bool {
	return m.back
}

// RunArkanoidModeSelector runs the mode selection and returns the selection.
// The selection is nil when the user backed out or quit.
func RunArkanoidModeSelector(cfg core.RuntimeConfig) (*ArkanoidSelection, core.RuntimeConfig, error) {
	model := NewArkanoidModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(ArkanoidModeModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}

func truncateText(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	return string(r[:n])
}
