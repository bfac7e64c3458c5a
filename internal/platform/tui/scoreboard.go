package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

const (
	minWidthForStats = 76 // below this the stats panel moves under the table
	statsPanelWidth  = 22
	maxScores        = 100
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	tabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/right", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("left", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best scores of each mode with a stats panel.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	current   int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first mode.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) wide() bool { return m.width >= minWidthForStats }

func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 14
	if m.wide() {
		dateWidth = max(m.width-statsPanelWidth-40, 14)
	}
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 10},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: min(dateWidth, 20)},
	}

	rows := m.height - 10 // title, tabs, borders, help
	if !m.wide() {
		rows -= 3 // stats line
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(rows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the scores and stats of the current mode.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.current].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// switchMode moves the mode cursor by delta, wrapping around.
func (m *ScoreboardModel) switchMode(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.switchMode(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.switchMode(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render("HIGH SCORES")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	scores := boxStyle.Render(m.renderTable())
	if m.wide() {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, scores, "  ", m.renderStatsPanel()), m.width))
	} else {
		b.WriteString(centerText(scores, m.width))
		if line := m.statsLine(); line != "" {
			b.WriteString("\n")
			b.WriteString(centerText(mutedStyle.Render(line), m.width))
		}
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(g.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) renderTable() string {
	if len(m.scores) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No scores recorded yet.\nClear a few bricks to set one!")
	}
	return m.table.View()
}

func (m ScoreboardModel) renderStatsPanel() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Stats"))
	b.WriteString("\n\n")

	if m.stats == nil || m.stats.GamesCount == 0 {
		b.WriteString(mutedStyle.Render("No games yet"))
		return boxStyle.Width(statsPanelWidth).Render(b.String())
	}

	row := func(label string, value any) {
		fmt.Fprintf(&b, "%-11s %v\n", label, value)
	}
	row("Games", m.stats.GamesCount)
	row("Best", m.stats.HighScore)
	row("Average", fmt.Sprintf("%.0f", m.stats.AvgScore))
	row("Best level", m.stats.BestLevel)
	row("Total", m.stats.TotalScore)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Last played"))
	b.WriteString("\n")
	b.WriteString(m.stats.LastPlayed.Format("Jan 02 15:04"))
	return boxStyle.Width(statsPanelWidth).Render(b.String())
}

// statsLine summarizes the current mode, or returns "" without scores.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  |  Best: %d  |  Avg: %.0f  |  Best level: %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
