package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// MaxSessions caps concurrent players. Zero means no limit.
	MaxSessions int

	// Logger receives server and session logs. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns the settings used by "arkanoid serve".
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/arkanoid.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultTickRate,
	}
}

// SSHServer serves arkanoid sessions over SSH with Wish. All sessions share
// one score database.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	logger   *log.Logger
	sessions atomic.Int32
}

// NewSSHServer creates a server. A database that cannot be opened is logged
// and the server runs without a leaderboard.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arkanoid-ssh",
		})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Middlewares run last to first: limit, then log, then the program.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
			srv.limitMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKeyPath defaults to ~/.arcade/host_key and creates the key's
// directory. Wish generates the key itself on first start.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "arkanoid needs an interactive terminal (try ssh -t)")
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.store, cfg, sshSession.User())
	model.logger = s.logger.With("user", sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"active", s.sessions.Load(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// limitMiddleware turns players away once MaxSessions are connected.
func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		n := s.sessions.Add(1)
		defer s.sessions.Add(-1)

		if s.config.MaxSessions > 0 && int(n) > s.config.MaxSessions {
			s.logger.Warn("session limit reached", "user", sshSession.User(), "limit", s.config.MaxSessions)
			wish.Fatalln(sshSession, "The arcade is full, try again later.")
			return
		}
		next(sshSession)
	}
}

// ActiveSessions returns the number of connected sessions.
func (s *SSHServer) ActiveSessions() int {
	return int(s.sessions.Load())
}

// ListenAndServe serves until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve accepts connections until ctx is done, then shuts down. A listen
// error is returned right away.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions, waits up to 10 seconds for running
// ones, and closes the score database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenModeSelect
	screenScoreboard
	screenGame
)

// SessionModel manages the full session flow: menu -> mode select -> game -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	username   string
	screen     sessionScreen
	menu       MenuModel
	modeSelect ArkanoidModeModel
	scoreboard ScoreboardModel
	gameModel  Model
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		store:    store,
		logger:   log.New(io.Discard),
		config:   cfg,
		username: username,
		menu:     NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenModeSelect:
		return m.updateModeSelect(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

// toMenu returns to a fresh game picker.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		m.config = m.menu.Config() // Get possibly updated config from resize
		if m.menu.Selected().GameID == arkanoidGameID {
			m.screen = screenModeSelect
			m.modeSelect = NewArkanoidModeModel(m.config.ScreenW, m.config.ScreenH)
			return m, m.modeSelect.Init()
		}
		return m.startGame(m.menu.Selected().GameID, 0)
	}

	return m, cmd
}

const arkanoidGameID = "arkanoid"

// updateModeSelect handles updates when choosing mode and level.
func (m SessionModel) updateModeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.modeSelect.Update(msg)
	if sel, ok := next.(ArkanoidModeModel); ok {
		m.modeSelect = sel
	}

	switch {
	case m.modeSelect.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.modeSelect.WantsBack():
		return m.toMenu()
	case m.modeSelect.Selected() != nil:
		sel := m.modeSelect.Selected()
		return m.startGame(sel.Mode.GameID(), sel.Level)
	}
	return m, cmd
}

// updateScoreboard handles updates when showing scores.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}
	return m, cmd
}

// startGame creates the game and switches to it. level > 0 picks the first level.
func (m SessionModel) startGame(gameID string, level int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		m.logger.Error("cannot create game", "game", gameID, "err", err)
		return m.toMenu()
	}
	if s, ok := game.(interface{ StartAt(int) }); ok && level > 0 {
		s.StartAt(level)
	}

	m.logger.Info("game started", "game", gameID, "level", max(level, 1))
	m.gameModel = NewModel(game, m.store, m.config).WithLogger(m.logger)
	m.screen = screenGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = gameModel
	}

	// Check if user quit game (back to menu)
	if m.gameModel.BackToMenu() {
		return m.toMenu()
	}

	// Check if user quit entirely
	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenModeSelect:
		return m.modeSelect.View()
	case screenScoreboard:
		return m.scoreboard.View()
	case screenGame:
		return m.gameModel.View()
	default:
		return m.menu.View()
	}
}
