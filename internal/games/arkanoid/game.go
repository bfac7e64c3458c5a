package arkanoid

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar      = '='
	BallChar        = '●'
	BrickChar       = '█'
	BrickEdgeChar   = '▌'
	HardBrickChar   = '▓'
	BorderVert      = '│'
	BorderHoriz     = '─'
	BorderTL        = '┌'
	BorderTR        = '┐'
	CellsPerUnit    = 2 // screen columns per zone unit
	hudRows         = 1
	zoneBorderWidth = 1
)

var brickColors = [colorCount]core.Color{
	ColorWhite:   core.ColorBrightWhite,
	ColorOrange:  core.ColorOrange,
	ColorCyan:    core.ColorCyan,
	ColorGreen:   core.ColorGreen,
	ColorRed:     core.ColorRed,
	ColorBlue:    core.ColorBlue,
	ColorMagenta: core.ColorMagenta,
	ColorYellow:  core.ColorYellow,
	ColorSilver:  core.ColorGray,
}

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Cycle levels until game over
)

var (
	// configPath stores the custom config path set via CLI
	configPath string
	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset
	// levelsDir replaces the built-in levels when set
	levelsDir string
	// startLevel is the level a new session begins on
	startLevel = 1
	logger     = log.New(io.Discard)
	eventHook  func(Event)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, _ := config.ParsePreset(preset)
	difficultyPreset = p
}

// SetLevelsDir loads levels from dir instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetStartLevel sets the first level of new sessions.
func SetStartLevel(level int) {
	startLevel = max(level, 1)
}

// SetLogger sets the logger handed to new controllers.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetEventHook registers fn to receive the events of every new session.
// It is used by collaborators such as the sound buzzer.
func SetEventHook(fn func(Event)) {
	eventHook = fn
}

// LoadLevels returns the level set new sessions use.
func LoadLevels() (LevelSet, error) {
	if levelsDir != "" {
		return LoadLevelDir(levelsDir)
	}
	return BuiltinLevels()
}

// Game adapts the Controller to the arcade platform: it maps input frames
// to commands, chains levels and renders the zone into a screen buffer.
type Game struct {
	mode       GameMode
	ctrl       *Controller
	startLevel int // overrides the package start level when set

	runtime    core.RuntimeConfig
	cfg        config.ArkanoidConfig
	levelDelay int // ticks left before the next level starts
	won        bool
	loadErr    error

	// Layout (computed from screen size)
	originX        int // screen column of zone x = 0
	originY        int // screen row of zone y = 0
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Arkanoid game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Arkanoid game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "arkanoid_endless"
	}
	return "arkanoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Arkanoid (Endless)"
	}
	return "Arkanoid"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime.Normalize()
	g.ctrl = nil
	g.loadErr = nil
	g.won = false
	g.levelDelay = 0

	// Load game config
	cfg, err := config.LoadArkanoid(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultArkanoidConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyArkanoidPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.calculateLayout()

	levels, err := LoadLevels()
	if err != nil {
		g.loadErr = err
		return
	}

	ccfg := ControllerConfigFrom(cfg)
	ccfg.Seed = runtime.Seed
	ccfg.Endless = g.mode == ModeEndless
	ccfg.Logger = logger

	ctrl, err := NewController(ccfg, levels)
	if err != nil {
		g.loadErr = err
		return
	}
	ctrl.Subscribe(g.onEvent)
	if eventHook != nil {
		ctrl.Subscribe(eventHook)
	}

	level := startLevel
	if g.startLevel > 0 {
		level = g.startLevel
	}
	if level > len(levels) && g.mode == ModeCampaign {
		level = 1
	}
	if err := ctrl.Start(level); err != nil {
		g.loadErr = err
		return
	}
	g.ctrl = ctrl
}

// StartAt makes this instance begin on level instead of the level set
// with SetStartLevel. It takes effect on the next Reset.
func (g *Game) StartAt(level int) {
	g.startLevel = max(level, 1)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.calculateLayout()
}

// calculateLayout centers the zone horizontally below the HUD.
func (g *Game) calculateLayout() {
	zoneW := g.cfg.Zone.Width*CellsPerUnit + 2*zoneBorderWidth
	g.minScreenW = zoneW
	g.minScreenH = hudRows + zoneBorderWidth + g.cfg.Zone.Height
	g.screenTooSmall = g.runtime.ScreenW < g.minScreenW || g.runtime.ScreenH < g.minScreenH

	g.originX = (g.runtime.ScreenW-zoneW)/2 + zoneBorderWidth
	g.originY = hudRows + zoneBorderWidth
}

func (g *Game) onEvent(e Event) {
	if e.Type == EventEndOfLevel {
		g.levelDelay = max(g.cfg.Gameplay.LevelDelayTicks, 1)
	}
}

// Controller returns the session controller, or nil if loading failed.
func (g *Game) Controller() *Controller { return g.ctrl }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.finished() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.ctrl.Pause()
	}

	if g.ctrl.State() == StateLevelComplete && !g.won {
		g.advanceLevel()
		return core.StepResult{State: g.State()}
	}

	var cmd Command
	if in.Has(core.ActionLeft) {
		cmd |= CmdLeft
	}
	if in.Has(core.ActionRight) {
		cmd |= CmdRight
	}
	if in.Has(core.ActionLaunch) {
		cmd |= CmdLaunch
	}
	if in.Has(core.ActionCheat) {
		cmd |= CmdToggleCheat
	}
	g.ctrl.SetInput(cmd)
	g.ctrl.Update()

	return core.StepResult{State: g.State()}
}

// advanceLevel counts down the level delay and starts the next level.
// A campaign ends after the last level.
func (g *Game) advanceLevel() {
	if g.levelDelay > 0 {
		g.levelDelay--
		return
	}

	next := g.ctrl.Level() + 1
	if g.mode == ModeCampaign && next > len(g.ctrl.Levels()) {
		g.won = true
		return
	}
	if err := g.ctrl.Start(next); err != nil {
		logger.Error("starting level", "level", next, "err", err)
		g.loadErr = err
	}
}

func (g *Game) finished() bool {
	return g.won || g.ctrl.State() == StateGameOver
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil && g.ctrl == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Could not load levels")
		dst.DrawTextCentered(dst.Height()/2+1, truncate(g.loadErr.Error(), dst.Width()-2))
		return
	}

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderWalls(dst)
	g.renderBricks(dst)
	g.renderCapsules(dst)
	g.renderPaddle(dst)
	g.renderBalls(dst)
	g.renderOverlay(dst)
}

// cell converts zone coordinates to a screen cell.
func (g *Game) cell(x, y float64) (int, int) {
	return g.originX + int(math.Floor(x*CellsPerUnit)), g.originY + int(math.Floor(y))
}

// renderHUD draws the score, lives, effects and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	c := g.ctrl

	scoreText := fmt.Sprintf("Score: %d", c.Score())
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", c.Lives())
	if effects := g.buildEffectsString(); effects != "" {
		livesText += "  " + effects
	}
	if c.Cheat() {
		livesText += "  CHEAT"
	}
	dst.DrawTextCentered(0, livesText)

	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", c.Level())
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", c.Level(), len(c.Levels()))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// buildEffectsString creates a compact effects display.
func (g *Game) buildEffectsString() string {
	effects := g.ctrl.Effects()
	if len(effects) == 0 {
		return ""
	}

	parts := make([]string, 0, len(effects))
	tickRate := max(g.runtime.TickRate, 1)
	for _, e := range effects {
		secs := e.TicksRemaining(g.ctrl.Tick()) / tickRate
		parts = append(parts, fmt.Sprintf("%s(%d)", e.Type, secs))
	}
	return strings.Join(parts, " ")
}

// renderWalls draws the zone frame. The bottom stays open.
func (g *Game) renderWalls(dst *core.Screen) {
	zone := g.ctrl.Zone()
	left := g.originX - 1
	right := g.originX + int(zone.Width)*CellsPerUnit
	top := g.originY - 1

	dst.Set(left, top, BorderTL)
	dst.Set(right, top, BorderTR)
	dst.DrawHLine(left+1, top, right-left-1, BorderHoriz)
	dst.DrawVLine(left, g.originY, int(zone.Height), BorderVert)
	dst.DrawVLine(right, g.originY, int(zone.Height), BorderVert)
}

// renderBricks draws the live bricks in their colors.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.ctrl.Bricks() {
		r := b.Bounds()
		x, y := g.cell(r.Left(), r.Top())
		w := int(r.Width) * CellsPerUnit

		glyph := BrickChar
		if b.HitsLeft() > 1 {
			glyph = HardBrickChar
		}
		color := brickColors[b.Color()]
		for dx := range w - 1 {
			dst.SetColored(x+dx, y, glyph, color)
		}
		dst.SetColored(x+w-1, y, BrickEdgeChar, color)
	}
}

// renderCapsules draws falling power-ups.
func (g *Game) renderCapsules(dst *core.Screen) {
	for _, c := range g.ctrl.Capsules() {
		center := c.Bounds().Center()
		x, y := g.cell(center.X, center.Y)
		dst.SetColored(x, y, c.Type.Glyph(), core.ColorBrightCyan)
	}
}

// renderPaddle draws the Vaus.
func (g *Game) renderPaddle(dst *core.Screen) {
	v := g.ctrl.Vaus()
	r := v.Bounds()
	x, y := g.cell(r.Left(), r.Top())
	x2, _ := g.cell(r.Right(), r.Top())
	for px := x; px < x2; px++ {
		dst.SetColored(px, y, PaddleChar, core.ColorBrightWhite)
	}
}

// renderBalls draws all visible balls.
func (g *Game) renderBalls(dst *core.Screen) {
	for _, b := range g.ctrl.Balls() {
		if b.Hidden() {
			continue
		}
		c := b.Center()
		x, y := g.cell(c.X, c.Y)
		dst.SetColored(x, y, BallChar, core.ColorBrightYellow)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	c := g.ctrl
	switch {
	case g.won:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", c.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	case c.State() == StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", c.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
	case c.State() == StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case c.State() == StateLevelComplete:
		g.drawCenteredBox(dst, fmt.Sprintf("LEVEL %d CLEAR", c.Level()), "Get ready...")
	case c.State() == StateBallLost:
		dst.DrawTextCentered(dst.Height()-1, "Get ready...")
	case c.Held():
		dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{GameOver: g.loadErr != nil}
	}
	return core.GameState{
		Score:    g.ctrl.Score(),
		Level:    g.ctrl.Level(),
		GameOver: g.finished(),
		Paused:   g.ctrl.Paused(),
		Cheat:    g.ctrl.CheatUsed(),
	}
}

func init() {
	registry.Register(registry.GameInfo{ID: "arkanoid", Title: "Arkanoid"}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{ID: "arkanoid_endless", Title: "Arkanoid (Endless)", Variant: true, Order: 1},
		func() registry.Game { return NewEndless() })
}
