package arkanoid

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/entity"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// ErrCannotStart is returned by Start outside the Idle and LevelComplete states.
var ErrCannotStart = errors.New("arkanoid: a level is in progress")

// MaxLives caps the lives a Player capsule can grant.
const MaxLives = 9

// launchDirection is the serve direction, slightly right of straight up.
var launchDirection = geom.Vec(0.25, -1).Normalized()

// ControllerConfig holds the rules of a session.
type ControllerConfig struct {
	Zone geom.Rect

	Lives         int
	CooldownTicks int // ticks spent in BallLost before the next serve

	BallSpeed     float64 // units per tick on level 1
	MaxBallSpeed  float64
	SpeedPerLevel float64 // fraction of BallSpeed added per level
	MaxContacts   int

	PaddleWidth    float64
	PaddleSpeed    float64
	MaxBounceAngle float64 // degrees from vertical

	// Endless accepts level numbers past the end of the level set and
	// cycles through it, keeping the speed-up of the real level number.
	Endless bool

	Seed            int64
	PowerUpsEnabled bool
	PowerUps        PowerUpConfig

	// Difficulty scales ball speed with score. Optional.
	Difficulty *config.DifficultyManager
	// Logger receives state transitions. Optional.
	Logger *log.Logger
}

// DefaultControllerConfig returns the rules for the default 26x22 zone.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfigFrom(config.DefaultArkanoidConfig())
}

// ControllerConfigFrom converts a loaded game configuration.
func ControllerConfigFrom(cfg config.ArkanoidConfig) ControllerConfig {
	pu := cfg.PowerUps
	return ControllerConfig{
		Zone:            geom.NewRect(0, 0, float64(cfg.Zone.Width), float64(cfg.Zone.Height)),
		Lives:           cfg.Gameplay.Lives,
		CooldownTicks:   cfg.Gameplay.CooldownTicks,
		BallSpeed:       cfg.Physics.BallSpeed,
		MaxBallSpeed:    cfg.Physics.MaxBallSpeed,
		SpeedPerLevel:   cfg.Physics.SpeedPerLevel,
		MaxContacts:     cfg.Physics.MaxContacts,
		PaddleWidth:     cfg.Paddle.Width,
		PaddleSpeed:     cfg.Paddle.Speed,
		MaxBounceAngle:  cfg.Paddle.MaxBounceAngle,
		PowerUpsEnabled: pu.Enabled,
		PowerUps: PowerUpConfig{
			SpawnChance:      pu.SpawnChance,
			WeightDisruption: pu.Weights.Disruption,
			WeightSlow:       pu.Weights.Slow,
			WeightExpand:     pu.Weights.Expand,
			WeightPlayer:     pu.Weights.Player,
			WeightCatch:      pu.Weights.Catch,
			DurationSplit:    pu.Durations.Disruption,
			DurationSlow:     pu.Durations.Slow,
			DurationExpand:   pu.Durations.Expand,
			DurationCatch:    pu.Durations.Catch,
			FallSpeed:        pu.FallSpeed,
			ExpandWidth:      pu.ExpandWidth,
			SlowFactor:       pu.SlowFactor,
		},
		Difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func (cfg ControllerConfig) validate() error {
	switch {
	case cfg.Zone.Width <= 0 || cfg.Zone.Height <= 0:
		return fmt.Errorf("zone %vx%v is empty", cfg.Zone.Width, cfg.Zone.Height)
	case cfg.Lives <= 0:
		return fmt.Errorf("lives must be positive, got %d", cfg.Lives)
	case cfg.BallSpeed <= 0:
		return fmt.Errorf("ball speed must be positive, got %v", cfg.BallSpeed)
	case cfg.PaddleWidth <= 0 || cfg.PaddleWidth > cfg.Zone.Width:
		return fmt.Errorf("paddle width %v does not fit the zone", cfg.PaddleWidth)
	}
	return nil
}

// Controller owns the zone, bricks, balls and paddle of a session and
// drives them through the game states one tick at a time.
type Controller struct {
	cfg    ControllerConfig
	levels LevelSet
	log    *log.Logger

	engine   *physics.Engine
	walls    []*Wall
	floor    *Wall
	bricks   *Bricks
	vaus     *Vaus
	balls    *Balls
	powerUps *PowerUpManager

	state        State
	resume       State // state to return to when unpausing
	inputEnabled bool
	input        Command
	cooldown     int
	held         bool    // the first ball rests on the Vaus
	holdOffset   float64 // held ball x relative to the Vaus
	cheat        bool
	cheatUsed    bool

	level      int
	score      int
	lives      int
	tick       int
	levelSpeed float64

	colliders []physics.Collider
	events    entity.Signal[Event]
}

// NewController validates levels and builds an idle controller.
// Level data is checked up front so Start never fails on a malformed level.
func NewController(cfg ControllerConfig, levels LevelSet) (*Controller, error) {
	if err := levels.Validate(); err != nil {
		return nil, fmt.Errorf("invalid levels: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.MaxBallSpeed <= 0 {
		cfg.MaxBallSpeed = cfg.BallSpeed * 2
	}
	if cfg.PowerUps.SlowFactor <= 0 {
		cfg.PowerUps.SlowFactor = 1
	}

	c := &Controller{
		cfg:      cfg,
		levels:   levels,
		log:      cfg.Logger,
		engine:   physics.NewEngine(cfg.Zone),
		bricks:   NewBricks(),
		vaus:     NewVaus(cfg.Zone, cfg.PaddleWidth, cfg.PaddleSpeed, cfg.MaxBounceAngle),
		balls:    NewBalls(),
		powerUps: NewPowerUpManager(cfg.Seed, cfg.PowerUps),
		state:    StateIdle,
		lives:    cfg.Lives,
	}
	if c.log == nil {
		c.log = log.New(io.Discard)
	}
	if err := levels.Fits(c.playfield()); err != nil {
		return nil, fmt.Errorf("invalid levels: %w", err)
	}
	if cfg.MaxContacts > 0 {
		c.engine.MaxContacts = cfg.MaxContacts
	}

	c.balls.Hit.Subscribe(c.onHit)
	c.balls.Empty.Subscribe(func(struct{}) { c.onBallsEmpty() })
	c.bricks.Destroyed.Subscribe(func(*Brick) { c.onBrickDestroyed() })
	return c, nil
}

// playfield is the part of the zone bricks may occupy: everything above
// the room a served ball needs on top of the Vaus.
func (c *Controller) playfield() geom.Rect {
	z := c.cfg.Zone
	bottom := c.vaus.Bounds().Top() - 2*BallRadius
	return geom.NewRect(z.Left(), z.Top(), z.Width, bottom-z.Top())
}

// Subscribe registers fn for every controller event.
func (c *Controller) Subscribe(fn func(Event)) entity.Subscription {
	return c.events.Subscribe(fn)
}

// Unsubscribe removes a handler registered with Subscribe.
func (c *Controller) Unsubscribe(id entity.Subscription) {
	c.events.Unsubscribe(id)
}

func (c *Controller) emit(e Event) {
	e.Score, e.Lives, e.Level = c.score, c.lives, c.level
	c.events.Emit(e)
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	c.log.Debug("state change", "from", c.state, "to", s, "level", c.level, "score", c.score, "lives", c.lives)
	c.state = s
}

// Start loads level (counted from 1) and serves a ball. It is only valid
// from Idle or LevelComplete. Nothing changes if it returns an error.
func (c *Controller) Start(level int) error {
	if c.state != StateIdle && c.state != StateLevelComplete {
		return fmt.Errorf("%w: state %s", ErrCannotStart, c.state)
	}

	n := level
	if c.cfg.Endless && level > len(c.levels) {
		n = (level-1)%len(c.levels) + 1
	}
	data, err := c.levels.Get(n)
	if err != nil {
		return err
	}

	bricks := make([]*Brick, 0, len(data.Bricks))
	for _, d := range data.Bricks {
		d.Level += level - n
		bricks = append(bricks, NewBrick(d))
	}

	c.level = level
	c.walls = NewWalls(c.cfg.Zone)
	c.floor = newFloor(c.cfg.Zone)
	c.bricks.Reset(bricks)
	c.vaus.Reset()
	c.powerUps.Clear()
	c.levelSpeed = min(c.cfg.BallSpeed*(1+c.cfg.SpeedPerLevel*float64(level-1)), c.cfg.MaxBallSpeed)
	c.serve()
	c.input = 0
	c.inputEnabled = true
	c.setState(StatePlaying)
	c.emit(Event{Type: EventLevelStart})
	return nil
}

// Restart resets score and lives and starts level 1.
func (c *Controller) Restart() error {
	c.score = 0
	c.lives = c.cfg.Lives
	c.tick = 0
	c.cheat = false
	c.cheatUsed = false
	c.powerUps.Reset(c.cfg.Seed)
	c.setState(StateIdle)
	return c.Start(1)
}

// serve puts a single resting ball on the Vaus.
func (c *Controller) serve() {
	size := geom.Vec(2*BallRadius, 2*BallRadius)
	b := NewBall(BallArgs{Position: c.vaus.SpawnPoint(size)})
	c.balls.Reset([]*Ball{b})
	c.held = true
	c.holdOffset = b.Position().X - c.vaus.Position().X
}

// SetInput queues the commands for the next tick. Commands are dropped
// while input is detached.
func (c *Controller) SetInput(cmd Command) {
	if !c.inputEnabled {
		return
	}
	c.input |= cmd
}

// InputEnabled reports whether SetInput currently has any effect.
func (c *Controller) InputEnabled() bool { return c.inputEnabled }

// Pause toggles between Playing (or the ball-out cooldown) and Paused.
// Other states ignore it.
func (c *Controller) Pause() {
	switch c.state {
	case StatePlaying, StateBallLost:
		c.resume = c.state
		c.setState(StatePaused)
		c.emit(Event{Type: EventPause, Paused: true})
	case StatePaused:
		c.setState(c.resume)
		c.emit(Event{Type: EventPause, Paused: false})
	}
}

// Update advances the session by one tick.
func (c *Controller) Update() {
	switch c.state {
	case StateBallLost:
		c.input = 0
		c.cooldown--
		if c.cooldown <= 0 {
			c.resumeAfterBallOut()
		}
		return
	case StatePlaying:
	default:
		c.input = 0
		return
	}

	c.tick++
	cmd := c.input
	c.input = 0

	if cmd.Has(CmdToggleCheat) {
		c.SetCheat(!c.cheat)
	}
	c.expireEffects()

	dir := 0
	if cmd.Has(CmdLeft) {
		dir--
	}
	if cmd.Has(CmdRight) {
		dir++
	}
	c.vaus.Move(dir)
	c.updateCapsules()

	if c.held {
		c.followVaus()
		if !cmd.Has(CmdLaunch) {
			return
		}
		c.launch()
	}

	c.balls.SetSpeed(c.ballSpeed())
	c.balls.Update(c.engine, c.currentColliders)
}

func (c *Controller) resumeAfterBallOut() {
	if c.state != StateBallLost {
		return
	}
	c.serve()
	c.input = 0
	c.inputEnabled = true
	c.setState(StatePlaying)
}

// ballSpeed is the level speed raised by difficulty, capped, then slowed
// by the Slow effect.
func (c *Controller) ballSpeed() float64 {
	speed := c.levelSpeed
	if c.cfg.Difficulty != nil {
		speed = c.cfg.Difficulty.Speed(speed, c.score, c.tick)
	}
	speed = min(speed, c.cfg.MaxBallSpeed)
	if c.powerUps.HasEffect(EffectSlow) {
		speed *= c.cfg.PowerUps.SlowFactor
	}
	return speed
}

// currentColliders lists walls, the cheat floor, the Vaus and the live
// bricks, in that order. The returned slice is reused between calls.
func (c *Controller) currentColliders() []physics.Collider {
	cs := c.colliders[:0]
	for _, w := range c.walls {
		cs = append(cs, w)
	}
	if c.cheat {
		cs = append(cs, c.floor)
	}
	cs = append(cs, c.vaus)
	c.bricks.Each(func(b *Brick) bool {
		cs = append(cs, b)
		return true
	})
	c.colliders = cs
	return cs
}

func (c *Controller) followVaus() {
	b, ok := c.balls.First()
	if !ok {
		c.held = false
		return
	}
	size := b.Size()
	x := c.vaus.Position().X + c.holdOffset
	x = max(c.vaus.Bounds().Left()-size.X/2, min(x, c.vaus.Bounds().Right()-size.X/2))
	b.SetPosition(geom.Vec(x, c.vaus.Bounds().Top()-size.Y))
	b.SetVelocity(geom.Zero)
}

func (c *Controller) launch() {
	b, ok := c.balls.First()
	c.held = false
	if !ok {
		return
	}
	b.SetVelocity(launchDirection.Scale(c.ballSpeed()))
}

func (c *Controller) onHit(h BallHit) {
	if c.state != StatePlaying {
		return
	}
	c.emit(Event{Type: EventHit, Kind: h.Contact.Collider.Kind()})

	switch col := h.Contact.Collider.(type) {
	case *Brick:
		c.hitBrick(col)
	case *Vaus:
		if c.powerUps.HasEffect(EffectCatch) && c.balls.Size() == 1 {
			c.catch(h.Ball)
		}
	}
}

// hitBrick damages b. Bricks destroyed earlier in the tick are ignored.
func (c *Controller) hitBrick(b *Brick) {
	if !c.bricks.Contains(b) {
		return
	}
	if !b.Hit() {
		return
	}

	points := b.Points()
	c.score += points
	c.emit(Event{Type: EventUpdateScore, Points: points})

	if c.cfg.PowerUpsEnabled && c.bricks.Size() > 1 {
		if capsule, ok := c.powerUps.TrySpawn(b.Bounds().Center()); ok {
			c.log.Debug("capsule dropped", "type", capsule.Type)
		}
	}
	c.bricks.Remove(b)
}

func (c *Controller) onBrickDestroyed() {
	if c.bricks.Size() != 0 || c.state != StatePlaying {
		return
	}
	c.powerUps.Clear()
	c.held = false
	c.inputEnabled = false
	c.input = 0
	c.setState(StateLevelComplete)
	c.emit(Event{Type: EventEndOfLevel})
}

func (c *Controller) onBallsEmpty() {
	if c.state != StatePlaying {
		return
	}
	if c.lives <= 0 {
		c.log.Error("ball lost with no lives left", "level", c.level)
		return
	}

	c.lives--
	c.powerUps.Clear()
	c.vaus.SetWidth(c.vaus.BaseWidth())
	c.held = false
	c.inputEnabled = false
	c.input = 0

	if c.lives > 0 {
		c.cooldown = c.cfg.CooldownTicks
		c.setState(StateBallLost)
		c.emit(Event{Type: EventBallOut})
		return
	}
	c.setState(StateGameOver)
	c.emit(Event{Type: EventGameOver})
}

// catch stops b on top of the Vaus until the next launch.
func (c *Controller) catch(b *Ball) {
	c.held = true
	c.holdOffset = b.Position().X - c.vaus.Position().X
	c.followVaus()
}

func (c *Controller) updateCapsules() {
	c.powerUps.Update(c.cfg.Zone)
	t, ok := c.powerUps.Collect(c.vaus.Bounds())
	if !ok {
		return
	}
	c.applyCapsule(t)
}

// applyCapsule cancels the running effects and starts the one granted by t.
func (c *Controller) applyCapsule(t CapsuleType) {
	for _, e := range c.powerUps.Effects {
		c.endEffect(e.Type)
	}
	c.powerUps.Effects = c.powerUps.Effects[:0]

	pu := c.cfg.PowerUps
	switch t {
	case CapsuleDisruption:
		if c.held {
			c.launch()
		}
		c.balls.Split()
		c.powerUps.AddEffect(EffectSplit, c.tick, pu.DurationSplit)
	case CapsuleSlow:
		c.powerUps.AddEffect(EffectSlow, c.tick, pu.DurationSlow)
	case CapsuleExpand:
		c.vaus.SetWidth(c.vaus.BaseWidth() + pu.ExpandWidth)
		c.powerUps.AddEffect(EffectExpand, c.tick, pu.DurationExpand)
	case CapsulePlayer:
		c.lives = min(c.lives+1, MaxLives)
	case CapsuleCatch:
		c.powerUps.AddEffect(EffectCatch, c.tick, pu.DurationCatch)
	}
	c.log.Debug("capsule collected", "type", t)
	c.emit(Event{Type: EventPowerUp, Capsule: t})
}

func (c *Controller) expireEffects() {
	for _, t := range c.powerUps.ExpireEffects(c.tick) {
		c.endEffect(t)
	}
}

// endEffect undoes the lasting part of an effect.
func (c *Controller) endEffect(t EffectType) {
	switch t {
	case EffectSplit:
		c.balls.Unsplit()
	case EffectExpand:
		c.vaus.SetWidth(c.vaus.BaseWidth())
	}
}

// SetCheat turns cheat mode on or off. While on, a floor wall keeps
// balls in play. A session that used cheat mode stays marked.
func (c *Controller) SetCheat(on bool) {
	if on == c.cheat {
		return
	}
	c.cheat = on
	if on {
		c.cheatUsed = true
	}
	c.log.Info("cheat mode", "enabled", on)
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Paused reports whether the session is user-paused.
func (c *Controller) Paused() bool { return c.state == StatePaused }

// Score returns the current score.
func (c *Controller) Score() int { return c.score }

// Lives returns the remaining lives.
func (c *Controller) Lives() int { return c.lives }

// Level returns the current level number.
func (c *Controller) Level() int { return c.level }

// Levels returns the level set.
func (c *Controller) Levels() LevelSet { return c.levels }

// Tick returns the number of playing ticks so far.
func (c *Controller) Tick() int { return c.tick }

// Cooldown returns the ticks left before the next serve in BallLost.
func (c *Controller) Cooldown() int { return c.cooldown }

// Held reports whether the ball rests on the Vaus waiting for a launch.
func (c *Controller) Held() bool { return c.held }

// Cheat reports whether cheat mode is on.
func (c *Controller) Cheat() bool { return c.cheat }

// CheatUsed reports whether cheat mode was on at any time since Restart.
func (c *Controller) CheatUsed() bool { return c.cheatUsed }

// Zone returns the playfield rectangle.
func (c *Controller) Zone() geom.Rect { return c.cfg.Zone }

// Walls returns the zone walls, including the floor in cheat mode.
func (c *Controller) Walls() []*Wall {
	if c.cheat {
		return append(append([]*Wall(nil), c.walls...), c.floor)
	}
	return c.walls
}

// Bricks returns the live bricks.
func (c *Controller) Bricks() []*Brick { return c.bricks.Items() }

// BrickCount returns the number of live bricks.
func (c *Controller) BrickCount() int { return c.bricks.Size() }

// Balls returns the live balls.
func (c *Controller) Balls() []*Ball { return c.balls.Items() }

// Vaus returns the paddle.
func (c *Controller) Vaus() *Vaus { return c.vaus }

// Capsules returns the falling capsules.
func (c *Controller) Capsules() []*Capsule { return c.powerUps.Capsules }

// Effects returns the active power-up effects.
func (c *Controller) Effects() []*Effect { return c.powerUps.Effects }
