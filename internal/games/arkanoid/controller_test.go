package arkanoid

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

func testConfig() ControllerConfig {
	return ControllerConfig{
		Zone:           geom.NewRect(0, 0, 26, 22),
		Lives:          3,
		CooldownTicks:  5,
		BallSpeed:      3,
		MaxBallSpeed:   3,
		MaxContacts:    4,
		PaddleWidth:    4,
		PaddleSpeed:    0.5,
		MaxBounceAngle: 60,
		Seed:           1,
		PowerUps: PowerUpConfig{
			DurationSplit:  100,
			DurationSlow:   100,
			DurationExpand: 100,
			DurationCatch:  100,
			ExpandWidth:    2,
			SlowFactor:     0.5,
		},
	}
}

type recorder struct {
	events []Event
}

func (r *recorder) record(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t EventType) (Event, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return Event{}, false
}

// newStarted returns a controller playing level 1 of levels.
func newStarted(t *testing.T, cfg ControllerConfig, levels ...LevelData) (*Controller, *recorder) {
	t.Helper()
	c, err := NewController(cfg, levels)
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	rec := &recorder{}
	c.Subscribe(rec.record)
	if err := c.Start(1); err != nil {
		t.Fatalf("Start(1) error = %v", err)
	}
	return c, rec
}

// launch serves the held ball and runs one tick.
func launch(c *Controller) *Ball {
	c.SetInput(CmdLaunch)
	c.Update()
	b, _ := c.balls.First()
	return b
}

// place moves the first ball.
func place(c *Controller, x, y, vx, vy float64) *Ball {
	b, _ := c.balls.First()
	b.SetPosition(geom.Vec(x, y))
	b.SetVelocity(geom.Vec(vx, vy))
	return b
}

func TestStartLevel(t *testing.T) {
	c, rec := newStarted(t, testConfig(), testLevel(30))

	if c.BrickCount() != 30 {
		t.Errorf("BrickCount() = %d, want 30", c.BrickCount())
	}
	if len(c.Balls()) != 1 {
		t.Errorf("balls = %d, want 1", len(c.Balls()))
	}
	if c.Lives() != 3 || c.Score() != 0 || c.Level() != 1 {
		t.Errorf("lives, score, level = %d, %d, %d", c.Lives(), c.Score(), c.Level())
	}
	if c.State() != StatePlaying || !c.Held() || !c.InputEnabled() {
		t.Errorf("state = %v, held = %v, input = %v", c.State(), c.Held(), c.InputEnabled())
	}
	if rec.count(EventLevelStart) != 1 {
		t.Errorf("level-start raised %d times", rec.count(EventLevelStart))
	}

	b := c.Balls()[0]
	if !near(b.Bounds().Bottom(), c.Vaus().Bounds().Top()) {
		t.Errorf("ball bottom %v not resting on the Vaus top %v", b.Bounds().Bottom(), c.Vaus().Bounds().Top())
	}
}

func TestStartErrors(t *testing.T) {
	if _, err := NewController(testConfig(), LevelSet{{ID: "hollow"}}); !errors.Is(err, ErrNoBricks) {
		t.Errorf("NewController() with empty level error = %v, want ErrNoBricks", err)
	}
	if _, err := NewController(testConfig(), nil); !errors.Is(err, ErrNoLevels) {
		t.Errorf("NewController() without levels error = %v, want ErrNoLevels", err)
	}

	c, err := NewController(testConfig(), LevelSet{testLevel(3)})
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Start(2); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Start(2) error = %v, want ErrInvalidLevel", err)
	}
	if c.State() != StateIdle || c.BrickCount() != 0 || len(c.Balls()) != 0 {
		t.Errorf("failed Start changed state: %v, %d bricks", c.State(), c.BrickCount())
	}

	if err := c.Start(1); err != nil {
		t.Fatal(err)
	}
	if err := c.Start(1); !errors.Is(err, ErrCannotStart) {
		t.Errorf("Start() while playing error = %v, want ErrCannotStart", err)
	}
}

func TestNewControllerRejectsStrayBricks(t *testing.T) {
	tests := []struct {
		name string
		pos  Position
	}{
		{"outside the zone", Position{X: 40, Y: -5}},
		{"on the paddle row", Position{X: 10, Y: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := testLevel(3)
			level.Bricks = append(level.Bricks, BrickData{Position: tt.pos, Color: ColorWhite, Level: 1})
			if _, err := NewController(testConfig(), LevelSet{level}); !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("NewController() error = %v, want ErrInvalidLevel", err)
			}
		})
	}
}

func TestHeldBallFollowsVaus(t *testing.T) {
	c, _ := newStarted(t, testConfig(), testLevel(3))
	x0 := c.Vaus().Position().X

	c.SetInput(CmdRight)
	c.Update()

	if got := c.Vaus().Position().X; got != x0+0.5 {
		t.Errorf("Vaus x = %v, want %v", got, x0+0.5)
	}
	b := c.Balls()[0]
	if !near(b.Center().X, c.Vaus().Center().X) {
		t.Errorf("held ball x = %v, Vaus center = %v", b.Center().X, c.Vaus().Center().X)
	}
	if !b.Velocity().IsZero() {
		t.Errorf("held ball moving: %v", b.Velocity())
	}

	b = launch(c)
	if c.Held() {
		t.Fatal("ball still held after launch")
	}
	v := b.Velocity()
	if v.Y >= 0 || v.X <= 0 {
		t.Errorf("launch velocity = %v, want up and to the right", v)
	}
	if !near(v.Norm(), 3) {
		t.Errorf("launch speed = %v, want 3", v.Norm())
	}
}

func TestBrickHit(t *testing.T) {
	level := LevelData{ID: "hit", Bricks: []BrickData{
		{Position: Position{X: 5, Y: 4}, Color: ColorRed, Level: 1},
		{Position: Position{X: 20, Y: 2}, Color: ColorWhite, Level: 1},
	}}
	c, rec := newStarted(t, testConfig(), level)
	launch(c)

	b := place(c, 5, 5, 0, -3)
	c.Update()

	if c.BrickCount() != 1 {
		t.Errorf("BrickCount() = %d, want 1", c.BrickCount())
	}
	if c.Score() != 90 {
		t.Errorf("Score() = %d, want 90", c.Score())
	}
	if b.Velocity().Y <= 0 {
		t.Errorf("vertical velocity = %v, want flipped to positive", b.Velocity().Y)
	}

	e, ok := rec.last(EventUpdateScore)
	if !ok || e.Points != 90 || e.Score != 90 {
		t.Errorf("update-score event = %+v, %v", e, ok)
	}
	hit, ok := rec.last(EventHit)
	if !ok || hit.Kind.String() != "brick" {
		t.Errorf("hit event = %+v, %v", hit, ok)
	}
	if c.State() != StatePlaying {
		t.Errorf("state = %v, want playing", c.State())
	}
}

func TestBrickHitIdempotent(t *testing.T) {
	c, rec := newStarted(t, testConfig(), testLevel(3))
	destroyed := 0
	c.bricks.Destroyed.Subscribe(func(*Brick) { destroyed++ })

	b := c.Bricks()[0]
	c.hitBrick(b)
	c.hitBrick(b)
	c.bricks.Remove(b)

	if c.BrickCount() != 2 {
		t.Errorf("BrickCount() = %d, want 2", c.BrickCount())
	}
	if destroyed != 1 {
		t.Errorf("destroyed raised %d times, want 1", destroyed)
	}
	if c.Score() != 50 || rec.count(EventUpdateScore) != 1 {
		t.Errorf("score = %d after %d update-score events", c.Score(), rec.count(EventUpdateScore))
	}
}

func TestSilverBrickNeedsTwoHits(t *testing.T) {
	level := LevelData{ID: "silver", Bricks: []BrickData{
		{Position: Position{X: 0, Y: 2}, Color: ColorSilver, Level: 1},
		{Position: Position{X: 4, Y: 2}, Color: ColorWhite, Level: 1},
	}}
	c, _ := newStarted(t, testConfig(), level)
	silver := c.Bricks()[0]

	c.hitBrick(silver)
	if c.BrickCount() != 2 || c.Score() != 0 {
		t.Fatalf("first hit destroyed silver brick")
	}
	c.hitBrick(silver)
	if c.BrickCount() != 1 || c.Score() != 50 {
		t.Errorf("BrickCount() = %d, Score() = %d, want 1, 50", c.BrickCount(), c.Score())
	}
}

func TestSilverBrickSurvivesOneFrame(t *testing.T) {
	level := LevelData{ID: "silver", Bricks: []BrickData{
		{Position: Position{X: 10, Y: 4}, Color: ColorSilver, Level: 1},
		{Position: Position{X: 20, Y: 2}, Color: ColorWhite, Level: 1},
	}}

	for i := range 15 {
		for j := range 9 {
			x := 9.8 + float64(i)*0.1
			vx := -0.4 + float64(j)*0.1
			c, rec := newStarted(t, testConfig(), level)
			launch(c)
			silver := c.Bricks()[0]

			place(c, x, 5.3+float64(j)*0.05, vx, -1)
			c.Update()

			if rec.count(EventHit) != 1 {
				t.Fatalf("ball at x=%v vx=%v: %d hit events, want 1", x, vx, rec.count(EventHit))
			}
			if !c.bricks.Contains(silver) || silver.HitsLeft() != 1 {
				t.Fatalf("ball at x=%v vx=%v: silver brick alive = %v with %d hits left, want 1",
					x, vx, c.bricks.Contains(silver), silver.HitsLeft())
			}
			if c.Score() != 0 {
				t.Fatalf("ball at x=%v vx=%v: score = %d after one contact", x, vx, c.Score())
			}
		}
	}
}

func TestEndOfLevel(t *testing.T) {
	c, rec := newStarted(t, testConfig(), testLevel(2), testLevel(4))

	for _, b := range c.Bricks() {
		c.hitBrick(b)
	}
	if c.State() != StateLevelComplete {
		t.Fatalf("state = %v, want level-complete", c.State())
	}
	if rec.count(EventEndOfLevel) != 1 {
		t.Errorf("end-of-level raised %d times, want 1", rec.count(EventEndOfLevel))
	}
	if c.InputEnabled() {
		t.Error("input still enabled after the level ended")
	}

	score := c.Score()
	c.Update()
	if c.Score() != score || c.State() != StateLevelComplete {
		t.Error("Update() changed a completed level")
	}

	if err := c.Start(2); err != nil {
		t.Fatalf("Start(2) error = %v", err)
	}
	if c.BrickCount() != 4 || c.Score() != score || c.Lives() != 3 {
		t.Errorf("level 2: bricks %d, score %d, lives %d", c.BrickCount(), c.Score(), c.Lives())
	}
	if rec.count(EventEndOfLevel) != 1 {
		t.Errorf("starting a level raised end-of-level")
	}
}

func TestGameOver(t *testing.T) {
	cfg := testConfig()
	cfg.Lives = 1
	c, rec := newStarted(t, cfg, testLevel(5))
	launch(c)

	place(c, 5, 21.8, 0, 3)
	c.Update()

	if c.State() != StateGameOver {
		t.Fatalf("state = %v, want game-over", c.State())
	}
	if rec.count(EventGameOver) != 1 || rec.count(EventBallOut) != 0 {
		t.Errorf("game-over = %d, ball-out = %d", rec.count(EventGameOver), rec.count(EventBallOut))
	}
	if c.Lives() != 0 || c.InputEnabled() {
		t.Errorf("lives = %d, input enabled = %v", c.Lives(), c.InputEnabled())
	}

	score, bricks := c.Score(), c.BrickCount()
	for range 10 {
		c.SetInput(CmdLaunch | CmdLeft)
		c.Update()
	}
	if c.Score() != score || c.BrickCount() != bricks || c.State() != StateGameOver {
		t.Error("ticks after game over mutated the session")
	}
	if c.Lives() < 0 {
		t.Errorf("negative lives: %d", c.Lives())
	}
}

func TestBallOutCooldown(t *testing.T) {
	c, rec := newStarted(t, testConfig(), testLevel(5))
	launch(c)

	place(c, 5, 21.8, 0, 3)
	c.Update()

	if c.State() != StateBallLost {
		t.Fatalf("state = %v, want ball-lost", c.State())
	}
	if rec.count(EventBallOut) != 1 || c.Lives() != 2 {
		t.Errorf("ball-out = %d, lives = %d", rec.count(EventBallOut), c.Lives())
	}
	if c.InputEnabled() {
		t.Error("input enabled during cooldown")
	}

	x := c.Vaus().Position().X
	for range 4 {
		c.SetInput(CmdLeft)
		c.Update()
	}
	if c.State() != StateBallLost {
		t.Fatalf("resumed early, state = %v", c.State())
	}
	if c.Vaus().Position().X != x {
		t.Error("input applied during cooldown")
	}

	c.Update()
	if c.State() != StatePlaying || !c.InputEnabled() || !c.Held() {
		t.Errorf("after cooldown: state = %v, input = %v, held = %v", c.State(), c.InputEnabled(), c.Held())
	}
	if len(c.Balls()) != 1 {
		t.Errorf("balls after serve = %d, want 1", len(c.Balls()))
	}
	if rec.count(EventPause) != 0 {
		t.Error("cooldown raised a user pause event")
	}
}

func TestPause(t *testing.T) {
	c, rec := newStarted(t, testConfig(), testLevel(5))
	b := launch(c)
	pos := b.Position()

	c.Pause()
	if c.State() != StatePaused || !c.Paused() {
		t.Fatalf("state = %v, want paused", c.State())
	}
	c.Update()
	if b.Position() != pos {
		t.Error("ball moved while paused")
	}
	c.Pause()
	if c.State() != StatePlaying {
		t.Errorf("resumed to %v, want playing", c.State())
	}

	e, _ := rec.last(EventPause)
	if rec.count(EventPause) != 2 || e.Paused {
		t.Errorf("pause events = %d, last paused = %v", rec.count(EventPause), e.Paused)
	}
}

func TestPauseDuringCooldown(t *testing.T) {
	c, _ := newStarted(t, testConfig(), testLevel(5))
	launch(c)
	place(c, 5, 21.8, 0, 3)
	c.Update()

	c.Update() // cooldown 4
	c.Pause()
	for range 20 {
		c.Update()
	}
	if c.State() != StatePaused || c.Cooldown() != 4 {
		t.Fatalf("state = %v, cooldown = %d, want paused with 4 left", c.State(), c.Cooldown())
	}

	c.Pause()
	if c.State() != StateBallLost {
		t.Fatalf("resumed to %v, want ball-lost", c.State())
	}
	for range 4 {
		c.Update()
	}
	if c.State() != StatePlaying {
		t.Errorf("state = %v, want playing without a second user action", c.State())
	}
}

func TestPauseIgnoredWhenOver(t *testing.T) {
	cfg := testConfig()
	cfg.Lives = 1
	c, rec := newStarted(t, cfg, testLevel(5))
	launch(c)
	place(c, 5, 21.8, 0, 3)
	c.Update()

	c.Pause()
	if c.State() != StateGameOver || rec.count(EventPause) != 0 {
		t.Errorf("Pause() after game over: state = %v", c.State())
	}
}

func TestCheatFloor(t *testing.T) {
	c, _ := newStarted(t, testConfig(), testLevel(5))
	c.SetInput(CmdLaunch | CmdToggleCheat)
	c.Update()

	if !c.Cheat() || !c.CheatUsed() {
		t.Fatal("cheat mode not enabled")
	}
	if len(c.Walls()) != 4 {
		t.Errorf("walls = %d, want 4 with the floor", len(c.Walls()))
	}

	b := place(c, 5, 21, 0, 3)
	c.Update()
	if c.State() != StatePlaying || len(c.Balls()) != 1 {
		t.Fatalf("ball lost in cheat mode: state = %v", c.State())
	}
	if b.Velocity().Y >= 0 {
		t.Errorf("velocity = %v, want bounced off the floor", b.Velocity())
	}

	c.SetInput(CmdToggleCheat)
	c.Update()
	if c.Cheat() || !c.CheatUsed() {
		t.Errorf("cheat = %v, used = %v, want off and still marked", c.Cheat(), c.CheatUsed())
	}
}

func TestCatchEffect(t *testing.T) {
	c, _ := newStarted(t, testConfig(), testLevel(5))
	launch(c)
	c.powerUps.AddEffect(EffectCatch, c.Tick(), 100)

	vx := c.Vaus().Position().X
	b := place(c, vx+1, 18.9, 0, 3)
	c.Update()

	if !c.Held() {
		t.Fatal("ball not caught by the Vaus")
	}
	if !b.Velocity().IsZero() {
		t.Errorf("caught ball velocity = %v", b.Velocity())
	}
	if !near(b.Bounds().Bottom(), c.Vaus().Bounds().Top()) {
		t.Errorf("caught ball bottom = %v, Vaus top = %v", b.Bounds().Bottom(), c.Vaus().Bounds().Top())
	}
}

func TestCapsuleEffects(t *testing.T) {
	c, rec := newStarted(t, testConfig(), testLevel(5))
	launch(c)

	c.applyCapsule(CapsuleDisruption)
	if len(c.Balls()) != MaxBalls || !c.powerUps.HasEffect(EffectSplit) {
		t.Fatalf("disruption: balls = %d", len(c.Balls()))
	}
	c.powerUps.Effects[0].UntilTick = c.Tick() + 1
	c.Update()
	if len(c.Balls()) != 1 {
		t.Errorf("balls after disruption expired = %d, want 1", len(c.Balls()))
	}

	base := c.Vaus().BaseWidth()
	c.applyCapsule(CapsuleExpand)
	if c.Vaus().Width() != base+2 {
		t.Errorf("expanded width = %v, want %v", c.Vaus().Width(), base+2)
	}

	// A new capsule cancels the running effect
	c.applyCapsule(CapsuleSlow)
	if c.Vaus().Width() != base || c.powerUps.HasEffect(EffectExpand) {
		t.Errorf("expand not cancelled: width = %v", c.Vaus().Width())
	}
	if got := c.ballSpeed(); !near(got, 1.5) {
		t.Errorf("slowed speed = %v, want 1.5", got)
	}

	lives := c.Lives()
	c.applyCapsule(CapsulePlayer)
	if c.Lives() != lives+1 {
		t.Errorf("lives = %d, want %d", c.Lives(), lives+1)
	}
	if rec.count(EventPowerUp) != 4 {
		t.Errorf("power-up events = %d, want 4", rec.count(EventPowerUp))
	}
}

func TestCapsuleCollected(t *testing.T) {
	cfg := testConfig()
	cfg.PowerUps.FallSpeed = 0.5
	c, rec := newStarted(t, cfg, testLevel(5))

	vaus := c.Vaus().Bounds()
	c.powerUps.Capsules = append(c.powerUps.Capsules, &Capsule{
		Type: CapsulePlayer,
		body: newCapsuleBody(vaus.Center().X, vaus.Top()-1, cfg.PowerUps.FallSpeed),
	})
	for range 4 {
		c.Update()
	}

	if len(c.Capsules()) != 0 {
		t.Errorf("capsule not collected")
	}
	if c.Lives() != cfg.Lives+1 || rec.count(EventPowerUp) != 1 {
		t.Errorf("lives = %d, power-up events = %d", c.Lives(), rec.count(EventPowerUp))
	}
}

func TestRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Lives = 1
	c, _ := newStarted(t, cfg, testLevel(5), testLevel(6))
	c.hitBrick(c.Bricks()[0])
	launch(c)
	place(c, 5, 21.8, 0, 3)
	c.Update()
	if c.State() != StateGameOver {
		t.Fatalf("state = %v, want game-over", c.State())
	}

	if err := c.Restart(); err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	if c.State() != StatePlaying || c.Score() != 0 || c.Lives() != 1 || c.Level() != 1 || c.BrickCount() != 5 {
		t.Errorf("after restart: state %v, score %d, lives %d, level %d, bricks %d",
			c.State(), c.Score(), c.Lives(), c.Level(), c.BrickCount())
	}
}

func TestEndlessCyclesLevels(t *testing.T) {
	cfg := testConfig()
	cfg.Endless = true
	level := LevelData{ID: "silver", Bricks: []BrickData{
		{Position: Position{X: 0, Y: 2}, Color: ColorSilver, Level: 1},
	}}
	c, _ := newStarted(t, cfg, level, testLevel(2))

	c.setState(StateLevelComplete)
	if err := c.Start(3); err != nil {
		t.Fatalf("Start(3) error = %v", err)
	}
	if c.Level() != 3 || c.BrickCount() != 1 {
		t.Fatalf("level = %d, bricks = %d", c.Level(), c.BrickCount())
	}
	if got := c.Bricks()[0].Points(); got != 150 {
		t.Errorf("silver points on level 3 = %d, want 150", got)
	}
}

func TestLevelSpeed(t *testing.T) {
	cfg := testConfig()
	cfg.BallSpeed = 0.2
	cfg.MaxBallSpeed = 0.25
	cfg.SpeedPerLevel = 0.1
	c, _ := newStarted(t, cfg, testLevel(1), testLevel(1), testLevel(1), testLevel(1))

	if !near(c.ballSpeed(), 0.2) {
		t.Errorf("level 1 speed = %v, want 0.2", c.ballSpeed())
	}

	for _, want := range []float64{0.22, 0.24, 0.25} {
		c.hitBrick(c.Bricks()[0])
		if err := c.Start(c.Level() + 1); err != nil {
			t.Fatal(err)
		}
		if !near(c.ballSpeed(), want) {
			t.Errorf("level %d speed = %v, want %v", c.Level(), c.ballSpeed(), want)
		}
	}
}

// autopilot launches a held ball and keeps the Vaus under the lowest ball.
func autopilot(c *Controller) Command {
	if c.Held() {
		return CmdLaunch
	}
	var target *Ball
	for _, b := range c.Balls() {
		if target == nil || b.Center().Y > target.Center().Y {
			target = b
		}
	}
	if target == nil {
		return 0
	}
	dx := target.Center().X - c.Vaus().Bounds().Center().X
	switch {
	case dx < -0.5:
		return CmdLeft
	case dx > 0.5:
		return CmdRight
	}
	return 0
}

func TestSessionInvariants(t *testing.T) {
	levels, err := BuiltinLevels()
	if err != nil {
		t.Fatal(err)
	}
	seeds := 12
	if testing.Short() {
		seeds = 2
	}

	for seed := range seeds {
		cfg := DefaultControllerConfig()
		cfg.Seed = int64(seed + 1)
		cfg.Lives = MaxLives
		cfg.PowerUpsEnabled = true
		cfg.PowerUps.SpawnChance = 40

		c, rec := newStarted(t, cfg, levels[seed%len(levels)])
		zone := c.Zone()
		bricks := c.BrickCount()

		for tick := range 20000 {
			c.SetInput(autopilot(c))
			c.Update()

			balls := c.Balls()
			if len(balls) > MaxBalls {
				t.Fatalf("seed %d tick %d: %d balls in play", seed, tick, len(balls))
			}
			for _, b := range balls {
				r := b.Bounds()
				if r.Left() < zone.Left()-1e-9 || r.Right() > zone.Right()+1e-9 || r.Top() < zone.Top()-1e-9 {
					t.Fatalf("seed %d tick %d: ball %+v outside the zone", seed, tick, r)
				}
			}
			if n := c.BrickCount(); n > bricks {
				t.Fatalf("seed %d tick %d: brick count rose from %d to %d", seed, tick, bricks, n)
			} else {
				bricks = n
			}
			if rec.count(EventEndOfLevel) > 1 {
				t.Fatalf("seed %d tick %d: end-of-level raised %d times", seed, tick, rec.count(EventEndOfLevel))
			}
			if s := c.State(); s == StateGameOver || s == StateLevelComplete {
				break
			}
		}

		if c.State() == StateLevelComplete && rec.count(EventEndOfLevel) != 1 {
			t.Errorf("seed %d: level complete with %d end-of-level events", seed, rec.count(EventEndOfLevel))
		}
		if c.State() == StateLevelComplete && c.BrickCount() != 0 {
			t.Errorf("seed %d: level complete with %d bricks left", seed, c.BrickCount())
		}
	}
}
