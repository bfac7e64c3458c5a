package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// CapsuleType is the kind of power-up a falling capsule grants.
type CapsuleType int

const (
	CapsuleDisruption CapsuleType = iota // split into three balls
	CapsuleSlow                          // slow the balls down
	CapsuleExpand                        // widen the Vaus
	CapsulePlayer                        // extra life
	CapsuleCatch                         // the Vaus holds the ball on contact
	capsuleCount
)

// Glyph returns the letter printed on the capsule.
func (c CapsuleType) Glyph() rune {
	switch c {
	case CapsuleDisruption:
		return 'D'
	case CapsuleSlow:
		return 'S'
	case CapsuleExpand:
		return 'E'
	case CapsulePlayer:
		return 'P'
	case CapsuleCatch:
		return 'C'
	default:
		return '?'
	}
}

// String returns the capsule name.
func (c CapsuleType) String() string {
	switch c {
	case CapsuleDisruption:
		return "Disruption"
	case CapsuleSlow:
		return "Slow"
	case CapsuleExpand:
		return "Expand"
	case CapsulePlayer:
		return "Player"
	case CapsuleCatch:
		return "Catch"
	default:
		return "?"
	}
}

// Capsule dimensions in zone units.
const (
	CapsuleWidth  = 1.5
	CapsuleHeight = 0.6
)

// Capsule is a falling power-up.
type Capsule struct {
	Type CapsuleType
	body *physics.Body
}

// Bounds returns the capsule box.
func (c *Capsule) Bounds() geom.Rect { return c.body.BoundingRect() }

// Position returns the capsule's top-left corner.
func (c *Capsule) Position() geom.Vector { return c.body.Position() }

func newCapsuleBody(centerX, centerY, fallSpeed float64) *physics.Body {
	return physics.NewBody(
		geom.Vec(CapsuleWidth, CapsuleHeight),
		geom.Vec(centerX-CapsuleWidth/2, centerY-CapsuleHeight/2),
		geom.Vec(0, fallSpeed),
	)
}

// EffectType is a timed effect granted by a capsule.
type EffectType int

const (
	EffectSplit EffectType = iota
	EffectSlow
	EffectExpand
	EffectCatch
)

// String returns the short name shown in the HUD.
func (e EffectType) String() string {
	switch e {
	case EffectSplit:
		return "D"
	case EffectSlow:
		return "S"
	case EffectExpand:
		return "E"
	case EffectCatch:
		return "C"
	default:
		return "?"
	}
}

// Effect is an active timed effect.
type Effect struct {
	Type      EffectType
	UntilTick int
}

// TicksRemaining returns how many ticks until the effect expires.
func (e *Effect) TicksRemaining(currentTick int) int {
	return max(e.UntilTick-currentTick, 0)
}

// PowerUpConfig holds capsule spawning and effect parameters.
type PowerUpConfig struct {
	SpawnChance int // percent chance per destroyed brick

	WeightDisruption int
	WeightSlow       int
	WeightExpand     int
	WeightPlayer     int
	WeightCatch      int

	// Durations in ticks
	DurationSplit  int
	DurationSlow   int
	DurationExpand int
	DurationCatch  int

	FallSpeed   float64 // units per tick
	ExpandWidth float64 // units added to the Vaus
	SlowFactor  float64 // ball speed multiplier while slowed
}

// DefaultPowerUpConfig returns the default power-up configuration at 60 ticks
// per second.
func DefaultPowerUpConfig() PowerUpConfig {
	return PowerUpConfig{
		SpawnChance: 15,

		WeightDisruption: 25,
		WeightSlow:       25,
		WeightExpand:     25,
		WeightPlayer:     5,
		WeightCatch:      20,

		DurationSplit:  900,
		DurationSlow:   600,
		DurationExpand: 900,
		DurationCatch:  600,

		FallSpeed:   0.1,
		ExpandWidth: 2,
		SlowFactor:  0.7,
	}
}

// PowerUpManager spawns capsules, moves them and tracks active effects.
type PowerUpManager struct {
	Config   PowerUpConfig
	Capsules []*Capsule
	Effects  []*Effect
	RNG      *SimpleRNG
}

// NewPowerUpManager creates a manager seeded for deterministic rolls.
func NewPowerUpManager(seed int64, cfg PowerUpConfig) *PowerUpManager {
	return &PowerUpManager{
		Config: cfg,
		RNG:    NewSimpleRNG(seed),
	}
}

// Reset clears capsules and effects and reseeds the RNG.
func (pm *PowerUpManager) Reset(seed int64) {
	pm.Clear()
	pm.RNG = NewSimpleRNG(seed)
}

// Clear drops every capsule and effect.
func (pm *PowerUpManager) Clear() {
	pm.Capsules = pm.Capsules[:0]
	pm.Effects = pm.Effects[:0]
}

// TrySpawn rolls for a capsule centered at center.
func (pm *PowerUpManager) TrySpawn(center geom.Vector) (*Capsule, bool) {
	if pm.RNG.Intn(100) >= pm.Config.SpawnChance {
		return nil, false
	}
	c := &Capsule{
		Type: pm.rollType(),
		body: newCapsuleBody(center.X, center.Y, pm.Config.FallSpeed),
	}
	pm.Capsules = append(pm.Capsules, c)
	return c, true
}

func (pm *PowerUpManager) rollType() CapsuleType {
	weights := [capsuleCount]int{
		CapsuleDisruption: pm.Config.WeightDisruption,
		CapsuleSlow:       pm.Config.WeightSlow,
		CapsuleExpand:     pm.Config.WeightExpand,
		CapsulePlayer:     pm.Config.WeightPlayer,
		CapsuleCatch:      pm.Config.WeightCatch,
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return CapsuleDisruption
	}

	roll := pm.RNG.Intn(total)
	for t, w := range weights {
		if roll < w {
			return CapsuleType(t)
		}
		roll -= w
	}
	return CapsuleDisruption
}

// Update moves capsules down and drops those below the zone.
func (pm *PowerUpManager) Update(zone geom.Rect) {
	active := pm.Capsules[:0]
	for _, c := range pm.Capsules {
		c.body.Integrate()
		if c.body.Position().Y <= zone.Bottom() {
			active = append(active, c)
		}
	}
	pm.Capsules = active
}

// Collect removes the first capsule touching paddle and returns its type.
func (pm *PowerUpManager) Collect(paddle geom.Rect) (CapsuleType, bool) {
	for i, c := range pm.Capsules {
		if c.Bounds().Intersects(paddle) {
			pm.Capsules = append(pm.Capsules[:i], pm.Capsules[i+1:]...)
			return c.Type, true
		}
	}
	return 0, false
}

// AddEffect starts an effect or extends it if already active.
func (pm *PowerUpManager) AddEffect(t EffectType, currentTick, duration int) {
	for _, e := range pm.Effects {
		if e.Type == t {
			e.UntilTick = currentTick + duration
			return
		}
	}
	pm.Effects = append(pm.Effects, &Effect{Type: t, UntilTick: currentTick + duration})
}

// RemoveEffect ends an effect and reports whether it was active.
func (pm *PowerUpManager) RemoveEffect(t EffectType) bool {
	for i, e := range pm.Effects {
		if e.Type == t {
			pm.Effects = append(pm.Effects[:i], pm.Effects[i+1:]...)
			return true
		}
	}
	return false
}

// ExpireEffects removes effects that ran out and returns their types.
func (pm *PowerUpManager) ExpireEffects(currentTick int) []EffectType {
	var expired []EffectType
	active := pm.Effects[:0]
	for _, e := range pm.Effects {
		if e.UntilTick <= currentTick {
			expired = append(expired, e.Type)
		} else {
			active = append(active, e)
		}
	}
	pm.Effects = active
	return expired
}

// HasEffect reports whether t is active.
func (pm *PowerUpManager) HasEffect(t EffectType) bool {
	for _, e := range pm.Effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

// SimpleRNG is a deterministic linear congruential generator, so replays
// with the same seed roll the same capsules.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a generator from seed. A zero seed is replaced by 1.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next advances the generator.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// State returns the internal state for snapshots.
func (r *SimpleRNG) State() uint64 { return r.state }
