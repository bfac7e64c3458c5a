package arkanoid

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the game state for replay and determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     int    `msgpack:"tick"`
	State    string `msgpack:"state"`
	Level    int    `msgpack:"level"`
	Score    int    `msgpack:"score"`
	Lives    int    `msgpack:"lives"`
	Cooldown int    `msgpack:"cooldown"`
	Held     bool   `msgpack:"held"`
	Cheat    bool   `msgpack:"cheat"`

	PaddleX     float64 `msgpack:"paddle_x"`
	PaddleWidth float64 `msgpack:"paddle_w"`

	Balls    []BallState    `msgpack:"balls"`
	Bricks   []BrickState   `msgpack:"bricks"`
	Capsules []CapsuleState `msgpack:"capsules"`
	Effects  []EffectState  `msgpack:"effects"`

	// RNG state for the power-up manager
	RNGState uint64 `msgpack:"rng"`
}

// BallState is one ball of a snapshot.
type BallState struct {
	X  float64 `msgpack:"x"`
	Y  float64 `msgpack:"y"`
	VX float64 `msgpack:"vx"`
	VY float64 `msgpack:"vy"`
}

// BrickState is one live brick of a snapshot.
type BrickState struct {
	X     int `msgpack:"x"`
	Y     int `msgpack:"y"`
	Color int `msgpack:"c"`
	Hits  int `msgpack:"h"`
}

// CapsuleState is one falling capsule of a snapshot.
type CapsuleState struct {
	Type int     `msgpack:"t"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
}

// EffectState is one active effect of a snapshot.
type EffectState struct {
	Type      int `msgpack:"t"`
	UntilTick int `msgpack:"until"`
}

// Snapshot returns the current session state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        c.tick,
		State:       c.state.String(),
		Level:       c.level,
		Score:       c.score,
		Lives:       c.lives,
		Cooldown:    c.cooldown,
		Held:        c.held,
		Cheat:       c.cheat,
		PaddleX:     c.vaus.Position().X,
		PaddleWidth: c.vaus.Width(),
		RNGState:    c.powerUps.RNG.State(),
	}

	c.balls.Each(func(b *Ball) bool {
		p, v := b.Position(), b.Velocity()
		snap.Balls = append(snap.Balls, BallState{X: p.X, Y: p.Y, VX: v.X, VY: v.Y})
		return true
	})
	c.bricks.Each(func(b *Brick) bool {
		d := b.Data()
		snap.Bricks = append(snap.Bricks, BrickState{
			X:     d.Position.X,
			Y:     d.Position.Y,
			Color: int(d.Color),
			Hits:  b.HitsLeft(),
		})
		return true
	})
	for _, cp := range c.powerUps.Capsules {
		p := cp.Position()
		snap.Capsules = append(snap.Capsules, CapsuleState{Type: int(cp.Type), X: p.X, Y: p.Y})
	}
	for _, e := range c.powerUps.Effects {
		snap.Effects = append(snap.Effects, EffectState{Type: int(e.Type), UntilTick: e.UntilTick})
	}
	return snap
}

// Encode serializes the snapshot with MessagePack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	_, _ = h.Write(data)
	return h.Sum64()
}
