package sound

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// Player plays tones.
type Player interface {
	Play(Tone)
}

// Buzzer plays a tone for each game event it is handed.
// Repeats of the same tone closer than MinGap are dropped so a ball
// grinding along a wall does not flood the mixer.
type Buzzer struct {
	MinGap time.Duration

	mu     sync.Mutex
	player Player
	muted  bool
	last   [toneCount]time.Time
	now    func() time.Time
}

// NewBuzzer creates a buzzer playing through p.
func NewBuzzer(p Player) *Buzzer {
	return &Buzzer{
		MinGap: 30 * time.Millisecond,
		player: p,
		now:    time.Now,
	}
}

// SetMuted silences or restores the buzzer.
func (b *Buzzer) SetMuted(muted bool) {
	b.mu.Lock()
	b.muted = muted
	b.mu.Unlock()
}

// Handle plays the tone matching e. Events without a tone are ignored.
func (b *Buzzer) Handle(e arkanoid.Event) {
	t, ok := ToneFor(e)
	if !ok {
		return
	}

	b.mu.Lock()
	if b.muted || b.player == nil {
		b.mu.Unlock()
		return
	}
	now := b.now()
	if !b.last[t].IsZero() && now.Sub(b.last[t]) < b.MinGap {
		b.mu.Unlock()
		return
	}
	b.last[t] = now
	p := b.player
	b.mu.Unlock()

	p.Play(t)
}

// ToneFor returns the tone played for e.
func ToneFor(e arkanoid.Event) (Tone, bool) {
	switch e.Type {
	case arkanoid.EventHit:
		switch e.Kind {
		case physics.KindBrick:
			return ToneBrick, true
		case physics.KindPaddle:
			return TonePaddle, true
		default:
			return ToneWall, true
		}
	case arkanoid.EventBallOut:
		return ToneLose, true
	case arkanoid.EventEndOfLevel:
		return ToneLevel, true
	case arkanoid.EventPowerUp:
		return TonePowerUp, true
	case arkanoid.EventGameOver:
		return ToneGameOver, true
	default:
		return 0, false
	}
}
