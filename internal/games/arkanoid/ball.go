package arkanoid

import (
	"errors"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/entity"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// BallRadius is the ball radius in zone units.
const BallRadius = 0.3

// MaxBalls is the most balls that can be in play at once.
const MaxBalls = 3

// ErrTooManyBalls is returned when creating a ball would exceed MaxBalls.
var ErrTooManyBalls = errors.New("arkanoid: ball limit reached")

// BallArgs are the construction arguments of a ball.
type BallArgs struct {
	Position geom.Vector
	Velocity geom.Vector
}

// Ball is a playable ball: a physics body plus visibility and a hit signal.
type Ball struct {
	body   *physics.Body
	hidden bool

	// Hit fires for every contact the ball resolves.
	Hit entity.Signal[physics.Contact]
}

// NewBall creates a ball at a.Position moving at a.Velocity.
func NewBall(a BallArgs) *Ball {
	size := geom.Vec(2*BallRadius, 2*BallRadius)
	return &Ball{body: physics.NewBody(size, a.Position, a.Velocity)}
}

// Position returns the top-left corner of the ball's box.
func (b *Ball) Position() geom.Vector { return b.body.Position() }

// Velocity returns the ball velocity in units per frame.
func (b *Ball) Velocity() geom.Vector { return b.body.Velocity() }

// SetPosition moves the ball.
func (b *Ball) SetPosition(p geom.Vector) { b.body.SetPosition(p) }

// SetVelocity replaces the ball velocity.
func (b *Ball) SetVelocity(v geom.Vector) { b.body.SetVelocity(v) }

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() geom.Rect { return b.body.BoundingRect() }

// Center returns the ball center.
func (b *Ball) Center() geom.Vector { return b.body.Center() }

// Size returns the ball's box size.
func (b *Ball) Size() geom.Vector { return b.body.Size() }

// Radius returns BallRadius.
func (b *Ball) Radius() float64 { return BallRadius }

// Hidden reports whether the ball should be skipped by renderers.
func (b *Ball) Hidden() bool { return b.hidden }

// Hide hides the ball from renderers.
func (b *Ball) Hide() { b.hidden = true }

// Show makes the ball visible again.
func (b *Ball) Show() { b.hidden = false }

// Reset stops the ball and places it at p.
func (b *Ball) Reset(p geom.Vector) {
	b.body.SetVelocity(geom.Zero)
	b.body.SetPosition(p)
}

// Update integrates the ball for one frame and resolves its collisions.
func (b *Ball) Update(e *physics.Engine, colliders func() []physics.Collider) physics.Outcome {
	from := b.body.Position()
	b.body.Integrate()
	return e.Resolve(b.body, from, colliders, b.Hit.Emit)
}

// splitTransforms rotate the first ball's velocity by -pi/8 and +pi/8 to
// produce the extra balls of a split.
var splitTransforms = [MaxBalls - 1]geom.Matrix{
	geom.Rotation(-math.Pi / 8),
	geom.Rotation(math.Pi / 8),
}

// BallHit is a contact tagged with the ball that made it.
type BallHit struct {
	Ball    *Ball
	Contact physics.Contact
}

// Balls is the aggregate of live balls. It forwards every ball's hits on a
// single signal and raises Empty once each time the last ball is removed.
type Balls struct {
	items   *entity.Collection[*Ball, BallArgs]
	subs    map[*Ball]entity.Subscription
	drained bool

	Hit   entity.Signal[BallHit]
	Empty entity.Signal[struct{}]
}

// NewBalls creates an empty aggregate.
func NewBalls() *Balls {
	bs := &Balls{
		items: entity.NewCollection(NewBall),
		subs:  make(map[*Ball]entity.Subscription),
	}
	bs.items.Added.Subscribe(bs.attach)
	bs.items.Destroyed.Subscribe(func(b *Ball) {
		bs.detach(b)
		if bs.items.Size() == 0 && !bs.drained {
			bs.drained = true
			bs.Empty.Emit(struct{}{})
		}
	})
	return bs
}

func (bs *Balls) attach(b *Ball) {
	bs.drained = false
	if _, ok := bs.subs[b]; ok {
		return
	}
	bs.subs[b] = b.Hit.Subscribe(func(c physics.Contact) {
		bs.Hit.Emit(BallHit{Ball: b, Contact: c})
	})
}

func (bs *Balls) detach(b *Ball) {
	if id, ok := bs.subs[b]; ok {
		b.Hit.Unsubscribe(id)
		delete(bs.subs, b)
	}
}

// Create adds a ball unless the aggregate is full.
func (bs *Balls) Create(a BallArgs) (*Ball, error) {
	if bs.items.Size() >= MaxBalls {
		return nil, ErrTooManyBalls
	}
	return bs.items.Create(a), nil
}

// Remove destroys b. Removing a ball that is gone already is a no-op.
func (bs *Balls) Remove(b *Ball) bool {
	return bs.items.Remove(b)
}

// Reset replaces all balls with balls, keeping at most MaxBalls.
func (bs *Balls) Reset(balls []*Ball) {
	if len(balls) > MaxBalls {
		balls = balls[:MaxBalls]
	}
	bs.items.Reset(balls)
	for _, b := range balls {
		bs.attach(b)
	}
}

// Size returns the number of live balls.
func (bs *Balls) Size() int { return bs.items.Size() }

// Items returns the live balls in creation order.
func (bs *Balls) Items() []*Ball { return bs.items.Items() }

// Each visits every live ball in creation order, tolerating removals.
func (bs *Balls) Each(fn func(*Ball) bool) { bs.items.Each(fn) }

// First returns the oldest live ball.
func (bs *Balls) First() (*Ball, bool) { return bs.items.At(0) }

// Hide hides every ball.
func (bs *Balls) Hide() {
	bs.Each(func(b *Ball) bool { b.Hide(); return true })
}

// Show reveals every ball.
func (bs *Balls) Show() {
	bs.Each(func(b *Ball) bool { b.Show(); return true })
}

// SetSpeed rescales every moving ball to speed, keeping its direction.
// Resting balls have no direction and are left alone.
func (bs *Balls) SetSpeed(speed float64) {
	bs.Each(func(b *Ball) bool {
		v := b.Velocity()
		if !v.IsZero() {
			b.SetVelocity(v.Normalized().Scale(speed))
		}
		return true
	})
}

// Split tops the aggregate up to MaxBalls. New balls start at the first
// ball's position with its velocity rotated by the split transforms.
// Splitting an empty or full aggregate does nothing.
func (bs *Balls) Split() {
	first, ok := bs.First()
	if !ok {
		return
	}
	pos, vel := first.Position(), first.Velocity()
	for n := range MaxBalls - bs.Size() {
		if _, err := bs.Create(BallArgs{Position: pos, Velocity: vel.Transform(splitTransforms[n])}); err != nil {
			return
		}
	}
}

// Unsplit removes the second and third balls, if any.
func (bs *Balls) Unsplit() {
	items := bs.Items()
	for i := 1; i < len(items) && i < MaxBalls; i++ {
		bs.Remove(items[i])
	}
}

// Update moves every ball one frame. Balls that leave the zone through the
// bottom are removed and reported in the returned count.
func (bs *Balls) Update(e *physics.Engine, colliders func() []physics.Collider) int {
	lost := 0
	bs.Each(func(b *Ball) bool {
		if b.Update(e, colliders) == physics.OutcomeLeftZone {
			if bs.Remove(b) {
				lost++
			}
		}
		return true
	})
	return lost
}
