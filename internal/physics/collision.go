package physics

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Kind classifies what a ball ran into.
type Kind int

const (
	KindWall Kind = iota
	KindBrick
	KindPaddle
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBrick:
		return "brick"
	case KindPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// Collider is anything a ball can bounce off.
type Collider interface {
	Bounds() geom.Rect
	Kind() Kind
}

// Deflector is implemented by colliders that shape the outgoing velocity
// themselves, like the paddle steering the ball by contact offset.
// It receives the contact and the already reflected velocity.
type Deflector interface {
	Deflect(c Contact, v geom.Vector) geom.Vector
}

// Contact describes one resolved collision.
type Contact struct {
	Collider Collider
	// Normal is a unit axis vector pointing from the collider towards the ball.
	Normal geom.Vector
	// Time is the fraction of the remaining frame motion covered before contact.
	Time float64
	// Depth is how far the ball would have sunk into the collider along
	// Normal had the motion not been resolved.
	Depth float64
	// Box is the ball's bounding box at the moment of contact.
	Box geom.Rect
}

// Outcome is the result of resolving one body for one frame.
type Outcome int

const (
	OutcomeNone Outcome = iota
	// OutcomeLeftZone means the body crossed the zone's bottom edge.
	OutcomeLeftZone
)

// DefaultMaxContacts bounds the contacts resolved per body per frame.
const DefaultMaxContacts = 4

const epsilon = 1e-9

// Engine resolves ball motion against axis-aligned colliders inside a zone.
// The zone's bottom edge is open.
type Engine struct {
	Zone        geom.Rect
	MaxContacts int
}

// NewEngine creates an engine for zone with default limits.
func NewEngine(zone geom.Rect) *Engine {
	return &Engine{Zone: zone, MaxContacts: DefaultMaxContacts}
}

// Resolve corrects the frame motion of body, which has just been integrated
// from position from. The colliders function is called again after every
// contact so that entities removed by onHit are never revisited.
//
// Contacts are processed earliest first. Contacts at the same time are
// ordered by smallest depth, then by their order in the collider list.
// Every contact reflects the velocity component on its axis so that it
// points away from the collider, pushes the ball out and invokes onHit.
func (e *Engine) Resolve(body *Body, from geom.Vector, colliders func() []Collider, onHit func(Contact)) Outcome {
	maxContacts := e.MaxContacts
	if maxContacts <= 0 {
		maxContacts = DefaultMaxContacts
	}

	pos := from
	vel := body.Velocity()
	motion := body.Position().Sub(from)
	left := 1.0
	size := body.Size()

	settled := false
	var last Collider
	for range maxContacts {
		box := geom.Rect{Position: pos, Width: size.X, Height: size.Y}
		c, ok := earliestContact(box, motion, colliders(), last)
		if !ok {
			pos = pos.Add(motion)
			settled = true
			break
		}

		if c.Time == 0 && box.Intersects(c.Collider.Bounds()) {
			pos = pos.Add(c.Normal.Scale(c.Depth))
		} else {
			pos = pos.Add(motion.Scale(c.Time))
		}
		pos = snap(pos, size, c.Collider.Bounds(), c.Normal)
		c.Box = geom.Rect{Position: pos, Width: size.X, Height: size.Y}

		vel = reflect(vel, c.Normal)
		if d, ok := c.Collider.(Deflector); ok {
			vel = d.Deflect(c, vel)
		}

		body.SetPosition(pos)
		body.SetVelocity(vel)
		if onHit != nil {
			onHit(c)
		}
		// onHit may have moved the body, for instance to catch it.
		pos = body.Position()
		vel = body.Velocity()

		last = c.Collider
		left *= 1 - c.Time
		motion = vel.Scale(left)
	}
	if !settled {
		// Out of contact budget: stop at the last contact point.
		motion = geom.Zero
	}

	pos, vel = e.confine(pos, vel, size)
	body.SetPosition(pos)
	body.SetVelocity(vel)

	if pos.Y > e.Zone.Bottom() {
		return OutcomeLeftZone
	}
	return OutcomeNone
}

// confine keeps a box inside the zone's left, right and top edges.
// The bottom edge is never clamped.
func (e *Engine) confine(pos, vel, size geom.Vector) (geom.Vector, geom.Vector) {
	z := e.Zone
	if pos.X < z.Left() {
		pos.X = z.Left()
		vel.X = math.Abs(vel.X)
	}
	if pos.X+size.X > z.Right() {
		pos.X = z.Right() - size.X
		vel.X = -math.Abs(vel.X)
	}
	if pos.Y < z.Top() {
		pos.Y = z.Top()
		vel.Y = math.Abs(vel.Y)
	}
	return pos, vel
}

// reflect points the velocity component on the normal's axis along the
// normal. Applying it twice for the same axis never flips back and forth.
func reflect(v, n geom.Vector) geom.Vector {
	if n.X != 0 {
		v.X = n.X * math.Abs(v.X)
	} else {
		v.Y = n.Y * math.Abs(v.Y)
	}
	return v
}

// snap places the box flush against the face of bounds that normal points
// out of, so the next pass sees it touching rather than overlapping.
func snap(pos, size geom.Vector, bounds geom.Rect, normal geom.Vector) geom.Vector {
	switch {
	case normal.X < 0:
		pos.X = bounds.Left() - size.X
	case normal.X > 0:
		pos.X = bounds.Right()
	case normal.Y < 0:
		pos.Y = bounds.Top() - size.Y
	case normal.Y > 0:
		pos.Y = bounds.Bottom()
	}
	return pos
}

// earliestContact runs the broad and narrow phase of box moving by motion
// against every collider and returns the contact to resolve first. A
// resting contact with last, the collider resolved just before, is skipped.
func earliestContact(box geom.Rect, motion geom.Vector, colliders []Collider, last Collider) (Contact, bool) {
	swept := box.Union(box.Translate(motion))

	var best Contact
	found := false
	for _, col := range colliders {
		bounds := col.Bounds()
		if !swept.Intersects(bounds) {
			continue
		}
		c, ok := narrowPhase(box, motion, bounds)
		if !ok {
			continue
		}
		if col == last && c.Time == 0 && c.Depth <= epsilon {
			continue
		}
		c.Collider = col
		if !found || before(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

func before(a, b Contact) bool {
	if a.Time < b.Time-epsilon {
		return true
	}
	if math.Abs(a.Time-b.Time) <= epsilon {
		return a.Depth < b.Depth-epsilon
	}
	return false
}

// narrowPhase computes the contact of box moving by motion with target.
// A box already overlapping target yields a contact at time zero along the
// axis of least penetration. An overlap no deeper than rounding error counts
// as touching and only yields a contact when the motion heads into target.
// Otherwise a swept test finds the time of entry, which must fall within [0, 1).
func narrowPhase(box geom.Rect, motion geom.Vector, target geom.Rect) (Contact, bool) {
	if box.Intersects(target) {
		c := overlapContact(box, target)
		if c.Depth <= epsilon && motion.Dot(c.Normal) >= 0 {
			return Contact{}, false
		}
		return c, true
	}

	entryX, exitX, okX := slab(box.Left(), box.Right(), target.Left(), target.Right(), motion.X)
	entryY, exitY, okY := slab(box.Top(), box.Bottom(), target.Top(), target.Bottom(), motion.Y)
	if !okX || !okY {
		return Contact{}, false
	}

	entry := math.Max(entryX, entryY)
	exit := math.Min(exitX, exitY)
	if entry >= exit || entry < 0 || entry >= 1 {
		return Contact{}, false
	}

	var c Contact
	c.Time = entry
	if entryX > entryY {
		c.Normal = geom.Vec(-sign(motion.X), 0)
		c.Depth = math.Min(math.Abs(motion.X)*(1-entry), box.Width+target.Width)
	} else {
		c.Normal = geom.Vec(0, -sign(motion.Y))
		c.Depth = math.Min(math.Abs(motion.Y)*(1-entry), box.Height+target.Height)
	}
	return c, true
}

// slab returns the normalized entry and exit times of the interval
// [lo, hi] moving by d against [tlo, thi]. A zero d yields an infinite span
// when the intervals overlap and no hit otherwise.
func slab(lo, hi, tlo, thi, d float64) (entry, exit float64, ok bool) {
	switch {
	case d > 0:
		return (tlo - hi) / d, (thi - lo) / d, true
	case d < 0:
		return (thi - lo) / d, (tlo - hi) / d, true
	default:
		if hi <= tlo || lo >= thi {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}
}

func overlapContact(box, target geom.Rect) Contact {
	o := box.Overlap(target)
	bc, tc := box.Center(), target.Center()

	c := Contact{Time: 0}
	if o.Y <= o.X {
		c.Depth = o.Y
		if bc.Y < tc.Y {
			c.Normal = geom.Vec(0, -1)
		} else {
			c.Normal = geom.Vec(0, 1)
		}
	} else {
		c.Depth = o.X
		if bc.X < tc.X {
			c.Normal = geom.Vec(-1, 0)
		} else {
			c.Normal = geom.Vec(1, 0)
		}
	}
	return c
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
