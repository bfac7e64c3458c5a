package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// VausHeight is the paddle thickness in zone units.
const VausHeight = 1

// Vaus is the player paddle. It moves horizontally along a fixed row near
// the bottom of the zone and steers the ball according to where it lands.
type Vaus struct {
	body      *physics.Body
	zone      geom.Rect
	baseWidth float64
	speed     float64
	maxAngle  float64 // radians from vertical
}

// NewVaus creates a paddle of width inside zone, moving speed units per
// frame. maxAngle bounds the outgoing ball angle from vertical in degrees.
func NewVaus(zone geom.Rect, width, speed, maxAngle float64) *Vaus {
	v := &Vaus{
		zone:      zone,
		baseWidth: width,
		speed:     speed,
		maxAngle:  maxAngle * math.Pi / 180,
	}
	v.body = physics.NewBody(geom.Vec(width, VausHeight), geom.Zero, geom.Zero)
	v.Reset()
	return v
}

// Reset restores the base width and centers the paddle on its row,
// two units above the zone bottom.
func (v *Vaus) Reset() {
	v.body = physics.NewBody(geom.Vec(v.baseWidth, VausHeight), geom.Zero, geom.Zero)
	x := v.zone.Left() + (v.zone.Width-v.baseWidth)/2
	y := v.zone.Bottom() - 2
	v.body.SetPosition(geom.Vec(x, y))
}

// Move slides the paddle by one frame in direction dir (-1, 0 or 1),
// clamped to the zone.
func (v *Vaus) Move(dir int) {
	v.body.SetVelocity(geom.Vec(float64(max(-1, min(dir, 1)))*v.speed, 0))
	v.body.Integrate()
	v.body.SetVelocity(geom.Zero)
	v.clamp()
}

// SetWidth resizes the paddle around its center.
func (v *Vaus) SetWidth(w float64) {
	c := v.Center()
	pos := v.body.Position()
	v.body = physics.NewBody(geom.Vec(w, VausHeight), geom.Vec(c.X-w/2, pos.Y), geom.Zero)
	v.clamp()
}

// BaseWidth returns the width the paddle resets to.
func (v *Vaus) BaseWidth() float64 { return v.baseWidth }

func (v *Vaus) clamp() {
	pos := v.body.Position()
	w := v.body.Size().X
	pos.X = geom.Clamp(pos.X, v.zone.Left(), v.zone.Right()-w)
	v.body.SetPosition(pos)
}

// Bounds returns the paddle rectangle.
func (v *Vaus) Bounds() geom.Rect { return v.body.BoundingRect() }

// Kind marks the paddle for the collision engine.
func (v *Vaus) Kind() physics.Kind { return physics.KindPaddle }

// Center returns the paddle midpoint.
func (v *Vaus) Center() geom.Vector { return v.body.Center() }

// Width returns the current paddle width.
func (v *Vaus) Width() float64 { return v.body.Size().X }

// Position returns the paddle's top-left corner.
func (v *Vaus) Position() geom.Vector { return v.body.Position() }

// SpawnPoint returns where a ball of the given size rests on the paddle.
func (v *Vaus) SpawnPoint(size geom.Vector) geom.Vector {
	c := v.Center()
	return geom.Vec(c.X-size.X/2, v.Bounds().Top()-size.Y)
}

// Deflect steers a ball that landed on top of the paddle. The further from
// the center it lands, the wider the outgoing angle; speed is preserved.
// Side contacts keep the plain reflection.
func (v *Vaus) Deflect(c physics.Contact, vel geom.Vector) geom.Vector {
	if c.Normal.Y >= 0 {
		return vel
	}
	half := v.Width()/2 + c.Box.Width/2
	offset := geom.Clamp((c.Box.Center().X-v.Center().X)/half, -1, 1)
	angle := offset * v.maxAngle
	speed := vel.Norm()
	return geom.Vec(speed*math.Sin(angle), -speed*math.Cos(angle))
}
