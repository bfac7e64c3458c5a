// Package physics holds the per-frame integrator for moving bodies and the
// collision engine that keeps balls bouncing inside the zone.
package physics

import "github.com/vovakirdan/tui-arkanoid/internal/geom"

// Body is a moving box advanced once per frame. Velocity is tracked
// directly and expressed in zone units per frame, so one Integrate call
// moves the body by exactly its velocity.
type Body struct {
	size     geom.Vector
	position geom.Vector // top-left corner of the bounding box
	velocity geom.Vector
}

// NewBody creates a body of the given size at position moving at velocity.
func NewBody(size, position, velocity geom.Vector) *Body {
	return &Body{size: size, position: position, velocity: velocity}
}

// Position returns the top-left corner of the body.
func (b *Body) Position() geom.Vector { return b.position }

// Velocity returns the displacement applied by the next Integrate.
func (b *Body) Velocity() geom.Vector { return b.velocity }

// Size returns the fixed extent of the bounding box.
func (b *Body) Size() geom.Vector { return b.size }

// SetPosition moves the body without touching its velocity.
func (b *Body) SetPosition(p geom.Vector) { b.position = p }

// SetVelocity replaces the body's velocity.
func (b *Body) SetVelocity(v geom.Vector) { b.velocity = v }

// Integrate advances the position by one frame of velocity.
func (b *Body) Integrate() {
	b.position = b.position.Add(b.velocity)
}

// BoundingRect returns the body's axis-aligned box.
func (b *Body) BoundingRect() geom.Rect {
	return geom.Rect{Position: b.position, Width: b.size.X, Height: b.size.Y}
}

// Center returns the midpoint of the bounding box.
func (b *Body) Center() geom.Vector {
	return b.BoundingRect().Center()
}
