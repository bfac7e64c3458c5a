package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/physics"
)

// Side tells which zone edge a wall guards.
type Side int

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// wallThickness is how far walls reach outside the zone.
const wallThickness = 1

// Wall is an immutable collider hugging one edge of the zone from outside.
type Wall struct {
	rect geom.Rect
	side Side
}

// Bounds returns the wall rectangle.
func (w *Wall) Bounds() geom.Rect { return w.rect }

// Kind marks walls for the collision engine.
func (w *Wall) Kind() physics.Kind { return physics.KindWall }

// Side returns the zone edge the wall guards.
func (w *Wall) Side() Side { return w.side }

// NewWalls builds the left, top and right walls around zone.
// The bottom edge stays open.
func NewWalls(zone geom.Rect) []*Wall {
	t := float64(wallThickness)
	return []*Wall{
		{rect: geom.NewRect(zone.Left()-t, zone.Top()-t, t, zone.Height+t), side: SideLeft},
		{rect: geom.NewRect(zone.Left()-t, zone.Top()-t, zone.Width+2*t, t), side: SideTop},
		{rect: geom.NewRect(zone.Right(), zone.Top()-t, t, zone.Height+t), side: SideRight},
	}
}

// newFloor builds the bottom wall used in cheat mode.
func newFloor(zone geom.Rect) *Wall {
	t := float64(wallThickness)
	return &Wall{rect: geom.NewRect(zone.Left()-t, zone.Bottom(), zone.Width+2*t, t), side: SideBottom}
}
