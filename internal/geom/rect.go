package geom

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Position Vector
	Width    float64
	Height   float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Position: Vector{X: x, Y: y}, Width: w, Height: h}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.Position.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Position.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Position.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Position.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector {
	return Vector{X: r.Position.X + r.Width/2, Y: r.Position.Y + r.Height/2}
}

// Size returns width and height packed as a vector.
func (r Rect) Size() Vector {
	return Vector{X: r.Width, Y: r.Height}
}

// Contains reports whether p lies inside r. Edges on the top and left are
// inclusive, bottom and right exclusive.
func (r Rect) Contains(p Vector) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Intersects reports whether r and o share a non-empty area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Left() >= o.Right() || o.Left() >= r.Right() {
		return false
	}
	if r.Top() >= o.Bottom() || o.Top() >= r.Bottom() {
		return false
	}
	return true
}

// Overlap returns the penetration of r into o along each axis.
// Non-positive components mean the rectangles are apart on that axis.
func (r Rect) Overlap(o Rect) Vector {
	return Vector{
		X: math.Min(r.Right(), o.Right()) - math.Max(r.Left(), o.Left()),
		Y: math.Min(r.Bottom(), o.Bottom()) - math.Max(r.Top(), o.Top()),
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	left := math.Min(r.Left(), o.Left())
	top := math.Min(r.Top(), o.Top())
	right := math.Max(r.Right(), o.Right())
	bottom := math.Max(r.Bottom(), o.Bottom())
	return NewRect(left, top, right-left, bottom-top)
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vector) Rect {
	return Rect{Position: r.Position.Add(d), Width: r.Width, Height: r.Height}
}

// Expand grows r by w horizontally and h vertically, keeping its center.
func (r Rect) Expand(w, h float64) Rect {
	return NewRect(r.Position.X-w/2, r.Position.Y-h/2, r.Width+w, r.Height+h)
}
