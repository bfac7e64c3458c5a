// Package core holds the platform types shared by games and the terminal
// front end: screen buffers, input frames and runtime settings. It does not
// import Bubble Tea, so game logic stays testable on its own.
package core

// Rect is a block of screen cells.
type Rect struct {
	X, Y int // top-left cell
	W, H int
}

// NewRect creates a rectangle from its top-left cell and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the row just below the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Inset shrinks r by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}
