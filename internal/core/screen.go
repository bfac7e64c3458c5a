package core

import "strings"

// Cell is one character position of the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a character buffer games draw into. The platform turns it into
// terminal output. Drawing outside the buffer is clipped silently.
type Screen struct {
	width  int
	height int
	cells  []Cell // row-major, width*height
}

// NewScreen creates a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(max(width, 0), max(height, 0))
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Resize changes the screen size. The overlapping top-left area keeps its
// content and new cells are blank.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height && s.cells != nil {
		return
	}

	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	for y := range min(s.height, height) {
		n := min(s.width, width)
		copy(cells[y*width:y*width+n], s.cells[y*s.width:y*s.width+n])
	}
	s.width, s.height, s.cells = width, height, cells
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() { s.fill(blank) }

// Fill fills the entire screen with r.
func (s *Screen) Fill(r rune) { s.fill(Cell{Rune: r}) }

func (s *Screen) fill(c Cell) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Set places a rune with the default color.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a colored rune.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text starting at (x, y), one rune per column.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes colored text starting at (x, y).
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawRect fills r with a rune.
func (s *Screen) DrawRect(r Rect, fill rune) {
	s.DrawRectColored(r, fill, ColorDefault)
}

// DrawRectColored fills r with a colored rune.
func (s *Screen) DrawRectColored(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox draws the outline of r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1

	s.DrawHLine(r.X+1, r.Y, r.W-2, '─')
	s.DrawHLine(r.X+1, bottom, r.W-2, '─')
	s.DrawVLine(r.X, r.Y+1, r.H-2, '│')
	s.DrawVLine(right, r.Y+1, r.H-2, '│')

	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// DrawHLine draws length copies of r to the right of (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := range max(length, 0) {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws length copies of r downward from (x, y).
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := range max(length, 0) {
		s.Set(x, y+i, r)
	}
}

// String returns the buffer without colors, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)
	for y := range s.height {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns row y as a string, or spaces outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y*s.width : (y+1)*s.width] {
		runes[x] = c.Rune
	}
	return string(runes)
}
