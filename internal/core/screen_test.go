package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)
	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 80)
	for y := range s.Height() {
		if s.Row(y) != want {
			t.Fatalf("row %d is not blank: %q", y, s.Row(y))
		}
	}
}

func TestScreenClipping(t *testing.T) {
	s := NewScreen(10, 4)
	s.Set(5, 2, 'X')
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 4}} {
		s.Set(p[0], p[1], 'A')
		if got := s.Get(p[0], p[1]); got != ' ' {
			t.Errorf("Get(%d, %d) = %q outside the screen", p[0], p[1], got)
		}
	}
	if s.Get(5, 2) != 'X' {
		t.Errorf("Get(5, 2) = %q, want X", s.Get(5, 2))
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out-of-bounds writes leaked into the buffer")
	}

	s.DrawText(7, 0, "hello")
	if got := s.Row(0); got != "       hel" {
		t.Errorf("clipped text row = %q", got)
	}
}

func TestScreenClearFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill('#')
	if s.String() != "###\n###" {
		t.Errorf("Fill: %q", s.String())
	}
	s.SetColored(1, 1, '*', ColorRed)
	s.Clear()
	if s.String() != "   \n   " || s.GetCell(1, 1).Color != ColorDefault {
		t.Errorf("Clear left content: %q", s.String())
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(11, 2)
	s.DrawTextCentered(0, "abc")
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("centered row = %q", got)
	}

	s.DrawTextColored(0, 1, "é●x", ColorCyan)
	if s.Get(1, 1) != '●' || s.Get(2, 1) != 'x' {
		t.Errorf("multi-byte runes should take one column each: %q", s.Row(1))
	}
	if s.GetCell(0, 1).Color != ColorCyan {
		t.Error("DrawTextColored lost the color")
	}
}

func TestScreenShapes(t *testing.T) {
	s := NewScreen(6, 5)
	s.DrawBox(NewRect(0, 0, 6, 4))
	s.DrawHLine(1, 4, 3, '=')

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
		" ===  ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("row %d = %q, want %q", y, got, row)
		}
	}

	s.Clear()
	s.DrawRectColored(NewRect(1, 1, 2, 2), '▓', ColorGray)
	s.DrawVLine(5, 0, 10, '|')
	if s.Get(1, 1) != '▓' || s.Get(2, 2) != '▓' || s.Get(3, 1) != ' ' {
		t.Errorf("DrawRect:\n%s", s.String())
	}
	if s.GetCell(2, 1).Color != ColorGray {
		t.Error("DrawRectColored lost the color")
	}
	if s.Get(5, 4) != '|' {
		t.Error("DrawVLine should clip at the bottom")
	}

	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 1))
	if s.Get(0, 0) != ' ' {
		t.Error("a box smaller than 2x2 should draw nothing")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if s.String() != "ab\nef\n  " {
		t.Errorf("shrink width: %q", s.String())
	}

	s.Resize(5, 1)
	if s.String() != "ab   " {
		t.Errorf("grow width: %q", s.String())
	}
	if s.Row(7) != "     " {
		t.Error("Row outside the screen should be blank")
	}
}
