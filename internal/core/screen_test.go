package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", s.Width(), s.Height())
	}
	s.Set(0, 0, 'X') // must not panic
	if s.String() != "" {
		t.Errorf("empty screen String() = %q", s.String())
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", got)
	}

	s.Set(5, 5, 'Y')
	if got := s.GetCell(5, 5); got.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", got.Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillColored('#', ColorBlue)
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(7, 1, "Hello", ColorGreen)

	if s.Row(1) != "       Hel" {
		t.Errorf("DrawText should clip, row = %q", s.Row(1))
	}
	if s.GetCell(8, 1).Color != ColorGreen {
		t.Error("DrawTextColored should color every rune")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawText(0, 0, "█▓x")
	if s.Get(1, 0) != '▓' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte runes should occupy one cell each, row = %q", s.Row(0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
		{3, 1, '─'},
		{1, 2, '│'},
		{3, 2, ' '},
	}
	for _, tc := range tests {
		if got := s.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		cells          [][2]int
	}{
		{"horizontal", 1, 1, 4, 1, [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}}},
		{"vertical up", 2, 4, 2, 1, [][2]int{{2, 4}, {2, 3}, {2, 2}, {2, 1}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single cell", 5, 5, 5, 5, [][2]int{{5, 5}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 8)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '*', ColorYellow)
			for _, c := range tc.cells {
				if s.Get(c[0], c[1]) != '*' {
					t.Errorf("expected '*' at (%d, %d)", c[0], c[1])
				}
			}
			if n := strings.Count(s.String(), "*"); n != len(tc.cells) {
				t.Errorf("line drew %d cells, expected %d", n, len(tc.cells))
			}
		})
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawHLine(2, 2, 5, '-', ColorGray)

	for x := 2; x < 7; x++ {
		if c := s.GetCell(x, 2); c.Rune != '-' || c.Color != ColorGray {
			t.Errorf("DrawHLine: expected gray '-' at (%d, 2), got %+v", x, c)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorCyan)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("Resize should preserve colors")
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
