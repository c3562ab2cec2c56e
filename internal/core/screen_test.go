package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := range s.Height() {
		if row := s.Row(y); row != strings.Repeat(" ", 80) {
			t.Fatalf("row %d of a new screen = %q, expected spaces", y, row)
		}
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)

	tests := []struct {
		name string
		x, y int
	}{
		{"left", -1, 0},
		{"right", 10, 0},
		{"above", 0, -1},
		{"below", 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetColored(tt.x, tt.y, 'X', ColorRed) // must not panic
			if got := s.GetCell(tt.x, tt.y); got != (Cell{Rune: ' '}) {
				t.Errorf("GetCell(%d, %d) = %+v, expected uncolored space", tt.x, tt.y, got)
			}
		})
	}
	if s.String() != NewScreen(10, 10).String() {
		t.Error("out of bounds writes should leave the screen untouched")
	}
}

func TestScreenSetColoredAndClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, '*', ColorYellow)

	if cell := s.GetCell(1, 1); cell.Rune != '*' || cell.Color != ColorYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected yellow '*'", cell)
	}
	if s.Get(1, 1) != '*' {
		t.Errorf("Get(1, 1) = %q, expected '*'", s.Get(1, 1))
	}

	s.Clear()
	if cell := s.GetCell(1, 1); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear GetCell(1, 1) = %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		x    int
		text string
		want string
	}{
		{"inside", 2, "Hello", "  Hello   "},
		{"clipped right", 7, "Hello", "       Hel"},
		{"clipped left", -3, "Hello", "lo        "},
		{"multi-byte runes", 0, "▲|▼", "▲|▼       "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawTextColored(tt.x, 0, tt.text, ColorWhite)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	// 2 runes in 20 columns start at column 9
	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("DrawTextCentered: row = %q", s.Row(2))
	}

	s.DrawTextCentered(3, "▲▲")
	if s.Get(9, 3) != '▲' {
		t.Errorf("centering should count runes, not bytes: row = %q", s.Row(3))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorRed)

	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			cell := s.GetCell(x, y)
			if inside && (cell.Rune != '#' || cell.Color != ColorRed) {
				t.Errorf("(%d, %d) = %+v, expected red '#'", x, y, cell)
			}
			if !inside && cell.Rune != ' ' {
				t.Errorf("(%d, %d) = %q, expected space outside the rect", x, y, cell.Rune)
			}
		}
	}
}

func TestScreenDrawRectClipped(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(NewRect(-2, 2, 10, 10), '█', ColorMagenta)

	want := []string{"    ", "    ", "████", "████"}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4))

	want := []string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("out of bounds Row = %q, expected spaces", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorCyan)
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("after resize size = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if row := s.Row(0); row != "Hello   " {
		t.Errorf("row 0 = %q, expected the top-left content kept", row)
	}

	s.Resize(15, 8)
	if row := s.Row(0); !strings.HasPrefix(row, "Hello") {
		t.Errorf("row 0 = %q after enlarging", row)
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("resize should keep colors")
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("row 5 = %q, expected content cut by the shrink to stay gone", s.Row(5))
	}
}
