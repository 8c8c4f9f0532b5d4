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
			if c := s.GetCell(x, y); c != blank {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenPaintKeepsRunesOutside(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(0, 0, 'Z')
	s.Paint(NewRect(2, 2, 3, 3), ColorWhite)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			c := s.GetCell(x, y)
			if c.Bg != ColorWhite || c.Rune != ' ' {
				t.Errorf("Paint: expected white space at (%d, %d), got %+v", x, y, c)
			}
		}
	}
	if s.Get(0, 0) != 'Z' {
		t.Error("Paint should not affect outside area")
	}
	if s.GetCell(5, 5).Bg != ColorDefault {
		t.Error("Paint should not affect outside area")
	}
}

func TestScreenPaintClipped(t *testing.T) {
	s := NewScreen(4, 4)
	// Must not panic when partially or fully outside.
	s.Paint(NewRect(-2, -2, 4, 4), ColorBlue)
	s.Paint(NewRect(10, 10, 4, 4), ColorBlue)

	if s.GetCell(0, 0).Bg != ColorBlue || s.GetCell(1, 1).Bg != ColorBlue {
		t.Error("visible part of a clipped rect should be painted")
	}
	if s.GetCell(2, 2).Bg != ColorDefault {
		t.Error("cells past the clipped rect should be untouched")
	}
}

func TestScreenStampKeepsBackground(t *testing.T) {
	s := NewScreen(5, 5)
	s.Paint(NewRect(0, 0, 5, 5), ColorLightBlue)
	s.Stamp(1, 1, '[', ColorDarkBlue)

	c := s.GetCell(1, 1)
	if c.Rune != '[' || c.Fg != ColorDarkBlue || c.Bg != ColorLightBlue {
		t.Errorf("Stamp produced %+v", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Paint(s.Bounds(), ColorRed)
	s.DrawText(0, 0, "XXXX")

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorBlack)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Fg != ColorBlack {
		t.Error("box should use the given foreground color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "abc" || lines[1] != "de " {
		t.Errorf("String() = %q", s.String())
	}
	if s.Row(1) != "de " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
	if s.Row(9) != "   " {
		t.Errorf("out of range Row should be blank, got %q", s.Row(9))
	}
}

