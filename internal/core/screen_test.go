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

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorGreen)
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected X in green", got)
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

func TestScreenWideRune(t *testing.T) {
	s := NewScreen(6, 1)

	n := s.DrawText(0, 0, "a🌸b")
	if n != 4 {
		t.Errorf("DrawText returned %d columns, expected 4", n)
	}
	if s.Get(1, 0) != '🌸' {
		t.Errorf("Get(1, 0) = %q, expected flower", s.Get(1, 0))
	}
	if s.Get(2, 0) != 0 {
		t.Errorf("Get(2, 0) = %q, expected continuation cell", s.Get(2, 0))
	}
	if s.Get(3, 0) != 'b' {
		t.Errorf("Get(3, 0) = %q, expected 'b'", s.Get(3, 0))
	}
	if got := s.Row(0); got != "a🌸b  " {
		t.Errorf("Row(0) = %q, expected %q", got, "a🌸b  ")
	}
}

func TestScreenWideRuneClippedAtEdge(t *testing.T) {
	s := NewScreen(3, 1)

	s.DrawText(2, 0, "🌸")
	if s.Get(2, 0) != ' ' {
		t.Errorf("wide rune in last column should become a space, got %q", s.Get(2, 0))
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColor(x, y, 'X', ColorPink)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)

	s.DrawTextCentered(0, "ab", ColorYellow)
	if got := s.Row(0); got != "    ab    " {
		t.Errorf("Row(0) = %q, expected centered text", got)
	}
	if s.GetCell(4, 0).Color != ColorYellow {
		t.Error("centered text should keep its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)

	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("DrawBox result:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.FillRect(NewRect(1, 0, 2, 2))

	if got := s.String(); got != "a  d\ne  h" {
		t.Errorf("FillRect result = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(5, 5, 'X')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("After Resize, got %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("Resize should discard content")
	}
}
