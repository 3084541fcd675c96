package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	c.Unset(0, 0)
	if c.Grid[0][0] != blank {
		t.Errorf("expected blank, got %U", c.Grid[0][0])
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)
	if strings.Trim(c.String(), "⠀\n") != "" {
		t.Error("expected nothing drawn")
	}
}

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.Pen = "#ff0000"
	c.FillCircle(10, 10, 3)

	lit := 0
	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			col, row := x/2, y/4
			if c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0 {
				lit++
			}
		}
	}
	// Lattice points within radius 3.
	if lit != 29 {
		t.Errorf("expected 29 lit sub-pixels, got %d", lit)
	}
	if _, color := c.cell(5, 2); color != "#ff0000" {
		t.Errorf("expected pen colour, got %q", color)
	}
}

func TestCanvasTextOverlay(t *testing.T) {
	c := NewCanvas(6, 2)
	c.Set(0, 0)
	c.Text(0, 0, "Earth!!", "#ffffff")
	lines := strings.Split(c.String(), "\n")
	if lines[0] != "Earth!" {
		t.Errorf("expected clipped overlay, got %q", lines[0])
	}
	c.Clear()
	if strings.Contains(c.String(), "E") {
		t.Error("expected overlay cleared")
	}
}

func TestSliderBar(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{0, "[----]"},
		{0.5, "[==--]"},
		{1, "[====]"},
		{2, "[====]"},
		{-1, "[----]"},
	}
	for _, tt := range tests {
		if got := SliderBar(tt.frac, 4); got != tt.want {
			t.Errorf("SliderBar(%v) = %q, want %q", tt.frac, got, tt.want)
		}
	}
}

func TestBlend(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0.5); got != "#808080" {
		t.Errorf("expected #808080, got %s", got)
	}
	if got := Blend("#123456", "#ffffff", 0); got != "#123456" {
		t.Errorf("expected unchanged colour, got %s", got)
	}
}
