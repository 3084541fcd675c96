package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille pixel grid with a colour per cell and a text overlay
// that replaces the braille glyph wherever it is set.
type Canvas struct {
	Width, Height int
	Grid          [][]rune

	// Pen is the colour applied to cells touched by Set.
	Pen string

	colors  [][]string
	overlay [][]rune
	ink     [][]string
}

func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &Canvas{
		Width:   w,
		Height:  h,
		Grid:    make([][]rune, h),
		colors:  make([][]string, h),
		overlay: make([][]rune, h),
		ink:     make([][]string, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.colors[i] = make([]string, w)
		c.overlay[i] = make([]rune, w)
		c.ink[i] = make([]string, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	c.colors[row][col] = c.Pen
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.colors[i][j] = ""
			c.overlay[i][j] = 0
			c.ink[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle lights every sub-pixel within r of (cx, cy). A radius below one
// still lights the centre.
func (c *Canvas) FillCircle(cx, cy, r int) {
	if r < 1 {
		c.Set(cx, cy)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

// Text writes s on the overlay starting at cell (col, row). Cells that fall
// off the canvas are dropped.
func (c *Canvas) Text(col, row int, s, color string) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.Width {
			c.overlay[row][col] = r
			c.ink[row][col] = color
		}
		col++
	}
}

// cell returns the glyph and colour shown at (col, row).
func (c *Canvas) cell(col, row int) (rune, string) {
	if r := c.overlay[row][col]; r != 0 {
		return r, c.ink[row][col]
	}
	return c.Grid[row][col], c.colors[row][col]
}

// Color returns the pen colour last applied to the braille dots of a cell.
func (c *Canvas) Color(col, row int) string {
	if row < 0 || row >= c.Height || col < 0 || col >= c.Width {
		return ""
	}
	return c.colors[row][col]
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row := range c.Grid {
		for col := range c.Grid[row] {
			r, _ := c.cell(col, row)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render returns the canvas with colours applied, batching runs of equal
// colour into a single style call.
func (c *Canvas) Render(background string) string {
	var b strings.Builder
	base := lipgloss.NewStyle()
	if background != "" {
		base = base.Background(lipgloss.Color(background))
	}
	for row := range c.Grid {
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := base
			if runColor != "" {
				style = style.Foreground(lipgloss.Color(runColor))
			}
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := range c.Grid[row] {
			r, color := c.cell(col, row)
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(r)
		}
		flush()
		if row < c.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
