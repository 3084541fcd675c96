package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orrery/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG format, one circle per lit
// dot in the colour of its cell. Overlay text is not exported.
func CanvasToSVG(canvas *viz.Canvas, scale float64, background, fallback string) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := canvas.Color(col, row)
			if fill == "" {
				fill = fallback
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill)
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TraceToSVG draws the orbital path of a trace in the x/z plane, viewed from
// above, with the sun marked at the origin.
func TraceToSVG(t *Trace, size int, strokeColor string) string {
	if t == nil || len(t.Samples) < 2 {
		return ""
	}

	extent := 0.0
	for _, s := range t.Samples {
		extent = max(extent, abs(s.X), abs(s.Z))
	}
	if extent == 0 {
		extent = 1
	}
	extent *= 1.1
	half := float64(size) / 2
	toSVG := func(x, z float64) (float64, float64) {
		return half + x/extent*half, half - z/extent*half
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<circle cx="%.1f" cy="%.1f" r="3" fill="#fdb813"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		size, size, size, size, half, half, strokeColor)

	for i, s := range t.Samples {
		x, y := toSVG(s.X, s.Z)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
