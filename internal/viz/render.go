package viz

import (
	"math"
	"sort"
	"strings"

	"github.com/san-kum/orrery/internal/frame"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/pick"
	"github.com/san-kum/orrery/internal/scene"
)

const ringSegments = 96

// TooltipBias offsets the tooltip from the picked body, in sub-pixels.
var TooltipBias = pick.Point{X: 6, Y: -12}

// Rasterizer draws frames onto a braille canvas. It implements
// frame.Renderer and frame.Resizer; sizes passed to Resize are in
// sub-pixels.
type Rasterizer struct {
	canvas *Canvas
	out    string
}

func NewRasterizer(cols, rows int) *Rasterizer {
	return &Rasterizer{canvas: NewCanvas(cols, rows)}
}

func (r *Rasterizer) Resize(width, height int) {
	cols, rows := width/2, height/4
	if cols == r.canvas.Width && rows == r.canvas.Height {
		return
	}
	r.canvas = NewCanvas(cols, rows)
}

// Viewport is the canvas size in sub-pixels.
func (r *Rasterizer) Viewport() pick.Viewport {
	return pick.Viewport{Width: float64(r.canvas.Width * 2), Height: float64(r.canvas.Height * 4)}
}

func (r *Rasterizer) Canvas() *Canvas { return r.canvas }

// String returns the last rendered frame.
func (r *Rasterizer) String() string { return r.out }

func (r *Rasterizer) Render(sc *scene.Scene, cam *scene.Camera, f frame.Frame) {
	th := ThemeFor(f.Theme)
	c := r.canvas
	c.Clear()
	vp := r.Viewport()

	toPixel := func(p scene.Vec3) (int, int, bool) {
		if !cam.Visible(p) {
			return 0, 0, false
		}
		ndc := cam.Project(p)
		pt := pick.FromNDC(scene.Vec2{X: ndc.X, Y: ndc.Y}, vp)
		return int(math.Floor(pt.X)), int(math.Floor(pt.Y)), true
	}

	c.Pen = string(th.Star)
	for _, p := range sc.Stars.Positions {
		if x, y, ok := toPixel(p); ok {
			c.Set(x, y)
		}
	}

	c.Pen = string(th.Orbit)
	for _, m := range sc.Planets {
		r.drawRing(math.Hypot(m.Center.X, m.Center.Z), toPixel)
	}

	meshes := sc.Meshes()
	sort.SliceStable(meshes, func(i, j int) bool {
		return cam.Depth(meshes[i].Center) > cam.Depth(meshes[j].Center)
	})
	for _, m := range meshes {
		x, y, ok := toPixel(m.Center)
		if !ok {
			continue
		}
		color := m.Color
		if color == "" {
			color = string(th.Text)
		}
		if f.Selection.Hit && f.Selection.Body.Handle() == orbit.Positioner(m) {
			color = Blend(color, string(th.Accent), 0.5)
		}
		c.Pen = color
		rad := cam.ProjectedRadius(m.Center, m.Radius) * vp.Height / 2
		c.FillCircle(x, y, int(math.Round(rad)))
	}

	r.drawTooltip(f.Selection, th)
	r.out = c.Render(string(th.Background))
}

func (r *Rasterizer) drawRing(radius float64, toPixel func(scene.Vec3) (int, int, bool)) {
	var px, py int
	prev := false
	for i := 0; i <= ringSegments; i++ {
		a := 2 * math.Pi * float64(i) / ringSegments
		x, y, ok := toPixel(orbit.Position(radius, a))
		if ok && prev {
			r.canvas.DrawLine(px, py, x, y)
		}
		px, py, prev = x, y, ok
	}
}

// drawTooltip boxes the selection's lines at its anchor, kept on-screen.
func (r *Rasterizer) drawTooltip(sel pick.Selection, th Theme) {
	lines := sel.Lines()
	if lines == nil {
		return
	}
	c := r.canvas
	inner := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > inner {
			inner = n
		}
	}
	w, h := inner+4, len(lines)+2
	col := clampInt(int(sel.Anchor.X)/2, 0, c.Width-w)
	row := clampInt(int(sel.Anchor.Y)/4, 0, c.Height-h)

	ink := string(th.TooltipText)
	c.Text(col, row, "┌"+strings.Repeat("─", w-2)+"┐", ink)
	for i, l := range lines {
		pad := strings.Repeat(" ", inner-len([]rune(l)))
		c.Text(col, row+1+i, "│ "+l+pad+" │", ink)
	}
	c.Text(col, row+h-1, "└"+strings.Repeat("─", w-2)+"┘", ink)
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
