// Package pick resolves which body, if any, lies under the pointer and
// builds the tooltip payload for it.
package pick

import (
	"fmt"
	"strconv"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/scene"
)

// Viewport is the drawable area in the host's pixel units.
type Viewport struct {
	Width, Height float64
}

type Point struct {
	X, Y float64
}

// DefaultBias places a browser tooltip above and to the left of the body.
var DefaultBias = Point{X: -50, Y: -70}

// Selection is the outcome of one picking query. The zero value is "no
// selection".
type Selection struct {
	Hit    bool
	Body   *orbit.Body
	Name   string
	Radius float64
	Speed  string
	Anchor Point
}

// Lines returns the tooltip text, one entry per line.
func (s Selection) Lines() []string {
	if !s.Hit {
		return nil
	}
	return []string{
		s.Name,
		"Radius: " + strconv.FormatFloat(s.Radius, 'f', -1, 64) + " AU",
		"Speed: " + s.Speed,
	}
}

type Resolver struct {
	Viewport Viewport
	Bias     Point

	caster scene.Raycaster
}

func NewResolver(vp Viewport, bias Point) *Resolver {
	return &Resolver{Viewport: vp, Bias: bias}
}

// Resolve casts a ray through pointer (NDC) and maps the nearest intersected
// scene handle back to its body. Bodies whose handle cannot be intersected
// are not pickable.
func (r *Resolver) Resolve(pointer scene.Vec2, cam *scene.Camera, bodies []*orbit.Body) Selection {
	owners := make(map[scene.Intersectable]*orbit.Body, len(bodies))
	objs := make([]scene.Intersectable, 0, len(bodies))
	for _, b := range bodies {
		h, ok := b.Handle().(scene.Intersectable)
		if !ok {
			continue
		}
		owners[h] = b
		objs = append(objs, h)
	}

	r.caster.SetFromCamera(pointer, cam)
	hits := r.caster.IntersectObjects(objs)
	if len(hits) == 0 {
		return Selection{}
	}
	body, ok := owners[hits[0].Object]
	if !ok {
		return Selection{}
	}

	ndc := cam.Project(body.Position())
	screen := FromNDC(scene.Vec2{X: ndc.X, Y: ndc.Y}, r.Viewport)
	return Selection{
		Hit:    true,
		Body:   body,
		Name:   body.Name(),
		Radius: body.Radius(),
		Speed:  fmt.Sprintf("%.3f", body.CurrentSpeed()),
		Anchor: Point{X: screen.X + r.Bias.X, Y: screen.Y + r.Bias.Y},
	}
}

// FromNDC maps normalized device coordinates to viewport pixels, y down.
func FromNDC(ndc scene.Vec2, vp Viewport) Point {
	return Point{
		X: (ndc.X + 1) / 2 * vp.Width,
		Y: (1 - ndc.Y) / 2 * vp.Height,
	}
}

// ToNDC is the inverse of FromNDC.
func ToNDC(p Point, vp Viewport) scene.Vec2 {
	return scene.Vec2{
		X: p.X/vp.Width*2 - 1,
		Y: -(p.Y/vp.Height)*2 + 1,
	}
}

// PointerFromCell maps the centre of a terminal cell to NDC.
func PointerFromCell(col, row, cols, rows int) scene.Vec2 {
	return ToNDC(Point{X: float64(col) + 0.5, Y: float64(row) + 0.5}, Viewport{Width: float64(cols), Height: float64(rows)})
}
