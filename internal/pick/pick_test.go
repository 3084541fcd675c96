package pick

import (
	"math"
	"testing"

	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/scene"
)

func setup() (*scene.Camera, []*orbit.Body) {
	cam := scene.NewCamera(35, 1600.0/900.0, 0.1, 1000)
	cam.Position = scene.Vec3{X: 50, Y: 30, Z: 100}
	cam.LookAt(scene.Vec3{})

	mk := func(name string, size, radius, angle, speed float64) *orbit.Body {
		m := scene.NewSphere(name, size, "")
		b := orbit.NewBody(name, radius, angle, orbit.SpeedFunc(func() float64 { return speed }), m)
		b.Sync()
		return b
	}
	return cam, []*orbit.Body{
		mk("Mercury", 0.5, 8, 0.3, 0.02),
		mk("Earth", 1.0, 15, 2.0, 0.012),
		mk("Jupiter", 2.5, 25, 4.0, 0.007),
	}
}

func TestResolveHitsProjectedBody(t *testing.T) {
	cam, bodies := setup()
	r := NewResolver(Viewport{Width: 1600, Height: 900}, DefaultBias)

	for _, b := range bodies {
		ndc := cam.Project(b.Position())
		sel := r.Resolve(scene.Vec2{X: ndc.X, Y: ndc.Y}, cam, bodies)
		if !sel.Hit {
			t.Fatalf("%s: expected hit at its projected position", b.Name())
		}
		if sel.Body != b {
			t.Errorf("%s: resolved %s instead", b.Name(), sel.Name)
		}

		wantX := (ndc.X+1)/2*1600 - 50
		wantY := (1-ndc.Y)/2*900 - 70
		if math.Abs(sel.Anchor.X-wantX) > 1e-9 || math.Abs(sel.Anchor.Y-wantY) > 1e-9 {
			t.Errorf("%s: anchor %v, expected (%f, %f)", b.Name(), sel.Anchor, wantX, wantY)
		}
	}
}

func TestResolvePayload(t *testing.T) {
	cam, bodies := setup()
	r := NewResolver(Viewport{Width: 1600, Height: 900}, DefaultBias)
	earth := bodies[1]
	ndc := cam.Project(earth.Position())

	sel := r.Resolve(scene.Vec2{X: ndc.X, Y: ndc.Y}, cam, bodies)
	lines := sel.Lines()
	want := []string{"Earth", "Radius: 15 AU", "Speed: 0.012"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestResolveMiss(t *testing.T) {
	cam, bodies := setup()
	r := NewResolver(Viewport{Width: 1600, Height: 900}, DefaultBias)
	sel := r.Resolve(scene.Vec2{X: 0.98, Y: 0.98}, cam, bodies)
	if sel.Hit {
		t.Errorf("expected no selection, got %s", sel.Name)
	}
	if sel.Lines() != nil {
		t.Error("expected no tooltip lines")
	}
}

func TestResolveNearestWins(t *testing.T) {
	cam := scene.NewCamera(35, 1, 0.1, 1000)
	cam.Position = scene.Vec3{X: 100}
	cam.LookAt(scene.Vec3{})

	near := orbit.NewBody("near", 20, 0, orbit.SpeedFunc(func() float64 { return 0.01 }), scene.NewSphere("near", 1, ""))
	far := orbit.NewBody("far", 5, 0, orbit.SpeedFunc(func() float64 { return 0.01 }), scene.NewSphere("far", 3, ""))
	near.Sync()
	far.Sync()

	r := NewResolver(Viewport{Width: 100, Height: 100}, Point{})
	sel := r.Resolve(scene.Vec2{}, cam, []*orbit.Body{far, near})
	if sel.Body != near {
		t.Errorf("expected nearer body, got %s", sel.Name)
	}
}

func TestNDCRoundTrip(t *testing.T) {
	vp := Viewport{Width: 1920, Height: 1080}
	for _, p := range []Point{{0, 0}, {960, 540}, {1919, 1}, {13.5, 1000.25}} {
		back := FromNDC(ToNDC(p, vp), vp)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
			t.Errorf("round trip of %v gave %v", p, back)
		}
	}
	centre := ToNDC(Point{960, 540}, vp)
	if centre.X != 0 || centre.Y != 0 {
		t.Errorf("expected centre at origin, got %v", centre)
	}
	top := ToNDC(Point{0, 0}, vp)
	if top.X != -1 || top.Y != 1 {
		t.Errorf("expected top-left at (-1, 1), got %v", top)
	}
}

func TestPointerFromCell(t *testing.T) {
	p := PointerFromCell(0, 0, 2, 2)
	if p.X != -0.5 || p.Y != 0.5 {
		t.Errorf("expected (-0.5, 0.5), got %v", p)
	}
}
