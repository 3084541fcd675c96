package frame

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/pick"
	"github.com/san-kum/orrery/internal/scene"
)

// Frame is what one tick submitted for rendering.
type Frame struct {
	Seq       uint64
	Paused    bool
	Theme     Theme
	Selection pick.Selection
}

// CameraUpdater applies pending camera motion, typically damped orbit
// controls.
type CameraUpdater interface {
	Update() bool
}

type Renderer interface {
	Render(sc *scene.Scene, cam *scene.Camera, f Frame)
}

// RenderFunc adapts a function to a Renderer.
type RenderFunc func(sc *scene.Scene, cam *scene.Camera, f Frame)

func (fn RenderFunc) Render(sc *scene.Scene, cam *scene.Camera, f Frame) { fn(sc, cam, f) }

// Discard renders nothing.
var Discard Renderer = RenderFunc(func(*scene.Scene, *scene.Camera, Frame) {})

// Resizer is implemented by renderers that track the viewport size.
type Resizer interface {
	Resize(width, height int)
}

// Recorder observes driver activity.
type Recorder interface {
	FrameStepped(paused bool)
	PickResolved(hit bool)
	SpeedFellBack(body string)
}

type nopRecorder struct{}

func (nopRecorder) FrameStepped(bool)    {}
func (nopRecorder) PickResolved(bool)    {}
func (nopRecorder) SpeedFellBack(string) {}

// Driver runs one frame tick at a time.
type Driver struct {
	state    *State
	scene    *scene.Scene
	bodies   []*orbit.Body
	camera   *scene.Camera
	controls CameraUpdater
	resolver *pick.Resolver
	renderer Renderer

	rec  Recorder
	log  *logging.Logger
	warn rate.Sometimes
	seq  uint64
	last Frame
}

func NewDriver(state *State, sc *scene.Scene, bodies []*orbit.Body, cam *scene.Camera, controls CameraUpdater, resolver *pick.Resolver, renderer Renderer) *Driver {
	return &Driver{
		state:    state,
		scene:    sc,
		bodies:   bodies,
		camera:   cam,
		controls: controls,
		resolver: resolver,
		renderer: renderer,
		rec:      nopRecorder{},
		log:      logging.Discard(),
		warn:     rate.Sometimes{First: 1, Interval: 5 * time.Second},
	}
}

func (d *Driver) SetRecorder(r Recorder)      { d.rec = r }
func (d *Driver) SetLogger(l *logging.Logger) { d.log = l }
func (d *Driver) SetRenderer(r Renderer)      { d.renderer = r }
func (d *Driver) State() *State               { return d.state }
func (d *Driver) Bodies() []*orbit.Body       { return d.bodies }
func (d *Driver) Last() Frame                 { return d.last }

// Step runs one tick: advance orbits unless paused, update the camera,
// resolve picking against the new positions, then render.
func (d *Driver) Step() Frame {
	paused := d.state.Paused()
	for _, b := range d.bodies {
		if orbit.Advance(b, paused) {
			d.rec.SpeedFellBack(b.Name())
			name := b.Name()
			d.warn.Do(func() {
				d.log.Warn("unusable speed for %s, holding %.3f", name, b.CurrentSpeed())
			})
		}
	}

	if d.controls != nil {
		d.controls.Update()
	}

	var sel pick.Selection
	if p := d.state.Pointer; p.Inside {
		sel = d.resolver.Resolve(scene.Vec2{X: p.X, Y: p.Y}, d.camera, d.bodies)
		d.rec.PickResolved(sel.Hit)
	}

	d.seq++
	f := Frame{Seq: d.seq, Paused: paused, Theme: d.state.Theme, Selection: sel}
	d.renderer.Render(d.scene, d.camera, f)
	d.rec.FrameStepped(paused)
	d.last = f
	return f
}

// Resize passes a new viewport size through to the camera, the resolver and
// the renderer.
func (d *Driver) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	d.camera.SetAspect(float64(width) / float64(height))
	d.resolver.Viewport = pick.Viewport{Width: float64(width), Height: float64(height)}
	if r, ok := d.renderer.(Resizer); ok {
		r.Resize(width, height)
	}
	d.log.Debug("viewport resized to %dx%d", width, height)
}
