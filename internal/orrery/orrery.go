// Package orrery assembles a runnable system from a configuration: scene
// meshes, speed sliders, orbiting bodies, camera, controls, picking and the
// frame driver.
package orrery

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/control"
	"github.com/san-kum/orrery/internal/frame"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/pick"
	"github.com/san-kum/orrery/internal/scene"
)

// Options carries the collaborators Build does not derive from the config.
// Zero values are usable: a zero Bias means pick.DefaultBias and a zero
// Viewport means 800x600.
type Options struct {
	Logger   *logging.Logger
	Metrics  *metrics.Collector
	Renderer frame.Renderer
	Viewport pick.Viewport
	Bias     pick.Point
}

// ErrUnknownBody is returned when a lookup names no configured body.
var ErrUnknownBody = errors.New("orrery: unknown body")

type System struct {
	Config   *config.Config
	Seed     int64
	State    *frame.State
	Scene    *scene.Scene
	Camera   *scene.Camera
	Controls *scene.OrbitControls
	Panel    *control.Panel
	Bodies   []*orbit.Body
	Resolver *pick.Resolver
	Driver   *frame.Driver
}

// Build validates cfg and wires one body per configured planet. A zero seed
// draws one from the clock.
func Build(cfg *config.Config, opts Options) (*System, error) {
	if cfg == nil {
		return nil, config.ErrNoBodies
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := frame.ParseTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	vp := opts.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = pick.Viewport{Width: 800, Height: 600}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sc := &scene.Scene{
		Sun:   scene.NewSphere("Sun", cfg.Sun.Size, cfg.Sun.Color),
		Stars: scene.NewStarField(cfg.Stars, config.DefaultStarField, rng),
	}

	ctl := cfg.Controls
	sliders := make([]*control.Slider, 0, len(cfg.Bodies))
	bodies := make([]*orbit.Body, 0, len(cfg.Bodies))
	for _, bc := range cfg.Bodies {
		mesh := scene.NewSphere(bc.Name, bc.Size, bc.Color)
		sc.Planets = append(sc.Planets, mesh)

		slider := control.NewSlider(bc.Name, ctl.Min, ctl.Max, ctl.Step, bc.Speed)
		sliders = append(sliders, slider)

		b := orbit.NewBody(bc.Name, bc.Radius, rng.Float64()*2*math.Pi, slider, mesh)
		b.Sync()
		bodies = append(bodies, b)
	}

	cam := scene.NewCamera(cfg.Camera.FOV, vp.Width/vp.Height, cfg.Camera.Near, cfg.Camera.Far)
	p := cfg.Camera.Position
	cam.Position = scene.Vec3{X: p[0], Y: p[1], Z: p[2]}
	cam.LookAt(scene.Vec3{})

	controls := scene.NewOrbitControls(cam)
	controls.DampingFactor = cfg.Camera.Damping
	controls.EnableDamping = cfg.Camera.Damping > 0

	bias := opts.Bias
	if bias == (pick.Point{}) {
		bias = pick.DefaultBias
	}
	resolver := pick.NewResolver(vp, bias)
	renderer := opts.Renderer
	if renderer == nil {
		renderer = frame.Discard
	}

	state := frame.NewState(theme)
	driver := frame.NewDriver(state, sc, bodies, cam, controls, resolver, renderer)
	driver.SetLogger(log)
	if opts.Metrics != nil {
		driver.SetRecorder(opts.Metrics)
		opts.Metrics.SetBodies(len(bodies))
	}

	log.Info("built system: %d bodies, seed %d, theme %s", len(bodies), seed, theme)

	return &System{
		Config:   cfg,
		Seed:     seed,
		State:    state,
		Scene:    sc,
		Camera:   cam,
		Controls: controls,
		Panel:    control.NewPanel(sliders...),
		Bodies:   bodies,
		Resolver: resolver,
		Driver:   driver,
	}, nil
}

// Body returns the named body and its slider.
func (s *System) Body(name string) (*orbit.Body, *control.Slider, error) {
	for i, b := range s.Bodies {
		if b.Name() == name {
			return b, s.Panel.Sliders()[i], nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}

// Run drives the system headlessly on host until it stops.
func (s *System) Run(ctx context.Context, host frame.Host) error {
	return host.Run(ctx, func() { s.Driver.Step() })
}
