package orrery

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/frame"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/pick"
)

func buildDefault(t *testing.T) *System {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 42
	sys, err := Build(cfg, Options{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return sys
}

func TestBuildOneBodyPerPlanet(t *testing.T) {
	sys := buildDefault(t)

	if len(sys.Bodies) != 8 || len(sys.Scene.Planets) != 8 || len(sys.Panel.Sliders()) != 8 {
		t.Fatalf("expected 8 bodies, meshes and sliders")
	}
	for i, b := range sys.Bodies {
		if b.Handle() != sys.Scene.Planets[i] {
			t.Errorf("body %s not bound to its mesh", b.Name())
		}
		if sys.Scene.Planets[i].Center != b.Position() {
			t.Errorf("mesh %s not synced to orbit", b.Name())
		}
	}
	if len(sys.Scene.Stars.Positions) != config.DefaultStars {
		t.Errorf("expected %d stars, got %d", config.DefaultStars, len(sys.Scene.Stars.Positions))
	}
	if sys.State.Theme != frame.Dark || sys.State.Paused() {
		t.Error("expected running dark state")
	}
}

func TestBuildSeedIsDeterministic(t *testing.T) {
	a := buildDefault(t)
	b := buildDefault(t)
	for i := range a.Bodies {
		if a.Bodies[i].Angle() != b.Bodies[i].Angle() {
			t.Errorf("angle of %s differs across equal seeds", a.Bodies[i].Name())
		}
		if a.Seed != 42 {
			t.Errorf("expected seed 42, got %d", a.Seed)
		}
		if a.Bodies[i].Angle() < 0 || a.Bodies[i].Angle() >= 2*math.Pi {
			t.Errorf("initial angle out of range: %f", a.Bodies[i].Angle())
		}
	}
}

func TestBuildRejectsInvalid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bodies = nil
	if _, err := Build(cfg, Options{}); !errors.Is(err, config.ErrNoBodies) {
		t.Errorf("expected ErrNoBodies, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Theme = "sepia"
	if _, err := Build(cfg, Options{}); !errors.Is(err, frame.ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Stars = -1
	if _, err := Build(cfg, Options{}); !errors.Is(err, config.ErrInvalidStars) {
		t.Errorf("expected ErrInvalidStars, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Camera.Position = [3]float64{}
	if _, err := Build(cfg, Options{}); !errors.Is(err, config.ErrInvalidCamera) {
		t.Errorf("expected ErrInvalidCamera, got %v", err)
	}
}

func TestBuildDefaultsTooltipBias(t *testing.T) {
	sys := buildDefault(t)
	if sys.Resolver.Bias != pick.DefaultBias {
		t.Errorf("expected default bias %v, got %v", pick.DefaultBias, sys.Resolver.Bias)
	}

	cfg := config.DefaultConfig()
	cfg.Seed = 42
	custom := pick.Point{X: 6, Y: -12}
	sys, err := Build(cfg, Options{Bias: custom})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if sys.Resolver.Bias != custom {
		t.Errorf("expected bias %v, got %v", custom, sys.Resolver.Bias)
	}
}

func TestSliderDrivesBody(t *testing.T) {
	sys := buildDefault(t)
	earth, slider, err := sys.Body("Earth")
	if err != nil {
		t.Fatal(err)
	}
	start := earth.Angle()

	slider.Set("0.05")
	sys.Driver.Step()

	if got := earth.Angle() - start; math.Abs(got-0.05) > 1e-12 {
		t.Errorf("expected advance of 0.05, got %f", got)
	}
	if _, _, err := sys.Body("Pluto"); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("expected ErrUnknownBody, got %v", err)
	}
}

func TestRunCountsFrames(t *testing.T) {
	col := metrics.NewCollector()
	cfg := config.GetPreset("inner")
	cfg.Seed = 1
	sys, err := Build(cfg, Options{Metrics: col, Viewport: pick.Viewport{Width: 160, Height: 96}})
	if err != nil {
		t.Fatal(err)
	}

	if err := sys.Run(context.Background(), frame.TickerHost{Frames: 5}); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if sys.Driver.Last().Seq != 5 {
		t.Errorf("expected 5 frames, got %d", sys.Driver.Last().Seq)
	}
	expected := `
# HELP orrery_bodies Bodies in the simulation
# TYPE orrery_bodies gauge
orrery_bodies 4
`
	if err := testutil.GatherAndCompare(col.Registry(), strings.NewReader(expected), "orrery_bodies"); err != nil {
		t.Error(err)
	}
}
