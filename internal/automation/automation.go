// Package automation plays scripted scenarios against an orrery without a
// terminal: toggles, slider edits, pointer moves and frame runs, with
// expectations checked along the way.
package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orrery/internal/frame"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/orrery"
)

// ErrExpectation is returned when a scenario's expectation does not hold.
var ErrExpectation = errors.New("automation: expectation failed")

// Scenario defines a scripted sequence
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single action. Fields are applied in declaration order: set,
// toggle, pointer, frames, expect.
type Step struct {
	Set     map[string]string `yaml:"set,omitempty"`
	Toggle  string            `yaml:"toggle,omitempty"`
	Pointer []float64         `yaml:"pointer,omitempty"`
	Leave   bool              `yaml:"leave,omitempty"`
	Frames  int               `yaml:"frames,omitempty"`
	Expect  *Expect           `yaml:"expect,omitempty"`
}

// Expect checks the last submitted frame. An empty Selected with None unset
// is not checked.
type Expect struct {
	Selected string `yaml:"selected,omitempty"`
	None     bool   `yaml:"none,omitempty"`
	Paused   *bool  `yaml:"paused,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
}

// StepResult is the driver's last frame after a step.
type StepResult struct {
	Step     int
	Seq      uint64
	Paused   bool
	Selected string
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s has no steps", path)
	}
	return &scenario, nil
}

// RunScenario executes all steps in order and stops at the first failure.
func RunScenario(ctx context.Context, sc *Scenario, sys *orrery.System, log *logging.Logger) ([]StepResult, error) {
	if log == nil {
		log = logging.Discard()
	}
	results := make([]StepResult, 0, len(sc.Steps))

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if err := apply(ctx, sys, step); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		last := sys.Driver.Last()
		res := StepResult{Step: i + 1, Seq: last.Seq, Paused: sys.State.Paused(), Selected: last.Selection.Name}
		results = append(results, res)
		log.Debug("step %d/%d: frame %d selected %q", i+1, len(sc.Steps), res.Seq, res.Selected)

		if step.Expect != nil {
			if err := check(step.Expect, sys, last); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
	}
	return results, nil
}

func apply(ctx context.Context, sys *orrery.System, step Step) error {
	for name, value := range step.Set {
		_, slider, err := sys.Body(name)
		if err != nil {
			return err
		}
		slider.Set(value)
	}

	switch step.Toggle {
	case "":
	case "pause":
		sys.State.TogglePause()
	case "theme":
		sys.State.ToggleTheme()
	default:
		return fmt.Errorf("unknown toggle %q", step.Toggle)
	}

	switch {
	case step.Leave:
		sys.State.ClearPointer()
	case len(step.Pointer) == 2:
		sys.State.SetPointer(step.Pointer[0], step.Pointer[1])
	case len(step.Pointer) != 0:
		return fmt.Errorf("pointer needs 2 coordinates, got %d", len(step.Pointer))
	}

	if step.Frames > 0 {
		return sys.Run(ctx, frame.TickerHost{Frames: step.Frames})
	}
	return nil
}

func check(e *Expect, sys *orrery.System, last frame.Frame) error {
	sel := last.Selection
	switch {
	case e.None && sel.Hit:
		return fmt.Errorf("%w: expected no selection, got %s", ErrExpectation, sel.Name)
	case e.Selected != "" && sel.Name != e.Selected:
		return fmt.Errorf("%w: expected %s selected, got %q", ErrExpectation, e.Selected, sel.Name)
	case e.Paused != nil && *e.Paused != sys.State.Paused():
		return fmt.Errorf("%w: expected paused=%t", ErrExpectation, *e.Paused)
	}
	if e.Theme != "" {
		want, err := frame.ParseTheme(e.Theme)
		if err != nil {
			return err
		}
		if want != sys.State.Theme {
			return fmt.Errorf("%w: expected %s theme, got %s", ErrExpectation, want, sys.State.Theme)
		}
	}
	return nil
}
