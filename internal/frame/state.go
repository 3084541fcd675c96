package frame

import (
	"fmt"
	"strings"
)

type PauseState int

const (
	Running PauseState = iota
	Paused
)

func (p PauseState) String() string {
	if p == Paused {
		return "paused"
	}
	return "running"
}

// ButtonLabel is the caption of the button that toggles out of p.
func (p PauseState) ButtonLabel() string {
	if p == Paused {
		return "Resume"
	}
	return "Pause"
}

// Theme only affects presentation. Dark is the zero value and the default.
type Theme int

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// ButtonLabel is the caption of the button that switches away from t.
func (t Theme) ButtonLabel() string {
	if t == Light {
		return "Dark mode"
	}
	return "Light mode"
}

// ErrUnknownTheme is returned by ParseTheme.
var ErrUnknownTheme = fmt.Errorf("frame: unknown theme")

func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dark":
		return Dark, nil
	case "light":
		return Light, nil
	}
	return Dark, fmt.Errorf("%w %q", ErrUnknownTheme, s)
}

// Pointer is the latest pointer position in NDC. Inside is false when the
// pointer has left the viewport or never entered it.
type Pointer struct {
	X, Y   float64
	Inside bool
}

// State is the process-wide mutable state shared by the frame loop and the
// input handlers. Both run on the host's single event thread.
type State struct {
	Pause   PauseState
	Theme   Theme
	Pointer Pointer
}

func NewState(theme Theme) *State {
	return &State{Pause: Running, Theme: theme}
}

func (s *State) Paused() bool { return s.Pause == Paused }

func (s *State) TogglePause() {
	if s.Pause == Paused {
		s.Pause = Running
	} else {
		s.Pause = Paused
	}
}

func (s *State) ToggleTheme() {
	if s.Theme == Light {
		s.Theme = Dark
	} else {
		s.Theme = Light
	}
}

func (s *State) SetPointer(x, y float64) { s.Pointer = Pointer{X: x, Y: y, Inside: true} }
func (s *State) ClearPointer()           { s.Pointer.Inside = false }
