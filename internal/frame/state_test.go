package frame

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStateDefaults(t *testing.T) {
	s := NewState(Dark)
	if s.Pause != Running {
		t.Errorf("expected running, got %s", s.Pause)
	}
	if s.Theme != Dark {
		t.Errorf("expected dark, got %s", s.Theme)
	}
	if s.Pointer.Inside {
		t.Error("expected no pointer")
	}
}

func TestTogglePauseSymmetric(t *testing.T) {
	s := NewState(Dark)
	s.TogglePause()
	if !s.Paused() || s.Pause.ButtonLabel() != "Resume" {
		t.Errorf("expected paused with Resume label, got %s / %s", s.Pause, s.Pause.ButtonLabel())
	}
	s.TogglePause()
	if s.Paused() || s.Pause.ButtonLabel() != "Pause" {
		t.Errorf("expected running with Pause label, got %s / %s", s.Pause, s.Pause.ButtonLabel())
	}
}

func TestToggleTheme(t *testing.T) {
	s := NewState(Light)
	s.ToggleTheme()
	if s.Theme != Dark {
		t.Errorf("expected dark, got %s", s.Theme)
	}
	s.ToggleTheme()
	if s.Theme != Light {
		t.Errorf("expected light, got %s", s.Theme)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"", Dark, false},
		{"dark", Dark, false},
		{" Light ", Light, false},
		{"solarized", Dark, true},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTheme(%q): unexpected error state %v", tt.in, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownTheme) {
			t.Errorf("ParseTheme(%q): expected ErrUnknownTheme, got %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTheme(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestTickerHostFrameBudget(t *testing.T) {
	n := 0
	err := TickerHost{Frames: 25}.Run(context.Background(), func() { n++ })
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if n != 25 {
		t.Errorf("expected 25 steps, got %d", n)
	}
}

func TestTickerHostRejectsUnbounded(t *testing.T) {
	n := 0
	err := TickerHost{}.Run(context.Background(), func() { n++ })
	if !errors.Is(err, ErrUnbounded) {
		t.Errorf("expected ErrUnbounded, got %v", err)
	}
	if n != 0 {
		t.Errorf("expected no steps, got %d", n)
	}
}

func TestTickerHostStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err := TickerHost{Interval: time.Millisecond}.Run(ctx, func() {
		n++
		if n == 3 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 steps before cancel, got %d", n)
	}
}

func TestInterval(t *testing.T) {
	if Interval(0) != time.Second/60 {
		t.Errorf("expected 60 Hz default, got %v", Interval(0))
	}
	if Interval(30) != time.Second/30 {
		t.Errorf("expected 30 Hz, got %v", Interval(30))
	}
}
