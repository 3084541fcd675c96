package frame

import (
	"context"
	"errors"
	"time"
)

// ErrUnbounded is returned by a TickerHost with neither an interval nor a
// frame budget, which would spin without yielding.
var ErrUnbounded = errors.New("frame: ticker host needs an interval or a frame budget")

// Host invokes step once per display refresh until ctx ends. Implementations
// own the scheduling; step never reschedules itself.
type Host interface {
	Run(ctx context.Context, step func()) error
}

// TickerHost drives step from a time.Ticker. A zero Interval runs ticks back
// to back and then requires a positive Frames, which stops after that many
// ticks.
type TickerHost struct {
	Interval time.Duration
	Frames   int
}

func (h TickerHost) Run(ctx context.Context, step func()) error {
	if h.Interval <= 0 && h.Frames <= 0 {
		return ErrUnbounded
	}
	var tick <-chan time.Time
	if h.Interval > 0 {
		t := time.NewTicker(h.Interval)
		defer t.Stop()
		tick = t.C
	}
	for n := 0; h.Frames <= 0 || n < h.Frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		step()
	}
	return nil
}

// Interval converts a refresh rate to a tick period, defaulting to 60 Hz.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
