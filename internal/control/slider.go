// Package control holds the user-facing inputs: range sliders and the panel
// that cycles focus between them.
package control

import (
	"math"
	"strconv"
	"strings"
)

// Slider is a numeric range control. Its value is kept as text, the way an
// input element holds it, and parsed again on every read.
type Slider struct {
	Label          string
	Min, Max, Step float64
	value          string
}

func NewSlider(label string, min, max, step, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, Step: step}
	s.store(value)
	return s
}

// Speed parses the current text. Malformed text yields NaN.
func (s *Slider) Speed() float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s.value), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Value returns the raw text.
func (s *Slider) Value() string { return s.value }

// Set replaces the value. Numeric text is clamped and snapped to the range;
// anything else is kept verbatim.
func (s *Slider) Set(text string) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		s.value = text
		return
	}
	s.store(v)
}

// Nudge moves the value by n steps. A malformed value restarts from Min.
func (s *Slider) Nudge(n int) {
	cur := s.Speed()
	if math.IsNaN(cur) || math.IsInf(cur, 0) {
		cur = s.Min
	}
	s.store(cur + float64(n)*s.Step)
}

// Fraction is the value's position within [Min, Max], 0 when malformed.
func (s *Slider) Fraction() float64 {
	v := s.Speed()
	if math.IsNaN(v) || s.Max <= s.Min {
		return 0
	}
	return math.Max(0, math.Min(1, (v-s.Min)/(s.Max-s.Min)))
}

func (s *Slider) store(v float64) {
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		v = math.Max(s.Min, math.Min(s.Max, v))
	}
	s.value = strconv.FormatFloat(v, 'f', precision(s.Step), 64)
}

// precision returns the number of decimals needed to show multiples of step.
func precision(step float64) int {
	if step <= 0 {
		return -1
	}
	for p := 0; p < 9; p++ {
		scaled := step * math.Pow(10, float64(p))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9 {
			return p
		}
	}
	return -1
}
