// Package orbit advances bodies along circular, coplanar orbits.
//
// A body owns only its angle and radius. Its speed is read through a
// [SpeedSource] on every tick and its position is written to a non-owning
// [Positioner] handle.
package orbit

import (
	"math"

	"github.com/san-kum/orrery/internal/scene"
)

// SpeedSource is queried once per tick for the current angular speed in
// radians per frame. Implementations are never cached.
type SpeedSource interface {
	Speed() float64
}

// SpeedFunc adapts a plain function to a SpeedSource.
type SpeedFunc func() float64

func (f SpeedFunc) Speed() float64 { return f() }

// Positioner receives the body's Cartesian position.
type Positioner interface {
	SetPosition(p scene.Vec3)
}

type Body struct {
	name   string
	radius float64
	angle  float64

	speed     SpeedSource
	lastSpeed float64
	handle    Positioner
}

// NewBody creates a body at the given angle. The speed source is read once
// here to seed the fallback speed.
func NewBody(name string, radius, angle float64, speed SpeedSource, handle Positioner) *Body {
	b := &Body{name: name, radius: radius, angle: angle, speed: speed, handle: handle}
	if s := speed.Speed(); finite(s) {
		b.lastSpeed = s
	}
	return b
}

func (b *Body) Name() string       { return b.name }
func (b *Body) Radius() float64    { return b.radius }
func (b *Body) Angle() float64     { return b.angle }
func (b *Body) Handle() Positioner { return b.handle }

// Position returns the body's current position.
func (b *Body) Position() scene.Vec3 { return Position(b.radius, b.angle) }

// CurrentSpeed returns the speed the next tick would use.
func (b *Body) CurrentSpeed() float64 {
	if s := b.speed.Speed(); finite(s) {
		return s
	}
	return b.lastSpeed
}

// Sync writes the current position to the scene handle without advancing.
func (b *Body) Sync() {
	if b.handle != nil {
		b.handle.SetPosition(b.Position())
	}
}

// readSpeed returns the fresh speed, or the last valid one when the source
// yields NaN or ±Inf.
func (b *Body) readSpeed() (float64, bool) {
	s := b.speed.Speed()
	if !finite(s) {
		return b.lastSpeed, true
	}
	b.lastSpeed = s
	return s, false
}

// Position converts polar orbit coordinates to the y=0 plane.
func Position(radius, angle float64) scene.Vec3 {
	return scene.Vec3{X: radius * math.Cos(angle), Y: 0, Z: radius * math.Sin(angle)}
}

// Advance moves b one tick along its orbit. A paused advance touches nothing.
// The result reports whether the speed read was unusable and the last valid
// speed was substituted.
func Advance(b *Body, paused bool) bool {
	if paused {
		return false
	}
	s, fellBack := b.readSpeed()
	b.angle += s
	b.Sync()
	return fellBack
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
