package scene

import "math"

const polarEpsilon = 1e-6

// OrbitControls orbits a camera around its target. Input accumulates
// spherical deltas; Update applies them, bleeding them off by DampingFactor
// each call when damping is enabled so motion carries some inertia.
type OrbitControls struct {
	Camera        *Camera
	EnableDamping bool
	DampingFactor float64
	MinDistance   float64
	MaxDistance   float64

	dTheta, dPhi float64
	scale        float64
}

func NewOrbitControls(cam *Camera) *OrbitControls {
	return &OrbitControls{
		Camera:        cam,
		EnableDamping: true,
		DampingFactor: 0.05,
		MinDistance:   1,
		MaxDistance:   1000,
		scale:         1,
	}
}

func (o *OrbitControls) RotateLeft(a float64) { o.dTheta -= a }
func (o *OrbitControls) RotateUp(a float64)   { o.dPhi -= a }

// Dolly scales the camera distance; s > 1 moves away from the target.
func (o *OrbitControls) Dolly(s float64) {
	if s > 0 {
		o.scale *= s
	}
}

// Update moves the camera by the pending deltas. It reports whether the
// camera moved.
func (o *OrbitControls) Update() bool {
	cam := o.Camera
	offset := cam.Position.Sub(cam.Target)
	radius := offset.Length()
	if radius == 0 {
		return false
	}
	theta := math.Atan2(offset.X, offset.Z)
	phi := math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))

	if o.EnableDamping {
		theta += o.dTheta * o.DampingFactor
		phi += o.dPhi * o.DampingFactor
	} else {
		theta += o.dTheta
		phi += o.dPhi
	}
	phi = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, phi))
	radius = math.Max(o.MinDistance, math.Min(o.MaxDistance, radius*o.scale))

	sinPhi := math.Sin(phi)
	next := cam.Target.Add(Vec3{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	})
	moved := next.Sub(cam.Position).Length() > 1e-9
	cam.Position = next

	if o.EnableDamping {
		o.dTheta *= 1 - o.DampingFactor
		o.dPhi *= 1 - o.DampingFactor
	} else {
		o.dTheta, o.dPhi = 0, 0
	}
	o.scale = 1
	return moved
}
