package scene

import "math"

// Camera is a perspective camera looking at Target. FOV is the vertical
// field of view in degrees.
type Camera struct {
	Position, Target, Up Vec3
	FOV, Aspect          float64
	Near, Far            float64
}

func NewCamera(fov, aspect, near, far float64) *Camera {
	return &Camera{Up: Vec3{0, 1, 0}, FOV: fov, Aspect: aspect, Near: near, Far: far}
}

func (c *Camera) LookAt(t Vec3) { c.Target = t }

// SetAspect updates the width/height ratio after a viewport resize.
// Non-positive or non-finite ratios are ignored.
func (c *Camera) SetAspect(a float64) {
	if a > 0 && !math.IsInf(a, 0) {
		c.Aspect = a
	}
}

// basis returns the camera's right, up and forward unit vectors.
func (c *Camera) basis() (right, up, fwd Vec3) {
	fwd = c.Target.Sub(c.Position).Normalize()
	right = fwd.Cross(c.Up).Normalize()
	up = right.Cross(fwd)
	return right, up, fwd
}

func (c *Camera) tanHalfFOV() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}

// Depth returns the view-space distance of p along the viewing direction.
func (c *Camera) Depth(p Vec3) float64 {
	_, _, fwd := c.basis()
	return p.Sub(c.Position).Dot(fwd)
}

// Project maps a world point to normalized device coordinates. X and Y lie in
// [-1, 1] for points inside the frustum; Z is -1 at the near plane and 1 at
// the far plane.
func (c *Camera) Project(p Vec3) Vec3 {
	right, up, fwd := c.basis()
	d := p.Sub(c.Position)
	x, y, z := d.Dot(right), d.Dot(up), d.Dot(fwd)
	t := c.tanHalfFOV()
	n, f := c.Near, c.Far
	return Vec3{
		X: x / (z * t * c.Aspect),
		Y: y / (z * t),
		Z: (f+n)/(f-n) - 2*f*n/((f-n)*z),
	}
}

// Unproject is the inverse of Project.
func (c *Camera) Unproject(ndc Vec3) Vec3 {
	right, up, fwd := c.basis()
	t := c.tanHalfFOV()
	n, f := c.Near, c.Far
	z := 2 * f * n / ((f + n) - ndc.Z*(f-n))
	x := ndc.X * z * t * c.Aspect
	y := ndc.Y * z * t
	return c.Position.Add(right.Scale(x)).Add(up.Scale(y)).Add(fwd.Scale(z))
}

// Visible reports whether p is in front of the near plane and inside the
// horizontal and vertical bounds of the frustum.
func (c *Camera) Visible(p Vec3) bool {
	d := c.Depth(p)
	if d <= c.Near || d >= c.Far {
		return false
	}
	ndc := c.Project(p)
	return ndc.X >= -1 && ndc.X <= 1 && ndc.Y >= -1 && ndc.Y <= 1
}

// ProjectedRadius returns the on-screen radius of a sphere of the given world
// radius at p, as a fraction of half the viewport height.
func (c *Camera) ProjectedRadius(p Vec3, radius float64) float64 {
	d := c.Depth(p)
	if d <= 0 {
		return 0
	}
	return radius / (d * c.tanHalfFOV())
}
