package scene

import (
	"math"
	"sort"
)

type Ray struct {
	Origin, Direction Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Scale(t)) }

// Intersectable is anything a ray can hit. IntersectRay returns the smallest
// non-negative ray parameter of the hit.
type Intersectable interface {
	IntersectRay(r Ray) (float64, bool)
}

type Intersection struct {
	Distance float64
	Point    Vec3
	Object   Intersectable
}

type Raycaster struct {
	Ray Ray
}

// SetFromCamera aims the ray from the camera through the given NDC point.
func (rc *Raycaster) SetFromCamera(ndc Vec2, cam *Camera) {
	through := cam.Unproject(Vec3{ndc.X, ndc.Y, 0.5})
	rc.Ray = Ray{Origin: cam.Position, Direction: through.Sub(cam.Position).Normalize()}
}

// IntersectObjects returns every hit, nearest first.
func (rc *Raycaster) IntersectObjects(objs []Intersectable) []Intersection {
	hits := make([]Intersection, 0, 1)
	for _, o := range objs {
		if t, ok := o.IntersectRay(rc.Ray); ok {
			hits = append(hits, Intersection{Distance: t, Point: rc.Ray.At(t), Object: o})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func intersectSphere(r Ray, center Vec3, radius float64) (float64, bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
