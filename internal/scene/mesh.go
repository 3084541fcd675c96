package scene

import (
	"math/rand"
)

// Mesh is a sphere placed in the scene.
type Mesh struct {
	Name   string
	Center Vec3
	Radius float64
	Color  string
}

func NewSphere(name string, radius float64, color string) *Mesh {
	return &Mesh{Name: name, Radius: radius, Color: color}
}

func (m *Mesh) SetPosition(p Vec3) { m.Center = p }
func (m *Mesh) Position() Vec3     { return m.Center }

func (m *Mesh) IntersectRay(r Ray) (float64, bool) {
	return intersectSphere(r, m.Center, m.Radius)
}

// Points is an unlit point cloud.
type Points struct {
	Positions []Vec3
	Color     string
}

// NewStarField scatters n points uniformly in a cube of side extent centred
// on the origin.
func NewStarField(n int, extent float64, rng *rand.Rand) Points {
	pts := make([]Vec3, n)
	for i := range pts {
		pts[i] = Vec3{
			X: (rng.Float64() - 0.5) * extent,
			Y: (rng.Float64() - 0.5) * extent,
			Z: (rng.Float64() - 0.5) * extent,
		}
	}
	return Points{Positions: pts}
}

type Scene struct {
	Sun     *Mesh
	Planets []*Mesh
	Stars   Points
}

// Meshes returns every sphere in the scene, sun first.
func (s *Scene) Meshes() []*Mesh {
	out := make([]*Mesh, 0, len(s.Planets)+1)
	if s.Sun != nil {
		out = append(out, s.Sun)
	}
	return append(out, s.Planets...)
}
