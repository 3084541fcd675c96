package scene

import (
	"math"
	"testing"
)

func TestRaycasterHitsProjectedCentre(t *testing.T) {
	cam := testCamera()
	earth := NewSphere("Earth", 1, "#2e86ab")
	earth.SetPosition(Vec3{15, 0, 0})

	ndc := cam.Project(earth.Position())
	var rc Raycaster
	rc.SetFromCamera(Vec2{ndc.X, ndc.Y}, cam)
	hits := rc.IntersectObjects([]Intersectable{earth})
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Object != Intersectable(earth) {
		t.Error("expected earth to be hit")
	}
	want := earth.Position().Sub(cam.Position).Length() - earth.Radius
	if math.Abs(hits[0].Distance-want) > 1e-6 {
		t.Errorf("expected distance %f, got %f", want, hits[0].Distance)
	}
}

func TestRaycasterNearestFirst(t *testing.T) {
	cam := NewCamera(35, 1, 0.1, 1000)
	cam.Position = Vec3{0, 0, 100}
	cam.LookAt(Vec3{})

	far := NewSphere("far", 2, "")
	near := NewSphere("near", 1, "")
	near.SetPosition(Vec3{0, 0, 30})

	var rc Raycaster
	rc.SetFromCamera(Vec2{0, 0}, cam)
	hits := rc.IntersectObjects([]Intersectable{far, near})
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Object != Intersectable(near) {
		t.Error("expected nearest sphere first")
	}
	if hits[0].Distance >= hits[1].Distance {
		t.Errorf("hits not sorted: %f >= %f", hits[0].Distance, hits[1].Distance)
	}
}

func TestRaycasterMiss(t *testing.T) {
	cam := testCamera()
	s := NewSphere("s", 1, "")
	var rc Raycaster
	rc.SetFromCamera(Vec2{0.99, 0.99}, cam)
	if hits := rc.IntersectObjects([]Intersectable{s}); len(hits) != 0 {
		t.Errorf("expected miss, got %d hits", len(hits))
	}
}

func TestIntersectSphereFromInside(t *testing.T) {
	r := Ray{Origin: Vec3{}, Direction: Vec3{1, 0, 0}}
	d, ok := intersectSphere(r, Vec3{}, 5)
	if !ok || math.Abs(d-5) > 1e-12 {
		t.Errorf("expected exit hit at 5, got %f %v", d, ok)
	}
}
