package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/geom"
)

func TestCameraPrimaryRayIsUnitLength(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 40, 16.0/9.0)
	for _, rp := range []core.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 0.5}} {
		ray := cam.PrimaryRay(rp)
		if math.Abs(ray.Direction.Length()-1) > 1e-9 {
			t.Errorf("ray direction %v not unit length at %v", ray.Direction, rp)
		}
	}
}

func TestSphereIntersection(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 0, 0), 1)
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := s.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("expected t=4, got %v", hit.T)
	}
	if !hit.N.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("expected normal (0,0,-1), got %v", hit.N)
	}
}

func TestIntersectRejectsInvertedRange(t *testing.T) {
	s := NewCornellBox(64, 64)
	ray := s.PrimaryRay(core.NewVec2(0.5, 0.5))
	if _, ok := s.Intersect(ray, 10, 1); ok {
		t.Error("Intersect with tmin > tmax must report no hit")
	}
}

func TestVisibleIsSymmetric(t *testing.T) {
	s := NewCornellBox(64, 64)
	rng := core.NewRandomSampler(rand.New(rand.NewSource(5)))
	hit1, ok := s.Intersect(s.PrimaryRay(core.NewVec2(0.5, 0.5)), 1e-4, math.Inf(1))
	if !ok {
		t.Fatal("expected the primary ray to hit something")
	}
	sample, ok := s.SampleLight(rng, hit1)
	if !ok {
		t.Fatal("expected a light sample")
	}
	if s.Visible(hit1, sample.SP) != s.Visible(sample.SP, hit1) {
		t.Error("Visible must be symmetric in its arguments")
	}
}

func TestNoLightsMeansNoSampleLight(t *testing.T) {
	s := New(NewCamera(core.NewVec3(0, 0, -1), core.Vec3{}, core.NewVec3(0, 1, 0), 40, 1), nil, nil, nil, nil, nil, nil)
	rng := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	sp := geom.SurfacePoint{Geom: geom.NewSurfaceGeometry(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.Vec2{})}
	if _, ok := s.SampleLight(rng, sp); ok {
		t.Error("SampleLight must fail when the scene has no lights")
	}
}
