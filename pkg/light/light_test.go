package light

import (
	"math/rand"
	"testing"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/geom"
)

func TestQuadSampleTowardsWeightIsFinite(t *testing.T) {
	q := NewQuad(core.NewVec3(-1, 2, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), core.NewVec3(5, 5, 5))
	rng := core.NewRandomSampler(rand.New(rand.NewSource(3)))
	ref := core.NewVec3(0, 0, 0)
	for i := 0; i < 200; i++ {
		sample, ok := q.SampleTowards(rng, ref)
		if !ok {
			continue
		}
		if sample.Weight.HasNaN() || sample.Weight.X < 0 {
			t.Fatalf("invalid weight %v", sample.Weight)
		}
		if sample.SP.Geom.Infinite {
			t.Fatal("quad light must produce a finite surface point")
		}
	}
}

func TestSphereSampleTowardsStaysOnSurface(t *testing.T) {
	s := NewSphere(core.NewVec3(0, 5, 0), 1, core.NewVec3(10, 10, 10))
	rng := core.NewRandomSampler(rand.New(rand.NewSource(9)))
	ref := core.NewVec3(0, 0, 0)
	for i := 0; i < 200; i++ {
		sample, ok := s.SampleTowards(rng, ref)
		if !ok {
			continue
		}
		dist := sample.SP.Geom.P.Subtract(s.Center).Length()
		if dist < 0.999 || dist > 1.001 {
			t.Fatalf("sampled point %v is not on the sphere surface (dist=%f)", sample.SP.Geom.P, dist)
		}
	}
}

func TestUniformInfiniteLightEmitsEverywhere(t *testing.T) {
	u := NewUniform(core.NewVec3(1, 1, 1))
	if !u.IsInfinite() {
		t.Fatal("uniform light must report IsInfinite() == true")
	}
	for _, dir := range []core.Vec3{{X: 1}, {Y: 1}, {Z: -1}} {
		if got := u.Emission(geom.PointGeometry{}, dir); !got.Equals(u.Radiance) {
			t.Errorf("expected constant emission, got %v for direction %v", got, dir)
		}
	}
}
