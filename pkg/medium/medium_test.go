package medium

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenrender/corept/pkg/core"
)

func TestTransmittanceDecaysWithDistance(t *testing.T) {
	m := NewHomogeneous(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.2, 0.2, 0.2))
	near := m.Transmittance(1)
	far := m.Transmittance(10)
	if far.X >= near.X {
		t.Errorf("transmittance should decay with distance: near=%v far=%v", near, far)
	}
	if near.X > 1 || near.X < 0 {
		t.Errorf("transmittance out of [0,1]: %v", near.X)
	}
}

func TestSampleDistanceEscapesWhenMediumIsEmpty(t *testing.T) {
	m := NewHomogeneous(core.Vec3{}, core.Vec3{})
	rng := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	dist, scattered, weight := m.SampleDistance(rng, 5)
	if scattered {
		t.Error("an empty medium must never report a scattering event")
	}
	if dist != 5 {
		t.Errorf("expected escape distance == tMax, got %v", dist)
	}
	if !weight.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("expected unit weight through vacuum, got %v", weight)
	}
}

func TestSamplePhaseIsUnitLength(t *testing.T) {
	m := NewHomogeneous(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.5, 0.5, 0.5))
	rng := core.NewRandomSampler(rand.New(rand.NewSource(2)))
	for i := 0; i < 100; i++ {
		wi, weight := m.SamplePhase(rng, core.NewVec3(0, 0, 1))
		if math.Abs(wi.Length()-1) > 1e-9 {
			t.Fatalf("phase sample not unit length: %v", wi)
		}
		if !weight.Equals(core.NewVec3(1, 1, 1)) {
			t.Fatalf("isotropic phase weight should be 1, got %v", weight)
		}
	}
}
