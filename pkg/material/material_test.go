package material

import (
	"math/rand"
	"testing"

	"github.com/lumenrender/corept/pkg/core"
)

func TestLambertianSampleStaysAboveSurface(t *testing.T) {
	l := NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	frame := core.NewFrame(core.NewVec3(0, 1, 0))
	rng := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	for i := 0; i < 100; i++ {
		wi, weight, ok := l.Sample(rng, frame, core.NewVec3(0, 1, 0))
		if !ok {
			t.Fatal("Lambertian sample unexpectedly failed")
		}
		if wi.Dot(frame.Normal) < -1e-9 {
			t.Fatalf("sampled direction %v below surface", wi)
		}
		if weight.HasNaN() || weight.X < 0 || weight.Y < 0 || weight.Z < 0 {
			t.Fatalf("invalid weight %v", weight)
		}
	}
}

func TestLambertianEvalZeroBelowSurface(t *testing.T) {
	l := NewLambertian(core.NewVec3(1, 1, 1))
	frame := core.NewFrame(core.NewVec3(0, 1, 0))
	got := l.Eval(frame, core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0))
	if !got.IsZero() {
		t.Errorf("expected zero BSDF value below the surface, got %v", got)
	}
}

func TestMetalReflectsSpecularly(t *testing.T) {
	m := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)
	frame := core.NewFrame(core.NewVec3(0, 1, 0))
	wi, weight, ok := m.Sample(nil, frame, core.NewVec3(1, 1, 0).Normalize())
	if !ok {
		t.Fatal("metal sample failed")
	}
	want := core.NewVec3(-1, 1, 0).Normalize()
	if !wi.Equals(want) {
		t.Errorf("expected mirror reflection %v, got %v", want, wi)
	}
	if !weight.Equals(m.Albedo) {
		t.Errorf("expected weight == albedo for a perfect mirror, got %v", weight)
	}
	if !m.IsSpecular() {
		t.Error("metal must report IsSpecular() == true")
	}
}

func TestMaskPassesThroughUnchanged(t *testing.T) {
	mask := NewMask()
	wo := core.NewVec3(0.2, 0.9, 0.1).Normalize()
	wi, weight, ok := mask.Sample(nil, core.Frame{}, wo)
	if !ok {
		t.Fatal("mask sample failed")
	}
	if !wi.Equals(wo.Negate()) {
		t.Errorf("mask should pass straight through: got wi=%v, want %v", wi, wo.Negate())
	}
	if !weight.Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("mask weight should be unit, got %v", weight)
	}
	if !mask.IsSpecular() {
		t.Error("mask must report IsSpecular() == true")
	}
}

func TestEmissiveDoesNotScatter(t *testing.T) {
	e := NewEmissive(core.NewVec3(10, 10, 10))
	_, _, ok := e.Sample(nil, core.Frame{}, core.NewVec3(0, 1, 0))
	if ok {
		t.Error("emissive material must never scatter")
	}
	frame := core.NewFrame(core.NewVec3(0, 1, 0))
	if got := e.EmittedRadiance(frame, core.NewVec3(0, 1, 0)); !got.Equals(e.Emission) {
		t.Errorf("expected emission %v facing the normal, got %v", e.Emission, got)
	}
	if got := e.EmittedRadiance(frame, core.NewVec3(0, -1, 0)); !got.IsZero() {
		t.Errorf("expected zero emission facing away from the normal, got %v", got)
	}
}
