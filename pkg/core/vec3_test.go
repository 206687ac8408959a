package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestFrameToWorldToLocalRoundTrip(t *testing.T) {
	normals := []Vec3{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 1},
		{0, -1, 0},
		NewVec3(1, 2, 3).Normalize(),
		NewVec3(-1, -1, -1).Normalize(),
	}
	for _, n := range normals {
		f := NewFrame(n)
		v := NewVec3(0.3, -0.6, 0.9)
		local := f.ToLocal(v)
		world := f.ToWorld(local)
		if !world.Equals(v) {
			t.Errorf("round trip failed for normal %v: got %v, want %v", n, world, v)
		}
	}
}

func TestFrameIsOrthonormal(t *testing.T) {
	f := NewFrame(NewVec3(0.2, 0.9, 0.3))
	const eps = 1e-9
	if math.Abs(f.Tangent.Length()-1) > eps {
		t.Errorf("tangent not unit length: %v", f.Tangent.Length())
	}
	if math.Abs(f.Bitangent.Length()-1) > eps {
		t.Errorf("bitangent not unit length: %v", f.Bitangent.Length())
	}
	if math.Abs(f.Tangent.Dot(f.Bitangent)) > eps {
		t.Errorf("tangent/bitangent not orthogonal: %v", f.Tangent.Dot(f.Bitangent))
	}
	if math.Abs(f.Tangent.Dot(f.Normal)) > eps {
		t.Errorf("tangent/normal not orthogonal: %v", f.Tangent.Dot(f.Normal))
	}
}

func TestSampleCosineHemisphereStaysInHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewFrame(NewVec3(0, 1, 0))
	for i := 0; i < 1000; i++ {
		v := f.SampleCosineHemisphere(rng.Float64(), rng.Float64())
		if v.Dot(f.Normal) < -1e-9 {
			t.Fatalf("sample %v fell below the hemisphere around %v", v, f.Normal)
		}
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("sample %v is not unit length", v)
		}
	}
}

func TestSampleCosineHemisphereAverageCosine(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := NewFrame(NewVec3(0, 0, 1))
	const numSamples = 10000
	var total float64
	for i := 0; i < numSamples; i++ {
		v := f.SampleCosineHemisphere(rng.Float64(), rng.Float64())
		total += math.Max(0, v.Dot(f.Normal))
	}
	avg := total / numSamples
	expected := 2.0 / math.Pi
	if math.Abs(avg-expected) > 0.05 {
		t.Errorf("average cosine %f doesn't match expected %f", avg, expected)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -1, 2)
	if got := a.Add(b); !got.Equals(NewVec3(5, 1, 5)) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); !got.Equals(NewVec3(-3, 3, 1)) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Dot(b); got != 1*4+2*-1+3*2 {
		t.Errorf("Dot: got %v", got)
	}
	if got := a.MultiplyVec(b).DivideVec(b); !got.Equals(a) {
		t.Errorf("MultiplyVec/DivideVec round trip: got %v", got)
	}
}

func TestVec3MaxComponentAndHasNaN(t *testing.T) {
	v := NewVec3(0.1, 0.9, 0.4)
	if v.MaxComponent() != 0.9 {
		t.Errorf("MaxComponent: got %v", v.MaxComponent())
	}
	if NewVec3(1, 2, 3).HasNaN() {
		t.Errorf("finite vector reported HasNaN")
	}
	if !NewVec3(math.NaN(), 0, 0).HasNaN() {
		t.Errorf("NaN vector did not report HasNaN")
	}
}

func TestNewWorkerRNGDeterministic(t *testing.T) {
	a := NewWorkerRNG(42, 3)
	b := NewWorkerRNG(42, 3)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("same (seed, workerID) produced diverging streams at sample %d", i)
		}
	}
}

func TestNewWorkerRNGDecorrelatesWorkers(t *testing.T) {
	a := NewWorkerRNG(42, 0)
	b := NewWorkerRNG(42, 1)
	same := true
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			same = false
		}
	}
	if same {
		t.Fatalf("adjacent worker ids produced identical RNG streams")
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))
	if got := r.At(2.5); !got.Equals(NewVec3(2.5, 0, 0)) {
		t.Errorf("At: got %v", got)
	}
}
