package material

import "github.com/lumenrender/corept/pkg/core"

// Metal is a specular reflector, optionally fuzzed by perturbing the
// perfect-mirror direction within a small cone.
type Metal struct {
	Albedo   core.Vec3
	Fuzzness float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzzness to [0, 1].
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	if fuzzness > 1 {
		fuzzness = 1
	}
	if fuzzness < 0 {
		fuzzness = 0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Sample reflects wo about the surface normal, perturbed by Fuzzness.
func (m *Metal) Sample(rng core.Sampler, frame core.Frame, wo core.Vec3) (core.Vec3, core.Vec3, bool) {
	wi := reflect(wo.Negate(), frame.Normal)
	if m.Fuzzness > 0 {
		u1, u2 := rng.Get2D()
		perturbation := frame.SampleCosineHemisphere(u1, u2).Multiply(m.Fuzzness)
		wi = wi.Add(perturbation).Normalize()
	}
	if wi.Dot(frame.Normal) <= 0 {
		return core.Vec3{}, core.Vec3{}, false
	}
	return wi, m.Albedo, true
}

// Eval returns zero: a delta (or near-delta fuzzed) reflector has no value
// at an arbitrary (wi, wo) pair chosen independently by NEE.
func (m *Metal) Eval(frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// IsSpecular always returns true for Metal.
func (m *Metal) IsSpecular() bool {
	return true
}

// Reflectance returns the albedo directly.
func (m *Metal) Reflectance() (core.Vec3, bool) {
	return m.Albedo, true
}
