package material

import "github.com/lumenrender/corept/pkg/core"

// Emissive is a light-emitting material. It does not scatter: a path that
// hits one terminates (Sample always fails), and its contribution is
// picked up by EvalContribEndpoint at the scene level via EmittedRadiance.
type Emissive struct {
	Emission core.Vec3
}

// NewEmissive creates a new emissive material with constant radiance.
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Sample always fails: emissive surfaces absorb, they don't scatter.
func (e *Emissive) Sample(rng core.Sampler, frame core.Frame, wo core.Vec3) (core.Vec3, core.Vec3, bool) {
	return core.Vec3{}, core.Vec3{}, false
}

// Eval always returns zero: emissive surfaces have no BSDF value.
func (e *Emissive) Eval(frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// IsSpecular returns false; emissive surfaces are neither diffuse nor
// specular, they simply never scatter.
func (e *Emissive) IsSpecular() bool {
	return false
}

// Reflectance is undefined for a pure emitter.
func (e *Emissive) Reflectance() (core.Vec3, bool) {
	return core.Vec3{}, false
}

// EmittedRadiance returns the emitted radiance, one-sided: only the side
// the shading normal faces emits, matching a one-sided area light.
func (e *Emissive) EmittedRadiance(frame core.Frame, wo core.Vec3) core.Vec3 {
	if wo.Dot(frame.Normal) <= 0 {
		return core.Vec3{}
	}
	return e.Emission
}
