package material

import "github.com/lumenrender/corept/pkg/core"

// Mask is a pass-through material that samples the outgoing direction in
// exactly the same direction the incoming ray arrived from — it never
// actually scatters, only lets the ray continue straight through. Used to
// implement texture-masked cutouts (a material with alpha holes).
type Mask struct{}

// NewMask creates a new pass-through mask material.
func NewMask() *Mask {
	return &Mask{}
}

// Sample always returns -wo (continuing straight through the surface) with
// unit weight: f_s(wi, wo) = delta(-wi, wo).
func (m *Mask) Sample(rng core.Sampler, frame core.Frame, wo core.Vec3) (core.Vec3, core.Vec3, bool) {
	return wo.Negate(), core.NewVec3(1, 1, 1), true
}

// Eval always returns zero: this is a delta function, it has no value
// except at the single pass-through direction Sample always returns.
func (m *Mask) Eval(frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// IsSpecular always returns true.
func (m *Mask) IsSpecular() bool {
	return true
}

// Reflectance is undefined: a mask neither absorbs nor truly reflects.
func (m *Mask) Reflectance() (core.Vec3, bool) {
	return core.Vec3{}, false
}
