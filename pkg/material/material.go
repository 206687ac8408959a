// Package material implements the BSDFs plumbed through the scene sampling
// interface's EvalBSDF/SampleRay/Reflectance family of operations. Every
// material reports weight = value / pdf already divided out, matching the
// convention used throughout pkg/geom.
package material

import "github.com/lumenrender/corept/pkg/core"

// Material is a BSDF attached to a surface. wi and wo are both unit
// directions pointing away from the surface (towards the incoming light
// source and towards the viewer, respectively) — neither is negated
// relative to the hit point. The scene sampling interface names its
// directions the other way round (its wi points back to the previous
// vertex), so Scene.SampleRay passes its wi in as this interface's wo.
type Material interface {
	// Sample draws an incoming direction wi given the outgoing direction
	// wo and surface frame, returning ok=false if no valid direction
	// could be sampled (e.g. total internal reflection with no escape).
	// weight already has the sampling pdf divided out.
	Sample(rng core.Sampler, frame core.Frame, wo core.Vec3) (wi core.Vec3, weight core.Vec3, ok bool)

	// Eval evaluates the BSDF value for an explicit (wi, wo) pair, used
	// by next-event estimation once a light direction has been chosen
	// independently of this material's own sampling distribution.
	// Returns the zero vector for specular materials, which have no
	// value at a non-delta direction.
	Eval(frame core.Frame, wi, wo core.Vec3) core.Vec3

	// IsSpecular reports whether this material's distribution is a
	// delta function, in which case Eval is meaningless and NEE must
	// skip sampling a light direction at this vertex.
	IsSpecular() bool

	// Reflectance returns an albedo-like estimate of the fraction of
	// incident light the material reflects, used by reflectance queries
	// (e.g. the raycast integrator's shading). ok is false for
	// materials with no well-defined reflectance (e.g. pure emitters).
	Reflectance() (core.Vec3, bool)
}

// Emitter is implemented by materials that emit radiance in addition to
// (or instead of) scattering it.
type Emitter interface {
	// EmittedRadiance returns the radiance emitted towards wo from a
	// point with the given shading frame.
	EmittedRadiance(frame core.Frame, wo core.Vec3) core.Vec3
}
