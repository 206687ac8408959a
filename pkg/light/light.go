// Package light implements the emissive primitives a scene can sample
// directly for next-event estimation: area lights (quad, sphere) and an
// infinite environment light.
package light

import (
	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/geom"
)

// Light is sampled directly by next-event estimation, independently of
// hitting it by chance during a random walk.
type Light interface {
	// SampleTowards draws a point on the light and returns a RaySample
	// whose Wo points from the sampled light point towards ref (the
	// "wo points from light to sp" convention used by Kernel.SampleLight).
	// Weight already has the solid-angle pdf divided out.
	SampleTowards(rng core.Sampler, ref core.Vec3) (geom.RaySample, bool)

	// Emission returns the radiance emitted towards wo from a light
	// surface point with the given geometry.
	Emission(g geom.PointGeometry, wo core.Vec3) core.Vec3

	// IsInfinite reports whether this is an environment-style light with
	// no finite position (quad/sphere lights are finite).
	IsInfinite() bool
}
