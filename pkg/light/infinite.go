package light

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/geom"
)

// Uniform is an infinite environment light emitting constant radiance from
// every direction — the simplest possible "sky" light.
type Uniform struct {
	Radiance core.Vec3
}

// NewUniform creates a new uniform infinite light.
func NewUniform(radiance core.Vec3) *Uniform {
	return &Uniform{Radiance: radiance}
}

// SampleTowards draws a direction uniformly over the full sphere; Weight
// is Radiance / pdf with pdf = 1/(4*pi) for the uniform sphere measure.
func (u *Uniform) SampleTowards(rng core.Sampler, ref core.Vec3) (geom.RaySample, bool) {
	u1, u2 := rng.Get2D()
	z := 1 - 2*u1
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u2
	dir := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)

	const pdf = 1.0 / (4 * math.Pi)
	weight := u.Radiance.Multiply(1.0 / pdf)
	g := geom.NewInfiniteGeometry(dir)
	return geom.RaySample{SP: geom.SurfacePoint{Geom: g}, Wo: dir, Weight: weight}, true
}

// Emission returns the constant environment radiance regardless of
// direction.
func (u *Uniform) Emission(g geom.PointGeometry, wo core.Vec3) core.Vec3 {
	return u.Radiance
}

// IsInfinite always returns true.
func (u *Uniform) IsInfinite() bool { return true }

// Gradient is an infinite environment light that lerps linearly between a
// zenith color and a horizon/nadir color by the direction's Y component —
// a cheap substitute for a full sky model.
type Gradient struct {
	Top, Bottom core.Vec3
}

// NewGradient creates a new gradient infinite light.
func NewGradient(top, bottom core.Vec3) *Gradient {
	return &Gradient{Top: top, Bottom: bottom}
}

func (g *Gradient) colorFor(dir core.Vec3) core.Vec3 {
	t := 0.5 * (dir.Normalize().Y + 1)
	return g.Bottom.Multiply(1 - t).Add(g.Top.Multiply(t))
}

// SampleTowards draws a direction uniformly over the full sphere and
// evaluates the gradient there.
func (g *Gradient) SampleTowards(rng core.Sampler, ref core.Vec3) (geom.RaySample, bool) {
	u1, u2 := rng.Get2D()
	z := 1 - 2*u1
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u2
	dir := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)

	const pdf = 1.0 / (4 * math.Pi)
	weight := g.colorFor(dir.Negate()).Multiply(1.0 / pdf)
	geo := geom.NewInfiniteGeometry(dir)
	return geom.RaySample{SP: geom.SurfacePoint{Geom: geo}, Wo: dir, Weight: weight}, true
}

// Emission returns the gradient color of the sky direction the radiance
// comes from, which is opposite to wo.
func (g *Gradient) Emission(geo geom.PointGeometry, wo core.Vec3) core.Vec3 {
	return g.colorFor(wo.Negate())
}

// IsInfinite always returns true.
func (g *Gradient) IsInfinite() bool { return true }
