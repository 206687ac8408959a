package material

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
)

// Lambertian is a perfectly diffuse material: cosine-weighted sampling of
// wi makes sample weight collapse to the albedo alone, since the pdf's
// cos(theta)/pi exactly cancels the BRDF's albedo/pi numerator.
type Lambertian struct {
	Albedo core.Vec3
}

// NewLambertian creates a new Lambertian material with the given albedo.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Sample draws a cosine-weighted direction in the hemisphere around frame.Normal.
func (l *Lambertian) Sample(rng core.Sampler, frame core.Frame, wo core.Vec3) (core.Vec3, core.Vec3, bool) {
	u1, u2 := rng.Get2D()
	wi := frame.SampleCosineHemisphere(u1, u2)
	return wi, l.Albedo, true
}

// Eval returns albedo/pi, the constant Lambertian BRDF value.
func (l *Lambertian) Eval(frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	cosTheta := wi.Dot(frame.Normal)
	if cosTheta <= 0 {
		return core.Vec3{}
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}

// IsSpecular always returns false for Lambertian surfaces.
func (l *Lambertian) IsSpecular() bool {
	return false
}

// Reflectance returns the albedo directly.
func (l *Lambertian) Reflectance() (core.Vec3, bool) {
	return l.Albedo, true
}
