package material

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
)

// Dielectric is a smooth transparent material (glass, water) that either
// reflects or refracts wo, chosen by Schlick's Fresnel approximation.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a new dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Sample reflects or refracts wo about frame.Normal, choosing between the
// two by Fresnel reflectance (or forced reflection under total internal
// reflection). wi is returned pointing away from the surface, matching the
// incoming-direction convention used elsewhere in this package.
func (d *Dielectric) Sample(rng core.Sampler, frame core.Frame, wo core.Vec3) (core.Vec3, core.Vec3, bool) {
	entering := wo.Dot(frame.Normal) > 0
	n := frame.Normal
	var etaRatio float64
	if entering {
		etaRatio = 1.0 / d.RefractiveIndex
	} else {
		etaRatio = d.RefractiveIndex
		n = n.Negate()
	}

	unitWo := wo.Negate() // the "incident" direction travelling towards the surface
	cosTheta := math.Min(-unitWo.Dot(n), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	cannotRefract := etaRatio*sinTheta > 1.0

	var dir core.Vec3
	if cannotRefract || schlickReflectance(cosTheta, etaRatio) > rng.Get1D() {
		dir = reflect(unitWo, n)
	} else {
		dir = refract(unitWo, n, etaRatio)
	}
	wi := dir.Normalize()
	return wi, core.NewVec3(1, 1, 1), true
}

// Eval returns zero: glass has no value at an arbitrary (wi, wo) pair.
func (d *Dielectric) Eval(frame core.Frame, wi, wo core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// IsSpecular always returns true for Dielectric.
func (d *Dielectric) IsSpecular() bool {
	return true
}

// Reflectance has no closed form for glass (it depends on the incidence
// angle); callers fall back to a constant when this returns false.
func (d *Dielectric) Reflectance() (core.Vec3, bool) {
	return core.Vec3{}, false
}

func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// schlickReflectance is Schlick's approximation for Fresnel reflectance.
func schlickReflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
