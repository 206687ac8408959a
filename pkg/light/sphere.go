package light

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/geom"
)

// Sphere is a spherical area light with constant outgoing radiance,
// sampled over the cone subtended at the reference point (rather than
// uniformly over the whole sphere) so samples never land on the occluded
// far hemisphere.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Radiance core.Vec3
}

// NewSphere creates a new spherical area light.
func NewSphere(center core.Vec3, radius float64, radiance core.Vec3) *Sphere {
	return &Sphere{Center: center, Radius: radius, Radiance: radiance}
}

// SampleTowards samples a direction uniformly within the cone subtended by
// the sphere as seen from ref, then finds the corresponding surface point.
func (s *Sphere) SampleTowards(rng core.Sampler, ref core.Vec3) (geom.RaySample, bool) {
	toCenter := s.Center.Subtract(ref)
	distSq := toCenter.LengthSquared()
	dist := math.Sqrt(distSq)
	if dist <= s.Radius {
		// ref is inside the sphere; fall back to uniform sphere sampling.
		return s.sampleUniform(rng, ref)
	}

	sinThetaMax2 := (s.Radius * s.Radius) / distSq
	cosThetaMax := math.Sqrt(math.Max(0, 1-sinThetaMax2))

	u1, u2 := rng.Get2D()
	cosTheta := 1 - u1*(1-cosThetaMax)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u2

	frame := core.NewFrame(toCenter.Multiply(1.0 / dist))
	localDir := core.NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
	sampleDir := frame.ToWorld(localDir) // ref -> point on sphere, towards the cone

	// Project onto the sphere surface: the distance along sampleDir to the
	// near intersection with the sphere.
	oc := ref.Subtract(s.Center)
	b := oc.Dot(sampleDir)
	c := oc.LengthSquared() - s.Radius*s.Radius
	disc := b*b - c
	if disc < 0 {
		return s.sampleUniform(rng, ref)
	}
	t := -b - math.Sqrt(disc)
	if t <= 0 {
		return s.sampleUniform(rng, ref)
	}
	p := ref.Add(sampleDir.Multiply(t))
	n := p.Subtract(s.Center).Multiply(1.0 / s.Radius)

	pdfSolidAngle := 1.0 / (2 * math.Pi * (1 - cosThetaMax))
	toRef := ref.Subtract(p)
	d2 := toRef.LengthSquared()
	if d2 < 1e-12 {
		return geom.RaySample{}, false
	}
	wo := toRef.Normalize()
	cosThetaLight := n.Dot(wo)
	if cosThetaLight <= 0 {
		return geom.RaySample{}, false
	}

	// Convert the solid-angle pdf at ref directly into the ray sample
	// weight: value / pdf, value = Radiance, measured in solid angle.
	weight := s.Radiance.Multiply(1.0 / pdfSolidAngle)
	g := geom.NewSurfaceGeometry(p, n, core.NewVec2(0, 0))
	return geom.RaySample{SP: geom.SurfacePoint{Geom: g}, Wo: wo, Weight: weight}, true
}

func (s *Sphere) sampleUniform(rng core.Sampler, ref core.Vec3) (geom.RaySample, bool) {
	u1, u2 := rng.Get2D()
	z := 1 - 2*u1
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * u2
	dir := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
	p := s.Center.Add(dir.Multiply(s.Radius))

	toRef := ref.Subtract(p)
	distSq := toRef.LengthSquared()
	if distSq < 1e-12 {
		return geom.RaySample{}, false
	}
	wo := toRef.Normalize()
	cosThetaLight := dir.Dot(wo)
	if cosThetaLight <= 0 {
		return geom.RaySample{}, false
	}

	area := 4 * math.Pi * s.Radius * s.Radius
	weight := s.Radiance.Multiply(cosThetaLight * area / distSq)
	g := geom.NewSurfaceGeometry(p, dir, core.NewVec2(0, 0))
	return geom.RaySample{SP: geom.SurfacePoint{Geom: g}, Wo: wo, Weight: weight}, true
}

// Emission returns the sphere's constant outward radiance.
func (s *Sphere) Emission(g geom.PointGeometry, wo core.Vec3) core.Vec3 {
	if g.N.Dot(wo) <= 0 {
		return core.Vec3{}
	}
	return s.Radiance
}

// IsInfinite always returns false for a sphere light.
func (s *Sphere) IsInfinite() bool { return false }
