package light

import (
	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/geom"
)

// Quad is a one-sided rectangular area light spanning corner, corner+u,
// corner+v, and corner+u+v, with constant outgoing radiance on the side
// the normal (u x v, normalized) faces.
type Quad struct {
	Corner, U, V core.Vec3
	Radiance     core.Vec3

	normal core.Vec3
	area   float64
}

// NewQuad creates a new quad area light.
func NewQuad(corner, u, v, radiance core.Vec3) *Quad {
	cross := u.Cross(v)
	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Radiance: radiance,
		normal:   cross.Normalize(),
		area:     cross.Length(),
	}
}

// SampleTowards picks a uniformly distributed point on the quad and
// converts the area-measure pdf to solid angle as seen from ref.
func (q *Quad) SampleTowards(rng core.Sampler, ref core.Vec3) (geom.RaySample, bool) {
	u1, u2 := rng.Get2D()
	p := q.Corner.Add(q.U.Multiply(u1)).Add(q.V.Multiply(u2))

	toRef := ref.Subtract(p)
	distSq := toRef.LengthSquared()
	if distSq < 1e-12 {
		return geom.RaySample{}, false
	}
	dist := toRef.Length()
	wo := toRef.Multiply(1.0 / dist) // light -> ref

	cosThetaLight := q.normal.Dot(wo)
	if cosThetaLight <= 0 || q.area <= 0 {
		return geom.RaySample{}, false
	}

	g := geom.NewSurfaceGeometry(p, q.normal, core.NewVec2(0, 0))
	sp := geom.SurfacePoint{Geom: g}

	weight := q.Radiance.Multiply(cosThetaLight * q.area / distSq)
	return geom.RaySample{SP: sp, Wo: wo, Weight: weight}, true
}

// Emission returns the quad's constant radiance towards any wo on the side
// the surface normal faces, and zero behind it: a one-sided diffuse emitter.
func (q *Quad) Emission(g geom.PointGeometry, wo core.Vec3) core.Vec3 {
	if g.N.Dot(wo) <= 0 {
		return core.Vec3{}
	}
	return q.Radiance
}

// IsInfinite always returns false for a quad light.
func (q *Quad) IsInfinite() bool { return false }
