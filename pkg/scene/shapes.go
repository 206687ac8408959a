package scene

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
)

// Hit is the result of a shape-local intersection test: the ray parameter,
// world-space position, outward-facing shading normal, and UV.
type Hit struct {
	T  float64
	P  core.Vec3
	N  core.Vec3
	UV core.Vec2
}

// Shape is a geometric primitive that can be intersected and bounded.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (Hit, bool)
	Bounds() AABB
}

// Sphere is a sphere primitive, center/radius in world space.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere primitive.
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit intersects the sphere via the standard quadratic formula.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := halfB*halfB - a*c
	if disc < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(disc)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	p := ray.At(root)
	n := p.Subtract(s.Center).Multiply(1.0 / s.Radius)
	theta := math.Acos(-n.Y)
	phi := math.Atan2(-n.Z, n.X) + math.Pi
	uv := core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
	return Hit{T: root, P: p, N: n, UV: uv}, true
}

// Bounds returns the sphere's bounding box.
func (s *Sphere) Bounds() AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// Quad is a planar quadrilateral spanning corner, corner+u, corner+v, and
// corner+u+v.
type Quad struct {
	Corner, U, V core.Vec3

	normal core.Vec3
	w      core.Vec3 // u x v projector for barycentric (area) coordinates
	d      float64   // plane equation constant: dot(normal, p) = d
}

// NewQuad creates a new quad primitive.
func NewQuad(corner, u, v core.Vec3) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()
	w := n.Multiply(1.0 / n.LengthSquared())
	return &Quad{Corner: corner, U: u, V: v, normal: normal, w: w, d: normal.Dot(corner)}
}

// Hit intersects the quad's supporting plane, then checks the hit point
// lies within the parallelogram using the precomputed area-coordinate
// projector w.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denom := q.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-10 {
		return Hit{}, false
	}
	t := (q.d - q.normal.Dot(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return Hit{}, false
	}
	p := ray.At(t)
	hp := p.Subtract(q.Corner)
	alpha := q.w.Dot(hp.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hp))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return Hit{}, false
	}
	return Hit{T: t, P: p, N: q.normal, UV: core.NewVec2(alpha, beta)}, true
}

// Bounds returns the quad's bounding box, padded slightly since a
// perfectly flat quad along an axis would otherwise have zero thickness.
func (q *Quad) Bounds() AABB {
	a := q.Corner
	b := q.Corner.Add(q.U)
	c := q.Corner.Add(q.V)
	d := q.Corner.Add(q.U).Add(q.V)
	box := Union(NewAABB(a, b), NewAABB(c, d))
	const pad = 1e-4
	eps := core.NewVec3(pad, pad, pad)
	return NewAABB(box.Min.Subtract(eps), box.Max.Add(eps))
}

// Triangle is a flat-shaded triangle primitive.
type Triangle struct {
	V0, V1, V2 core.Vec3
	normal     core.Vec3
}

// NewTriangle creates a new triangle primitive with a normal computed from
// vertex winding order.
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return &Triangle{V0: v0, V1: v1, V2: v2, normal: n}
}

// Hit intersects the triangle with the Möller-Trumbore algorithm.
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	const eps = 1e-10
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)
	if math.Abs(det) < eps {
		return Hit{}, false
	}
	invDet := 1.0 / det
	tvec := ray.Origin.Subtract(tr.V0)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return Hit{}, false
	}
	qvec := tvec.Cross(edge1)
	v := ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}
	t := edge2.Dot(qvec) * invDet
	if t < tMin || t > tMax {
		return Hit{}, false
	}
	p := ray.At(t)
	return Hit{T: t, P: p, N: tr.normal, UV: core.NewVec2(u, v)}, true
}

// Bounds returns the triangle's bounding box.
func (tr *Triangle) Bounds() AABB {
	box := Union(NewAABB(tr.V0, tr.V1), NewAABB(tr.V2, tr.V2))
	return box
}
