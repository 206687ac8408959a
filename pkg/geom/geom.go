// Package geom holds the data model shared by the scene sampling interface
// and the integrators: points on surfaces, the ray samples drawn from them,
// and distance samples drawn inside participating media.
package geom

import "github.com/lumenrender/corept/pkg/core"

// PointGeometry describes a point carried through the sampling interface.
// Two shapes: a point on a surface (P, N, Frame, UV populated, Infinite
// false), or an "infinite" endpoint representing a direction at infinity
// (a sample on an infinite light, or the end of a ray that escaped the
// scene) — there P is not meaningful and Wo holds the outgoing direction
// of the endpoint, pointing from infinity into the scene.
type PointGeometry struct {
	P        core.Vec3
	N        core.Vec3
	Frame    core.Frame
	UV       core.Vec2
	Infinite bool
	Wo       core.Vec3
}

// NewSurfaceGeometry builds the PointGeometry for an ordinary surface hit.
func NewSurfaceGeometry(p, n core.Vec3, uv core.Vec2) PointGeometry {
	return PointGeometry{P: p, N: n, Frame: core.NewFrame(n), UV: uv}
}

// NewInfiniteGeometry builds the PointGeometry for an infinite endpoint
// (an infinite light direction, or a point at infinity along an escaping ray).
func NewInfiniteGeometry(wo core.Vec3) PointGeometry {
	return PointGeometry{Infinite: true, Wo: wo}
}

// SurfacePoint is a point in the scene together with the indices of the
// primitive and material it belongs to. It never owns a pointer into scene
// storage so that it stays cheap to copy and pass by value through the
// sampling interface.
type SurfacePoint struct {
	Geom          PointGeometry
	PrimitiveIndex int
	MaterialIndex  int
}

// RaySample is the result of sampling a ray: the surface point reached (or
// an infinite endpoint), the ray's outgoing direction from that point, and
// a Monte Carlo weight with the probability density already divided out
// (weight = f(x) / pdf(x), so a caller never needs the density itself).
type RaySample struct {
	SP     SurfacePoint
	Wo     core.Vec3
	Weight core.Vec3
}

// Ray reconstructs the world-space ray this sample travels along, starting
// at SP and heading in direction Wo. Returns ok=false when SP is an
// infinite endpoint, since there is no finite origin to build a ray from —
// the Go-idiomatic substitute for the original implementation's assertion.
func (rs RaySample) Ray() (core.Ray, bool) {
	if rs.SP.Geom.Infinite {
		return core.Ray{}, false
	}
	return core.NewRay(rs.SP.Geom.P, rs.Wo), true
}

// DistanceSample is the result of sampling a distance along a ray through a
// participating medium: the surface point reached (a real surface if the
// sampled distance exceeded the ray's extent, or a medium scattering event
// otherwise) and the accumulated transmittance/density weight.
type DistanceSample struct {
	SP     SurfacePoint
	Weight core.Vec3
}
