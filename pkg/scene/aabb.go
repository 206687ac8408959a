package scene

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
)

// AABB is an axis-aligned bounding box, used by the BVH to prune ray
// traversal.
type AABB struct {
	Min, Max core.Vec3
}

// NewAABB creates an AABB from two corner points, in either order.
func NewAABB(a, b core.Vec3) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)),
		Max: core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)),
	}
}

// Union returns the smallest AABB containing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		Min: core.NewVec3(math.Min(a.Min.X, b.Min.X), math.Min(a.Min.Y, b.Min.Y), math.Min(a.Min.Z, b.Min.Z)),
		Max: core.NewVec3(math.Max(a.Max.X, b.Max.X), math.Max(a.Max.Y, b.Max.Y), math.Max(a.Max.Z, b.Max.Z)),
	}
}

// Centroid returns the box's center point.
func (b AABB) Centroid() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// AxisExtent returns the box's extent along one axis (0=X, 1=Y, 2=Z).
func (b AABB) AxisExtent(axis int) float64 {
	switch axis {
	case 0:
		return b.Max.X - b.Min.X
	case 1:
		return b.Max.Y - b.Min.Y
	default:
		return b.Max.Z - b.Min.Z
	}
}

// LongestAxis returns the index of the box's longest axis.
func (b AABB) LongestAxis() int {
	ext := core.NewVec3(b.AxisExtent(0), b.AxisExtent(1), b.AxisExtent(2))
	if ext.X > ext.Y && ext.X > ext.Z {
		return 0
	}
	if ext.Y > ext.Z {
		return 1
	}
	return 2
}

// Hit tests whether ray intersects the box within [tMin, tMax], using the
// slab method.
func (b AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		var origin, dir, lo, hi float64
		switch axis {
		case 0:
			origin, dir, lo, hi = ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X
		case 1:
			origin, dir, lo, hi = ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y
		default:
			origin, dir, lo, hi = ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z
		}
		if dir == 0 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}
		invD := 1.0 / dir
		t0 := (lo - origin) * invD
		t1 := (hi - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}
