package scene

import (
	"math"

	"github.com/lumenrender/corept/pkg/core"
)

// Camera is a pinhole camera: PrimaryRay maps a raster position in [0,1]^2
// to a world-space ray through the image plane, constructed once from
// eye/lookAt/up/vfov the way the teacher's camera.go builds its basis.
type Camera struct {
	Origin                     core.Vec3
	LowerLeftCorner            core.Vec3
	Horizontal, Vertical       core.Vec3
}

// NewCamera builds a pinhole camera. vfov is the vertical field of view in
// degrees, aspect is width/height.
func NewCamera(lookFrom, lookAt, up core.Vec3, vfovDegrees, aspect float64) *Camera {
	theta := vfovDegrees * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := aspect * halfHeight

	w := lookFrom.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := lookFrom
	horizontal := u.Multiply(2 * halfWidth)
	vertical := v.Multiply(2 * halfHeight)
	lowerLeft := origin.Subtract(horizontal.Multiply(0.5)).Subtract(vertical.Multiply(0.5)).Subtract(w)

	return &Camera{
		Origin:          origin,
		LowerLeftCorner: lowerLeft,
		Horizontal:      horizontal,
		Vertical:        vertical,
	}
}

// PrimaryRay returns the ray through raster position rp in [0,1]^2, with
// (0,0) at the bottom-left of the image plane.
func (c *Camera) PrimaryRay(rp core.Vec2) core.Ray {
	target := c.LowerLeftCorner.Add(c.Horizontal.Multiply(rp.X)).Add(c.Vertical.Multiply(rp.Y))
	return core.NewRayTo(c.Origin, target)
}
