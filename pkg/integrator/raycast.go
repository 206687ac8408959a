package integrator

import (
	"context"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/film"
	"github.com/lumenrender/corept/pkg/parallelfor"
	"github.com/lumenrender/corept/pkg/scene"
)

// Raycast is a deterministic, sample-free integrator: one primary ray per
// pixel, reflectance modulated by the cosine of the viewing angle. No
// randomness, no bounces, used as a fast geometry/material sanity check.
type Raycast struct {
	Config Config
}

// Render implements Integrator.
func (r *Raycast) Render(ctx context.Context, k scene.Kernel, f *film.Film) error {
	w, h := f.Size()
	return parallelfor.ParallelFor(ctx, int64(w*h), r.Config.NumWorkers, func(idx int64, workerID int) error {
		x := int(idx) % w
		y := int(idx) / w

		rp := core.NewVec2((float64(x)+0.5)/float64(w), (float64(y)+0.5)/float64(h))
		ray := k.PrimaryRay(rp)

		sp, hit := k.Intersect(ray, 1e-4, 1e30)
		if !hit {
			f.SetPixel(x, y, r.Config.BGColor)
			return nil
		}

		refl, ok := k.Reflectance(sp)
		if !ok {
			refl = core.Vec3{}
		}
		if r.Config.UseConstantColor {
			f.SetPixel(x, y, refl)
			return nil
		}

		cos := sp.Geom.N.AbsDot(ray.Direction.Negate())
		f.SetPixel(x, y, refl.Multiply(cos))
		return nil
	})
}
