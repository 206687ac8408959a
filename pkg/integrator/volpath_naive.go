package integrator

import (
	"context"
	"runtime"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/film"
	"github.com/lumenrender/corept/pkg/parallelfor"
	"github.com/lumenrender/corept/pkg/scene"
)

// VolPathTracerNaive extends PathTracerNaive with participating media:
// the next vertex is drawn with SampleDistance instead of a plain
// Intersect, so a bounce may land inside a medium rather than on a
// surface. Iterates over w*h*spp total samples and splats (rather than
// overwrites) its contribution, since distinct samples for the same pixel
// may run on different workers.
type VolPathTracerNaive struct {
	Config Config
}

// Render implements Integrator.
func (p *VolPathTracerNaive) Render(ctx context.Context, k scene.Kernel, f *film.Film) error {
	w, h := f.Size()
	aspect := f.AspectRatio()
	f.Clear()

	total := int64(w) * int64(h) * p.Config.SPP
	if total == 0 {
		return nil
	}

	// One sampler per worker, created on its first index and reused after;
	// each slot is only ever touched by its own worker.
	samplers := make([]core.Sampler, max(p.Config.NumWorkers, runtime.NumCPU()))

	return parallelfor.ParallelFor(ctx, total, p.Config.NumWorkers, func(idx int64, workerID int) error {
		pixelIdx := idx / p.Config.SPP
		x := int(pixelIdx) % w
		y := int(pixelIdx) / w
		rng := samplers[workerID]
		if rng == nil {
			rng = core.NewRandomSampler(core.NewWorkerRNG(p.Config.Seed, workerID))
			samplers[workerID] = rng
		}

		window := core.NewVec4(float64(x)/float64(w), float64(y)/float64(h), 1.0/float64(w), 1.0/float64(h))
		L := p.walk(rng, k, window, aspect)
		if p.Config.SPP > 0 {
			L = L.Multiply(1.0 / float64(p.Config.SPP))
		}
		f.SplatPixel(x, y, L)
		return nil
	})
}

func (p *VolPathTracerNaive) walk(rng core.Sampler, k scene.Kernel, window core.Vec4, aspect float64) core.Vec3 {
	if p.Config.MaxLength <= 0 {
		return core.Vec3{}
	}

	s, ok := k.SamplePrimaryRay(rng, window, aspect)
	if !ok || s.Weight.IsZero() {
		return core.Vec3{}
	}

	var L, throughput core.Vec3
	throughput = s.Weight

	for length := 0; length < p.Config.MaxLength; length++ {
		sd, ok := k.SampleDistance(rng, s.SP, s.Wo)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(sd.Weight)

		if k.IsLight(sd.SP) {
			L = L.Add(throughput.MultiplyVec(k.EvalContribEndpoint(sd.SP, s.Wo.Negate())))
		}
		if sd.SP.Geom.Infinite {
			break
		}

		var survived bool
		throughput, survived = russianRoulette(rng, length, throughput)
		if !survived {
			break
		}

		next, ok := k.SampleRay(rng, sd.SP, s.Wo.Negate())
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(next.Weight)
		s = next
	}
	return L
}
