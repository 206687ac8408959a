package integrator

import (
	"context"
	"runtime"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/film"
	"github.com/lumenrender/corept/pkg/parallelfor"
	"github.com/lumenrender/corept/pkg/scene"
)

// PathTracerNaive is an unbiased path tracer with no next-event
// estimation: every bounce of the random walk is resampled from the
// material alone, and the only way light is ever gathered is by a path
// happening to land on an emitter. Slow to converge on scenes with small
// lights, but the simplest possible correct integrator.
type PathTracerNaive struct {
	Config Config
}

// Render implements Integrator.
func (p *PathTracerNaive) Render(ctx context.Context, k scene.Kernel, f *film.Film) error {
	w, h := f.Size()
	aspect := f.AspectRatio()

	// One sampler per worker, created on its first index and reused after;
	// each slot is only ever touched by its own worker.
	samplers := make([]core.Sampler, max(p.Config.NumWorkers, runtime.NumCPU()))

	return parallelfor.ParallelFor(ctx, int64(w*h), p.Config.NumWorkers, func(idx int64, workerID int) error {
		x := int(idx) % w
		y := int(idx) / w
		rng := samplers[workerID]
		if rng == nil {
			rng = core.NewRandomSampler(core.NewWorkerRNG(p.Config.Seed, workerID))
			samplers[workerID] = rng
		}

		window := core.NewVec4(float64(x)/float64(w), float64(y)/float64(h), 1.0/float64(w), 1.0/float64(h))

		var accum core.Vec3
		for sampleIdx := int64(0); sampleIdx < p.Config.SPP; sampleIdx++ {
			accum = accum.Add(p.walk(rng, k, window, aspect))
		}
		if p.Config.SPP > 0 {
			accum = accum.Multiply(1.0 / float64(p.Config.SPP))
		}
		f.SetPixel(x, y, accum)
		return nil
	})
}

func (p *PathTracerNaive) walk(rng core.Sampler, k scene.Kernel, window core.Vec4, aspect float64) core.Vec3 {
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
		ray, valid := s.Ray()
		if !valid {
			break
		}
		hit, ok := k.Intersect(ray, 1e-4, 1e30)
		if !ok {
			break
		}

		if k.IsLight(hit) {
			L = L.Add(throughput.MultiplyVec(k.EvalContribEndpoint(hit, s.Wo.Negate())))
		}

		var survived bool
		throughput, survived = russianRoulette(rng, length, throughput)
		if !survived {
			break
		}

		next, ok := k.SampleRay(rng, hit, s.Wo.Negate())
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(next.Weight)
		s = next
	}
	return L
}
