package integrator

import (
	"context"
	"runtime"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/film"
	"github.com/lumenrender/corept/pkg/geom"
	"github.com/lumenrender/corept/pkg/parallelfor"
	"github.com/lumenrender/corept/pkg/scene"
)

// VolPathTracerNEE extends VolPathTracerNaive with next-event estimation
// at every non-specular vertex: rather than waiting for a random walk to
// land on a light by chance, it samples a light directly and adds its
// contribution explicitly. To avoid double-counting the same light twice
// (once through NEE, once through the random walk happening to hit it),
// emissive accumulation at the vertex SampleDistance just found is skipped
// whenever NEE ran at the incoming vertex earlier in the same bounce,
// whether or not its light sample turned out to be unoccluded.
type VolPathTracerNEE struct {
	Config Config
}

// Render implements Integrator.
func (p *VolPathTracerNEE) Render(ctx context.Context, k scene.Kernel, f *film.Film) error {
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

func (p *VolPathTracerNEE) walk(rng core.Sampler, k scene.Kernel, window core.Vec4, aspect float64) core.Vec3 {
	if p.Config.MaxLength <= 0 {
		return core.Vec3{}
	}

	s, ok := k.SamplePrimaryRay(rng, window, aspect)
	if !ok || s.Weight.IsZero() {
		return core.Vec3{}
	}

	var L, throughput core.Vec3
	throughput = s.Weight

	var wi core.Vec3 // incoming direction at s.SP; unused at vertex 0, since nee is gated off there

	for length := 0; length < p.Config.MaxLength; length++ {
		// NEE is evaluated on the incoming vertex s.SP, carried over from
		// the previous bounce (or the primary ray at length 0, where it's
		// gated off). nee also decides whether the emissive contribution
		// found by SampleDistance below double-counts this light.
		nee := length > 0 && !k.IsSpecular(s.SP)
		if nee {
			if contrib, fired := p.sampleLightContribution(rng, k, s.SP, wi); fired {
				L = L.Add(throughput.MultiplyVec(contrib))
			}
		}

		sd, ok := k.SampleDistance(rng, s.SP, s.Wo)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(sd.Weight)

		if !nee && k.IsLight(sd.SP) {
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

		wi = s.Wo.Negate()
		next, ok := k.SampleRay(rng, sd.SP, wi)
		if !ok {
			break
		}
		throughput = throughput.MultiplyVec(next.Weight)
		s = next
	}
	return L
}

// sampleLightContribution implements the NEE formula: sample a light,
// check transmittance to it, and weigh its contribution by the BSDF/phase
// value at the current vertex.
func (p *VolPathTracerNEE) sampleLightContribution(rng core.Sampler, k scene.Kernel, sp geom.SurfacePoint, wi core.Vec3) (core.Vec3, bool) {
	lightSample, ok := k.SampleLight(rng, sp)
	if !ok {
		return core.Vec3{}, false
	}
	tr, visible := k.EvalTransmittance(rng, sp, lightSample.SP)
	if !visible {
		return core.Vec3{}, false
	}
	contrib := k.EvalContrib(sp, wi, lightSample.Wo.Negate())
	return tr.MultiplyVec(contrib).MultiplyVec(lightSample.Weight), true
}
