// Package integrator implements the rendering loops driven against the
// scene.Kernel sampling interface: a deterministic raycaster and three
// Monte Carlo path tracers of increasing sophistication (naive, naive
// volumetric, next-event-estimation volumetric).
package integrator

import (
	"context"
	"fmt"

	"github.com/lumenrender/corept/pkg/core"
	"github.com/lumenrender/corept/pkg/film"
	"github.com/lumenrender/corept/pkg/scene"
)

// Config holds the options every integrator reads from its property bag,
// matching spec.md's renderer construction table. Not every field is used
// by every integrator kind.
type Config struct {
	SPP              int64
	MaxLength        int
	BGColor          core.Vec3
	UseConstantColor bool
	NumWorkers       int
	Seed             uint64
}

// DefaultConfig returns sane defaults: 16 samples per pixel, a generous
// bounce limit, all available worker threads.
func DefaultConfig() Config {
	return Config{
		SPP:        16,
		MaxLength:  8,
		NumWorkers: -1,
		Seed:       1,
	}
}

// Integrator renders a scene into a film.
type Integrator interface {
	Render(ctx context.Context, k scene.Kernel, f *film.Film) error
}

// russianRoulette applies Russian roulette termination to throughput once
// the path has taken more than 3 bounces, per spec.md §4.3 step 5:
// q = max(0.2, 1 - max_component(throughput)); survive with probability
// 1-q, scaling throughput by 1/(1-q) to stay unbiased.
func russianRoulette(rng core.Sampler, length int, throughput core.Vec3) (core.Vec3, bool) {
	if length <= 3 {
		return throughput, true
	}
	q := 0.2
	if alt := 1 - throughput.MaxComponent(); alt > q {
		q = alt
	}
	if rng.Get1D() < q {
		return core.Vec3{}, false
	}
	return throughput.Multiply(1.0 / (1 - q)), true
}

// NewFromConfig constructs an Integrator by name, following spec.md §6's
// renderer construction table (renderer::raycast, renderer::pt_naive,
// renderer::volpt_naive, renderer::volpt).
func NewFromConfig(kind string, cfg Config) (Integrator, error) {
	switch kind {
	case "renderer::raycast":
		return &Raycast{Config: cfg}, nil
	case "renderer::pt_naive":
		return &PathTracerNaive{Config: cfg}, nil
	case "renderer::volpt_naive":
		return &VolPathTracerNaive{Config: cfg}, nil
	case "renderer::volpt":
		return &VolPathTracerNEE{Config: cfg}, nil
	default:
		return nil, fmt.Errorf("integrator: unknown renderer kind %q", kind)
	}
}
