package integrator

import (
	"context"
	"math"
	"testing"

	"github.com/lumenrender/corept/pkg/film"
	"github.com/lumenrender/corept/pkg/scene"
)

func totalLuminance(f *film.Film, w, h int) float64 {
	var sum float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum += f.Pixel(x, y).Luminance()
		}
	}
	return sum
}

func TestMaxLengthZeroYieldsBlackImage(t *testing.T) {
	sc := scene.NewCornellBox(16, 16)
	f := film.New(16, 16)
	cfg := DefaultConfig()
	cfg.MaxLength = 0
	cfg.SPP = 4
	cfg.NumWorkers = 1

	for kind, integ := range map[string]Integrator{
		"pt_naive":   &PathTracerNaive{Config: cfg},
		"volpt_naive": &VolPathTracerNaive{Config: cfg},
		"volpt":      &VolPathTracerNEE{Config: cfg},
	} {
		if err := integ.Render(context.Background(), sc, f); err != nil {
			t.Fatalf("%s: Render: %v", kind, err)
		}
		if sum := totalLuminance(f, 16, 16); sum != 0 {
			t.Errorf("%s: expected a black image at maxLength=0, got total luminance %v", kind, sum)
		}
	}
}

func TestSPPZeroYieldsZeroImage(t *testing.T) {
	sc := scene.NewCornellBox(8, 8)
	cfg := DefaultConfig()
	cfg.SPP = 0
	cfg.NumWorkers = 1

	for kind, integ := range map[string]Integrator{
		"pt_naive":    &PathTracerNaive{Config: cfg},
		"volpt_naive": &VolPathTracerNaive{Config: cfg},
		"volpt":       &VolPathTracerNEE{Config: cfg},
	} {
		f := film.New(8, 8)
		if err := integ.Render(context.Background(), sc, f); err != nil {
			t.Fatalf("%s: Render: %v", kind, err)
		}
		if sum := totalLuminance(f, 8, 8); sum != 0 {
			t.Errorf("%s: expected a zero image at spp=0, got total luminance %v", kind, sum)
		}
	}
}

func TestNoLightsYieldsZeroImage(t *testing.T) {
	sc := scene.NewCornellBox(8, 8)
	emptyLit := scene.New(sc.Camera, nil, nil, nil, nil, nil, nil)

	cfg := DefaultConfig()
	cfg.SPP = 4
	cfg.NumWorkers = 1
	f := film.New(8, 8)

	integ := &PathTracerNaive{Config: cfg}
	if err := integ.Render(context.Background(), emptyLit, f); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if sum := totalLuminance(f, 8, 8); sum != 0 {
		t.Errorf("expected zero image for a scene with no primitives or lights, got %v", sum)
	}
}

func TestSingleWorkerIsDeterministic(t *testing.T) {
	sc := scene.NewCornellBox(8, 8)
	cfg := DefaultConfig()
	cfg.SPP = 8
	cfg.MaxLength = 4
	cfg.NumWorkers = 1
	cfg.Seed = 42

	render := func() *film.Film {
		f := film.New(8, 8)
		integ := &PathTracerNaive{Config: cfg}
		if err := integ.Render(context.Background(), sc, f); err != nil {
			t.Fatalf("Render: %v", err)
		}
		return f
	}

	a := render()
	b := render()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			pa, pb := a.Pixel(x, y), b.Pixel(x, y)
			if !pa.Equals(pb) {
				t.Fatalf("pixel (%d,%d) differs between runs with the same seed: %v vs %v", x, y, pa, pb)
			}
		}
	}
}

func TestNaiveAndNEEAgreeInExpectation(t *testing.T) {
	sc := scene.NewCornellBox(1, 1)
	cfg := DefaultConfig()
	cfg.SPP = 20000
	cfg.MaxLength = 6
	cfg.NumWorkers = 1
	cfg.Seed = 7

	naive := film.New(1, 1)
	if err := (&PathTracerNaive{Config: cfg}).Render(context.Background(), sc, naive); err != nil {
		t.Fatalf("naive Render: %v", err)
	}
	nee := film.New(1, 1)
	if err := (&VolPathTracerNEE{Config: cfg}).Render(context.Background(), sc, nee); err != nil {
		t.Fatalf("nee Render: %v", err)
	}

	ln, lne := naive.Pixel(0, 0).Luminance(), nee.Pixel(0, 0).Luminance()
	mean := (ln + lne) / 2
	if mean == 0 {
		t.Fatal("expected non-zero radiance from the Cornell box fixture")
	}
	if diff := math.Abs(ln - lne); diff/mean > 0.5 {
		t.Errorf("naive and NEE estimators diverged too far: naive=%v nee=%v", ln, lne)
	}
}
