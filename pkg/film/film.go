// Package film accumulates radiance samples into a raster image. Splatting
// is the only operation that needs to be safe under concurrent writers —
// SetPixel is used exclusively by integrators that own a pixel outright
// (raycast, the naive surface path tracer), while SplatPixel is used by
// the volumetric path tracers, which iterate over individual samples so
// that samples of the same pixel may run on different workers.
package film

import (
	"sync"

	"github.com/lumenrender/corept/pkg/core"
)

// Film is a W x H grid of accumulated radiance values.
type Film struct {
	w, h   int
	pixels []core.Vec3

	// rowLocks stripes one mutex per row so splats into different rows
	// never contend; grounded on the teacher's SplatQueue, generalized
	// from one global mutex to a per-row stripe.
	rowLocks []sync.Mutex
}

// New creates a Film of the given dimensions, cleared to black.
func New(w, h int) *Film {
	f := &Film{
		w:        w,
		h:        h,
		pixels:   make([]core.Vec3, w*h),
		rowLocks: make([]sync.Mutex, h),
	}
	return f
}

// Size returns the film's width and height in pixels.
func (f *Film) Size() (int, int) {
	return f.w, f.h
}

// AspectRatio returns width / height.
func (f *Film) AspectRatio() float64 {
	return float64(f.w) / float64(f.h)
}

// Clear resets every pixel to black.
func (f *Film) Clear() {
	for i := range f.pixels {
		f.pixels[i] = core.Vec3{}
	}
}

// SetPixel overwrites a pixel unconditionally. Callers must guarantee no
// other goroutine writes the same pixel concurrently — integrators that
// partition work by pixel index satisfy this by construction.
func (f *Film) SetPixel(x, y int, v core.Vec3) {
	f.pixels[y*f.w+x] = v
}

// Pixel returns the current value of a pixel.
func (f *Film) Pixel(x, y int) core.Vec3 {
	return f.pixels[y*f.w+x]
}

// SplatPixel adds v to the current value of a pixel. Safe for concurrent
// callers splatting into arbitrary, possibly overlapping pixels.
func (f *Film) SplatPixel(x, y int, v core.Vec3) {
	f.rowLocks[y].Lock()
	f.pixels[y*f.w+x] = f.pixels[y*f.w+x].Add(v)
	f.rowLocks[y].Unlock()
}
