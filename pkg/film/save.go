package film

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/lumenrender/corept/pkg/core"
)

// Format selects the on-disk encoding for Save.
type Format int

const (
	// FormatPFM is the Portable Float Map: a tiny header followed by raw
	// little-endian float32 triples, top row of the image first. It is the
	// reference format used to compare renders bit-for-bit without any
	// tone mapping in the way.
	FormatPFM Format = iota
	// FormatPNG is gamma-corrected, clamped 8-bit output for viewing.
	FormatPNG
)

// Save writes the film to path in the requested format.
func (f *Film) Save(path string, format Format) error {
	switch format {
	case FormatPFM:
		return f.savePFM(path)
	case FormatPNG:
		return f.savePNG(path)
	default:
		return fmt.Errorf("film: unknown format %d", format)
	}
}

func (f *Film) savePFM(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("film: create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	// "PF" = color PFM. Scale factor negative selects little-endian.
	if _, err := fmt.Fprintf(w, "PF\n%d %d\n-1.0\n", f.w, f.h); err != nil {
		return err
	}

	// Film row 0 is the bottom of the image (the camera puts raster y=0 at
	// the bottom), so rows are written from h-1 down: top-to-bottom.
	for y := f.h - 1; y >= 0; y-- {
		for x := 0; x < f.w; x++ {
			p := f.Pixel(x, y)
			for _, c := range [3]float32{float32(p.X), float32(p.Y), float32(p.Z)} {
				if err := binary.Write(w, binary.LittleEndian, c); err != nil {
					return fmt.Errorf("film: write %s: %w", path, err)
				}
			}
		}
	}
	return w.Flush()
}

func (f *Film) savePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("film: create %s: %w", path, err)
	}
	defer file.Close()

	img := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	const gamma = 2.2
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			p := f.Pixel(x, y)
			if p.HasNaN() {
				p = core.Vec3{}
			}
			tonemapped := p.Clamp(0, 1).GammaCorrect(gamma)
			img.Set(x, y, color.RGBA{
				R: toByte(tonemapped.X),
				G: toByte(tonemapped.Y),
				B: toByte(tonemapped.Z),
				A: 255,
			})
		}
	}
	return png.Encode(file, img)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
