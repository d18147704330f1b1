package gamma

import (
	"testing"

	"github.com/tphakala/go-image-resampler/frame"
)

// BenchmarkLinearize benchmarks the forward LUT application over a CIF
// RGB frame.
func BenchmarkLinearize(b *testing.B) {
	c, src, dst := benchSetup(b)

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		if err := c.Linearize(src, dst); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDelinearize benchmarks the backward LUT application, which
// quantizes each sample to a 12-bit index first.
func BenchmarkDelinearize(b *testing.B) {
	c, src, dst := benchSetup(b)
	if err := c.Linearize(src, dst); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for b.Loop() {
		if err := c.Delinearize(dst, src); err != nil {
			b.Fatal(err)
		}
	}
}

func benchSetup(b *testing.B) (*Curves, *frame.Image, *frame.LinearImage) {
	b.Helper()

	const width, height = 352, 288

	c, err := NewCurves(2.2)
	if err != nil {
		b.Fatal(err)
	}

	src, err := frame.New(frame.LayoutRGB, width, height)
	if err != nil {
		b.Fatal(err)
	}
	for p := range src.Planes {
		for y, row := range src.Planes[p] {
			for x := range row {
				row[x] = uint8((x + y) % 256)
			}
		}
	}

	dst, err := frame.NewLinear(frame.LayoutRGB, width, height)
	if err != nil {
		b.Fatal(err)
	}
	return c, src, dst
}
