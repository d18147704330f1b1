// Package gamma converts images between gamma-encoded 8-bit samples and
// linear-light float64 samples using precomputed lookup curves.
//
// Filtering must happen on linear-light values: averaging gamma-encoded
// samples visibly darkens downscales and lightens upscales, most noticeably
// in shadow detail. The resample orchestrator therefore brackets every pass
// with the forward and backward curves built here.
package gamma

import (
	"fmt"
	"math"

	"github.com/tphakala/go-image-resampler/frame"
)

const (
	// ForwardSize is the forward (encode → linear) curve length, one entry
	// per 8-bit code.
	ForwardSize = 256

	// BackwardSize is the backward (linear → encode) curve length. The
	// linear domain is quantized at 12 bits before encoding to reduce
	// banding from the nonlinear mapping.
	BackwardSize = 4096

	// maxSample is the largest 8-bit sample value.
	maxSample = 255
)

// Curves holds a matched pair of transfer curves derived from one gamma
// exponent. A Curves value is immutable after construction and is reused
// across all frames of a batch.
type Curves struct {
	gamma    float64
	forward  [ForwardSize]float64
	backward [BackwardSize]uint8
}

// NewCurves derives the forward and backward curves for the given gamma
// exponent. An exponent of 1.0 yields identity curves (within 8-bit
// quantization).
func NewCurves(gamma float64) (*Curves, error) {
	if gamma <= 0 {
		return nil, fmt.Errorf("gamma exponent must be positive: %g", gamma)
	}

	c := &Curves{gamma: gamma}
	for i := range c.forward {
		c.forward[i] = math.Pow(float64(i)/maxSample, gamma)
	}

	invGamma := 1.0 / gamma
	for i := range c.backward {
		v := maxSample*math.Pow(float64(i)/BackwardSize, invGamma) + 0.5
		c.backward[i] = uint8(clamp(v, 0, maxSample))
	}
	return c, nil
}

// Gamma returns the exponent the curves were built from.
func (c *Curves) Gamma() float64 {
	return c.gamma
}

// Linearize converts the gamma-encoded src into linear-light dst.
//
// For RGB every plane passes through the forward curve. For YUV layouts
// only luma does; chroma is already quasi-linear once offset-removed, so it
// is rescaled linearly into [0, 1] instead.
func (c *Curves) Linearize(src *frame.Image, dst *frame.LinearImage) error {
	if err := checkShape(src.Layout, dst.Layout, src.Width, dst.Width, src.Height, dst.Height); err != nil {
		return err
	}

	if src.Layout == frame.LayoutRGB {
		for p := range src.Planes {
			c.linearizePlane(src.Planes[p], dst.Planes[p])
		}
		return nil
	}

	c.linearizePlane(src.Planes[frame.PlaneY], dst.Planes[frame.PlaneY])
	for p := frame.PlaneU; p <= frame.PlaneV; p++ {
		for y := range src.Planes[p] {
			srcRow := src.Planes[p][y]
			dstRow := dst.Planes[p][y]
			for x, v := range srcRow {
				dstRow[x] = float64(v) / maxSample
			}
		}
	}
	return nil
}

// Delinearize converts the linear-light src back into gamma-encoded dst,
// the dual of Linearize.
func (c *Curves) Delinearize(src *frame.LinearImage, dst *frame.Image) error {
	if err := checkShape(src.Layout, dst.Layout, src.Width, dst.Width, src.Height, dst.Height); err != nil {
		return err
	}

	if src.Layout == frame.LayoutRGB {
		for p := range src.Planes {
			c.delinearizePlane(src.Planes[p], dst.Planes[p])
		}
		return nil
	}

	c.delinearizePlane(src.Planes[frame.PlaneY], dst.Planes[frame.PlaneY])
	for p := frame.PlaneU; p <= frame.PlaneV; p++ {
		for y := range src.Planes[p] {
			srcRow := src.Planes[p][y]
			dstRow := dst.Planes[p][y]
			for x, v := range srcRow {
				dstRow[x] = uint8(clamp(v*maxSample+0.5, 0, maxSample))
			}
		}
	}
	return nil
}

func (c *Curves) linearizePlane(src [][]uint8, dst [][]float64) {
	for y := range src {
		srcRow := src[y]
		dstRow := dst[y]
		for x, v := range srcRow {
			dstRow[x] = c.forward[v]
		}
	}
}

func (c *Curves) delinearizePlane(src [][]float64, dst [][]uint8) {
	for y := range src {
		srcRow := src[y]
		dstRow := dst[y]
		for x, v := range srcRow {
			idx := int(clamp(v*(BackwardSize-1)+0.5, 0, BackwardSize-1))
			dstRow[x] = c.backward[idx]
		}
	}
}

func checkShape(srcLayout, dstLayout frame.Layout, srcW, dstW, srcH, dstH int) error {
	if srcW != dstW || srcH != dstH {
		return fmt.Errorf("%w: %dx%d vs %dx%d", frame.ErrDimensionMismatch, srcW, srcH, dstW, dstH)
	}
	if srcLayout != dstLayout {
		return fmt.Errorf("%w: %s vs %s", frame.ErrLayoutMismatch, srcLayout, dstLayout)
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
