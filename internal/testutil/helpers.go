// Package testutil provides reusable test helper functions for image resampler tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-image-resampler/frame"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	WeightTolerance  = 1e-9
	SampleTolerance  = 1.0 / 255.0
)

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%f != s[%d]=%f", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertLinearPlaneConstant verifies that every sample of a linear plane
// equals the given value within tolerance.
func AssertLinearPlaneConstant(t *testing.T, plane [][]float64, want, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	for y, row := range plane {
		for x, v := range row {
			if math.Abs(v-want) > tolerance {
				return assert.Fail(t, "plane not constant",
					"plane[%d][%d]=%f, want %f within %e", y, x, v, want, tolerance)
			}
		}
	}
	return true
}

// AssertPlaneConstant verifies that every sample of an 8-bit plane equals
// the given value.
func AssertPlaneConstant(t *testing.T, plane [][]uint8, want uint8, msgAndArgs ...any) bool {
	t.Helper()
	for y, row := range plane {
		for x, v := range row {
			if v != want {
				return assert.Fail(t, "plane not constant",
					"plane[%d][%d]=%d, want %d", y, x, v, want)
			}
		}
	}
	return true
}

// AssertImagesEqual verifies that two 8-bit frames match in layout,
// dimensions, and every sample within the given per-sample delta.
func AssertImagesEqual(t *testing.T, want, got *frame.Image, delta int, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Equal(t, want.Layout, got.Layout, "layout mismatch") {
		return false
	}
	if !assert.Equal(t, want.Width, got.Width, "width mismatch") ||
		!assert.Equal(t, want.Height, got.Height, "height mismatch") {
		return false
	}
	for p := 0; p < frame.NumPlanes; p++ {
		for y, row := range want.Planes[p] {
			for x, v := range row {
				diff := int(got.Planes[p][y][x]) - int(v)
				if diff < 0 {
					diff = -diff
				}
				if diff > delta {
					return assert.Fail(t, "sample mismatch",
						"plane %d [%d][%d]: got %d, want %d (delta %d)",
						p, y, x, got.Planes[p][y][x], v, delta)
				}
			}
		}
	}
	return true
}

// ConstantImage builds an 8-bit frame with each plane filled with a
// single value.
func ConstantImage(t *testing.T, layout frame.Layout, width, height int, values [frame.NumPlanes]uint8) *frame.Image {
	t.Helper()
	img, err := frame.New(layout, width, height)
	if err != nil {
		t.Fatalf("creating %s %dx%d image: %v", layout, width, height, err)
	}
	for p := 0; p < frame.NumPlanes; p++ {
		img.FillPlane(p, values[p])
	}
	return img
}

// ConstantLinearImage builds a linear frame with each plane filled with a
// single value.
func ConstantLinearImage(t *testing.T, layout frame.Layout, width, height int, values [frame.NumPlanes]float64) *frame.LinearImage {
	t.Helper()
	img, err := frame.NewLinear(layout, width, height)
	if err != nil {
		t.Fatalf("creating %s %dx%d linear image: %v", layout, width, height, err)
	}
	for p := 0; p < frame.NumPlanes; p++ {
		img.FillPlane(p, values[p])
	}
	return img
}

// GradientImage builds an 8-bit RGB frame whose samples vary with
// position, useful for exercising filters with non-trivial content.
func GradientImage(t *testing.T, width, height int) *frame.Image {
	t.Helper()
	img, err := frame.New(frame.LayoutRGB, width, height)
	if err != nil {
		t.Fatalf("creating %dx%d gradient image: %v", width, height, err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Planes[frame.PlaneR][y][x] = uint8((x * 255) / max(width-1, 1))
			img.Planes[frame.PlaneG][y][x] = uint8((y * 255) / max(height-1, 1))
			img.Planes[frame.PlaneB][y][x] = uint8(((x + y) * 255) / max(width+height-2, 1))
		}
	}
	return img
}
