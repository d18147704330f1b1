package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-image-resampler/internal/testutil"
)

// TestSinc tests Sinc against known values.
func TestSinc(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		expected  float64
		tolerance float64
	}{
		{"Zero", 0.0, 1.0, 1e-15},
		{"Half", 0.5, 2.0 / math.Pi, 1e-12},
		{"One", 1.0, 0.0, 1e-15},
		{"OneAndHalf", 1.5, -2.0 / (3.0 * math.Pi), 1e-12},
		{"Two", 2.0, 0.0, 1e-15},
		{"Negative", -0.5, 2.0 / math.Pi, 1e-12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Sinc(tt.x), tt.tolerance)
		})
	}
}

// TestSincNearZero verifies the series expansion joins the direct form
// smoothly around the switchover point.
func TestSincNearZero(t *testing.T) {
	for _, x := range []float64{1e-9, 1e-7, 3.9e-6, 4.1e-6, 1e-5, 1e-4} {
		got := Sinc(x)
		want := math.Sin(math.Pi*x) / (math.Pi * x)
		assert.InDelta(t, want, got, 1e-12, "x=%g", x)
		assert.Equal(t, got, Sinc(-x), "sinc must be even at x=%g", x)
	}
}

// TestLanczos2 tests the kernel against directly computed values.
func TestLanczos2(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"Center", 0.0, 1.0},
		{"IntegerOne", 1.0, 0.0},
		{"EdgeOfSupport", 2.0, 0.0},
		{"BeyondSupport", 2.5, 0.0},
		{"FarBeyondSupport", 100.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Lanczos2(tt.x), 1e-12)
		})
	}
}

// TestLanczos2Symmetric verifies the kernel is even.
func TestLanczos2Symmetric(t *testing.T) {
	const points = 101
	samples := make([]float64, points)
	for i := range samples {
		x := (float64(i)/(points-1))*2*Lobes - Lobes
		samples[i] = Lanczos2(x)
	}
	testutil.AssertSymmetric(t, samples, testutil.DefaultTolerance)
	testutil.AssertNoNaNOrInf(t, samples)
}

// TestLanczos2NegativeLobe verifies the kernel goes negative between the
// first and second zero crossing, the overshoot that gives Lanczos its
// sharpening character.
func TestLanczos2NegativeLobe(t *testing.T) {
	for _, x := range []float64{1.2, 1.5, 1.8} {
		assert.Negative(t, Lanczos2(x), "kernel should be negative at x=%g", x)
	}
	for _, x := range []float64{0.2, 0.5, 0.8} {
		assert.Positive(t, Lanczos2(x), "kernel should be positive at x=%g", x)
	}
}

// TestLanczos2SnapToZero verifies sub-threshold magnitudes flush to an
// exact zero rather than lingering as tiny weights.
func TestLanczos2SnapToZero(t *testing.T) {
	// Just inside the support the true kernel value is tiny but nonzero;
	// the snap threshold forces it to exactly zero.
	v := Lanczos2(2.0 - 1e-9)
	assert.Zero(t, v)
}
