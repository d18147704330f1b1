// Package filter implements the Lanczos2 windowed-sinc kernel, image edge
// resolution, and precomputed contribution tables for separable resampling.
package filter

import "math"

const (
	// Epsilon bounds both the Taylor-series region of sinc and the weight
	// magnitude below which kernel output snaps to exactly zero.
	Epsilon = 1.25e-5

	// Lobes is the one-sided support of the Lanczos2 kernel.
	Lobes = 2.0
)

// Sinc evaluates sin(πx)/(πx). Near zero it switches to the Taylor series
// 1 + y²(−1/6 + y²/120) with y = πx, which avoids the divide-by-zero
// instability of the direct form.
func Sinc(x float64) float64 {
	x *= math.Pi
	if x < Epsilon && x > -Epsilon {
		return 1.0 + x*x*(-1.0/6.0+x*x/120.0)
	}
	return math.Sin(x) / x
}

// Lanczos2 returns the 2-lobe windowed-sinc weight at offset t. The window
// is a second sinc stretched over the full support: sinc(t)·sinc(t/2) for
// |t| < 2, zero outside. Magnitudes below Epsilon are snapped to exactly
// zero so negligible contributors never enter a table.
func Lanczos2(t float64) float64 {
	if t < 0 {
		t = -t
	}
	if t >= Lobes {
		return 0
	}
	return snapToZero(Sinc(t) * Sinc(t/Lobes))
}

// snapToZero flushes sub-Epsilon magnitudes to exactly zero.
func snapToZero(w float64) float64 {
	if math.Abs(w) < Epsilon {
		return 0
	}
	return w
}
