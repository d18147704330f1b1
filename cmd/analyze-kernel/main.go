// Command analyze-kernel prints the impulse and frequency response of the
// Lanczos2 kernel and the contribution tables it produces, as a design aid
// for judging passband flatness and stopband rejection at various scaling
// ratios.
package main

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tphakala/go-image-resampler/internal/filter"
)

const (
	// Kernel sampling parameters
	samplesPerLobe = 256                                  // Kernel samples per unit of t
	kernelSamples  = int(2*filter.Lobes)*samplesPerLobe + 1 // Samples across the full support

	// FFT parameters
	fftSize = 8192 // Zero-padded transform length

	// Display limits
	responsePoints = 17  // Frequency response rows to print
	maxRowsToShow  = 8   // Contribution table rows to display in detail
	floorDB        = -120.0 // Clamp for log magnitude display
)

func main() {
	fmt.Println("=== Lanczos2 Kernel Analysis ===")
	fmt.Println()

	printKernelValues()
	printFrequencyResponse()

	for _, scenario := range []struct {
		name   string
		in, out int
	}{
		{"2x upscale", 176, 352},
		{"2x downscale", 352, 176},
		{"720p to 1080p", 1280, 1920},
		{"1080p to 720p", 1920, 1280},
	} {
		fmt.Printf("\n=== Contribution table: %s (%d -> %d) ===\n", scenario.name, scenario.in, scenario.out)
		printContribTable(scenario.in, scenario.out)
	}
}

func printKernelValues() {
	fmt.Println("Kernel values:")
	for _, t := range []float64{0, 0.25, 0.5, 0.75, 1.0, 1.25, 1.5, 1.75, 2.0} {
		fmt.Printf("  L(%5.2f) = %+.10f\n", t, filter.Lanczos2(t))
	}
}

// printFrequencyResponse samples the kernel across its support, transforms
// it, and prints magnitude in dB against normalized frequency, where 0.5
// is the Nyquist rate of the sampling grid.
func printFrequencyResponse() {
	impulse := make([]float64, fftSize)
	var sum float64
	for i := 0; i < kernelSamples; i++ {
		t := float64(i)/samplesPerLobe - filter.Lobes
		impulse[i] = filter.Lanczos2(t)
		sum += impulse[i]
	}
	// Normalize to unity DC gain so the response reads in plain dB.
	for i := 0; i < kernelSamples; i++ {
		impulse[i] /= sum
	}

	fft := fourier.NewFFT(fftSize)
	spectrum := fft.Coefficients(nil, impulse)

	fmt.Println("\nFrequency response (normalized to the kernel sampling grid):")
	fmt.Println("  freq      magnitude")
	for i := 0; i <= responsePoints; i++ {
		// Map display points to [0, 0.5] in units of the pixel grid, which
		// is samplesPerLobe times coarser than the kernel sampling grid.
		frac := float64(i) / float64(responsePoints) / 2.0
		bin := int(frac*float64(fftSize)/float64(samplesPerLobe) + 0.5)
		mag := cmplxAbs(spectrum[bin])
		db := floorDB
		if mag > 0 {
			db = math.Max(20*math.Log10(mag), floorDB)
		}
		fmt.Printf("  %.4f    %8.3f dB\n", frac, db)
	}
}

func printContribTable(in, out int) {
	table := filter.BuildContribTable(in, out, filter.EdgeReplicate)

	fmt.Printf("  Rows: %d, MaxTaps: %d\n", len(table.Rows), table.MaxTaps)
	for i, row := range table.Rows {
		if i >= maxRowsToShow {
			fmt.Printf("  ... (%d more rows)\n", len(table.Rows)-maxRowsToShow)
			break
		}
		fmt.Printf("  Row %3d: sum=%.10f taps=%v\n", i, row.Sum, formatWeights(row.Weights))
	}
}

func formatWeights(w []float64) []string {
	out := make([]string, len(w))
	for i, v := range w {
		out[i] = fmt.Sprintf("%+.6f", v)
	}
	return out
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
