package resampler

// Image dimension limits.
const (
	// MinDimension is the smallest accepted width or height in pixels.
	MinDimension = 1

	// MaxDimension is the largest accepted width or height in pixels.
	MaxDimension = 4096
)

// Gamma values for common encodings.
const (
	// DefaultGamma is the standard display gamma, appropriate for sRGB-like
	// content and used when a Config leaves Gamma zero.
	DefaultGamma = 2.2

	// GammaMac is the legacy Apple display gamma used before Mac OS X 10.6.
	GammaMac = 1.8

	// GammaLinear disables gamma compensation: samples are treated as
	// already linear.
	GammaLinear = 1.0
)

// Gamma limits accepted by Config.Validate. The bounds are generous; they
// exist to reject zero, negative, and obviously nonsensical exponents, not
// to enumerate real encodings.
const (
	minGamma = 0.1
	maxGamma = 10.0
)
