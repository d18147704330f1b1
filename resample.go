package resampler

import (
	"errors"
	"fmt"

	"github.com/tphakala/go-image-resampler/frame"
	"github.com/tphakala/go-image-resampler/internal/engine"
	"github.com/tphakala/go-image-resampler/internal/filter"
	"github.com/tphakala/go-image-resampler/internal/gamma"
)

// Resizer scales planar images with gamma-correct Lanczos2 filtering.
// A Resizer is safe for reuse across frames of any size and layout; the
// gamma lookup tables are built once at construction.
type Resizer struct {
	config Config
	curves *gamma.Curves
}

// Config holds resizing configuration.
type Config struct {
	// Gamma is the decoding exponent applied to samples before filtering
	// and inverted afterwards. Zero selects DefaultGamma; GammaLinear
	// disables compensation entirely.
	Gamma float64

	// Edge selects how the filter treats samples past the image border.
	Edge EdgeMethod
}

// EdgeMethod enumerates border treatments for filter taps that fall
// outside the source image.
type EdgeMethod int

const (
	// EdgeReplicate extends the image by repeating its border samples.
	// This is the default.
	EdgeReplicate EdgeMethod = iota

	// EdgeMirror extends the image by reflecting it about its border.
	EdgeMirror

	// EdgeNoContribution discards taps outside the image and renormalizes
	// the remaining weights.
	EdgeNoContribution
)

// String returns the edge method name.
func (m EdgeMethod) String() string {
	switch m {
	case EdgeReplicate:
		return "replicate"
	case EdgeMirror:
		return "mirror"
	case EdgeNoContribution:
		return "no-contribution"
	default:
		return fmt.Sprintf("edge(%d)", int(m))
	}
}

// Common errors returned by the resizer.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid resizer configuration")

	// ErrInvalidDimensions indicates output dimensions outside the
	// supported range.
	ErrInvalidDimensions = errors.New("invalid output dimensions")
)

// Validate checks if the configuration is valid. A zero Gamma is accepted
// and treated as DefaultGamma.
func (c *Config) Validate() error {
	if c.Gamma != 0 && (c.Gamma < minGamma || c.Gamma > maxGamma) {
		return fmt.Errorf("%w: gamma %g out of range (%g to %g)", ErrInvalidConfig, c.Gamma, minGamma, maxGamma)
	}

	if c.Edge < EdgeReplicate || c.Edge > EdgeNoContribution {
		return fmt.Errorf("%w: unknown edge method %d", ErrInvalidConfig, int(c.Edge))
	}

	return nil
}

// New creates a Resizer from the given configuration. A nil config uses
// defaults: DefaultGamma and EdgeReplicate.
func New(config *Config) (*Resizer, error) {
	if config == nil {
		config = &Config{}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cfg := *config
	if cfg.Gamma == 0 {
		cfg.Gamma = DefaultGamma
	}

	curves, err := gamma.NewCurves(cfg.Gamma)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Resizer{config: cfg, curves: curves}, nil
}

// Gamma returns the effective gamma exponent.
func (r *Resizer) Gamma() float64 {
	return r.config.Gamma
}

// Edge returns the configured edge method.
func (r *Resizer) Edge() EdgeMethod {
	return r.config.Edge
}

// Resize scales src to width by height and returns the result as a new
// frame with the same color layout. The source is never modified.
//
// Filtering happens in linear light: samples are gamma-decoded, filtered
// per axis with the Lanczos2 kernel, and re-encoded. For subsampled YUV
// layouts the chroma planes are filtered on their own half-resolution
// grid, and only luma passes through the gamma tables.
func (r *Resizer) Resize(src *frame.Image, width, height int) (*frame.Image, error) {
	if err := checkDimensions(src.Width, src.Height); err != nil {
		return nil, err
	}
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	linearSrc, err := frame.NewLinear(src.Layout, src.Width, src.Height)
	if err != nil {
		return nil, err
	}
	if err := r.curves.Linearize(src, linearSrc); err != nil {
		return nil, err
	}

	linearDst, err := frame.NewLinear(src.Layout, width, height)
	if err != nil {
		return nil, err
	}
	if err := engine.Resize(linearDst, linearSrc, engineEdge(r.config.Edge)); err != nil {
		return nil, err
	}

	dst, err := frame.New(src.Layout, width, height)
	if err != nil {
		return nil, err
	}
	if err := r.curves.Delinearize(linearDst, dst); err != nil {
		return nil, err
	}
	return dst, nil
}

func checkDimensions(width, height int) error {
	if width < MinDimension || width > MaxDimension ||
		height < MinDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d (each side must be %d to %d)",
			ErrInvalidDimensions, width, height, MinDimension, MaxDimension)
	}
	return nil
}

// engineEdge maps the public edge method to the filter package's.
func engineEdge(m EdgeMethod) filter.EdgeMethod {
	switch m {
	case EdgeMirror:
		return filter.EdgeMirror
	case EdgeNoContribution:
		return filter.EdgeNoContribution
	default:
		return filter.EdgeReplicate
	}
}
