package resampler

import (
	"github.com/tphakala/go-image-resampler/frame"
)

// Common video frame sizes for convenience.
const (
	// WidthQCIF and HeightQCIF are the QCIF conferencing frame size.
	WidthQCIF  = 176
	HeightQCIF = 144

	// WidthCIF and HeightCIF are the CIF conferencing frame size.
	WidthCIF  = 352
	HeightCIF = 288

	// WidthVGA and HeightVGA are the VGA frame size.
	WidthVGA  = 640
	HeightVGA = 480

	// WidthHD and HeightHD are the 720p frame size.
	WidthHD  = 1280
	HeightHD = 720

	// WidthFullHD and HeightFullHD are the 1080p frame size.
	WidthFullHD  = 1920
	HeightFullHD = 1080
)

// ResizeImage scales src to the given size with default settings
// (DefaultGamma, EdgeReplicate). For repeated conversions construct a
// Resizer once with New and reuse it.
func ResizeImage(src *frame.Image, width, height int) (*frame.Image, error) {
	r, err := New(nil)
	if err != nil {
		return nil, err
	}
	return r.Resize(src, width, height)
}

// Upscale2x doubles both dimensions of src.
func (r *Resizer) Upscale2x(src *frame.Image) (*frame.Image, error) {
	return r.Resize(src, src.Width*2, src.Height*2)
}

// Downscale2x halves both dimensions of src. Odd dimensions round down.
func (r *Resizer) Downscale2x(src *frame.Image) (*frame.Image, error) {
	return r.Resize(src, src.Width/2, src.Height/2)
}

// ScaleDimensions applies a scale factor to a size, rounding to nearest
// and never returning less than MinDimension per side.
func ScaleDimensions(width, height int, factor float64) (int, int) {
	w := int(float64(width)*factor + 0.5)
	h := int(float64(height)*factor + 0.5)
	if w < MinDimension {
		w = MinDimension
	}
	if h < MinDimension {
		h = MinDimension
	}
	return w, h
}
