// Package frame provides planar image buffers for the resampler.
//
// An image is three sample planes (R/G/B or Y/U/V) plus a color layout tag
// that determines how the second and third plane are sized relative to the
// first. Two concrete buffer types exist: Image holds 8-bit gamma-encoded
// samples, LinearImage holds linear-light float64 samples in [0, 1]. The two
// never share storage; conversion between them goes through the gamma stage.
package frame

import (
	"errors"
	"fmt"
)

// NumPlanes is the number of sample planes in every image.
const NumPlanes = 3

// Plane indices. The first plane is luma for YUV layouts and red for RGB;
// the orchestrator only distinguishes plane 0 from planes 1 and 2.
const (
	PlaneY = 0
	PlaneU = 1
	PlaneV = 2

	PlaneR = 0
	PlaneG = 1
	PlaneB = 2
)

// Common errors returned by buffer operations.
var (
	// ErrDimensionMismatch indicates two images have different dimensions.
	ErrDimensionMismatch = errors.New("image dimensions do not match")

	// ErrLayoutMismatch indicates two images have different color layouts.
	ErrLayoutMismatch = errors.New("image color layouts do not match")

	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("image dimensions must be positive")
)

// Layout identifies the color layout of an image and, with it, the chroma
// subsampling applied to planes 1 and 2.
type Layout int

const (
	// LayoutRGB is full-resolution R'G'B'. All three planes are full size.
	LayoutRGB Layout = iota

	// LayoutYUV444 is Y'CbCr with full-resolution chroma.
	LayoutYUV444

	// LayoutYUV422 is Y'CbCr with horizontally halved chroma.
	LayoutYUV422

	// LayoutYUV420 is Y'CbCr with chroma halved on both axes.
	LayoutYUV420
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "RGB"
	case LayoutYUV444:
		return "YUV444"
	case LayoutYUV422:
		return "YUV422"
	case LayoutYUV420:
		return "YUV420"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// IsYUV reports whether the layout has a luma plane and two chroma planes.
func (l Layout) IsYUV() bool {
	return l == LayoutYUV444 || l == LayoutYUV422 || l == LayoutYUV420
}

// SubsamplesHorizontally reports whether chroma width is halved.
func (l Layout) SubsamplesHorizontally() bool {
	return l == LayoutYUV422 || l == LayoutYUV420
}

// SubsamplesVertically reports whether chroma height is halved.
func (l Layout) SubsamplesVertically() bool {
	return l == LayoutYUV420
}

// ChromaDims derives the dimensions of planes 1 and 2 from the luma
// dimensions.
func (l Layout) ChromaDims(width, height int) (int, int) {
	if l.SubsamplesHorizontally() {
		width /= 2
	}
	if l.SubsamplesVertically() {
		height /= 2
	}
	return width, height
}

// Image is an 8-bit planar image. Plane 0 is width×height; planes 1 and 2
// are sized per the layout's chroma subsampling.
type Image struct {
	Layout Layout
	Width  int
	Height int
	Planes [NumPlanes][][]uint8
}

// LinearImage is the float64 linear-light counterpart of Image. Sample
// values are normalized to [0, 1].
type LinearImage struct {
	Layout Layout
	Width  int
	Height int
	Planes [NumPlanes][][]float64
}

// New allocates an 8-bit image with exactly sized planes.
func New(layout Layout, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	img := &Image{Layout: layout, Width: width, Height: height}
	for p := range img.Planes {
		w, h := img.PlaneDims(p)
		img.Planes[p] = allocPlane[uint8](w, h)
	}
	return img, nil
}

// NewLinear allocates a linear-light image with exactly sized planes.
func NewLinear(layout Layout, width, height int) (*LinearImage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	img := &LinearImage{Layout: layout, Width: width, Height: height}
	for p := range img.Planes {
		w, h := img.Layout.planeDims(p, width, height)
		img.Planes[p] = allocPlane[float64](w, h)
	}
	return img, nil
}

// allocPlane allocates an h×w plane backed by one contiguous slice so row
// access stays cache friendly.
func allocPlane[T uint8 | float64](w, h int) [][]T {
	backing := make([]T, w*h)
	rows := make([][]T, h)
	for y := range rows {
		rows[y] = backing[y*w : (y+1)*w : (y+1)*w]
	}
	return rows
}

func (l Layout) planeDims(p, width, height int) (int, int) {
	if p == 0 {
		return width, height
	}
	return l.ChromaDims(width, height)
}

// PlaneDims returns the dimensions of plane p.
func (img *Image) PlaneDims(p int) (int, int) {
	return img.Layout.planeDims(p, img.Width, img.Height)
}

// PlaneDims returns the dimensions of plane p.
func (img *LinearImage) PlaneDims(p int) (int, int) {
	return img.Layout.planeDims(p, img.Width, img.Height)
}

// Copy copies src into dst. The two images must agree in layout and
// dimensions; nothing is written on error.
func Copy(dst, src *Image) error {
	if err := checkMatch(dst.Layout, src.Layout, dst.Width, src.Width, dst.Height, src.Height); err != nil {
		return err
	}
	for p := range src.Planes {
		for y := range src.Planes[p] {
			copy(dst.Planes[p][y], src.Planes[p][y])
		}
	}
	return nil
}

// CopyLinear copies src into dst. The two images must agree in layout and
// dimensions; nothing is written on error.
func CopyLinear(dst, src *LinearImage) error {
	if err := checkMatch(dst.Layout, src.Layout, dst.Width, src.Width, dst.Height, src.Height); err != nil {
		return err
	}
	for p := range src.Planes {
		for y := range src.Planes[p] {
			copy(dst.Planes[p][y], src.Planes[p][y])
		}
	}
	return nil
}

func checkMatch(dstLayout, srcLayout Layout, dstW, srcW, dstH, srcH int) error {
	if dstW != srcW || dstH != srcH {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, dstW, dstH, srcW, srcH)
	}
	if dstLayout != srcLayout {
		return fmt.Errorf("%w: %s vs %s", ErrLayoutMismatch, dstLayout, srcLayout)
	}
	return nil
}

// Fill sets every sample of every plane to v. Intended for tests and
// synthetic frames.
func (img *Image) Fill(v uint8) {
	for p := range img.Planes {
		for y := range img.Planes[p] {
			row := img.Planes[p][y]
			for x := range row {
				row[x] = v
			}
		}
	}
}

// FillPlane sets every sample of plane p to v.
func (img *Image) FillPlane(p int, v uint8) {
	for y := range img.Planes[p] {
		row := img.Planes[p][y]
		for x := range row {
			row[x] = v
		}
	}
}

// Fill sets every sample of every plane to v.
func (img *LinearImage) Fill(v float64) {
	for p := range img.Planes {
		img.FillPlane(p, v)
	}
}

// FillPlane sets every sample of plane p to v.
func (img *LinearImage) FillPlane(p int, v float64) {
	for y := range img.Planes[p] {
		row := img.Planes[p][y]
		for x := range row {
			row[x] = v
		}
	}
}
