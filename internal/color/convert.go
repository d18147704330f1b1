// Package color converts 8-bit frames between RGB and Y'CbCr layouts.
//
// The matrices are the integer-standard Rec.601 and Rec.709 coefficients
// scaled by 256, applied in floating point with a half-sample rounding
// offset. Chroma subsampling uses a cosited 1-2-1 horizontal filter for
// 4:2:2 and a 2x2 box average for 4:2:0; upsampling replicates the shared
// chroma sample across its luma sites.
package color

import (
	"fmt"

	"github.com/tphakala/go-image-resampler/frame"
)

// Matrix holds 3x3 conversion coefficients scaled by 256 plus a per-row
// offset. Forward matrices (RGB to YUV) add the offset after the product;
// inverse matrices add it to the inputs before the product.
type Matrix [3][4]float64

// Standard selects the color encoding standard for conversions.
type Standard int

const (
	// Rec601 is the SD television encoding, the default everywhere.
	Rec601 Standard = iota
	// Rec709 is the HD television encoding.
	Rec709
)

func (s Standard) String() string {
	switch s {
	case Rec601:
		return "rec601"
	case Rec709:
		return "rec709"
	default:
		return fmt.Sprintf("standard(%d)", int(s))
	}
}

// Rec.601 full-range R'G'B' to studio-range Y'CbCr, scaled by 256.
var rgbToYUV601 = Matrix{
	{65.738, 129.057, 25.064, 16},
	{-37.946, -74.494, 112.439, 128},
	{112.439, -94.154, -18.285, 128},
}

var yuv601ToRGB = Matrix{
	{298.082, 0, 408.583, -16},
	{298.082, -100.291, -208.120, -128},
	{298.082, 516.411, 0, -128},
}

// Rec.709 counterparts of the Rec.601 matrices above.
var rgbToYUV709 = Matrix{
	{46.742, 157.243, 15.874, 16},
	{-25.765, -86.674, 112.439, 128},
	{112.439, -102.129, -10.310, 128},
}

var yuv709ToRGB = Matrix{
	{298.082, 0, 458.942, -16},
	{298.082, -54.592, -136.425, -128},
	{298.082, 540.775, 0, -128},
}

func forwardMatrix(s Standard) Matrix {
	if s == Rec709 {
		return rgbToYUV709
	}
	return rgbToYUV601
}

func inverseMatrix(s Standard) Matrix {
	if s == Rec709 {
		return yuv709ToRGB
	}
	return yuv601ToRGB
}

// RGBToYUVPixel converts one full-range R'G'B' triple to studio-range
// Y'CbCr under the given standard.
func RGBToYUVPixel(r, g, b uint8, s Standard) (y, u, v uint8) {
	m := forwardMatrix(s)
	y = mixForward(m[0], r, g, b)
	u = mixForward(m[1], r, g, b)
	v = mixForward(m[2], r, g, b)
	return y, u, v
}

// YUVToRGBPixel converts one studio-range Y'CbCr triple back to full-range
// R'G'B' under the given standard.
func YUVToRGBPixel(y, u, v uint8, s Standard) (r, g, b uint8) {
	m := inverseMatrix(s)
	ty := float64(y) + m[0][3]
	tu := float64(u) + m[1][3]
	tv := float64(v) + m[2][3]
	r = mixInverse(m[0], ty, tu, tv)
	g = mixInverse(m[1], ty, tu, tv)
	b = mixInverse(m[2], ty, tu, tv)
	return r, g, b
}

func mixForward(row [4]float64, a, b, c uint8) uint8 {
	v := (row[0]*float64(a)+row[1]*float64(b)+row[2]*float64(c))/256.0 + row[3] + 0.5
	return clampPixel(v)
}

func mixInverse(row [4]float64, a, b, c float64) uint8 {
	v := (row[0]*a+row[1]*b+row[2]*c)/256.0 + 0.5
	return clampPixel(v)
}

func clampPixel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Convert dispatches on the two frames' layouts: a plain copy when they
// match, RGBToYUV or YUVToRGB when exactly one side is RGB, and a
// round trip through a full-resolution RGB intermediate when both are YUV
// with different subsampling.
func Convert(dst, src *frame.Image, s Standard) error {
	switch {
	case src.Layout == dst.Layout:
		return frame.Copy(dst, src)
	case src.Layout == frame.LayoutRGB:
		return RGBToYUV(dst, src, s)
	case dst.Layout == frame.LayoutRGB:
		return YUVToRGB(dst, src, s)
	}

	rgb, err := frame.New(frame.LayoutRGB, src.Width, src.Height)
	if err != nil {
		return err
	}
	if err := YUVToRGB(rgb, src, s); err != nil {
		return err
	}
	return RGBToYUV(dst, rgb, s)
}

// RGBToYUV converts an RGB frame into dst, whose layout selects the target
// chroma subsampling. Subsampled layouts require even dimensions on the
// subsampled axes so every chroma site has a full set of luma partners.
func RGBToYUV(dst, src *frame.Image, s Standard) error {
	if src.Layout != frame.LayoutRGB {
		return fmt.Errorf("%w: source is %s, want %s", frame.ErrLayoutMismatch, src.Layout, frame.LayoutRGB)
	}
	if !dst.Layout.IsYUV() {
		return fmt.Errorf("%w: destination is %s, want a YUV layout", frame.ErrLayoutMismatch, dst.Layout)
	}
	if src.Width != dst.Width || src.Height != dst.Height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", frame.ErrDimensionMismatch,
			src.Width, src.Height, dst.Width, dst.Height)
	}

	if dst.Layout == frame.LayoutYUV444 {
		convertRGBTo444(dst, src, s)
		return nil
	}
	if dst.Layout.SubsamplesHorizontally() && dst.Width%2 != 0 {
		return fmt.Errorf("%w: width %d must be even for %s", frame.ErrInvalidDimensions, dst.Width, dst.Layout)
	}
	if dst.Layout.SubsamplesVertically() && dst.Height%2 != 0 {
		return fmt.Errorf("%w: height %d must be even for %s", frame.ErrInvalidDimensions, dst.Height, dst.Layout)
	}

	// Convert through a full-resolution 4:4:4 intermediate, then filter the
	// chroma down to the destination's sampling grid.
	full, err := frame.New(frame.LayoutYUV444, src.Width, src.Height)
	if err != nil {
		return err
	}
	convertRGBTo444(full, src, s)

	for y := 0; y < dst.Height; y++ {
		copy(dst.Planes[frame.PlaneY][y], full.Planes[frame.PlaneY][y])
	}
	switch dst.Layout {
	case frame.LayoutYUV422:
		downsampleChroma422(dst, full)
	case frame.LayoutYUV420:
		downsampleChroma420(dst, full)
	}
	return nil
}

// YUVToRGB converts any YUV frame into an RGB destination of the same
// dimensions. Chroma is upsampled by replication: each chroma sample is
// reused for every luma site it covers.
func YUVToRGB(dst, src *frame.Image, s Standard) error {
	if !src.Layout.IsYUV() {
		return fmt.Errorf("%w: source is %s, want a YUV layout", frame.ErrLayoutMismatch, src.Layout)
	}
	if dst.Layout != frame.LayoutRGB {
		return fmt.Errorf("%w: destination is %s, want %s", frame.ErrLayoutMismatch, dst.Layout, frame.LayoutRGB)
	}
	if src.Width != dst.Width || src.Height != dst.Height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", frame.ErrDimensionMismatch,
			src.Width, src.Height, dst.Width, dst.Height)
	}

	xdiv, ydiv := 1, 1
	if src.Layout.SubsamplesHorizontally() {
		xdiv = 2
	}
	if src.Layout.SubsamplesVertically() {
		ydiv = 2
	}

	for y := 0; y < src.Height; y++ {
		cy := y / ydiv
		uRow := src.Planes[frame.PlaneU][cy]
		vRow := src.Planes[frame.PlaneV][cy]
		yRow := src.Planes[frame.PlaneY][y]
		for x := 0; x < src.Width; x++ {
			cx := x / xdiv
			r, g, b := YUVToRGBPixel(yRow[x], uRow[cx], vRow[cx], s)
			dst.Planes[frame.PlaneR][y][x] = r
			dst.Planes[frame.PlaneG][y][x] = g
			dst.Planes[frame.PlaneB][y][x] = b
		}
	}
	return nil
}

func convertRGBTo444(dst, src *frame.Image, s Standard) {
	for y := 0; y < src.Height; y++ {
		rRow := src.Planes[frame.PlaneR][y]
		gRow := src.Planes[frame.PlaneG][y]
		bRow := src.Planes[frame.PlaneB][y]
		for x := 0; x < src.Width; x++ {
			yv, u, v := RGBToYUVPixel(rRow[x], gRow[x], bRow[x], s)
			dst.Planes[frame.PlaneY][y][x] = yv
			dst.Planes[frame.PlaneU][y][x] = u
			dst.Planes[frame.PlaneV][y][x] = v
		}
	}
}

// downsampleChroma422 filters full-resolution chroma to half width with a
// cosited 1-2-1 kernel, replicating at the left edge.
func downsampleChroma422(dst, full *frame.Image) {
	for p := frame.PlaneU; p <= frame.PlaneV; p++ {
		for y := 0; y < full.Height; y++ {
			srcRow := full.Planes[p][y]
			dstRow := dst.Planes[p][y]
			for x := 0; x < full.Width; x += 2 {
				left := x - 1
				if left < 0 {
					left = 0
				}
				right := x + 1
				if right >= full.Width {
					right = full.Width - 1
				}
				sum := int(srcRow[left]) + 2*int(srcRow[x]) + int(srcRow[right]) + 2
				dstRow[x/2] = uint8(sum / 4)
			}
		}
	}
}

// downsampleChroma420 averages each 2x2 block of full-resolution chroma
// into one sample.
func downsampleChroma420(dst, full *frame.Image) {
	for p := frame.PlaneU; p <= frame.PlaneV; p++ {
		for y := 0; y < full.Height; y += 2 {
			top := full.Planes[p][y]
			bot := full.Planes[p][y+1]
			dstRow := dst.Planes[p][y/2]
			for x := 0; x < full.Width; x += 2 {
				sum := int(top[x]) + int(top[x+1]) + int(bot[x]) + int(bot[x+1]) + 2
				dstRow[x/2] = uint8(sum / 4)
			}
		}
	}
}
