// Package container reads and writes the image file formats the resizer
// works with: single-frame Windows bitmaps and headerless raw 4:2:0 YUV
// streams, plus filename-sequence and frame-count probing for both.
package container

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/bmp"

	"github.com/tphakala/go-image-resampler/frame"
)

// LoadBMP decodes a BMP file into a planar RGB frame.
func LoadBMP(path string) (*frame.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}
	defer f.Close()

	src, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("container: decoding %s: %w", path, err)
	}

	bounds := src.Bounds()
	img, err := frame.New(frame.LayoutRGB, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			// RGBA returns 16-bit premultiplied components.
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.Planes[frame.PlaneR][y][x] = uint8(r >> 8)
			img.Planes[frame.PlaneG][y][x] = uint8(g >> 8)
			img.Planes[frame.PlaneB][y][x] = uint8(b >> 8)
		}
	}
	return img, nil
}

// SaveBMP encodes a planar RGB frame as a 24-bit BMP file.
func SaveBMP(path string, img *frame.Image) error {
	if img.Layout != frame.LayoutRGB {
		return fmt.Errorf("%w: got %s, want %s", frame.ErrLayoutMismatch, img.Layout, frame.LayoutRGB)
	}

	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			off := out.PixOffset(x, y)
			out.Pix[off+0] = img.Planes[frame.PlaneR][y][x]
			out.Pix[off+1] = img.Planes[frame.PlaneG][y][x]
			out.Pix[off+2] = img.Planes[frame.PlaneB][y][x]
			out.Pix[off+3] = 0xff
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("container: %w", err)
	}
	if err := bmp.Encode(f, out); err != nil {
		f.Close()
		return fmt.Errorf("container: encoding %s: %w", path, err)
	}
	return f.Close()
}

// DetectBMPSize reads only the BMP header and reports the pixel
// dimensions without decoding the image data.
func DetectBMPSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("container: %w", err)
	}
	defer f.Close()

	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("container: reading %s header: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
