package container

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tphakala/go-image-resampler/frame"
)

// YUVFormat selects the plane ordering of a raw 4:2:0 file. All four
// variants carry the same samples; they differ only in whether chroma is
// planar or interleaved and which of U and V comes first.
type YUVFormat int

const (
	// FormatI420 stores Y, then the U plane, then the V plane.
	FormatI420 YUVFormat = iota
	// FormatYV12 stores Y, then the V plane, then the U plane.
	FormatYV12
	// FormatNV12 stores Y, then interleaved UV pairs.
	FormatNV12
	// FormatNV21 stores Y, then interleaved VU pairs.
	FormatNV21
)

func (f YUVFormat) String() string {
	switch f {
	case FormatI420:
		return "I420"
	case FormatYV12:
		return "YV12"
	case FormatNV12:
		return "NV12"
	case FormatNV21:
		return "NV21"
	default:
		return fmt.Sprintf("yuvformat(%d)", int(f))
	}
}

// interleaved reports whether chroma is stored as alternating pairs
// rather than two planes.
func (f YUVFormat) interleaved() bool {
	return f == FormatNV12 || f == FormatNV21
}

// vFirst reports whether the V samples precede the U samples.
func (f YUVFormat) vFirst() bool {
	return f == FormatYV12 || f == FormatNV21
}

func (f YUVFormat) valid() bool {
	return f >= FormatI420 && f <= FormatNV21
}

// ErrInvalidYUVFormat is returned for a YUVFormat outside the known set.
var ErrInvalidYUVFormat = errors.New("container: invalid raw YUV format")

// ErrShortFrame is returned when a file ends before a full frame's worth
// of samples could be read.
var ErrShortFrame = errors.New("container: truncated YUV frame")

// YUVFrameSize returns the byte size of one raw 4:2:0 frame: a full
// luma plane plus two quarter-size chroma planes.
func YUVFrameSize(width, height int) int64 {
	return int64(width) * int64(height) * 3 / 2
}

// ReadYUVFrame reads frame number index from a raw 4:2:0 stream into img.
// The image's dimensions define the frame geometry; its layout must be
// YUV420. Frames are assumed headerless and back to back, so the read
// offset is just index times the frame size.
func ReadYUVFrame(r io.ReadSeeker, img *frame.Image, index int, format YUVFormat) error {
	if img.Layout != frame.LayoutYUV420 {
		return fmt.Errorf("%w: got %s, want %s", frame.ErrLayoutMismatch, img.Layout, frame.LayoutYUV420)
	}
	if !format.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidYUVFormat, format)
	}

	if _, err := r.Seek(int64(index)*YUVFrameSize(img.Width, img.Height), io.SeekStart); err != nil {
		return fmt.Errorf("container: seeking to frame %d: %w", index, err)
	}

	for _, row := range img.Planes[frame.PlaneY] {
		if _, err := io.ReadFull(r, row); err != nil {
			return fmt.Errorf("%w: frame %d luma: %v", ErrShortFrame, index, err)
		}
	}

	first, second := img.Planes[frame.PlaneU], img.Planes[frame.PlaneV]
	if format.vFirst() {
		first, second = second, first
	}

	if format.interleaved() {
		pair := make([]byte, 2)
		for y := range first {
			for x := range first[y] {
				if _, err := io.ReadFull(r, pair); err != nil {
					return fmt.Errorf("%w: frame %d chroma: %v", ErrShortFrame, index, err)
				}
				first[y][x] = pair[0]
				second[y][x] = pair[1]
			}
		}
		return nil
	}

	for _, plane := range [2][][]uint8{first, second} {
		for _, row := range plane {
			if _, err := io.ReadFull(r, row); err != nil {
				return fmt.Errorf("%w: frame %d chroma: %v", ErrShortFrame, index, err)
			}
		}
	}
	return nil
}

// WriteYUVFrame writes img as one raw 4:2:0 frame in the given format.
func WriteYUVFrame(w io.Writer, img *frame.Image, format YUVFormat) error {
	if img.Layout != frame.LayoutYUV420 {
		return fmt.Errorf("%w: got %s, want %s", frame.ErrLayoutMismatch, img.Layout, frame.LayoutYUV420)
	}
	if !format.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidYUVFormat, format)
	}

	for _, row := range img.Planes[frame.PlaneY] {
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("container: writing luma: %w", err)
		}
	}

	first, second := img.Planes[frame.PlaneU], img.Planes[frame.PlaneV]
	if format.vFirst() {
		first, second = second, first
	}

	if format.interleaved() {
		pair := make([]byte, 2)
		for y := range first {
			for x := range first[y] {
				pair[0] = first[y][x]
				pair[1] = second[y][x]
				if _, err := w.Write(pair); err != nil {
					return fmt.Errorf("container: writing chroma: %w", err)
				}
			}
		}
		return nil
	}

	for _, plane := range [2][][]uint8{first, second} {
		for _, row := range plane {
			if _, err := w.Write(row); err != nil {
				return fmt.Errorf("container: writing chroma: %w", err)
			}
		}
	}
	return nil
}

// LoadYUV reads one subframe from a raw 4:2:0 file into img.
func LoadYUV(path string, img *frame.Image, index int, format YUVFormat) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("container: %w", err)
	}
	defer f.Close()
	return ReadYUVFrame(f, img, index, format)
}

// AppendYUV appends img as the next frame of a raw 4:2:0 file, creating
// the file when absent. Multi-frame outputs accumulate by calling this
// once per frame in order.
func AppendYUV(path string, img *frame.Image, format YUVFormat) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("container: %w", err)
	}
	if err := WriteYUVFrame(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
