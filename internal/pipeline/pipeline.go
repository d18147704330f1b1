// Package pipeline runs resize jobs over whole inputs: a single image, a
// numbered file sequence, or a multi-frame raw YUV stream.
//
// Each frame flows load -> resize -> convert -> save. Resizing happens in
// the source color layout; conversion to the output container's layout
// comes after, so a BMP-to-YUV job filters RGB planes and converts the
// scaled result. A frame that fails to load is logged and skipped so one
// corrupt frame does not abort a long sequence.
package pipeline

import (
	"errors"
	"fmt"
	"log"
	"os"

	resampler "github.com/tphakala/go-image-resampler"
	"github.com/tphakala/go-image-resampler/frame"
	"github.com/tphakala/go-image-resampler/internal/color"
	"github.com/tphakala/go-image-resampler/internal/container"
)

// Job describes one resize run from an input path to an output path.
type Job struct {
	Input  string
	Output string

	// OutWidth and OutHeight are the target frame dimensions.
	OutWidth  int
	OutHeight int

	// InWidth and InHeight describe raw YUV input geometry. Ignored for
	// BMP inputs, whose dimensions come from the file header.
	InWidth  int
	InHeight int

	// YUVFormat is the plane ordering for raw YUV files, on both ends.
	YUVFormat container.YUVFormat

	Gamma float64
	Edge  resampler.EdgeMethod

	// Logger receives per-frame progress and skip notices. Nil disables
	// logging.
	Logger *log.Logger
}

// Stats reports what a finished job did.
type Stats struct {
	Processed int
	Skipped   int
}

// ErrUnsupportedInput is returned for input files of unknown format.
var ErrUnsupportedInput = errors.New("pipeline: unsupported input file type")

// Run executes a resize job and reports per-frame statistics. Frame-level
// load failures are skipped; configuration and write failures abort.
func Run(job *Job) (*Stats, error) {
	inType := container.DetectFileType(job.Input)
	if inType == container.FileTypeUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, job.Input)
	}
	outType := container.DetectFileType(job.Output)
	if outType == container.FileTypeUnknown {
		// No recognizable extension: keep the input format and skip
		// color conversion.
		outType = inType
	}

	resizer, err := resampler.New(&resampler.Config{Gamma: job.Gamma, Edge: job.Edge})
	if err != nil {
		return nil, err
	}

	info, err := container.Probe(job.Input, job.InWidth, job.InHeight)
	if err != nil {
		return nil, err
	}

	// Raw YUV output accumulates by appending, so clear any previous run.
	if outType == container.FileTypeYUV {
		if err := os.Remove(job.Output); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("pipeline: clearing %s: %w", job.Output, err)
		}
	}

	r := &runner{job: job, info: info, inType: inType, outType: outType, resizer: resizer}
	if err := r.run(); err != nil {
		return nil, err
	}
	return &r.stats, nil
}

type runner struct {
	job     *Job
	info    *container.FileInfo
	inType  container.FileType
	outType container.FileType
	resizer *resampler.Resizer
	stats   Stats
}

func (r *runner) run() error {
	outFrame := r.info.StartFrame
	for i := 0; i < r.info.Frames; i++ {
		path := r.job.Input
		if r.info.Frames > 1 {
			path = r.info.SequencePath(r.info.StartFrame + i)
		}

		subFrames := 1
		if r.inType == container.FileTypeYUV {
			subFrames = max(r.info.SubFrames, 1)
		}

		for j := 0; j < subFrames; j++ {
			src, err := r.loadFrame(path, j)
			if err != nil {
				r.logf("skipping frame %d of %s: %v", j, path, err)
				r.stats.Skipped++
				outFrame++
				continue
			}

			dst, err := r.resizer.Resize(src, r.job.OutWidth, r.job.OutHeight)
			if err != nil {
				return err
			}

			if err := r.saveFrame(dst, outFrame); err != nil {
				return err
			}
			r.logf("frame %d: %dx%d -> %dx%d", outFrame, src.Width, src.Height, dst.Width, dst.Height)
			r.stats.Processed++
			outFrame++
		}
	}
	if r.stats.Processed == 0 {
		return fmt.Errorf("%w: %s", container.ErrNoFrames, r.job.Input)
	}
	return nil
}

func (r *runner) loadFrame(path string, sub int) (*frame.Image, error) {
	switch r.inType {
	case container.FileTypeBMP:
		return container.LoadBMP(path)
	case container.FileTypeYUV:
		img, err := frame.New(frame.LayoutYUV420, r.job.InWidth, r.job.InHeight)
		if err != nil {
			return nil, err
		}
		if err := container.LoadYUV(path, img, sub, r.job.YUVFormat); err != nil {
			return nil, err
		}
		return img, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInput, path)
	}
}

// saveFrame converts the scaled frame to the output container's layout if
// the two differ, then writes it. Multi-frame BMP outputs become numbered
// files; multi-frame YUV outputs append to a single stream.
func (r *runner) saveFrame(img *frame.Image, n int) error {
	switch r.outType {
	case container.FileTypeBMP:
		if img.Layout != frame.LayoutRGB {
			rgb, err := frame.New(frame.LayoutRGB, img.Width, img.Height)
			if err != nil {
				return err
			}
			if err := color.YUVToRGB(rgb, img, color.Rec601); err != nil {
				return err
			}
			img = rgb
		}
		path := r.job.Output
		if r.multiFrame() {
			path = r.outputSequencePath(n)
		}
		return container.SaveBMP(path, img)
	case container.FileTypeYUV:
		if img.Layout != frame.LayoutYUV420 {
			yuv, err := frame.New(frame.LayoutYUV420, img.Width, img.Height)
			if err != nil {
				return err
			}
			if err := color.Convert(yuv, img, color.Rec601); err != nil {
				return err
			}
			img = yuv
		}
		return container.AppendYUV(r.job.Output, img, r.job.YUVFormat)
	default:
		return fmt.Errorf("pipeline: unsupported output file type for %s", r.job.Output)
	}
}

func (r *runner) multiFrame() bool {
	return r.info.Frames > 1 || r.info.SubFrames > 1
}

func (r *runner) outputSequencePath(n int) string {
	out := &container.FileInfo{Type: r.outType}
	base, _, _ := container.SplitSequenceName(r.job.Output)
	out.Base = base
	return out.SequencePath(n)
}

func (r *runner) logf(format string, args ...any) {
	if r.job.Logger != nil {
		r.job.Logger.Printf(format, args...)
	}
}
