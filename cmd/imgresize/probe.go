package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tphakala/go-image-resampler/frame"
	"github.com/tphakala/go-image-resampler/internal/container"
)

var probeFlags struct {
	inWidth   int
	inHeight  int
	yuvFormat string
}

var probeCmd = &cobra.Command{
	Use:   "probe <file>",
	Short: "Inspect an image file or frame sequence",
	Long: `Probe reports the detected format, dimensions, and frame count of an
input, plus a content fingerprint of its first frame for comparing
outputs across runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runProbe,
}

func init() {
	f := probeCmd.Flags()
	f.IntVar(&probeFlags.inWidth, "in-width", 0, "input width, required for YUV input")
	f.IntVar(&probeFlags.inHeight, "in-height", 0, "input height, required for YUV input")
	f.StringVarP(&probeFlags.yuvFormat, "yuv-format", "y", "i420",
		"raw YUV plane order: i420, yv12, nv12, or nv21")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(_ *cobra.Command, args []string) error {
	path := args[0]

	fileType := container.DetectFileType(path)
	width, height := probeFlags.inWidth, probeFlags.inHeight
	if fileType == container.FileTypeBMP {
		var err error
		width, height, err = container.DetectBMPSize(path)
		if err != nil {
			return err
		}
	}

	info, err := container.Probe(path, width, height)
	if err != nil {
		return err
	}

	first, err := loadFirstFrame(path, info, width, height)
	if err != nil {
		return err
	}

	fmt.Printf("  File:        %s\n", path)
	fmt.Printf("  Format:      %s\n", info.Type)
	fmt.Printf("  Dimensions:  %dx%d\n", width, height)
	fmt.Printf("  Layout:      %s\n", first.Layout)
	if info.Frames > 1 {
		fmt.Printf("  Sequence:    %d files starting at %d\n", info.Frames, info.StartFrame)
	} else if info.SubFrames > 1 {
		fmt.Printf("  Frames:      %d in one file\n", info.SubFrames)
	} else {
		fmt.Printf("  Frames:      1\n")
	}
	fmt.Printf("  Fingerprint: %s\n", container.Fingerprint(first))
	return nil
}

func loadFirstFrame(path string, info *container.FileInfo, width, height int) (*frame.Image, error) {
	if info.Frames > 1 {
		path = info.SequencePath(info.StartFrame)
	}
	if info.Type == container.FileTypeBMP {
		return container.LoadBMP(path)
	}

	format, err := parseYUVFormat(probeFlags.yuvFormat)
	if err != nil {
		return nil, err
	}
	img, err := frame.New(frame.LayoutYUV420, width, height)
	if err != nil {
		return nil, err
	}
	if err := container.LoadYUV(path, img, 0, format); err != nil {
		return nil, err
	}
	return img, nil
}
