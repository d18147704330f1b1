package resampler_test

import (
	"fmt"
	"log"

	resampler "github.com/tphakala/go-image-resampler"
	"github.com/tphakala/go-image-resampler/frame"
)

// Scale a single image with default settings.
func ExampleResizeImage() {
	src, err := frame.New(frame.LayoutRGB, 176, 144)
	if err != nil {
		log.Fatal(err)
	}
	src.Fill(128)

	dst, err := resampler.ResizeImage(src, 352, 288)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s %dx%d\n", dst.Layout, dst.Width, dst.Height)
	// Output: RGB 352x288
}

// Reuse one Resizer across the frames of a clip.
func ExampleNew() {
	r, err := resampler.New(&resampler.Config{
		Gamma: resampler.GammaMac,
		Edge:  resampler.EdgeMirror,
	})
	if err != nil {
		log.Fatal(err)
	}

	clip := make([]*frame.Image, 3)
	for i := range clip {
		clip[i], err = frame.New(frame.LayoutYUV420, 176, 144)
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, src := range clip {
		dst, err := r.Downscale2x(src)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%dx%d\n", dst.Width, dst.Height)
	}
	// Output:
	// 88x72
	// 88x72
	// 88x72
}
