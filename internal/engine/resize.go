// Package engine implements the separable two-pass resample over planar
// linear-light images.
//
// A resample is a horizontal pass into an intermediate buffer followed by a
// vertical pass into the destination, each driven by a precomputed
// contribution table. Luma and chroma planes get distinct tables whenever
// the color layout subsamples chroma on the axis being filtered, because
// their spatial extents differ; otherwise chroma shares the luma table.
// Unchanged axes are skipped entirely, and an unchanged frame short-circuits
// to a copy.
package engine

import (
	"fmt"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-image-resampler/frame"
	"github.com/tphakala/go-image-resampler/internal/filter"
)

// Resize resamples src into dst. Both images must share a color layout;
// dst's dimensions select the target size. Samples are assumed to be
// linear light in [0, 1].
//
// All intermediate buffers and contribution tables are owned by this call
// and released when it returns. Nothing is shared across invocations.
func Resize(dst, src *frame.LinearImage, method filter.EdgeMethod) error {
	if src.Layout != dst.Layout {
		return fmt.Errorf("%w: %s vs %s", frame.ErrLayoutMismatch, src.Layout, dst.Layout)
	}
	if err := checkChromaExtent(src); err != nil {
		return err
	}
	if err := checkChromaExtent(dst); err != nil {
		return err
	}

	// Identical dimensions: plain copy, no filtering.
	if src.Width == dst.Width && src.Height == dst.Height {
		return frame.CopyLinear(dst, src)
	}

	layout := src.Layout

	// Horizontal pass into an intermediate at target width, source height.
	tmp, err := frame.NewLinear(layout, dst.Width, src.Height)
	if err != nil {
		return err
	}

	luma := filter.BuildContribTable(src.Width, dst.Width, method)
	chroma := luma
	if layout.SubsamplesHorizontally() {
		// Chroma planes are half width, so they need their own table.
		chroma = filter.BuildContribTable(src.Width/2, dst.Width/2, method)
	}
	filterPlanesHorz(tmp, src, luma, chroma)

	// Height unchanged: the intermediate already is the result.
	if src.Height == dst.Height {
		return frame.CopyLinear(dst, tmp)
	}

	// Vertical pass. Chroma height differs from luma only for 4:2:0.
	luma = filter.BuildContribTable(src.Height, dst.Height, method)
	chroma = luma
	if layout.SubsamplesVertically() {
		chroma = filter.BuildContribTable(src.Height/2, dst.Height/2, method)
	}
	filterPlanesVert(dst, tmp, luma, chroma)

	return nil
}

// filterPlanesHorz runs the horizontal filter over every plane of src into
// dst. Plane 0 uses the luma table at full extent; planes 1 and 2 use the
// chroma table at their own (possibly halved) extents.
func filterPlanesHorz(dst, src *frame.LinearImage, luma, chroma *filter.ContribTable) {
	scratch := make([]float64, maxTaps(luma, chroma))

	w, h := dst.Width, src.Height
	filterPlaneHorz(dst.Planes[0], src.Planes[0], luma, w, h, scratch)

	cw, _ := dst.Layout.ChromaDims(dst.Width, dst.Height)
	_, ch := src.Layout.ChromaDims(src.Width, src.Height)
	for p := 1; p < frame.NumPlanes; p++ {
		filterPlaneHorz(dst.Planes[p], src.Planes[p], chroma, cw, ch, scratch)
	}
}

// filterPlanesVert is the vertical counterpart of filterPlanesHorz.
func filterPlanesVert(dst, src *frame.LinearImage, luma, chroma *filter.ContribTable) {
	scratch := make([]float64, maxTaps(luma, chroma))

	filterPlaneVert(dst.Planes[0], src.Planes[0], luma, dst.Width, dst.Height, scratch)

	cw, ch := dst.Layout.ChromaDims(dst.Width, dst.Height)
	for p := 1; p < frame.NumPlanes; p++ {
		filterPlaneVert(dst.Planes[p], src.Planes[p], chroma, cw, ch, scratch)
	}
}

func filterPlaneHorz(dst, src [][]float64, table *filter.ContribTable, width, height int, scratch []float64) {
	for y := 0; y < height; y++ {
		srcRow := src[y]
		dstRow := dst[y]
		for x := 0; x < width; x++ {
			row := &table.Rows[x]
			taps := scratch[:len(row.Pos)]
			for k, pos := range row.Pos {
				taps[k] = srcRow[pos]
			}
			dstRow[x] = weightedSample(taps, row)
		}
	}
}

func filterPlaneVert(dst, src [][]float64, table *filter.ContribTable, width, height int, scratch []float64) {
	for y := 0; y < height; y++ {
		row := &table.Rows[y]
		taps := scratch[:len(row.Pos)]
		dstRow := dst[y]
		for x := 0; x < width; x++ {
			for k, pos := range row.Pos {
				taps[k] = src[pos][x]
			}
			dstRow[x] = weightedSample(taps, row)
		}
	}
}

// weightedSample computes the normalized, clamped filter output for one
// target sample. Division is by the precomputed weight sum, never the tap
// count: the weights already carry the normalization apart from floating
// rounding.
func weightedSample(taps []float64, row *filter.ContribRow) float64 {
	v := f64.DotProductUnsafe(taps, row.Weights) / row.Sum
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// checkChromaExtent rejects subsampled frames whose chroma planes are
// empty on an axis. A 1-wide 4:2:2 or 1-tall 4:2:0 frame has no chroma
// samples to filter, so there is no meaningful resample of it.
func checkChromaExtent(img *frame.LinearImage) error {
	cw, ch := img.Layout.ChromaDims(img.Width, img.Height)
	if cw == 0 || ch == 0 {
		return fmt.Errorf("%w: %dx%d %s frame has an empty chroma plane",
			frame.ErrInvalidDimensions, img.Width, img.Height, img.Layout)
	}
	return nil
}

func maxTaps(a, b *filter.ContribTable) int {
	if a.MaxTaps >= b.MaxTaps {
		return a.MaxTaps
	}
	return b.MaxTaps
}
