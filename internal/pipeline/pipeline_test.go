package pipeline

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resampler "github.com/tphakala/go-image-resampler"
	"github.com/tphakala/go-image-resampler/frame"
	"github.com/tphakala/go-image-resampler/internal/container"
	"github.com/tphakala/go-image-resampler/internal/testutil"
)

const (
	testWidth  = 16
	testHeight = 12
)

func TestRunSingleBMP(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.bmp")
	output := filepath.Join(dir, "out.bmp")
	require.NoError(t, container.SaveBMP(input, testutil.GradientImage(t, testWidth, testHeight)))

	stats, err := Run(&Job{
		Input:     input,
		Output:    output,
		OutWidth:  2 * testWidth,
		OutHeight: 2 * testHeight,
		Gamma:     resampler.DefaultGamma,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Processed)
	assert.Zero(t, stats.Skipped)

	got, err := container.LoadBMP(output)
	require.NoError(t, err)
	assert.Equal(t, 2*testWidth, got.Width)
	assert.Equal(t, 2*testHeight, got.Height)
}

func TestRunBMPSequence(t *testing.T) {
	dir := t.TempDir()
	img := testutil.GradientImage(t, testWidth, testHeight)
	for n := 0; n < 3; n++ {
		require.NoError(t, container.SaveBMP(filepath.Join(dir, fmt.Sprintf("in%05d.bmp", n)), img))
	}

	stats, err := Run(&Job{
		Input:     filepath.Join(dir, "in00000.bmp"),
		Output:    filepath.Join(dir, "out00000.bmp"),
		OutWidth:  testWidth / 2,
		OutHeight: testHeight / 2,
		Gamma:     resampler.GammaLinear,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Processed)

	for n := 0; n < 3; n++ {
		got, err := container.LoadBMP(filepath.Join(dir, fmt.Sprintf("out%05d.bmp", n)))
		require.NoError(t, err, "frame %d", n)
		assert.Equal(t, testWidth/2, got.Width)
	}
}

// TestRunYUVStream verifies multi-frame raw YUV in and out of a single
// file, including the append-save accumulation.
func TestRunYUVStream(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.yuv")
	output := filepath.Join(dir, "out.yuv")

	src := testutil.ConstantImage(t, frame.LayoutYUV420, testWidth, testHeight,
		[frame.NumPlanes]uint8{180, 100, 150})
	for i := 0; i < 2; i++ {
		require.NoError(t, container.AppendYUV(input, src, container.FormatI420))
	}

	stats, err := Run(&Job{
		Input:     input,
		Output:    output,
		OutWidth:  testWidth / 2,
		OutHeight: testHeight / 2,
		InWidth:   testWidth,
		InHeight:  testHeight,
		YUVFormat: container.FormatI420,
		Gamma:     resampler.DefaultGamma,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)

	info, err := container.Probe(output, testWidth/2, testHeight/2)
	require.NoError(t, err)
	assert.Equal(t, 2, info.SubFrames)

	got, err := frame.New(frame.LayoutYUV420, testWidth/2, testHeight/2)
	require.NoError(t, err)
	require.NoError(t, container.LoadYUV(output, got, 1, container.FormatI420))
	for _, row := range got.Planes[frame.PlaneY] {
		for _, v := range row {
			assert.InDelta(t, 180, v, 1)
		}
	}
}

// TestRunCrossFormat verifies a BMP input lands in a YUV 4:2:0 container
// with conversion applied after scaling.
func TestRunCrossFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.bmp")
	output := filepath.Join(dir, "out.yuv")
	grey := testutil.ConstantImage(t, frame.LayoutRGB, testWidth, testHeight,
		[frame.NumPlanes]uint8{128, 128, 128})
	require.NoError(t, container.SaveBMP(input, grey))

	_, err := Run(&Job{
		Input:     input,
		Output:    output,
		OutWidth:  testWidth,
		OutHeight: testHeight,
		YUVFormat: container.FormatI420,
		Gamma:     resampler.GammaLinear,
	})
	require.NoError(t, err)

	got, err := frame.New(frame.LayoutYUV420, testWidth, testHeight)
	require.NoError(t, err)
	require.NoError(t, container.LoadYUV(output, got, 0, container.FormatI420))

	// Grey converts to studio-range luma with neutral chroma.
	for _, row := range got.Planes[frame.PlaneY] {
		for _, v := range row {
			assert.InDelta(t, 126, v, 2)
		}
	}
	testutil.AssertPlaneConstant(t, got.Planes[frame.PlaneU], 128)
	testutil.AssertPlaneConstant(t, got.Planes[frame.PlaneV], 128)
}

// TestRunClearsPreviousYUVOutput verifies a rerun does not append to the
// previous run's output.
func TestRunClearsPreviousYUVOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.yuv")
	output := filepath.Join(dir, "out.yuv")

	src := testutil.ConstantImage(t, frame.LayoutYUV420, testWidth, testHeight,
		[frame.NumPlanes]uint8{64, 128, 128})
	require.NoError(t, container.AppendYUV(input, src, container.FormatI420))

	job := &Job{
		Input:     input,
		Output:    output,
		OutWidth:  testWidth,
		OutHeight: testHeight,
		InWidth:   testWidth,
		InHeight:  testHeight,
		YUVFormat: container.FormatI420,
		Gamma:     resampler.GammaLinear,
	}
	for i := 0; i < 2; i++ {
		_, err := Run(job)
		require.NoError(t, err)
	}

	info, err := container.Probe(output, testWidth, testHeight)
	require.NoError(t, err)
	assert.Equal(t, 1, info.SubFrames, "second run must replace, not extend")
}

func TestRunUnknownInputType(t *testing.T) {
	_, err := Run(&Job{Input: "picture.png", Output: "out.bmp", OutWidth: 8, OutHeight: 8})
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}
