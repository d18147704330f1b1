package container

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-image-resampler/internal/testutil"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		path     string
		expected FileType
	}{
		{"image.bmp", FileTypeBMP},
		{"IMAGE.BMP", FileTypeBMP},
		{"video.yuv", FileTypeYUV},
		{"clip.YUV", FileTypeYUV},
		{"photo.png", FileTypeUnknown},
		{"noext", FileTypeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DetectFileType(tt.path), tt.path)
	}
}

func TestSplitSequenceName(t *testing.T) {
	tests := []struct {
		path     string
		base     string
		start    int
		numbered bool
	}{
		{"frame00000.bmp", "frame", 0, true},
		{"frame00012.bmp", "frame", 12, true},
		{"clip7.yuv", "clip", 7, true},
		{"plain.bmp", "plain", 0, false},
		{"dir/seq00003.yuv", "dir/seq", 3, true},
	}

	for _, tt := range tests {
		base, start, numbered := SplitSequenceName(tt.path)
		assert.Equal(t, tt.base, base, tt.path)
		assert.Equal(t, tt.start, start, tt.path)
		assert.Equal(t, tt.numbered, numbered, tt.path)
	}
}

// TestProbeSequence verifies consecutive numbered files are counted until
// the first gap.
func TestProbeSequence(t *testing.T) {
	dir := t.TempDir()
	img := testutil.GradientImage(t, testWidth, testHeight)
	for _, n := range []int{2, 3, 4, 6} { // gap at 5
		path := filepath.Join(dir, fmt.Sprintf("frame%05d.bmp", n))
		require.NoError(t, SaveBMP(path, img))
	}

	info, err := Probe(filepath.Join(dir, "frame00002.bmp"), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, FileTypeBMP, info.Type)
	assert.Equal(t, 2, info.StartFrame)
	assert.Equal(t, 3, info.Frames, "counting stops at the gap")
	assert.Equal(t, 3, info.TotalFrames())
	assert.Equal(t, filepath.Join(dir, "frame00004.bmp"), info.SequencePath(4))
}

func TestProbeSequenceMissingStart(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "frame00000.bmp"), 0, 0)
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestProbeSingleBMP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.bmp")
	require.NoError(t, SaveBMP(path, testutil.GradientImage(t, testWidth, testHeight)))

	info, err := Probe(path, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Frames)
	assert.Zero(t, info.SubFrames)
	assert.Equal(t, 1, info.TotalFrames())
}

// TestProbeYUVSubframes verifies in-file frame counting by size division.
func TestProbeYUVSubframes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.yuv")
	data := make([]byte, 4*YUVFrameSize(testWidth, testHeight))
	require.NoError(t, os.WriteFile(path, data, 0o644))

	info, err := Probe(path, testWidth, testHeight)
	require.NoError(t, err)
	assert.Equal(t, 4, info.SubFrames)
	assert.Equal(t, 4, info.TotalFrames())
}

func TestProbeYUVTrailingBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yuv")
	data := make([]byte, YUVFrameSize(testWidth, testHeight)+7)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err := Probe(path, testWidth, testHeight)
	assert.ErrorIs(t, err, ErrTrailingBytes)
}

func TestProbeYUVNeedsDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.yuv")
	require.NoError(t, os.WriteFile(path, make([]byte, 72), 0o644))

	_, err := Probe(path, 0, 0)
	assert.Error(t, err)
}
