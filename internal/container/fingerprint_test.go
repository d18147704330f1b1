package container

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-image-resampler/frame"
	"github.com/tphakala/go-image-resampler/internal/testutil"
)

func TestFingerprintStable(t *testing.T) {
	img := testutil.GradientImage(t, testWidth, testHeight)
	assert.Equal(t, Fingerprint(img), Fingerprint(img))
	assert.Len(t, Fingerprint(img), fingerprintLen)
}

func TestFingerprintSensitivity(t *testing.T) {
	base := testutil.GradientImage(t, testWidth, testHeight)

	oneBit := testutil.GradientImage(t, testWidth, testHeight)
	oneBit.Planes[frame.PlaneB][testHeight-1][testWidth-1] ^= 1
	assert.NotEqual(t, Fingerprint(base), Fingerprint(oneBit),
		"a single sample change must alter the fingerprint")

	taller := testutil.GradientImage(t, testWidth, testHeight+1)
	assert.NotEqual(t, Fingerprint(base), Fingerprint(taller),
		"dimensions are part of the identity")

	values := [frame.NumPlanes]uint8{50, 60, 70}
	rgb := testutil.ConstantImage(t, frame.LayoutRGB, testWidth, testHeight, values)
	yuv := testutil.ConstantImage(t, frame.LayoutYUV444, testWidth, testHeight, values)
	assert.NotEqual(t, Fingerprint(rgb), Fingerprint(yuv),
		"layout is part of the identity")
}
