package container

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/tphakala/go-image-resampler/frame"
)

// fingerprintLen is the number of hex characters in a frame fingerprint.
const fingerprintLen = 16

// Fingerprint returns a short stable hash of a frame's geometry and
// sample data, useful for comparing outputs across runs without storing
// the frames themselves. Two frames fingerprint equal exactly when their
// layout, dimensions, and every sample match.
func Fingerprint(img *frame.Image) string {
	h := xxhash.New()

	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(img.Layout))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(img.Width))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(img.Height))
	h.Write(hdr[:])

	for p := 0; p < frame.NumPlanes; p++ {
		for _, row := range img.Planes[p] {
			h.Write(row)
		}
	}
	return fmt.Sprintf("%0*x", fingerprintLen, h.Sum64())
}
