package filter

// EdgeMethod selects how filter taps that fall outside the image extent are
// resolved.
type EdgeMethod int

const (
	// EdgeReplicate clamps out-of-range coordinates to the nearest edge
	// sample. This is the default.
	EdgeReplicate EdgeMethod = iota

	// EdgeMirror reflects out-of-range coordinates about the image edge.
	EdgeMirror

	// EdgeNoContribution drops out-of-range taps entirely: the table
	// builder skips them, so they never enter the weighted sum.
	EdgeNoContribution
)

// String returns the edge method name.
func (m EdgeMethod) String() string {
	switch m {
	case EdgeReplicate:
		return "replicate"
	case EdgeMirror:
		return "mirror"
	case EdgeNoContribution:
		return "nocontrib"
	default:
		return "unknown"
	}
}

// ResolveEdge maps coordinate i into the valid range [0, size−1] under the
// given edge method. EdgeNoContribution taps are filtered out by the table
// builder before resolution, so here it behaves like EdgeReplicate.
func ResolveEdge(i, size int, method EdgeMethod) int {
	x := i
	if method == EdgeMirror {
		if x < 0 {
			x = -x
		}
		if x >= size {
			x = size*2 - x - 2
		}
	}
	// Final clamp covers replicate and the double-reflection overflow that
	// mirror can produce at very small dimensions.
	if x < 0 {
		x = 0
	}
	if x > size-1 {
		x = size - 1
	}
	return x
}
