package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-image-resampler/internal/testutil"
)

// Test dimensions used across contribution table tests.
const (
	smallSize  = 4
	mediumSize = 16
	largeSize  = 64
)

// TestBuildContribTableRowCount verifies one row per output index.
func TestBuildContribTableRowCount(t *testing.T) {
	tests := []struct {
		name    string
		in, out int
	}{
		{"Upscale2x", mediumSize, 2 * mediumSize},
		{"Downscale2x", 2 * mediumSize, mediumSize},
		{"Identity", mediumSize, mediumSize},
		{"Fractional", 10, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := BuildContribTable(tt.in, tt.out, EdgeReplicate)
			assert.Len(t, table.Rows, tt.out)
		})
	}
}

// TestBuildContribTableMaxTaps verifies the support bound: native width
// for upscaling, widened by the inverse ratio for downscaling.
func TestBuildContribTableMaxTaps(t *testing.T) {
	up := BuildContribTable(mediumSize, 2*mediumSize, EdgeReplicate)
	assert.Equal(t, 5, up.MaxTaps, "upscale keeps native support 2*2+1")

	down := BuildContribTable(2*mediumSize, mediumSize, EdgeReplicate)
	assert.Equal(t, 9, down.MaxTaps, "2x downscale doubles the support")

	for _, table := range []*ContribTable{up, down} {
		for i, row := range table.Rows {
			assert.LessOrEqual(t, len(row.Pos), table.MaxTaps, "row %d exceeds MaxTaps", i)
			assert.Len(t, row.Weights, len(row.Pos), "row %d slices must be parallel", i)
		}
	}
}

// TestBuildContribTableWeightSums verifies each row's weights sum close to
// unity and that Sum matches the stored weights.
func TestBuildContribTableWeightSums(t *testing.T) {
	for _, method := range []EdgeMethod{EdgeReplicate, EdgeMirror} {
		table := BuildContribTable(largeSize, 2*largeSize, method)
		for i, row := range table.Rows {
			var sum float64
			for _, w := range row.Weights {
				sum += w
			}
			assert.InDelta(t, row.Sum, sum, testutil.WeightTolerance,
				"%s row %d stored sum disagrees with weights", method, i)
			assert.InDelta(t, 1.0, row.Sum, 0.1,
				"%s row %d weight sum far from unity", method, i)
		}
	}
}

// TestBuildContribTablePositionsInRange verifies every resolved position
// is a valid source index.
func TestBuildContribTablePositionsInRange(t *testing.T) {
	for _, method := range []EdgeMethod{EdgeReplicate, EdgeMirror, EdgeNoContribution} {
		for _, dims := range []struct{ in, out int }{
			{smallSize, 2 * smallSize},
			{2 * smallSize, smallSize},
			{largeSize, 48},
		} {
			table := BuildContribTable(dims.in, dims.out, method)
			for i, row := range table.Rows {
				for _, pos := range row.Pos {
					assert.GreaterOrEqual(t, pos, 0,
						"%s %d->%d row %d", method, dims.in, dims.out, i)
					assert.Less(t, pos, dims.in,
						"%s %d->%d row %d", method, dims.in, dims.out, i)
				}
			}
		}
	}
}

// TestBuildContribTableNoContribution verifies edge rows stay populated
// even when out-of-range taps are dropped.
func TestBuildContribTableNoContribution(t *testing.T) {
	table := BuildContribTable(smallSize, smallSize/2, EdgeNoContribution)
	for i, row := range table.Rows {
		require.NotEmpty(t, row.Pos, "row %d must keep in-range taps", i)
		assert.NotZero(t, row.Sum, "row %d needs a nonzero normalizer", i)
	}

	// Border rows keep fewer taps than interior rows of a larger table
	// would, because their out-of-range contributors were dropped.
	interior := BuildContribTable(largeSize, largeSize/2, EdgeNoContribution)
	first := len(interior.Rows[0].Pos)
	middle := len(interior.Rows[len(interior.Rows)/2].Pos)
	assert.Less(t, first, middle, "edge row should have fewer taps than interior row")
}

// TestBuildContribTableCentering verifies pixel-center alignment: the peak
// weight of an identity table sits on the matching source index.
func TestBuildContribTableCentering(t *testing.T) {
	table := BuildContribTable(mediumSize, mediumSize, EdgeReplicate)
	for i, row := range table.Rows {
		best := 0
		for k := range row.Weights {
			if row.Weights[k] > row.Weights[best] {
				best = k
			}
		}
		assert.Equal(t, i, row.Pos[best], "row %d peak weight misplaced", i)
	}
}

// TestBuildContribTableDeterministic verifies table construction is
// reproducible.
func TestBuildContribTableDeterministic(t *testing.T) {
	a := BuildContribTable(largeSize, 40, EdgeMirror)
	b := BuildContribTable(largeSize, 40, EdgeMirror)
	require.Equal(t, a.MaxTaps, b.MaxTaps)
	for i := range a.Rows {
		assert.Equal(t, a.Rows[i].Pos, b.Rows[i].Pos)
		assert.Equal(t, a.Rows[i].Weights, b.Rows[i].Weights)
	}
}
