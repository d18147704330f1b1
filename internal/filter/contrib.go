package filter

import (
	"math"

	"github.com/tphakala/simd/f64"
)

// ContribRow holds the weighted source contributors for one output index
// along one axis. Pos and Weights are parallel slices; Sum is the
// precomputed sum of Weights used for normalization.
type ContribRow struct {
	Pos     []int
	Weights []float64
	Sum     float64
}

// ContribTable precomputes, for every output index along one axis, the
// list of contributing source indices and their filter weights. Rows are
// jagged: the contributor count varies with the filter phase. A table is
// built fresh for each (input size, output size, edge method) combination
// and discarded after the pass that uses it.
type ContribTable struct {
	Rows []ContribRow

	// MaxTaps bounds the contributor count of any row.
	MaxTaps int
}

// BuildContribTable precomputes the contribution table for resampling an
// axis from inSize to outSize samples.
//
// For upscaling the filter keeps its native support of 2 lobes; for
// downscaling the support widens to 2/ratio and the kernel argument is
// compressed by ratio so the filter acts as an antialiasing low-pass.
// Output pixel centers align with input pixel centers, not edges:
// center = (i + 0.5)/ratio − 0.5.
func BuildContribTable(inSize, outSize int, method EdgeMethod) *ContribTable {
	ratio := float64(outSize) / float64(inSize)

	var halfTaps, filterScale float64
	if ratio > 1.0 {
		// Upscaling: native kernel support.
		filterScale = 1.0
		halfTaps = Lobes
	} else {
		// Downscaling: widen support to antialias.
		filterScale = ratio
		halfTaps = Lobes / ratio
	}
	maxTaps := int(2*halfTaps + 1)

	table := &ContribTable{
		Rows:    make([]ContribRow, outSize),
		MaxTaps: maxTaps,
	}

	for i := 0; i < outSize; i++ {
		center := (float64(i)+0.5)/ratio - 0.5
		left := int(math.Floor(center - halfTaps))
		right := int(math.Ceil(center + halfTaps))

		row := ContribRow{
			Pos:     make([]int, 0, maxTaps),
			Weights: make([]float64, 0, maxTaps),
		}
		for j := left; j <= right; j++ {
			// NoContribution drops out-of-range taps instead of remapping
			// them. The upper bound is j > inSize, so the one-past-the-end
			// index survives the cut and resolves to the last sample.
			if method == EdgeNoContribution && (j < 0 || j > inSize) {
				continue
			}

			weight := Lanczos2((center - float64(j)) * filterScale)
			if weight == 0 {
				continue
			}

			row.Pos = append(row.Pos, ResolveEdge(j, inSize, method))
			row.Weights = append(row.Weights, weight)
		}
		row.Sum = f64.Sum(row.Weights)
		table.Rows[i] = row
	}

	return table
}
