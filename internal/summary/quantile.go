package summary

import (
	"slices"

	"github.com/ccin2p3/fistsum/pkg/mathutil"
)

// quartileGroups is the number of equal-probability groups the sample
// is cut into.
const quartileGroups = 4

// quartiles computes q1, median and q3 of the sample by cutting the
// sorted data into four equal-probability groups with linear
// interpolation (the exclusive method, not nearest-rank). Needs at
// least two data points; callers handle the 0- and 1-element cases.
func quartiles(sizes []int64) (q1, median, q3 float64) {
	data := slices.Clone(sizes)
	slices.Sort(data)

	n := len(data)
	m := n + 1

	var cuts [quartileGroups - 1]float64

	for i := 1; i < quartileGroups; i++ {
		j := mathutil.Min(mathutil.Max(i*m/quartileGroups, 1), n-1)

		// delta is derived from the clamped rank, so cut points near the
		// sample edges extrapolate beyond the observed values.
		delta := i*m - j*quartileGroups

		cuts[i-1] = (float64(data[j-1])*float64(quartileGroups-delta) +
			float64(data[j])*float64(delta)) / quartileGroups
	}

	return cuts[0], cuts[1], cuts[2]
}
