package rank

import (
	"slices"
	"sort"
)

// DefaultBands is the default number of quality bands.
const DefaultBands = 5

// Thresholds returns the sorted, de-duplicated upper bounds of each band.
//
// Only finite scores (below [NoGraphScore]) take part in the split. With no
// finite scores the result is [NoGraphScore] alone. Otherwise the finite
// scores are sorted and the value at index min(n*i/k, n-1) is taken for
// i = 1..k-1, followed by the largest finite score, followed by
// [NoGraphScore]. The last bound therefore defines a band that only rows
// without a graph can reach. Equal quantiles collapse, so the number of bands
// can be smaller than k+1.
//
// k must be at least 1.
func Thresholds(scores []float64, k int) []float64 {
	finite := make([]float64, 0, len(scores))
	for _, s := range scores {
		if s < NoGraphScore {
			finite = append(finite, s)
		}
	}
	if len(finite) == 0 {
		return []float64{NoGraphScore}
	}
	slices.Sort(finite)

	n := len(finite)
	out := make([]float64, 0, k+1)
	for i := 1; i < k; i++ {
		out = append(out, finite[min(n*i/k, n-1)])
	}
	out = append(out, finite[n-1], NoGraphScore)

	slices.Sort(out)
	return slices.Compact(out)
}

// BandOf returns the index of the first threshold that is >= score. Scores
// above every threshold map to len(thresholds).
func BandOf(thresholds []float64, score float64) int {
	return sort.SearchFloat64s(thresholds, score)
}
