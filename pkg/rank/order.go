package rank

import (
	"maps"
	"slices"

	"github.com/matzehuels/benchorder/pkg/pyrand"
)

// Placement is one row's position in the final order.
type Placement struct {
	Index int     // index into the caller's input slice
	Score float64 // suitability score of the row
	Band  int     // band the row was shuffled in
}

// Order returns the final ordering of len(scores) rows.
//
// Rows are stable-sorted by score, assigned to bands with [Thresholds] and
// [BandOf], and each band, in ascending band order, is shuffled in place with
// rng. rng is shared across bands and is never reseeded, so band b's
// permutation depends on how much state bands 0..b-1 consumed. The same
// scores, k and seed always give the same order.
func Order(scores []float64, k int, rng *pyrand.Rand) []Placement {
	sorted := make([]Placement, len(scores))
	for i, s := range scores {
		sorted[i] = Placement{Index: i, Score: s}
	}
	slices.SortStableFunc(sorted, func(a, b Placement) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		}
		return 0
	})

	thresholds := Thresholds(scores, k)
	bands := make(map[int][]Placement)
	for _, p := range sorted {
		p.Band = BandOf(thresholds, p.Score)
		bands[p.Band] = append(bands[p.Band], p)
	}

	out := make([]Placement, 0, len(scores))
	for _, b := range slices.Sorted(maps.Keys(bands)) {
		members := bands[b]
		rng.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})
		out = append(out, members...)
	}
	return out
}

// Histogram counts placements per band, indexed by band.
func Histogram(placements []Placement) []int {
	var counts []int
	for _, p := range placements {
		for len(counts) <= p.Band {
			counts = append(counts, 0)
		}
		counts[p.Band]++
	}
	return counts
}
