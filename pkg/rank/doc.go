// Package rank scores dataset rows by how demo-friendly their knowledge graph
// is and orders them into shuffled quality bands.
//
// # Scoring
//
// An [Ideal] is a rectangle of acceptable (nodes, edges) counts. A graph
// inside it scores 0. Outside it, each dimension contributes the distance to
// the nearer edge of its range and the two are summed, an L1 distance to the
// rectangle measured from the closest boundary. Rows with no graph get
// [NoGraphScore], which is larger than any attainable score.
//
// # Banding
//
// [Thresholds] splits the finite scores into k bands of roughly equal size at
// quantile positions and always adds one final band reserved for
// [NoGraphScore]. [BandOf] maps a score to its band.
//
// # Ordering
//
// [Order] sorts by score, bands, then shuffles inside each band with one
// shared [pyrand.Rand], visiting bands in ascending order. The generator is
// created once per run and consumed sequentially across bands, so the result
// depends only on the scores and the seed.
//
//	rng := pyrand.New(42)
//	placements := rank.Order(scores, rank.DefaultBands, rng)
//	for _, p := range placements {
//	    out = append(out, rows[p.Index])
//	}
package rank
