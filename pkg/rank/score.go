package rank

import (
	"fmt"

	"github.com/matzehuels/benchorder/pkg/graphml"
)

// NoGraphScore marks rows whose topic has no recoverable graph. It sorts
// after every score [Ideal.Score] can return.
const NoGraphScore = 1_000_000.0

// maxScore caps finite scores strictly below the sentinel.
const maxScore = NoGraphScore - 1

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int `toml:"min" json:"min"`
	Max int `toml:"max" json:"max"`
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// Distance is 0 inside the range and otherwise the absolute difference to the
// nearer of the two bounds.
func (r Range) Distance(v int) float64 {
	if r.Contains(v) {
		return 0
	}
	return float64(min(absInt(v-r.Min), absInt(v-r.Max)))
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Ideal is the preferred size band for demo graphs.
type Ideal struct {
	Nodes Range `toml:"nodes" json:"nodes"`
	Edges Range `toml:"edges" json:"edges"`
}

// DefaultIdeal prefers graphs with 25-120 nodes and 40-300 edges.
var DefaultIdeal = Ideal{
	Nodes: Range{Min: 25, Max: 120},
	Edges: Range{Min: 40, Max: 300},
}

// Validate checks that both ranges are non-negative and ordered.
func (b Ideal) Validate() error {
	for _, c := range []struct {
		name string
		r    Range
	}{{"nodes", b.Nodes}, {"edges", b.Edges}} {
		if c.r.Min < 0 {
			return fmt.Errorf("%s range %s has a negative bound", c.name, c.r)
		}
		if c.r.Min > c.r.Max {
			return fmt.Errorf("%s range %s has min > max", c.name, c.r)
		}
	}
	return nil
}

// Score returns how far st is from the ideal band; 0 is ideal.
func (b Ideal) Score(st graphml.Stats) float64 {
	if b.Nodes.Contains(st.Nodes) && b.Edges.Contains(st.Edges) {
		return 0
	}
	return min(b.Nodes.Distance(st.Nodes)+b.Edges.Distance(st.Edges), maxScore)
}
