package rank

import (
	"maps"
	"slices"

	"github.com/matzehuels/degreerank/pkg/digraph"
)

// Degree is a node's in- and out-degree.
type Degree struct {
	In  int `json:"in"`
	Out int `json:"out"`
}

// Copeland returns out − in.
func (d Degree) Copeland() float64 { return float64(d.Out - d.In) }

// Ratio returns (out + 1) / (in + 1).
func (d Degree) Ratio() float64 { return float64(d.Out+1) / float64(d.In+1) }

// Degrees maps every node of a graph to its degree pair.
type Degrees map[int64]Degree

// Ranking maps node IDs to a scalar score.
type Ranking map[int64]float64

// Scorer turns a degree pair into a score.
type Scorer func(Degree) float64

// DegreesOf extracts the degree pair of every node in g. Isolated nodes map
// to the zero Degree.
func DegreesOf(g *digraph.Graph) Degrees {
	out := make(Degrees, g.NodeCount())
	for _, id := range g.Nodes() {
		out[id] = Degree{In: g.InDegree(id), Out: g.OutDegree(id)}
	}
	return out
}

// Score applies fn to every entry of d.
func Score(d Degrees, fn Scorer) Ranking {
	r := make(Ranking, len(d))
	for id, deg := range d {
		r[id] = fn(deg)
	}
	return r
}

// Copeland returns the Copeland score of every node in d.
func Copeland(d Degrees) Ranking { return Score(d, Degree.Copeland) }

// Ratio returns the degree ratio of every node in d.
func Ratio(d Degrees) Ranking { return Score(d, Degree.Ratio) }

// Nodes returns the ranked node IDs in ascending order.
func (r Ranking) Nodes() []int64 {
	return slices.Sorted(maps.Keys(r))
}

// Values returns the scores ordered by ascending node ID.
func (r Ranking) Values() []float64 {
	ids := r.Nodes()
	vals := make([]float64, len(ids))
	for i, id := range ids {
		vals[i] = r[id]
	}
	return vals
}
