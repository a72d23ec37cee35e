package rank

import (
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/degreerank/pkg/digraph"
)

func triangle() *digraph.Graph {
	g := digraph.New()
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)
	g.AddEdge(3, 1)
	return g
}

func TestDegreesOf(t *testing.T) {
	g := triangle()
	g.AddNode(4)

	got := DegreesOf(g)
	want := Degrees{
		1: {In: 2, Out: 1},
		2: {In: 1, Out: 1},
		3: {In: 0, Out: 1},
		4: {In: 0, Out: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for id, d := range want {
		if got[id] != d {
			t.Errorf("node %d = %+v, want %+v", id, got[id], d)
		}
	}
}

func TestCopeland(t *testing.T) {
	got := Copeland(DegreesOf(triangle()))
	want := Ranking{1: -1, 2: 0, 3: 1}
	for id, v := range want {
		if got[id] != v {
			t.Errorf("Copeland[%d] = %v, want %v", id, got[id], v)
		}
	}
}

func TestRatio(t *testing.T) {
	got := Ratio(DegreesOf(triangle()))
	want := Ranking{1: 2.0 / 3.0, 2: 1, 3: 2}
	for id, v := range want {
		if math.Abs(got[id]-v) > 1e-12 {
			t.Errorf("Ratio[%d] = %v, want %v", id, got[id], v)
		}
	}
}

func TestScoreIdentities(t *testing.T) {
	degrees := []Degree{
		{0, 0}, {0, 7}, {7, 0}, {3, 3}, {1000000, 1}, {1, 1000000},
	}
	for _, d := range degrees {
		if got, want := d.Copeland(), float64(d.Out-d.In); got != want {
			t.Errorf("%+v.Copeland() = %v, want %v", d, got, want)
		}
		r := d.Ratio()
		if r <= 0 {
			t.Errorf("%+v.Ratio() = %v, want > 0", d, r)
		}
		if want := float64(d.Out+1) / float64(d.In+1); r != want {
			t.Errorf("%+v.Ratio() = %v, want %v", d, r, want)
		}
	}
}

func TestRankingOrder(t *testing.T) {
	r := Ranking{30: 3, 10: 1, 20: 2}
	if got, want := r.Nodes(), []int64{10, 20, 30}; !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
	if got, want := r.Values(), []float64{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}
