package histogram

import (
	"math"
	"testing"

	errs "github.com/matzehuels/degreerank/pkg/errors"
	"github.com/matzehuels/degreerank/pkg/rank"
)

func linear(n int) rank.Ranking {
	r := make(rank.Ranking, n)
	for i := range n {
		r[int64(i)] = float64(i)
	}
	return r
}

func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

func TestBuildEdges(t *testing.T) {
	r := rank.Ranking{1: -1, 2: 0, 3: 1, 4: 14}
	h, err := Build("Copeland Scores", r)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if len(h.Edges) != DefaultBins+1 {
		t.Fatalf("len(Edges) = %d, want %d", len(h.Edges), DefaultBins+1)
	}
	if h.Edges[0] != -1 || h.Edges[len(h.Edges)-1] != 14 {
		t.Errorf("span = [%v, %v], want [-1, 14]", h.Edges[0], h.Edges[len(h.Edges)-1])
	}
	for i := 1; i < len(h.Edges); i++ {
		if h.Edges[i] < h.Edges[i-1] {
			t.Errorf("Edges not non-decreasing at %d: %v", i, h.Edges)
		}
		if want := -1 + float64(i); math.Abs(h.Edges[i]-want) > 1e-9 {
			t.Errorf("Edges[%d] = %v, want %v", i, h.Edges[i], want)
		}
	}
	if h.Width() != 1 {
		t.Errorf("Width() = %v, want 1", h.Width())
	}
	if h.TopBinStart() != 13 {
		t.Errorf("TopBinStart() = %v, want 13", h.TopBinStart())
	}
}

func TestBuildCounts(t *testing.T) {
	r := rank.Ranking{1: -1, 2: 0, 3: 1, 4: 14}
	h, err := Build("Copeland Scores", r)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	want := make([]int, DefaultBins)
	want[0] = 1  // -1
	want[1] = 1  // 0
	want[2] = 1  // 1
	want[14] = 1 // 14, the maximum, lands in the closed last bin
	for i := range want {
		if h.Counts[i] != want[i] {
			t.Errorf("Counts[%d] = %d, want %d (all %v)", i, h.Counts[i], want[i], h.Counts)
		}
	}
	if h.Total != 4 || sum(h.Counts) != 4 {
		t.Errorf("Total = %d, sum = %d, want 4", h.Total, sum(h.Counts))
	}
}

func TestBuildCountsSumToTotal(t *testing.T) {
	r := make(rank.Ranking)
	for i := range 1000 {
		r[int64(i)] = math.Sin(float64(i)) * 37.3
	}
	h, err := Build("Sine", r, WithBins(7))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if h.Bins() != 7 {
		t.Errorf("Bins() = %d, want 7", h.Bins())
	}
	if got := sum(h.Counts); got != 1000 {
		t.Errorf("sum(Counts) = %d, want 1000", got)
	}
}

func TestBuildDominant(t *testing.T) {
	r := make(rank.Ranking)
	id := int64(0)
	add := func(v float64, n int) {
		for range n {
			r[id] = v
			id++
		}
	}
	add(0, 2)
	add(7.5, 9) // middle bin dominates
	add(15, 3)

	h, err := Build("Skewed", r)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if h.Dominant != 7 {
		t.Errorf("Dominant = %d, want 7 (counts %v)", h.Dominant, h.Counts)
	}
	if h.RunnerUp() != 14 {
		t.Errorf("RunnerUp() = %d, want 14 (counts %v)", h.RunnerUp(), h.Counts)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		r    rank.Ranking
		opts []Option
		code errs.Code
	}{
		{"empty", rank.Ranking{}, nil, errs.ErrCodeEmptyInput},
		{"all equal", rank.Ranking{1: 2, 2: 2, 3: 2}, nil, errs.ErrCodeDegenerateRange},
		{"single value", rank.Ranking{1: 0.5}, nil, errs.ErrCodeDegenerateRange},
		{"infinite", rank.Ranking{1: 0, 2: math.Inf(1)}, nil, errs.ErrCodeDegenerateRange},
		{"zero bins", linear(5), []Option{WithBins(0)}, errs.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build("T", tt.r, tt.opts...)
			if !errs.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestEdgesNoDrift(t *testing.T) {
	// 0.1 is not representable; accumulating it fifteen times drifts.
	edges := Edges(0, 1.5, 15)
	if len(edges) != 16 {
		t.Fatalf("len = %d, want 16", len(edges))
	}
	if edges[15] != 1.5 {
		t.Errorf("last edge = %v, want 1.5", edges[15])
	}
	for i, e := range edges {
		if want := float64(i) * 0.1; math.Abs(e-want) > 1e-12 {
			t.Errorf("edges[%d] = %v, want %v", i, e, want)
		}
	}
}

func TestBin(t *testing.T) {
	h, err := Build("Linear", linear(16)) // values 0..15, width 1
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	tests := []struct {
		v    float64
		want int
	}{
		{-0.5, -1},
		{0, 0},
		{0.99, 0},
		{1, 1},
		{14, 14},
		{14.5, 14},
		{15, 14},
		{15.1, -1},
	}
	for _, tt := range tests {
		if got := h.Bin(tt.v); got != tt.want {
			t.Errorf("Bin(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
	// Bin assignment agrees with the counts.
	perBin := make([]int, h.Bins())
	for _, v := range linear(16) {
		perBin[h.Bin(v)]++
	}
	for i := range perBin {
		if perBin[i] != h.Counts[i] {
			t.Errorf("bin %d: Bin() tally %d, Counts %d", i, perBin[i], h.Counts[i])
		}
	}
}
