package histogram

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	errs "github.com/matzehuels/degreerank/pkg/errors"
	"github.com/matzehuels/degreerank/pkg/rank"
)

// DefaultBins is the number of bins used when no WithBins option is given.
const DefaultBins = 15

// Histogram is a binned ranking.
type Histogram struct {
	Title    string    `json:"title"`
	Edges    []float64 `json:"edges"`    // len(Counts)+1 values, Edges[0] = min, last = max
	Counts   []int     `json:"counts"`   // samples per bin
	Dominant int       `json:"dominant"` // index of the tallest bin (first on ties)
	Total    int       `json:"total"`    // number of samples
}

// Option configures Build.
type Option func(*config)

type config struct {
	bins int
}

// WithBins sets the number of bins.
func WithBins(n int) Option {
	return func(c *config) { c.bins = n }
}

// Build bins the ranking's values. It returns EMPTY_INPUT for an empty
// ranking and DEGENERATE_RANGE when the values span no range.
func Build(title string, r rank.Ranking, opts ...Option) (*Histogram, error) {
	cfg := config{bins: DefaultBins}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := errs.ValidateBins(cfg.bins); err != nil {
		return nil, err
	}
	if len(r) == 0 {
		return nil, errs.New(errs.ErrCodeEmptyInput, "%s: no values to bin", title)
	}

	values := r.Values()
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errs.New(errs.ErrCodeDegenerateRange, "%s: non-finite value %v", title, v)
		}
	}

	xlow, xhigh := floats.Min(values), floats.Max(values)
	if xhigh == xlow {
		return nil, errs.New(errs.ErrCodeDegenerateRange,
			"%s: all %d values equal %g, bin width would be zero", title, len(values), xlow)
	}

	edges := Edges(xlow, xhigh, cfg.bins)
	counts := count(values, edges)

	return &Histogram{
		Title:    title,
		Edges:    edges,
		Counts:   counts,
		Dominant: argmax(counts),
		Total:    len(values),
	}, nil
}

// Edges returns n+1 bin edges spanning [xlow, xhigh]. Edge i is xlow + i*width;
// the last edge is pinned to xhigh.
func Edges(xlow, xhigh float64, n int) []float64 {
	width := (xhigh - xlow) / float64(n)
	edges := make([]float64, n+1)
	for i := range n {
		edges[i] = xlow + float64(i)*width
	}
	edges[n] = xhigh
	return edges
}

// count tallies values into bins. stat.Histogram treats the last divider as
// exclusive, so it is nudged up one ulp to keep max in the last bin.
func count(values, edges []float64) []int {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	dividers := slices.Clone(edges)
	last := len(dividers) - 1
	dividers[last] = math.Nextafter(dividers[last], math.Inf(1))

	weighted := stat.Histogram(nil, dividers, sorted, nil)
	counts := make([]int, len(weighted))
	for i, w := range weighted {
		counts[i] = int(w)
	}
	return counts
}

func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}
	return best
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int { return len(h.Counts) }

// Min returns the lowest edge, the ranking's minimum.
func (h *Histogram) Min() float64 { return h.Edges[0] }

// Max returns the highest edge, the ranking's maximum.
func (h *Histogram) Max() float64 { return h.Edges[len(h.Edges)-1] }

// Width returns the bin width.
func (h *Histogram) Width() float64 { return (h.Max() - h.Min()) / float64(h.Bins()) }

// TopBinStart returns the lower edge of the last bin. Nodes scoring at least
// this value fall in the top bin.
func (h *Histogram) TopBinStart() float64 { return h.Edges[len(h.Edges)-2] }

// RunnerUp returns the index of the tallest bin other than Dominant, or -1
// when there is only one bin.
func (h *Histogram) RunnerUp() int {
	best := -1
	for i, c := range h.Counts {
		if i == h.Dominant {
			continue
		}
		if best < 0 || c > h.Counts[best] {
			best = i
		}
	}
	return best
}

// Bin returns the index of the bin holding v, or -1 when v lies outside
// [Min, Max].
func (h *Histogram) Bin(v float64) int {
	if v < h.Min() || v > h.Max() {
		return -1
	}
	if v == h.Max() {
		return h.Bins() - 1
	}
	// Edges are sorted; find the last edge <= v.
	i, found := slices.BinarySearch(h.Edges, v)
	if !found {
		i--
	}
	return min(i, h.Bins()-1)
}
