// Package summary computes descriptive statistics over a subset of a ranking.
//
// The usual subset is the top histogram bin: [SelectAtLeast] picks the nodes
// whose score reaches the bin's lower edge, and [Compute] reports the mean,
// median and sample standard deviation of their scores under any ranking.
package summary

import (
	"slices"

	"github.com/montanaflynn/stats"

	errs "github.com/matzehuels/degreerank/pkg/errors"
	"github.com/matzehuels/degreerank/pkg/rank"
)

// Summary holds descriptive statistics of a set of scores.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdev"` // sample standard deviation (n-1 denominator)
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// SelectAtLeast returns the IDs of nodes scoring at least threshold, in
// ascending order.
func SelectAtLeast(r rank.Ranking, threshold float64) []int64 {
	var ids []int64
	for id, v := range r {
		if v >= threshold {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Restrict returns the scores of the given nodes, in the order given. Nodes
// missing from the ranking are skipped.
func Restrict(nodes []int64, r rank.Ranking) []float64 {
	vals := make([]float64, 0, len(nodes))
	for _, id := range nodes {
		if v, ok := r[id]; ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// Compute summarizes the scores of nodes under r. The sample standard
// deviation is undefined below two values, so fewer than two matching nodes
// yields INSUFFICIENT_DATA.
func Compute(nodes []int64, r rank.Ranking) (Summary, error) {
	return Of(Restrict(nodes, r))
}

// Of summarizes a slice of values.
func Of(values []float64) (Summary, error) {
	if len(values) < 2 {
		return Summary{}, errs.New(errs.ErrCodeInsufficientData,
			"need at least 2 values for a sample standard deviation, got %d", len(values))
	}
	data := stats.Float64Data(values)

	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, errs.Wrap(errs.ErrCodeInternal, err, "mean")
	}
	median, err := stats.Median(data)
	if err != nil {
		return Summary{}, errs.Wrap(errs.ErrCodeInternal, err, "median")
	}
	stdev, err := stats.StandardDeviationSample(data)
	if err != nil {
		return Summary{}, errs.Wrap(errs.ErrCodeInternal, err, "standard deviation")
	}
	lo, err := stats.Min(data)
	if err != nil {
		return Summary{}, errs.Wrap(errs.ErrCodeInternal, err, "min")
	}
	hi, err := stats.Max(data)
	if err != nil {
		return Summary{}, errs.Wrap(errs.ErrCodeInternal, err, "max")
	}

	return Summary{
		Count:  len(values),
		Mean:   mean,
		Median: median,
		StdDev: stdev,
		Min:    lo,
		Max:    hi,
	}, nil
}
