// Package pipeline runs the complete degree-ranking analysis.
//
// This package implements the load → rank → bin → chart → summarize pipeline
// used by the CLI. Centralizing it keeps every entry point (analyze,
// histogram, tests) on the same stage order and defaults.
//
// # Architecture
//
// The pipeline consists of five stages:
//
//  1. Load: Read the edge list into a directed graph
//  2. Rank: Extract degree pairs, compute Copeland scores and degree ratios
//  3. Bin: Build one histogram per ranking
//  4. Chart: Write one PNG per histogram (skippable)
//  5. Summarize: Select the top-bin nodes of each histogram and summarize
//     them under both rankings
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:     "twitter_combined.txt.gz",
//	    OutputDir: ".",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Selections[0].Copeland.Mean)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/degreerank/pkg/errors"
	"github.com/matzehuels/degreerank/pkg/histogram"
	"github.com/matzehuels/degreerank/pkg/rank"
	"github.com/matzehuels/degreerank/pkg/render/chart"
	"github.com/matzehuels/degreerank/pkg/summary"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Tests
// =============================================================================

const (
	// DefaultInput is the SNAP ego-Twitter edge list.
	DefaultInput = "twitter_combined.txt.gz"

	// DefaultOutputDir is where charts are written.
	DefaultOutputDir = "."

	// DefaultBins is the number of histogram bins.
	DefaultBins = histogram.DefaultBins
)

// Ranking titles. They double as chart titles and file name stems.
const (
	TitleCopeland = "Copeland Scores"
	TitleRatio    = "Degree Ratios"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for an analysis run.
type Options struct {
	Input       string `json:"input" toml:"input"`
	OutputDir   string `json:"output_dir,omitempty" toml:"output_dir"`
	Bins        int    `json:"bins,omitempty" toml:"bins"`
	NoClip      bool   `json:"no_clip,omitempty" toml:"no_clip"`           // Draw full-height bars, never clip the y-axis
	SkipCharts  bool   `json:"skip_charts,omitempty" toml:"skip_charts"`   // Compute everything but write no PNGs
	SkipSummary bool   `json:"skip_summary,omitempty" toml:"skip_summary"` // Stop after the charts
	AllowSparse bool   `json:"allow_sparse,omitempty" toml:"allow_sparse"` // Record, rather than fail on, top bins with fewer than 2 nodes
	Width       int    `json:"width,omitempty" toml:"width"`
	Height      int    `json:"height,omitempty" toml:"height"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`
}

// Validate checks option values and applies defaults.
func (o *Options) Validate() error {
	if o.Input == "" {
		o.Input = DefaultInput
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Bins == 0 {
		o.Bins = DefaultBins
	}
	if o.Width == 0 {
		o.Width = chart.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = chart.DefaultHeight
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := errs.ValidateInputPath(o.Input); err != nil {
		return err
	}
	return errs.ValidateBins(o.Bins)
}

// ChartOptions returns the chart renderer options for o.
func (o *Options) ChartOptions() []chart.Option {
	return []chart.Option{
		chart.WithSize(o.Width, o.Height),
		chart.WithClip(!o.NoClip),
	}
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	Input string `json:"input"`
	Nodes int    `json:"nodes"`
	Edges int    `json:"edges"`

	// Rankings are kept in memory for callers but not serialized; a large
	// graph would dwarf the rest of the report.
	Degrees  rank.Degrees `json:"-"`
	Copeland rank.Ranking `json:"-"`
	Ratio    rank.Ranking `json:"-"`

	CopelandHistogram *histogram.Histogram `json:"copeland_histogram"`
	RatioHistogram    *histogram.Histogram `json:"ratio_histogram"`

	// Charts lists the written PNG paths, Copeland first.
	Charts []string `json:"charts,omitempty"`

	// Selections holds one entry per histogram: the nodes in its top bin,
	// summarized under both rankings.
	Selections []Selection `json:"selections,omitempty"`

	Stats Stats `json:"stats"`
}

// Selection is the top bin of one ranking's histogram.
type Selection struct {
	By        string          `json:"by"`        // title of the ranking that defined the bin
	Threshold float64         `json:"threshold"` // lower edge of the top bin
	Nodes     []int64         `json:"-"`
	Count     int             `json:"count"`
	Copeland  summary.Summary `json:"copeland"`
	Ratio     summary.Summary `json:"ratio"`
	Err       string          `json:"error,omitempty"` // set when AllowSparse skipped the summary
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LoadTime      time.Duration `json:"load_time"`
	RankTime      time.Duration `json:"rank_time"`
	HistogramTime time.Duration `json:"histogram_time"`
	ChartTime     time.Duration `json:"chart_time"`
	SummaryTime   time.Duration `json:"summary_time"`
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.RankTime + s.HistogramTime + s.ChartTime + s.SummaryTime
}
