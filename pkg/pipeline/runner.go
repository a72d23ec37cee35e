package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/degreerank/pkg/digraph"
	"github.com/matzehuels/degreerank/pkg/edgelist"
	errs "github.com/matzehuels/degreerank/pkg/errors"
	"github.com/matzehuels/degreerank/pkg/histogram"
	"github.com/matzehuels/degreerank/pkg/observability"
	"github.com/matzehuels/degreerank/pkg/rank"
	"github.com/matzehuels/degreerank/pkg/render/chart"
	"github.com/matzehuels/degreerank/pkg/summary"
)

// Runner executes pipeline stages and logs their progress.
//
// The Runner is stateless except for the logger - it doesn't store results,
// so one Runner can serve several runs with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → rank → bin → chart → summarize pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Input: opts.Input}

	// Stage 1: Load
	start := time.Now()
	g, err := r.Load(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Nodes, result.Edges = g.NodeCount(), g.EdgeCount()
	result.Stats.LoadTime = time.Since(start)

	r.Logger.Info("loaded dataset",
		"path", opts.Input,
		"nodes", result.Nodes,
		"edges", result.Edges,
		"duration", result.Stats.LoadTime)

	// Stage 2: Rank
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	result.Degrees, result.Copeland, result.Ratio = r.Rank(ctx, g)
	result.Stats.RankTime = time.Since(start)

	// Stage 3: Bin
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	if result.CopelandHistogram, err = r.Bin(ctx, TitleCopeland, result.Copeland, opts); err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	if result.RatioHistogram, err = r.Bin(ctx, TitleRatio, result.Ratio, opts); err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	result.Stats.HistogramTime = time.Since(start)

	// Stage 4: Chart
	if !opts.SkipCharts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start = time.Now()
		for _, h := range []*histogram.Histogram{result.CopelandHistogram, result.RatioHistogram} {
			path, err := r.Chart(ctx, h, opts)
			if err != nil {
				return nil, fmt.Errorf("chart: %w", err)
			}
			result.Charts = append(result.Charts, path)
		}
		result.Stats.ChartTime = time.Since(start)
	}

	// Stage 5: Summarize
	if opts.SkipSummary {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start = time.Now()
	for _, h := range []*histogram.Histogram{result.CopelandHistogram, result.RatioHistogram} {
		sel, err := r.Summarize(ctx, h, result.Copeland, result.Ratio, opts)
		if err != nil {
			return nil, fmt.Errorf("summary: %w", err)
		}
		result.Selections = append(result.Selections, sel)
	}
	result.Stats.SummaryTime = time.Since(start)

	return result, nil
}

// Load reads the edge list at path.
func (r *Runner) Load(ctx context.Context, path string) (*digraph.Graph, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, observability.StageLoad)
	start := time.Now()

	r.Logger.Debug("reading edge list", "path", path)
	g, err := edgelist.ReadFile(path)
	hooks.OnStageComplete(ctx, observability.StageLoad, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	hooks.OnGraphLoaded(ctx, path, g.NodeCount(), g.EdgeCount())
	return g, nil
}

// Rank extracts degree pairs and both rankings.
func (r *Runner) Rank(ctx context.Context, g *digraph.Graph) (rank.Degrees, rank.Ranking, rank.Ranking) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, observability.StageDegrees)
	start := time.Now()

	degrees := rank.DegreesOf(g)
	copeland := rank.Copeland(degrees)
	ratio := rank.Ratio(degrees)

	hooks.OnStageComplete(ctx, observability.StageDegrees, time.Since(start), nil)
	r.Logger.Debug("computed rankings", "nodes", len(degrees))
	return degrees, copeland, ratio
}

// Bin builds the histogram of one ranking.
func (r *Runner) Bin(ctx context.Context, title string, ranking rank.Ranking, opts Options) (*histogram.Histogram, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, observability.StageHistogram)
	start := time.Now()

	h, err := histogram.Build(title, ranking, histogram.WithBins(opts.Bins))
	hooks.OnStageComplete(ctx, observability.StageHistogram, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("binned ranking",
		"title", title,
		"min", h.Min(),
		"max", h.Max(),
		"width", h.Width(),
		"dominant", h.Dominant)
	return h, nil
}

// Chart writes the PNG for h and returns its path.
func (r *Runner) Chart(ctx context.Context, h *histogram.Histogram, opts Options) (string, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, observability.StageChart)
	start := time.Now()

	path, err := chart.WritePNGFile(h, opts.OutputDir, opts.ChartOptions()...)
	hooks.OnStageComplete(ctx, observability.StageChart, time.Since(start), err)
	if err != nil {
		return "", err
	}

	if fi, err := os.Stat(path); err == nil {
		observability.Output().OnFileWritten(ctx, path, int(fi.Size()))
	}
	r.Logger.Info("histogram drawn", "path", path)
	return path, nil
}

// Summarize selects the nodes in the top bin of h and summarizes them under
// both rankings.
func (r *Runner) Summarize(ctx context.Context, h *histogram.Histogram, copeland, ratio rank.Ranking, opts Options) (Selection, error) {
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, observability.StageSummary)
	start := time.Now()

	source := copeland
	if h.Title == TitleRatio {
		source = ratio
	}
	sel := Selection{By: h.Title, Threshold: h.TopBinStart()}
	sel.Nodes = summary.SelectAtLeast(source, sel.Threshold)
	sel.Count = len(sel.Nodes)

	var err error
	if sel.Copeland, err = summary.Compute(sel.Nodes, copeland); err == nil {
		sel.Ratio, err = summary.Compute(sel.Nodes, ratio)
	}
	hooks.OnStageComplete(ctx, observability.StageSummary, time.Since(start), err)

	if err != nil {
		if !opts.AllowSparse || !errs.Is(err, errs.ErrCodeInsufficientData) {
			return Selection{}, fmt.Errorf("%s top bin (>= %g): %w", h.Title, sel.Threshold, err)
		}
		sel.Copeland, sel.Ratio = summary.Summary{}, summary.Summary{}
		sel.Err = errs.UserMessage(err)
		r.Logger.Warn("top bin too small to summarize", "by", h.Title, "nodes", sel.Count)
		return sel, nil
	}

	r.Logger.Debug("summarized top bin", "by", h.Title, "threshold", sel.Threshold, "nodes", sel.Count)
	return sel, nil
}
