package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/degreerank/pkg/pipeline"
)

// analyzeOpts holds the command-line flags shared by analyze and histogram.
// Flags only override the config file when set explicitly.
type analyzeOpts struct {
	out         string // directory for the PNG charts
	bins        int    // histogram bin count
	noClip      bool   // never clip the y-axis below a dominant bin
	width       int    // chart width in pixels
	height      int    // chart height in pixels
	jsonOut     bool   // print the report as JSON
	allowSparse bool   // report, rather than fail on, top bins with fewer than 2 nodes
	skipCharts  bool   // compute statistics without writing charts
}

func addChartFlags(cmd *cobra.Command, opts *analyzeOpts) {
	cmd.Flags().StringVarP(&opts.out, "out", "o", pipeline.DefaultOutputDir, "output directory for histogram PNGs")
	cmd.Flags().IntVar(&opts.bins, "bins", pipeline.DefaultBins, "number of histogram bins")
	cmd.Flags().BoolVar(&opts.noClip, "no-clip", false, "draw the dominant bar at full height instead of clipping the y-axis")
	cmd.Flags().IntVar(&opts.width, "width", 0, "chart width in pixels (default 800)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "chart height in pixels (default 600)")
}

// analyzeCommand creates the analyze command, which runs the full pipeline.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Rank nodes, draw histograms and summarize the top bins",
		Long: `Load a directed edge list and run the full analysis:

  1. Compute Copeland scores and degree ratios for every node
  2. Write "Copeland Scores Histogram.png" and "Degree Ratios Histogram.png"
  3. For the nodes in each histogram's top bin, print mean, median and
     sample standard deviation under both rankings

The file defaults to twitter_combined.txt.gz in the working directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args, opts, false)
		},
	}

	addChartFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&opts.allowSparse, "allow-sparse", false, "report top bins with fewer than 2 nodes instead of failing")
	cmd.Flags().BoolVar(&opts.skipCharts, "no-charts", false, "skip writing histogram PNGs")

	return cmd
}

// histogramCommand creates the histogram command, which only writes charts.
func (c *CLI) histogramCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "histogram [file]",
		Short: "Write the Copeland score and degree ratio histograms",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args, opts, true)
		},
	}

	addChartFlags(cmd, &opts)
	return cmd
}

func (c *CLI) run(cmd *cobra.Command, args []string, flags analyzeOpts, chartsOnly bool) error {
	opts, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		opts.Input = args[0]
	}
	applyFlags(cmd, &opts, flags)
	opts.SkipSummary = chartsOnly

	logger := loggerFromContext(cmd.Context())
	opts.Logger = logger

	prog := newProgress(logger)
	res, err := pipeline.NewRunner(logger).Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}
	prog.done("Analysis complete")

	if flags.jsonOut {
		return writeJSON(c.Out, res)
	}
	printReport(c.Out, res)
	return nil
}

// applyFlags copies explicitly set flags over config-file values.
func applyFlags(cmd *cobra.Command, opts *pipeline.Options, flags analyzeOpts) {
	changed := cmd.Flags().Changed
	if changed("out") {
		opts.OutputDir = flags.out
	}
	if changed("bins") {
		opts.Bins = flags.bins
	}
	if changed("no-clip") {
		opts.NoClip = flags.noClip
	}
	if changed("width") {
		opts.Width = flags.width
	}
	if changed("height") {
		opts.Height = flags.height
	}
	if changed("allow-sparse") {
		opts.AllowSparse = flags.allowSparse
	}
	if changed("no-charts") {
		opts.SkipCharts = flags.skipCharts
	}
}
