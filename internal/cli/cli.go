// Package cli implements the degreerank command-line interface.
//
// The CLI is built using cobra and logs through charmbracelet/log. Progress
// and diagnostics go to stderr; the report goes to stdout.
//
// # Commands
//
//   - analyze: load the edge list, write both histograms, print top-bin statistics
//   - histogram: load the edge list and write both histograms only
//   - completion: generate shell completion scripts
//
// Running degreerank without a subcommand is the same as "degreerank analyze".
//
// # Configuration
//
// Options come from built-in defaults, then an optional TOML file
// (./degreerank.toml or --config), then command-line flags.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/degreerank/pkg/buildinfo"
)

const (
	// appName is the application name used for display and the config file.
	appName = "degreerank"

	// configFileName is looked up in the working directory when --config is not set.
	configFileName = appName + ".toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // report output

	configPath string
}

// New creates a new CLI instance logging to logw and reporting to out.
func New(logw, out io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	analyze := c.analyzeCommand()

	root := &cobra.Command{
		Use:   appName + " [file]",
		Short: "Rank the nodes of a directed graph by Copeland score and degree ratio",
		Long: `degreerank reads a directed edge list (plain or gzip), scores every node by
Copeland score (out - in) and degree ratio ((out+1)/(in+1)), draws a histogram of
each ranking and reports mean, median and standard deviation for the nodes in
the top histogram bin.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         analyze.Args,
		RunE:         analyze.RunE,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	// The root runs analyze, so it accepts the same flags.
	root.Flags().AddFlagSet(analyze.Flags())

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+configFileName+" if present)")

	root.AddCommand(analyze)
	root.AddCommand(c.histogramCommand())
	root.AddCommand(c.completionCommand())

	return root
}
