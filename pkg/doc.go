// Package pkg provides the libraries behind the degreerank CLI.
//
// # Overview
//
// degreerank ranks the nodes of a directed graph by two degree-based scores
// and looks at who lands in the top histogram bin:
//
//   - Copeland score: out-degree minus in-degree
//   - Degree ratio: (out-degree + 1) / (in-degree + 1)
//
// # Architecture
//
//	Edge list (plain or gzip)
//	         ↓
//	    [edgelist] package (parse into a directed graph)
//	         ↓
//	    [digraph] package (nodes, edges, in/out degrees)
//	         ↓
//	    [rank] package (Copeland scores, degree ratios)
//	         ↓
//	    [histogram] package (equal-width bins, dominant bin)
//	         ↓
//	    [render/chart] package (PNG bar charts)
//	         ↓
//	    [summary] package (top-bin mean, median, standard deviation)
//
// [pipeline] runs these stages in order and is what the CLI calls.
//
// # Quick Start
//
//	g, err := edgelist.ReadFile("twitter_combined.txt.gz")
//	if err != nil {
//	    return err
//	}
//	scores := rank.Copeland(rank.DegreesOf(g))
//	h, err := histogram.Build("Copeland Scores", scores)
//	if err != nil {
//	    return err
//	}
//	top := summary.SelectAtLeast(scores, h.TopBinStart())
//	s, err := summary.Compute(top, scores)
//
// # Supporting Packages
//
//   - [errors]: coded errors and input validation
//   - [fonts]: cached Go Regular font faces for chart text
//   - [observability]: pipeline and output hooks
//   - [buildinfo]: version information set at build time
//
// [edgelist]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/edgelist
// [digraph]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/digraph
// [rank]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/rank
// [histogram]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/histogram
// [render/chart]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/render/chart
// [summary]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/summary
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/fonts
// [observability]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/degreerank/pkg/buildinfo
package pkg
