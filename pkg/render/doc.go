// Package render groups the renderers that turn computed results into images.
//
// # Charts
//
// The [chart] subpackage draws a [histogram.Histogram] as a PNG bar chart
// with per-bar frequency labels and a tick at every bin edge:
//
//	h, _ := histogram.Build("Copeland Scores", ranking)
//	png, err := chart.RenderPNG(h)
//	path, err := chart.WritePNGFile(h, ".") // "Copeland Scores Histogram.png"
//
// Every call draws into its own context, so rendering two charts never shares
// state.
//
// [chart]: github.com/matzehuels/degreerank/pkg/render/chart
// [histogram.Histogram]: github.com/matzehuels/degreerank/pkg/histogram
package render
