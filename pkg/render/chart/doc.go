// Package chart renders histograms as PNG bar charts.
//
// # Overview
//
// [RenderPNG] draws one bar per bin, annotates each bar with its count, puts a
// tick label at every bin edge and titles the chart "<title> Histogram" with
// the title as x-axis label and "Frequency" as y-axis label.
//
// # Axis Clipping
//
// Degree distributions of social graphs are heavily skewed: one bin often
// holds nearly every node and flattens the rest of the chart. With clipping
// enabled (the default) and the dominant bin holding more than [ClipFactor]
// times the runner-up, the y-axis is cut just above the runner-up. The
// dominant bar is drawn to the top of the axis, its label gets a "*", and a
// note states its true frequency.
//
// # Options
//
//   - [WithSize]: image size in pixels (default 800x600)
//   - [WithClip]: enable or disable axis clipping
//   - [WithBarFill]: fraction of the bin width each bar covers (default 0.97)
//
// # Files
//
// [WritePNGFile] writes "<title> Histogram.png" into a directory, replacing
// any existing file of that name.
package chart
