// Package histogram bins a ranking into equal-width bins.
//
// # Bins
//
// [Build] spans [min, max] of the ranking with n bins (15 by default). Edge i
// is computed directly as min + i*width rather than by repeated addition, so
// there is no accumulated drift and the final edge is exactly max. A ranking
// whose values are all equal has no width to divide and is rejected with
// DEGENERATE_RANGE.
//
// Bins are half-open [e_i, e_i+1) except the last, which also holds max. This
// matches the usual plotting-library convention, so the counts agree with a
// chart drawn over the same edges.
//
// # Dominant Bin
//
// [Histogram.Dominant] is the index of the tallest bin, found by scanning the
// counts. Charts use it to decide which bar to clip; nothing assumes a
// particular bin dominates.
package histogram
