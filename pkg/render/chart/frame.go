package chart

import (
	"math"

	"github.com/matzehuels/degreerank/pkg/histogram"
)

// ClipFactor is how many times taller than the runner-up the dominant bin
// must be before the y-axis is clipped.
const ClipFactor = 2.0

// yTicks is the target number of y-axis intervals.
const yTicks = 5

// frame is the value-space geometry of a chart.
type frame struct {
	yMax    float64 // top of the y-axis in counts
	yStep   float64 // distance between y ticks
	clipped bool    // dominant bar exceeds yMax
}

// computeFrame picks the y-axis range. When clipping applies, the axis ends
// 10% (at least one count) above the runner-up bin.
func computeFrame(h *histogram.Histogram, clip bool) frame {
	top := float64(h.Counts[h.Dominant])
	f := frame{}

	if ru := h.RunnerUp(); clip && ru >= 0 {
		second := float64(h.Counts[ru])
		if top > ClipFactor*second {
			f.yMax = second + math.Max(1, math.Ceil(second/10))
			f.clipped = true
		}
	}
	if !f.clipped {
		f.yMax = top + math.Max(1, math.Ceil(top/10))
	}
	f.yStep = niceStep(f.yMax / yTicks)
	return f
}

// niceStep rounds x up to 1, 2 or 5 times a power of ten, never below 1.
func niceStep(x float64) float64 {
	if x <= 1 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(x)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * mag; step >= x {
			return step
		}
	}
	return 10 * mag
}
