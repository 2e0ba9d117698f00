package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

// TrajectoryPlot overlays the numeric trajectory on the exact solution.
func TrajectoryPlot(values, exact []float64, h float64) string {
	graph := asciigraph.PlotMany(
		[][]float64{exact, values},
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(fmt.Sprintf("exact vs euler (h=%g)", h)),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
	)
	return graph
}

// ErrorPlot shows the pointwise absolute error along the grid.
func ErrorPlot(values, exact []float64) string {
	diff := make([]float64, len(values))
	for i := range values {
		diff[i] = math.Abs(values[i] - exact[i])
	}
	return asciigraph.Plot(diff,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("absolute error"),
	)
}

// ConvergencePlot shows log10 of the RMS percent error per step size, in the
// order given. Non-positive errors (an exact match) plot at the floor value.
func ConvergencePlot(hs, rmsPercent []float64) string {
	logs := make([]float64, len(rmsPercent))
	for i, v := range rmsPercent {
		if v <= 0 {
			logs[i] = -16
			continue
		}
		logs[i] = math.Log10(v)
	}

	labels := make([]string, len(hs))
	for i, h := range hs {
		labels[i] = fmt.Sprintf("%g", h)
	}

	return asciigraph.Plot(logs,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("log10(rms %) for h = "+strings.Join(labels, ", ")),
	)
}
