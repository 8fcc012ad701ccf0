package report

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/qpcrsim/internal/amplify"
	"github.com/san-kum/qpcrsim/internal/viz"
)

// PlotOptions controls terminal plot rendering.
type PlotOptions struct {
	Width  int
	Height int
	// Log plots log10 of the readings, the usual view for qPCR curves.
	Log bool
	// Theme colors the series; nil renders without color.
	Theme *viz.Theme
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Width: 72, Height: 14, Log: true}
}

// ASCIIPlot draws the curve and the threshold line. The caption carries the
// Ct since the terminal graph cannot draw a vertical marker.
func ASCIIPlot(r *amplify.Result, opts PlotOptions) string {
	if r == nil || len(r.Curve) == 0 {
		return ""
	}
	if opts.Width <= 0 {
		opts.Width = 72
	}
	if opts.Height <= 0 {
		opts.Height = 14
	}

	curve := make([]float64, len(r.Curve))
	threshold := make([]float64, len(r.Curve))
	thr := r.Params.Threshold
	for i, v := range r.Curve {
		curve[i] = scale(v, opts.Log)
		threshold[i] = scale(thr, opts.Log)
	}

	caption := fmt.Sprintf("fluorescence vs cycle | threshold %g | Ct %s", thr, r.CtLabel())
	if opts.Log {
		caption = "log10 " + caption
	}

	graphOpts := []asciigraph.Option{
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
		asciigraph.SeriesLegends("signal", "threshold"),
	}
	// Legends index SeriesColors, so both series always need a color.
	signal, line := asciigraph.Default, asciigraph.Default
	if opts.Theme != nil {
		signal, line = opts.Theme.CurveColor, opts.Theme.ThresholdColor
	}
	graphOpts = append(graphOpts, asciigraph.SeriesColors(signal, line))

	return asciigraph.PlotMany([][]float64{curve, threshold}, graphOpts...)
}

// floor keeps log plots finite when noise pushes a reading to or below zero.
const floor = 1e-3

func scale(v float64, log bool) float64 {
	if !log {
		return v
	}
	return math.Log10(math.Max(v, floor))
}
