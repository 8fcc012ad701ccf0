package report

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/qpcrsim/internal/amplify"
)

// ImageFormats lists the formats accepted by WriteImage.
var ImageFormats = []string{"png", "svg", "pdf", "jpg"}

var (
	curveColor     = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	thresholdColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	ctColor        = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// ImageOptions controls image export.
type ImageOptions struct {
	Width, Height vg.Length
	Log           bool
	Title         string
}

func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Width:  8 * vg.Inch,
		Height: 5 * vg.Inch,
		Title:  "Simulated Amplification Curve",
	}
}

// NewPlot builds the curve plot: fluorescence per cycle, a dashed horizontal
// threshold line and, when reached, a vertical line at the Ct cycle.
func NewPlot(r *amplify.Result, opts ImageOptions) (*plot.Plot, error) {
	if r == nil || len(r.Curve) == 0 {
		return nil, fmt.Errorf("no curve to plot")
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Cycle"
	p.Y.Label.Text = "Fluorescence"
	p.Add(plotter.NewGrid())

	yval := func(v float64) float64 { return v }
	if opts.Log {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
		yval = func(v float64) float64 { return math.Max(v, floor) }
	}

	pts := make(plotter.XYs, len(r.Curve))
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range r.Curve {
		pts[i] = plotter.XY{X: float64(i), Y: yval(v)}
		lo = math.Min(lo, pts[i].Y)
		hi = math.Max(hi, pts[i].Y)
	}
	thr := yval(r.Params.Threshold)
	lo, hi = math.Min(lo, thr), math.Max(hi, thr)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("curve line: %w", err)
	}
	line.Color = curveColor
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add("Fluorescence", line)

	xmax := float64(len(r.Curve) - 1)
	if xmax == 0 {
		xmax = 1
	}
	thrLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: thr}, {X: xmax, Y: thr}})
	if err != nil {
		return nil, fmt.Errorf("threshold line: %w", err)
	}
	thrLine.Color = thresholdColor
	thrLine.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
	p.Add(thrLine)
	p.Legend.Add(fmt.Sprintf("Threshold (%g)", r.Params.Threshold), thrLine)

	if r.Reached() {
		ct := float64(r.Ct)
		ctLine, err := plotter.NewLine(plotter.XYs{{X: ct, Y: lo}, {X: ct, Y: hi}})
		if err != nil {
			return nil, fmt.Errorf("ct line: %w", err)
		}
		ctLine.Color = ctColor
		ctLine.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(ctLine)
		p.Legend.Add(fmt.Sprintf("Ct = %d", r.Ct), ctLine)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.X.Min = 0
	p.X.Max = xmax
	return p, nil
}

// WriteImage renders the plot in the given format to w.
func WriteImage(w io.Writer, format string, r *amplify.Result, opts ImageOptions) error {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if err := checkFormat(format); err != nil {
		return err
	}

	p, err := NewPlot(r, opts)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(opts.Width, opts.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveImage writes the plot to path; the format follows the extension.
func SaveImage(path string, r *amplify.Result, opts ImageOptions) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("image path %q has no extension", path)
	}
	if err := checkFormat(format); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteImage(f, format, r, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func checkFormat(format string) error {
	if !supported(strings.ToLower(format)) {
		return fmt.Errorf("unsupported image format %q (supported: %s)", format, strings.Join(ImageFormats, ", "))
	}
	return nil
}

func supported(format string) bool {
	for _, f := range ImageFormats {
		if f == format {
			return true
		}
	}
	return format == "jpeg"
}
