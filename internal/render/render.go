// Package render draws collected window samples as a depth-vs-window
// scatter plot. Drawing primitives, styling and output encoding are
// delegated to gonum/plot.
package render

import (
	"fmt"
	"image/color"
	"io"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"depthbin/internal/collect"
	"depthbin/internal/engine"
)

// DefaultFormat is the postscript-like vector output.
const DefaultFormat = "eps"

// XTitle labels the window axis.
const XTitle = "Genome location (Kbp)"

// formats maps accepted -t values to gonum/plot format names.
var formats = map[string]string{
	"eps":  "eps",
	"ps":   "eps",
	"svg":  "svg",
	"pdf":  "pdf",
	"png":  "png",
	"jpg":  "jpg",
	"jpeg": "jpg",
	"tif":  "tif",
	"tiff": "tif",
	"tex":  "tex",
}

// Formats lists accepted -t values, sorted.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for k := range formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// NormalizeFormat maps a user format name to the backend one.
func NormalizeFormat(name string) (string, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", engine.Argumentf("type", "unsupported plot type %q (want one of: %s)", name, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Options control the rendered document.
type Options struct {
	Format       string  // see Formats; empty means DefaultFormat
	WindowSize   uint64  // positions per window, for kbp tick labels
	TickFraction float64 // x tick spacing as a fraction of the window count
	WidthCM      float64
	HeightCM     float64
}

// Render writes one marker per sample at (ordinal, average), a bounding box
// spanning [0, n+1] × [min-1, max+1], min/max y labels and kbp x ticks.
func Render(w io.Writer, samples []engine.Sample, sum collect.Summary, o Options) error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	format, err := NormalizeFormat(o.Format)
	if err != nil {
		return err
	}
	p, err := build(samples, sum, o)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(o.WidthCM)*vg.Centimeter, vg.Length(o.HeightCM)*vg.Centimeter, format)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return err
	}
	return nil
}

func build(samples []engine.Sample, sum collect.Summary, o Options) (*plot.Plot, error) {
	n := len(samples)
	lo, hi := sum.Min-1, sum.Max+1

	p := plot.New()
	p.X.Label.Text = XTitle
	p.X.Min, p.X.Max = 0, float64(n+1)
	p.Y.Min, p.Y.Max = lo, hi
	p.X.Tick.Marker = plot.ConstantTicks(XTicks(n, o.WindowSize, o.TickFraction))
	p.Y.Tick.Marker = plot.ConstantTicks(YTicks(sum.Min, sum.Max))

	pts := make(plotter.XYs, n)
	for i, s := range samples {
		pts[i].X = float64(i + 1)
		pts[i].Y = s.Average
	}
	dots, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	dots.GlyphStyle.Shape = draw.CircleGlyph{}
	dots.GlyphStyle.Color = color.Black
	dots.GlyphStyle.Radius = vg.Points(1)

	box, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: lo}, {X: float64(n + 1), Y: lo},
		{X: float64(n + 1), Y: hi}, {X: 0, Y: hi}, {X: 0, Y: lo},
	})
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	box.LineStyle.Width = vg.Points(0.5)
	box.LineStyle.Color = color.Black

	p.Add(box, dots)
	return p, nil
}

// XTicks places a tick every frac×n windows (at least every window),
// labelled with the window start in kbp.
func XTicks(n int, windowSize uint64, frac float64) []plot.Tick {
	step := int(float64(n) * frac)
	if step < 1 {
		step = 1
	}
	var ticks []plot.Tick
	for i := 0; i < n; i += step {
		ticks = append(ticks, plot.Tick{
			Value: float64(i),
			Label: strconv.FormatUint(uint64(i)*windowSize/1000, 10),
		})
	}
	return ticks
}

// YTicks labels only the minimum and maximum average.
func YTicks(min, max float64) []plot.Tick {
	ticks := []plot.Tick{{Value: min, Label: fmt.Sprintf("%.0f", min)}}
	if max != min {
		ticks = append(ticks, plot.Tick{Value: max, Label: fmt.Sprintf("%.0f", max)})
	}
	return ticks
}
