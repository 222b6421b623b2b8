// Copyright 2024 The Benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders an aligned series matrix as a chart.
//
// Each column specification in the matrix becomes one vertically
// stacked plot; the plots share the x axis and only the bottom one
// draws tick labels. Each source table becomes one colored series and
// one legend entry.
package benchchart

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/benchplot/benchplot/benchseries"
	"github.com/benchplot/benchplot/benchtab"
)

// A Kind selects the chart geometry.
type Kind string

const (
	Line Kind = "line"
	Bar  Kind = "bar"
)

// A Scale selects the y-axis scale.
type Scale string

const (
	Linear    Scale = "linear"
	Log       Scale = "log"
	Logit     Scale = "logit"
	HybridLog Scale = "hybrid-log"
)

// hybridBreakQuantile is the order statistic of the pooled values used
// as the linear-to-logarithmic transition when none is given.
const hybridBreakQuantile = 0.8

// Options configures rendering. The zero value asks for a linear line
// chart with labels derived from the matrix.
type Options struct {
	XLabel      string
	YLabel      string // default: the first series' header
	Title       string
	LegendTitle string

	// SeriesLabels are the legend labels, one per source table.
	// Default: the matrix's source identities.
	SeriesLabels []string

	// TickLabels override the x tick labels derived from the first
	// table.
	TickLabels []string

	// TickLegend is extra text explaining the tick labels, rendered
	// under the x-axis label; ";" separates lines.
	TickLegend string

	Kind  Kind  // default Line
	Scale Scale // default Linear

	// Break is the linear-to-logarithmic transition value for the
	// hybrid-log scale. When zero it is computed as an upper
	// percentile of all plotted values.
	Break float64

	// Output is the destination file. The extension selects the
	// format: .png, .svg, or .pdf.
	Output string
}

// Series colors: black, red, gold, green, blue, magenta, cyan, gray,
// dark orange, navy, violet, lime, pink.
var palette = []color.Color{
	color.NRGBA{0x00, 0x00, 0x00, 0xff},
	color.NRGBA{0xff, 0x00, 0x00, 0xff},
	color.NRGBA{0xff, 0xd7, 0x00, 0xff},
	color.NRGBA{0x00, 0x80, 0x00, 0xff},
	color.NRGBA{0x00, 0x00, 0xff, 0xff},
	color.NRGBA{0xff, 0x00, 0xff, 0xff},
	color.NRGBA{0x00, 0xff, 0xff, 0xff},
	color.NRGBA{0x80, 0x80, 0x80, 0xff},
	color.NRGBA{0xff, 0x8c, 0x00, 0xff},
	color.NRGBA{0x00, 0x00, 0x80, 0xff},
	color.NRGBA{0xee, 0x82, 0xee, 0xff},
	color.NRGBA{0x00, 0xff, 0x00, 0xff},
	color.NRGBA{0xff, 0xc0, 0xcb, 0xff},
}

// Render draws the matrix according to opts and writes the result to
// opts.Output.
func Render(m *benchseries.Matrix, opts Options) error {
	if len(m.Series) == 0 || len(m.Sources) == 0 {
		return fmt.Errorf("nothing to render")
	}
	labels := opts.SeriesLabels
	if labels == nil {
		labels = m.Sources
	}
	if len(labels) < len(m.Sources) {
		return fmt.Errorf("%d series labels for %d tables", len(labels), len(m.Sources))
	}
	ticks := opts.TickLabels
	if ticks == nil {
		ticks = m.Ticks
	}
	yLabel := opts.YLabel
	if yLabel == "" {
		yLabel = m.AxisLabel
	}
	kind := opts.Kind
	if kind == "" {
		kind = Line
	}

	yScale, yTicker, err := axisScale(m, opts)
	if err != nil {
		return err
	}

	nsub := len(m.Series)
	plots := make([][]*plot.Plot, nsub)
	for i, row := range m.Series {
		pl := plot.New()
		pl.Y.Scale = yScale
		if yTicker != nil {
			pl.Y.Tick.Marker = yTicker
		}
		pl.Add(plotter.NewGrid())

		if nsub == 1 {
			pl.Y.Label.Text = yLabel
		} else {
			pl.Title.Text = row[0].Header
		}

		for j, s := range row {
			clr := palette[j%len(palette)]
			var thumb plot.Thumbnailer
			switch kind {
			case Bar:
				thumb, err = addBars(pl, s, j, len(row), clr)
			case Line:
				thumb, err = addLine(pl, s, clr)
			default:
				return fmt.Errorf("unknown chart kind %q", kind)
			}
			if err != nil {
				return err
			}
			if i == 0 {
				pl.Legend.Add(labels[j], thumb)
			}
		}

		bottom := i == nsub-1
		if bottom {
			pl.NominalX(ticks...)
			pl.X.Tick.Label.Rotation = -math.Pi / 8
			pl.X.Tick.Label.YAlign = draw.YTop
			pl.X.Tick.Label.XAlign = draw.XLeft
			pl.X.Label.Text = xAxisText(opts)
		} else {
			pl.NominalX(make([]string, len(ticks))...)
		}
		plots[i] = []*plot.Plot{pl}
	}

	if opts.Title != "" {
		// With multiple stacked plots the top plot already carries
		// its series header; stack the overall title above it.
		if t := plots[0][0].Title.Text; t != "" {
			plots[0][0].Title.Text = opts.Title + "\n" + t
		} else {
			plots[0][0].Title.Text = opts.Title
		}
	}
	if opts.LegendTitle != "" {
		plots[0][0].Legend.Add(opts.LegendTitle)
	}
	plots[0][0].Legend.Top = true

	return writePlots(plots, opts.Output)
}

// axisScale resolves the requested y scale into a normalizer and,
// where needed, a tick marker.
func axisScale(m *benchseries.Matrix, opts Options) (plot.Normalizer, plot.Ticker, error) {
	switch opts.Scale {
	case "", Linear:
		return plot.LinearScale{}, nil, nil
	case Log:
		return plot.LogScale{}, plot.LogTicks{}, nil
	case Logit:
		return LogitScale{}, nil, nil
	case HybridLog:
		brk := opts.Break
		if brk == 0 {
			var err error
			brk, err = benchseries.Percentile(m.Values(), hybridBreakQuantile)
			if err != nil {
				return nil, nil, fmt.Errorf("choosing hybrid scale transition: %w", err)
			}
		}
		return HybridLogScale{Break: brk}, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown scale %q", opts.Scale)
}

func xAxisText(opts Options) string {
	text := opts.XLabel
	if opts.TickLegend != "" {
		text += "\n" + strings.ReplaceAll(opts.TickLegend, ";", "\n")
	}
	return text
}

// errPoints pairs coordinates with their error bars.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// addLine adds one series as a line with point markers and, where the
// series carries standard deviations, y error bars.
func addLine(pl *plot.Plot, s *benchtab.Series, clr color.Color) (plot.Thumbnailer, error) {
	xys := make(plotter.XYs, len(s.Points))
	for k, p := range s.Points {
		xys[k].X = float64(k)
		xys[k].Y = p.Value
	}
	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = clr
	line.Width = vg.Points(1)
	scatter.Color = clr
	scatter.Radius = vg.Points(2.5)
	pl.Add(line, scatter)

	var ep errPoints
	for k, p := range s.Points {
		if !p.HasSigma {
			continue
		}
		ep.XYs = append(ep.XYs, plotter.XY{X: float64(k), Y: p.Value})
		ep.YErrors = append(ep.YErrors, struct{ Low, High float64 }{p.Sigma, p.Sigma})
	}
	if len(ep.XYs) > 0 {
		bars, err := plotter.NewYErrorBars(ep)
		if err != nil {
			return nil, err
		}
		bars.Color = clr
		pl.Add(bars)
	}
	return line, nil
}

// addBars adds one series as a group of bars offset so that the bars
// of all tables sit side by side at each tick.
func addBars(pl *plot.Plot, s *benchtab.Series, j, ntables int, clr color.Color) (plot.Thumbnailer, error) {
	w := vg.Points(40) / vg.Length(ntables)
	bars, err := plotter.NewBarChart(plotter.Values(s.Values()), w)
	if err != nil {
		return nil, err
	}
	bars.Color = clr
	bars.LineStyle.Width = 0
	bars.Offset = w*vg.Length(j) - w*vg.Length(ntables-1)/2
	pl.Add(bars)
	return bars, nil
}

// writePlots aligns the plots in a single column on one canvas and
// writes it to the named file in the format given by its extension.
func writePlots(plots [][]*plot.Plot, out string) error {
	width := 8 * vg.Inch
	height := vg.Length(4+2*len(plots)) * vg.Inch

	var can vg.CanvasWriterTo
	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".png":
		can = vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(width, height),
			vgimg.UseBackgroundColor(color.White),
		)}
	case ".svg":
		can = vgsvg.New(width, height)
	case ".pdf":
		can = vgpdf.New(width, height)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	dc := draw.New(can)
	tiles := draw.Tiles{
		Rows: len(plots),
		Cols: 1,
		PadY: vg.Points(12),
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
