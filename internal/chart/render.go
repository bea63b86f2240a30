// Package chart draws the IS and LM curves and the equilibrium point.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"islm-sim/internal/model"
	"islm-sim/internal/scenario"
)

const (
	Title  = "Goods and Money Market Equilibrium (IS-LM)"
	XLabel = "Income/Production (Y)"
	YLabel = "Interest Rate (i)"

	ISLegend = "IS curve (goods)"
	LMLegend = "LM curve (money)"
)

var (
	isColor    = color.RGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: 0xff}
	lmColor    = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
	pointColor = color.Black
	gridColor  = color.Gray{Y: 0xd0}
)

// Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
)

// ParseFormat accepts png, svg and pdf, case-insensitively. Empty means png.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	case PDF:
		return PDF, nil
	}
	return "", fmt.Errorf("unsupported chart format: %q", s)
}

// ContentType is the MIME type of images in f.
func (f Format) ContentType() string {
	switch f {
	case SVG:
		return "image/svg+xml"
	case PDF:
		return "application/pdf"
	default:
		return "image/png"
	}
}

// Options controls the rendered image size in points.
type Options struct {
	Width  float64
	Height float64
	Format Format
}

func DefaultOptions() Options {
	return Options{Width: 720, Height: 432, Format: PNG}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Format == "" {
		o.Format = d.Format
	}
	return o
}

// Build assembles the plot for res without encoding it.
func Build(res *scenario.Result) (*plot.Plot, error) {
	if res == nil {
		return nil, errors.New("result is nil")
	}

	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.Legend.Top = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	isLine, err := plotter.NewLine(toXYs(res.IS))
	if err != nil {
		return nil, fmt.Errorf("IS series: %w", err)
	}
	isLine.LineStyle.Color = isColor
	isLine.LineStyle.Width = vg.Points(2)

	lmLine, err := plotter.NewLine(toXYs(res.LM))
	if err != nil {
		return nil, fmt.Errorf("LM series: %w", err)
	}
	lmLine.LineStyle.Color = lmColor
	lmLine.LineStyle.Width = vg.Points(2)

	p.Add(isLine, lmLine)
	p.Legend.Add(ISLegend, isLine)
	p.Legend.Add(LMLegend, lmLine)

	if res.MarkEquilibrium {
		eq := res.Solution.Equilibrium
		pt := plotter.XYs{{X: eq.YStar, Y: eq.IStar}}

		marker, err := plotter.NewScatter(pt)
		if err != nil {
			return nil, fmt.Errorf("equilibrium marker: %w", err)
		}
		marker.GlyphStyle.Color = pointColor
		marker.GlyphStyle.Radius = vg.Points(4)
		marker.GlyphStyle.Shape = draw.CircleGlyph{}

		p.Add(marker)

		// Labels are not clipped to the data area; the marker is.
		if eq.IStar >= res.Window.IMin && eq.IStar <= res.Window.IMax {
			label, err := plotter.NewLabels(plotter.XYLabels{
				XYs:    pt,
				Labels: []string{EquilibriumLabel(eq)},
			})
			if err != nil {
				return nil, fmt.Errorf("equilibrium label: %w", err)
			}
			label.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(4)}
			p.Add(label)
		}
	}

	// Add widens the axes to fit the data, so the window is applied last.
	p.X.Min, p.X.Max = res.Window.YMin, res.Window.YMax
	p.Y.Min, p.Y.Max = res.Window.IMin, res.Window.IMax
	return p, nil
}

// Render encodes the chart for res to w.
func Render(w io.Writer, res *scenario.Result, opts Options) error {
	opts = opts.withDefaults()
	p, err := Build(res)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Points(opts.Width), vg.Points(opts.Height), string(opts.Format))
	if err != nil {
		return fmt.Errorf("encode %s: %w", opts.Format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// EquilibriumLabel is the annotation drawn next to the marker.
func EquilibriumLabel(eq model.Equilibrium) string {
	return fmt.Sprintf("Equilibrium (Y=%.1f, i=%.1f)", eq.YStar, eq.IStar)
}

func toXYs(pts []model.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for k, pt := range pts {
		xys[k].X = pt.Y
		xys[k].Y = pt.I
	}
	return xys
}
