// Package plot renders point sequences to image files through go-chart.
// It is the single backend shared by all CLI front-ends.
package plot

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Canvas holds the drawing surface settings shared by every plot kind.
type Canvas struct {
	Width    int
	Height   int
	HideAxes bool
	ShowGrid bool
	Title    string
}

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// DefaultCanvas returns an 800x600 canvas with axes shown and no grid.
func DefaultCanvas() Canvas {
	return Canvas{Width: DefaultWidth, Height: DefaultHeight}
}

// ParseSize parses a WxH canvas size such as "8x6", given in inches and
// converted at 100 dpi.
func ParseSize(s string) (width, height int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid canvas size %q: want WxH", s)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid canvas size %q: %w", s, err)
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid canvas size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid canvas size %q: dimensions must be positive", s)
	}
	return int(w * 100), int(h * 100), nil
}

// Plotter renders scatter and line plots onto a fixed canvas and format.
type Plotter struct {
	Canvas Canvas
	Format Format
}

// New returns a plotter for the given canvas; zero canvas dimensions fall
// back to the defaults.
func New(canvas Canvas, format Format) *Plotter {
	if canvas.Width <= 0 {
		canvas.Width = DefaultWidth
	}
	if canvas.Height <= 0 {
		canvas.Height = DefaultHeight
	}
	return &Plotter{Canvas: canvas, Format: format}
}

// Kind selects how the point sequence is drawn.
type Kind int

const (
	KindScatter Kind = iota
	KindLine
)

// ParseKind maps a plot kind name from a flag or config file.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "scatter":
		return KindScatter, nil
	case "line":
		return KindLine, nil
	}
	return 0, fmt.Errorf("unknown plot kind: %s (choices: scatter, line)", name)
}

// String returns the name ParseKind accepts for the kind.
func (k Kind) String() string {
	if k == KindLine {
		return "line"
	}
	return "scatter"
}

// Scatter renders the points as dots only.
func (p *Plotter) Scatter(w io.Writer, xs, ys []float64) error {
	return p.render(w, KindScatter, xs, ys)
}

// Line renders the points connected in input order.
func (p *Plotter) Line(w io.Writer, xs, ys []float64) error {
	return p.render(w, KindLine, xs, ys)
}

// Render draws the given kind; used by front-ends that pick the kind at
// runtime from a config value.
func (p *Plotter) Render(w io.Writer, kind Kind, xs, ys []float64) error {
	return p.render(w, kind, xs, ys)
}

// RenderFile renders into path, appending the format extension when the path
// does not already carry it, and returns the path actually written.
func (p *Plotter) RenderFile(path string, kind Kind, xs, ys []float64) (string, error) {
	out := p.OutputPath(path)
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()

	if err := p.render(f, kind, xs, ys); err != nil {
		return "", err
	}
	return out, nil
}

// OutputPath appends the format extension to base unless already present.
func (p *Plotter) OutputPath(base string) string {
	ext := "." + string(p.Format)
	if strings.HasSuffix(base, ext) {
		return base
	}
	return base + ext
}

func (p *Plotter) render(w io.Writer, kind Kind, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("mismatched coordinates: %d xs, %d ys", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("nothing to plot")
	}
	// go-chart needs at least two X values to establish a range.
	if len(xs) == 1 {
		xs = []float64{xs[0], xs[0] + 1}
		ys = []float64{ys[0], ys[0]}
	}

	rp, err := rendererFor(p.Format)
	if err != nil {
		return err
	}

	style := chart.Style{
		StrokeWidth: 0,
		DotWidth:    4,
		DotColor:    chart.ColorBlue,
	}
	if kind == KindLine {
		style = chart.Style{
			StrokeWidth: 1.5,
			StrokeColor: chart.ColorBlue,
		}
	}

	axisStyle, gridStyle := p.axisStyles()
	graph := chart.Chart{
		Title:  p.Canvas.Title,
		Width:  p.Canvas.Width,
		Height: p.Canvas.Height,
		XAxis:  chart.XAxis{Style: axisStyle, GridMajorStyle: gridStyle},
		YAxis:  chart.YAxis{Style: axisStyle, GridMajorStyle: gridStyle},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys, Style: style},
		},
	}

	return graph.Render(rp, w)
}

func (p *Plotter) axisStyles() (axis, grid chart.Style) {
	if p.Canvas.HideAxes {
		axis = chart.Hidden()
	}
	if p.Canvas.ShowGrid {
		grid = chart.Style{
			StrokeColor: chart.ColorAlternateGray,
			StrokeWidth: 1.0,
		}
	}
	return axis, grid
}
