// quickplot is the struct-tag front-end: the whole CLI is generated from the
// command structs below. It drives the same plotting backend as vizkit.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/avask/vizkit/internal/config"
	"github.com/avask/vizkit/internal/plot"
)

type plotFlags struct {
	Out      string `short:"o" default:"output" help:"Output path (extension appended)."`
	Format   string `short:"f" default:"png" enum:"png,svg,pdf" help:"Image format."`
	Size     string `default:"8x6" help:"Canvas size in inches, WxH."`
	Title    string `help:"Plot title."`
	HideAxes bool   `help:"Suppress axes drawing."`
	ShowGrid bool   `help:"Show grid on plot."`
}

func (f *plotFlags) render(kind plot.Kind, points []float64) error {
	format, err := plot.ParseFormat(f.Format)
	if err != nil {
		return err
	}
	w, h, err := plot.ParseSize(f.Size)
	if err != nil {
		return err
	}

	canvas := plot.Canvas{
		Width:    w,
		Height:   h,
		HideAxes: f.HideAxes,
		ShowGrid: f.ShowGrid,
		Title:    f.Title,
	}

	xs, ys := plot.Pair(points)
	path, err := plot.New(canvas, format).RenderFile(f.Out, kind, xs, ys)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d points)\n", path, len(xs))
	return nil
}

type ScatterCmd struct {
	plotFlags
	Points []float64 `arg:"" help:"Alternating x y values."`
}

func (c *ScatterCmd) Run() error { return c.render(plot.KindScatter, c.Points) }

type LineCmd struct {
	plotFlags
	Points []float64 `arg:"" help:"Alternating x y values."`
}

func (c *LineCmd) Run() error { return c.render(plot.KindLine, c.Points) }

type JobCmd struct {
	Path string `arg:"" type:"existingfile" help:"Job file (yaml, toml or json)."`
}

func (c *JobCmd) Run() error {
	job, err := config.Load(c.Path)
	if err != nil {
		return err
	}
	kind, err := plot.ParseKind(job.Kind)
	if err != nil {
		return err
	}

	flags := plotFlags{
		Out:      job.Out,
		Format:   job.Format,
		Size:     job.Size,
		Title:    job.Title,
		HideAxes: job.HideAxes,
		ShowGrid: job.ShowGrid,
	}
	return flags.render(kind, job.Points)
}

var cli struct {
	Scatter ScatterCmd `cmd:"" help:"Scatter plot from points."`
	Line    LineCmd    `cmd:"" help:"Line plot from points."`
	Job     JobCmd     `cmd:"" help:"Run a plot job from a file."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("quickplot"),
		kong.Description("plot points to an image file"),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
