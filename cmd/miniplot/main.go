// miniplot is the hand-parsed front-end: plain flag definitions wired into a
// single lieut app. Points come from positional arguments or a job file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Rican7/lieut"

	"github.com/avask/vizkit/internal/config"
	"github.com/avask/vizkit/internal/plot"
)

func main() {
	flags := flag.NewFlagSet("miniplot", flag.ExitOnError)
	out := flags.String("out", config.DefaultOut, "path to the output image file")
	format := flags.String("format", config.DefaultFormat, "output image format (png, svg)")
	size := flags.String("size", config.DefaultSize, "canvas size in inches, WxH")
	title := flags.String("title", "", "plot title")
	line := flags.Bool("line", false, "draw a line plot instead of a scatter")
	hideAxes := flags.Bool("hide-axes", false, "suppress axes drawing")
	showGrid := flags.Bool("show-grid", false, "show grid on plot")
	jobFile := flags.String("config", "", "job file (yaml, toml or json); replaces point arguments")

	exec := func(ctx context.Context, arguments []string) error {
		job := config.Default()

		if *jobFile != "" {
			loaded, err := config.Load(*jobFile)
			if err != nil {
				return err
			}
			job = loaded
		} else {
			vals, err := plot.ParsePoints(arguments)
			if err != nil {
				return err
			}
			job.Points = vals
			job.Out = *out
			job.Format = *format
			job.Size = *size
			job.Title = *title
			job.HideAxes = *hideAxes
			job.ShowGrid = *showGrid
			if *line {
				job.Kind = "line"
			}
		}

		kind, err := plot.ParseKind(job.Kind)
		if err != nil {
			return err
		}
		f, err := plot.ParseFormat(job.Format)
		if err != nil {
			return err
		}
		canvas, err := job.Canvas()
		if err != nil {
			return err
		}

		xs, ys := plot.Pair(job.Points)
		path, err := plot.New(canvas, f).RenderFile(job.Out, kind, xs, ys)
		if err != nil {
			return err
		}

		fmt.Printf("wrote %s (%d points)\n", path, len(xs))
		return nil
	}

	app := lieut.NewSingleCommandApp(
		lieut.AppInfo{
			Name:    "miniplot",
			Summary: "plot points to an image file",
			Usage:   "[flags] [points...]",
		},
		exec,
		flags,
		os.Stdout,
		os.Stderr,
	)

	os.Exit(app.Run(context.Background(), os.Args[1:]))
}
