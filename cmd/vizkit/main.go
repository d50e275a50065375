package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/avask/vizkit/internal/config"
	"github.com/avask/vizkit/internal/palette"
	"github.com/avask/vizkit/internal/plot"
	"github.com/avask/vizkit/internal/preview"
	"github.com/avask/vizkit/internal/tree"
	"github.com/avask/vizkit/internal/treeviz"
	"github.com/avask/vizkit/internal/tui"
)

var (
	out         string
	format      string
	size        string
	title       string
	hideAxes    bool
	showGrid    bool
	preset      string
	showPreview bool
	saveJob     string
	// tree command
	stableIDs   bool
	uuidIDs     bool
	interactive bool
	// palette command
	hexOnly bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vizkit",
		Short: "plotting and decision-tree visualization toolkit",
	}

	scatterCmd := &cobra.Command{
		Use:   "scatter [points...]",
		Short: "scatter plot from alternating x y values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, plot.KindScatter, args)
		},
	}

	lineCmd := &cobra.Command{
		Use:   "line [points...]",
		Short: "line plot from alternating x y values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, plot.KindLine, args)
		},
	}

	for _, cmd := range []*cobra.Command{scatterCmd, lineCmd} {
		cmd.Flags().StringVarP(&out, "out", "o", config.DefaultOut, "output path (extension appended)")
		cmd.Flags().StringVarP(&format, "format", "f", config.DefaultFormat, "image format (png, svg)")
		cmd.Flags().StringVar(&size, "size", config.DefaultSize, "canvas size in inches, WxH")
		cmd.Flags().StringVar(&title, "title", "", "plot title")
		cmd.Flags().BoolVar(&hideAxes, "hide-axes", false, "suppress axes drawing")
		cmd.Flags().BoolVar(&showGrid, "show-grid", false, "show grid on plot")
		cmd.Flags().StringVar(&preset, "preset", "", "canvas preset")
		cmd.Flags().BoolVar(&showPreview, "preview", false, "print a terminal preview before saving")
		cmd.Flags().StringVar(&saveJob, "save-job", "", "also write the resolved job to this file")
	}

	plotCmd := &cobra.Command{
		Use:   "plot [job-file]",
		Short: "run a plot job from a yaml, toml or json file",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}

	treeCmd := &cobra.Command{
		Use:   "tree [tree.json]",
		Short: "render a decision tree to Graphviz DOT",
		Args:  cobra.ExactArgs(1),
		RunE:  runTree,
	}
	treeCmd.Flags().StringVarP(&out, "out", "o", "", "write the DOT document to this path")
	treeCmd.Flags().BoolVar(&stableIDs, "stable-ids", false, "deterministic sequential node IDs")
	treeCmd.Flags().BoolVar(&uuidIDs, "uuid-ids", false, "collision-free uuid node IDs")
	treeCmd.Flags().BoolVar(&interactive, "interactive", false, "browse the tree in the terminal instead")

	paletteCmd := &cobra.Command{
		Use:   "palette [n]",
		Short: "show the n-class color palette",
		Args:  cobra.ExactArgs(1),
		RunE:  runPalette,
	}
	paletteCmd.Flags().BoolVar(&hexOnly, "hex", false, "print hex codes only, one per line")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list canvas presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				job := config.GetPreset(name)
				fmt.Printf("  %-8s %s %s %s\n", name, job.Kind, job.Size, job.Format)
			}
			return nil
		},
	}

	formatsCmd := &cobra.Command{
		Use:   "formats",
		Short: "list renderable image formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range plot.Formats() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(scatterCmd, lineCmd, plotCmd, treeCmd, paletteCmd, presetsCmd, formatsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlot(cmd *cobra.Command, kind plot.Kind, args []string) error {
	job := config.Default()
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*job = *p
	}

	// CLI flags override the preset.
	if cmd.Flags().Changed("format") || job.Format == "" {
		job.Format = format
	}
	if cmd.Flags().Changed("size") || job.Size == "" {
		job.Size = size
	}
	if cmd.Flags().Changed("hide-axes") {
		job.HideAxes = hideAxes
	}
	if cmd.Flags().Changed("show-grid") {
		job.ShowGrid = showGrid
	}
	job.Title = title
	job.Out = out

	vals, err := plot.ParsePoints(args)
	if err != nil {
		return err
	}
	job.Points = vals
	job.Kind = kind.String()

	if saveJob != "" {
		if err := config.Save(saveJob, job); err != nil {
			return err
		}
		fmt.Printf("saved job %s\n", saveJob)
	}

	return render(job, kind)
}

func runJob(cmd *cobra.Command, args []string) error {
	job, err := config.Load(args[0])
	if err != nil {
		return err
	}
	kind, err := plot.ParseKind(job.Kind)
	if err != nil {
		return err
	}
	return render(job, kind)
}

func render(job *config.Job, kind plot.Kind) error {
	f, err := plot.ParseFormat(job.Format)
	if err != nil {
		return err
	}
	canvas, err := job.Canvas()
	if err != nil {
		return err
	}

	xs, ys := plot.Pair(job.Points)

	if showPreview {
		if kind == plot.KindScatter {
			fmt.Println(preview.Scatter(xs, ys, 70, 20))
		} else {
			fmt.Println(preview.Line(ys, job.Title))
		}
	}

	p := plot.New(canvas, f)
	path, err := p.RenderFile(job.Out, kind, xs, ys)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d points)\n", path, len(xs))
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	doc, err := tree.LoadFile(args[0])
	if err != nil {
		return err
	}

	if interactive {
		return tui.Run(doc)
	}

	var opts []treeviz.Option
	switch {
	case stableIDs:
		opts = append(opts, treeviz.WithIDSource(treeviz.NewSequential()))
	case uuidIDs:
		opts = append(opts, treeviz.WithIDSource(treeviz.UUIDs()))
	}

	if out != "" {
		if _, err := treeviz.RenderFile(out, doc.Root, doc.FeatureNames, doc.ClassNames, opts...); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d nodes)\n", out, doc.Root.Size())
		return nil
	}

	dot, err := treeviz.Render(doc.Root, doc.FeatureNames, doc.ClassNames, opts...)
	if err != nil {
		return err
	}
	fmt.Println(dot)
	return nil
}

func runPalette(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("invalid class count: %s", args[0])
	}

	for i, c := range palette.Brew(n) {
		if hexOnly {
			fmt.Println(c.Hex())
			continue
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("      ")
		fmt.Printf("%3d  %s  %s\n", i, swatch, c.Hex())
	}
	return nil
}
