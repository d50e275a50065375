// Package preview draws quick terminal renditions of a point set so a plot
// can be sanity-checked before an image file is written.
package preview

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Line renders the y values as a terminal line chart.
func Line(ys []float64, caption string) string {
	return asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// Scatter renders the points on a framed character canvas. Degenerate ranges
// (all points sharing an x or y) still draw, centered on the flat axis.
func Scatter(xs, ys []float64, width, height int) string {
	if len(xs) == 0 || len(xs) != len(ys) {
		return ""
	}
	if width < 2 {
		width = 70
	}
	if height < 2 {
		height = 20
	}

	xMin, xMax := xs[0], xs[0]
	yMin, yMax := ys[0], ys[0]
	for i := range xs {
		if xs[i] < xMin {
			xMin = xs[i]
		}
		if xs[i] > xMax {
			xMax = xs[i]
		}
		if ys[i] < yMin {
			yMin = ys[i]
		}
		if ys[i] > yMax {
			yMax = ys[i]
		}
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i := range xs {
		px := int(float64(width-1) * (xs[i] - xMin) / xRange)
		py := int(float64(height-1) * (ys[i] - yMin) / yRange)
		py = height - 1 - py // flip y-axis
		if px >= 0 && px < width && py >= 0 && py < height {
			canvas[py][px] = '●'
		}
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "  %.2f ┌%s┐\n", yMax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Fprintf(&sb, "  %.2f │", (yMax+yMin)/2)
		} else {
			sb.WriteString("       │")
		}
		sb.WriteString(string(canvas[i]))
		sb.WriteString("│\n")
	}
	fmt.Fprintf(&sb, "  %.2f └%s┘\n", yMin, strings.Repeat("─", width))

	fmt.Fprintf(&sb, "       %.2f", xMin)
	if padding := width - 20; padding > 0 {
		sb.WriteString(strings.Repeat(" ", padding))
	}
	fmt.Fprintf(&sb, "%.2f\n", xMax)

	return sb.String()
}
