// Package palette generates the per-class colors used by the tree renderer:
// n evenly hue-spaced colors at fixed saturation and value, one per class id.
package palette

import (
	"fmt"
	"math"
)

// Fixed saturation and value for every brewed color.
const (
	saturation = 0.75
	value      = 0.9
)

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexAlpha renders the color with an alpha channel as #rrggbbaa.
func (c Color) HexAlpha(a uint8) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, a)
}

// Brew returns n colors with equally spaced hues, starting at 25 degrees and
// stepping 360/n degrees. Hue degrees and output channels are truncated, not
// rounded, so the palette for a given n is stable down to the byte.
// Class id i maps to the i-th color. Returns nil for n < 1.
func Brew(n int) []Color {
	if n < 1 {
		return nil
	}

	chroma := saturation * value
	shift := value - chroma

	colors := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		h := int(25 + float64(i)*360/float64(n))
		hBar := float64(h) / 60

		// Second-largest component, from the piecewise hue formula.
		x := chroma * (1 - math.Abs(math.Mod(hBar, 2)-1))

		var r, g, b float64
		switch int(hBar) {
		case 0:
			r, g, b = chroma, x, 0
		case 1:
			r, g, b = x, chroma, 0
		case 2:
			r, g, b = 0, chroma, x
		case 3:
			r, g, b = 0, x, chroma
		case 4:
			r, g, b = x, 0, chroma
		case 5:
			r, g, b = chroma, 0, x
		default: // hue wrapped past 360
			r, g, b = chroma, x, 0
		}

		colors = append(colors, Color{
			R: uint8(255 * (r + shift)),
			G: uint8(255 * (g + shift)),
			B: uint8(255 * (b + shift)),
		})
	}

	return colors
}
