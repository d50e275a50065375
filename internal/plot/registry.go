package plot

import (
	"fmt"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format names an output image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	// FormatPDF is recognized for compatibility with older job files but has
	// no encoder; rendering it fails rather than mislabeling the output.
	FormatPDF Format = "pdf"
)

// encoders maps each renderable format to its go-chart renderer provider.
var encoders = map[Format]chart.RendererProvider{
	FormatPNG: chart.PNG,
	FormatSVG: chart.SVG,
}

// ParseFormat validates a format name from a flag or config file.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatPNG, FormatSVG, FormatPDF:
		return Format(name), nil
	}
	return "", fmt.Errorf("unknown format: %s (choices: png, svg, pdf)", name)
}

// rendererFor resolves the encoder for a format.
func rendererFor(f Format) (chart.RendererProvider, error) {
	rp, ok := encoders[f]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s (supported: %v)", f, Formats())
	}
	return rp, nil
}

// Formats lists the renderable format names, sorted for stable CLI help.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for f := range encoders {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}
