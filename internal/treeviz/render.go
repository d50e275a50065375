// Package treeviz renders a binary decision tree as a Graphviz DOT document.
//
// Each node becomes one statement carrying a label and a fill color derived
// from the node's class distribution: leaves take the pure color of their
// class, internal nodes take the color of their majority class faded by the
// majority ratio. Edges to the left child are labeled "yes", to the right
// "no". The resulting text is meant for an external layout tool (dot, xdot);
// this package never rasterizes anything itself.
package treeviz

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/avask/vizkit/internal/palette"
	"github.com/avask/vizkit/internal/tree"
)

// Global node attributes emitted in the document header.
const headerStyle = `shape="box", style="filled, rounded", color="black"`

// renderer carries the lookup tables and ID source through the traversal.
type renderer struct {
	features []string
	classes  []string
	colors   []palette.Color
	ids      IDSource
}

// Option adjusts renderer behavior.
type Option func(*renderer)

// WithIDSource replaces the default random node-ID source. Tests and callers
// that need reproducible output pass NewSequential here.
func WithIDSource(src IDSource) Option {
	return func(r *renderer) { r.ids = src }
}

// Render emits the DOT document for the tree rooted at root. featureNames is
// indexed by Node.Feature, classNames by Node.Class; an index outside either
// table is an error. The document text is always returned, never written
// anywhere.
func Render(root *tree.Node, featureNames, classNames []string, opts ...Option) (string, error) {
	r := &renderer{
		features: featureNames,
		classes:  classNames,
		colors:   palette.Brew(len(classNames)),
		ids:      RandomDigits(),
	}
	for _, opt := range opts {
		opt(r)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Tree {\n")
	fmt.Fprintf(&buf, "node [%s];\n", headerStyle)
	if _, err := r.walk(&buf, root); err != nil {
		return "", err
	}
	buf.WriteString("}")
	return buf.String(), nil
}

// RenderFile renders the tree and also writes the document to path,
// creating or truncating it. The document is built fully in memory before
// the file is touched, and is returned even when given a path.
func RenderFile(path string, root *tree.Node, featureNames, classNames []string, opts ...Option) (string, error) {
	doc, err := Render(root, featureNames, classNames, opts...)
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(doc); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return doc, nil
}

// walk emits the statement for n, recurses left then right, and emits an
// edge after each rendered child. It returns the ID assigned to n.
func (r *renderer) walk(buf *bytes.Buffer, n *tree.Node) (string, error) {
	id := r.ids.Next()

	label, err := r.label(n)
	if err != nil {
		return "", err
	}
	color, err := r.color(n)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(buf, "%s [label=\"%s\", fillcolor=\"%s\"];\n", id, label, color)

	if !n.Leaf {
		const edge = "%s -> %s [label=%s, labeldistance=2.5, labelangle=45];\n"

		if n.Left != nil {
			childID, err := r.walk(buf, n.Left)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(buf, edge, id, childID, "yes")
		}

		if n.Right != nil {
			childID, err := r.walk(buf, n.Right)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(buf, edge, id, childID, "no")
		}
	}

	return id, nil
}

func (r *renderer) label(n *tree.Node) (string, error) {
	lines, err := Describe(n, r.features, r.classes)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// Describe returns the display lines for a node, the same text Render puts
// in the node's label: the class name for a leaf, four lines for an internal
// node (sample total, gini, majority ratio, split condition).
func Describe(n *tree.Node, featureNames, classNames []string) ([]string, error) {
	if n.Leaf {
		if n.Class < 0 || n.Class >= len(classNames) {
			return nil, fmt.Errorf("class index %d out of range (%d classes)", n.Class, len(classNames))
		}
		return []string{classNames[n.Class]}, nil
	}

	if n.Feature < 0 || n.Feature >= len(featureNames) {
		return nil, fmt.Errorf("feature index %d out of range (%d features)", n.Feature, len(featureNames))
	}

	total := n.Total()
	_, count := n.Majority()
	ratio := float64(count) / float64(total)

	return []string{
		fmt.Sprintf("samples: %d", total),
		fmt.Sprintf("gini: %.2f", n.Gini),
		fmt.Sprintf("ratio: %.2f", ratio),
		fmt.Sprintf("%s <= %.2f", featureNames[n.Feature], n.Threshold),
	}, nil
}

func (r *renderer) color(n *tree.Node) (string, error) {
	return NodeColor(n, r.colors)
}

// NodeColor picks the node's fill from a brewed palette: the pure class
// color for a leaf, the majority-class color with confidence alpha for an
// internal node.
func NodeColor(n *tree.Node, colors []palette.Color) (string, error) {
	if n.Leaf {
		if n.Class < 0 || n.Class >= len(colors) {
			return "", fmt.Errorf("class index %d out of range (%d classes)", n.Class, len(colors))
		}
		return colors[n.Class].Hex(), nil
	}

	class, count := n.Majority()
	if class >= len(colors) {
		return "", fmt.Errorf("class index %d out of range (%d classes)", class, len(colors))
	}

	total := n.Total()
	var alpha uint8
	if total > 0 {
		alpha = uint8(255 * float64(count) / float64(total))
	}
	return colors[class].HexAlpha(alpha), nil
}
