package treeviz

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avask/vizkit/internal/tree"
)

func irisStump() (*tree.Node, []string, []string) {
	root := &tree.Node{
		Feature:   1,
		Threshold: 0.8,
		Gini:      0.5,
		Counts:    []int{50, 50},
		Left:      &tree.Node{Leaf: true, Class: 0, Counts: []int{50, 0}},
		Right:     &tree.Node{Leaf: true, Class: 1, Counts: []int{0, 50}},
	}
	return root, []string{"sepal length", "petal width"}, []string{"setosa", "versicolor"}
}

func TestRenderSingleLeaf(t *testing.T) {
	root := &tree.Node{Leaf: true, Class: 0, Counts: []int{10}}

	doc, err := Render(root, nil, []string{"A"}, WithIDSource(NewSequential()))
	require.NoError(t, err)

	assert.Equal(t, "digraph Tree {\n"+
		"node [shape=\"box\", style=\"filled, rounded\", color=\"black\"];\n"+
		"n0 [label=\"A\", fillcolor=\"#e58139\"];\n"+
		"}", doc)
	assert.NotContains(t, doc, "->")
}

func TestRenderStump(t *testing.T) {
	root, features, classes := irisStump()

	doc, err := Render(root, features, classes, WithIDSource(NewSequential()))
	require.NoError(t, err)

	want := strings.Join([]string{
		"digraph Tree {",
		`node [shape="box", style="filled, rounded", color="black"];`,
		"n0 [label=\"samples: 100\ngini: 0.50\nratio: 0.50\npetal width <= 0.80\", fillcolor=\"#e581397f\"];",
		`n1 [label="setosa", fillcolor="#e58139"];`,
		"n0 -> n1 [label=yes, labeldistance=2.5, labelangle=45];",
		`n2 [label="versicolor", fillcolor="#399de5"];`,
		"n0 -> n2 [label=no, labeldistance=2.5, labelangle=45];",
		"}",
	}, "\n")
	assert.Equal(t, want, doc)
}

func TestRenderSamplesLine(t *testing.T) {
	root, features, classes := irisStump()
	root.Counts = []int{31, 12}

	doc, err := Render(root, features, classes)
	require.NoError(t, err)
	assert.Contains(t, doc, fmt.Sprintf("samples: %d", 43))
}

func TestRenderMissingLeftChild(t *testing.T) {
	root, features, classes := irisStump()
	root.Left = nil

	doc, err := Render(root, features, classes, WithIDSource(NewSequential()))
	require.NoError(t, err)

	assert.Contains(t, doc, "label=no")
	assert.NotContains(t, doc, "label=yes")
}

func TestRenderPreOrder(t *testing.T) {
	root, features, classes := irisStump()

	doc, err := Render(root, features, classes, WithIDSource(NewSequential()))
	require.NoError(t, err)

	// Parent statement precedes both children; left child precedes right.
	rootAt := strings.Index(doc, "n0 [")
	leftAt := strings.Index(doc, "n1 [")
	rightAt := strings.Index(doc, "n2 [")
	assert.Less(t, rootAt, leftAt)
	assert.Less(t, leftAt, rightAt)
}

func TestRenderIdempotentModuloIDs(t *testing.T) {
	root, features, classes := irisStump()

	first, err := Render(root, features, classes)
	require.NoError(t, err)
	second, err := Render(root, features, classes)
	require.NoError(t, err)

	ids := regexp.MustCompile(`\b\d{20}\b`)
	assert.Equal(t, ids.ReplaceAllString(first, "#"), ids.ReplaceAllString(second, "#"))
}

func TestRenderIndexErrors(t *testing.T) {
	root, features, classes := irisStump()

	root.Left.Class = 7
	_, err := Render(root, features, classes)
	assert.ErrorContains(t, err, "class index 7 out of range")

	root, features, classes = irisStump()
	root.Feature = 5
	_, err = Render(root, features, classes)
	assert.ErrorContains(t, err, "feature index 5 out of range")
}

func TestRenderFile(t *testing.T) {
	root, features, classes := irisStump()
	path := filepath.Join(t.TempDir(), "tree.dot")

	doc, err := RenderFile(path, root, features, classes, WithIDSource(NewSequential()))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc, string(data))

	_, err = RenderFile(filepath.Join(t.TempDir(), "missing", "tree.dot"), root, features, classes)
	assert.Error(t, err)
}

func TestRandomDigits(t *testing.T) {
	src := RandomDigits()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := src.Next()
		require.Len(t, id, 20)
		for _, c := range id {
			assert.True(t, c >= '0' && c <= '9', "non-digit in id %q", id)
		}
		assert.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

func TestSequential(t *testing.T) {
	src := NewSequential()
	assert.Equal(t, "n0", src.Next())
	assert.Equal(t, "n1", src.Next())
	assert.Equal(t, "n2", src.Next())
}

func TestUUIDs(t *testing.T) {
	id := UUIDs().Next()
	assert.Len(t, id, 33)
	assert.True(t, strings.HasPrefix(id, "n"))
	assert.NotContains(t, id, "-")
}
