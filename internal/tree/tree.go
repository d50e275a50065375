package tree

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Node is a single node of a binary decision tree. Trees are built by an
// external training process; this package only reads them.
//
// For an internal node, Feature indexes the feature-name table and Threshold
// is the split value. For a leaf, Class indexes the class-name table. Counts
// holds the per-class sample counts observed at the node, indexed by class id.
type Node struct {
	Leaf      bool    `json:"leaf"`
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Class     int     `json:"class,omitempty"`
	Gini      float64 `json:"gini,omitempty"`
	Counts    []int   `json:"counts,omitempty"`
	Left      *Node   `json:"left,omitempty"`
	Right     *Node   `json:"right,omitempty"`
}

// Total returns the sum of the node's class counts.
func (n *Node) Total() int {
	total := 0
	for _, c := range n.Counts {
		total += c
	}
	return total
}

// Majority returns the most frequent class id at the node and its count.
// Ties resolve to the lowest class id.
func (n *Node) Majority() (class, count int) {
	for i, c := range n.Counts {
		if c > count {
			class, count = i, c
		}
	}
	return class, count
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// Depth returns the height of the subtree rooted at n; a single leaf is 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l > r {
		return 1 + l
	}
	return 1 + r
}

// Document is the on-disk form of a tree: the root plus the name tables the
// renderer needs to resolve feature and class indices.
type Document struct {
	FeatureNames []string `json:"feature_names"`
	ClassNames   []string `json:"class_names"`
	Root         *Node    `json:"root"`
}

// Load decodes a tree document from r.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("decode tree: missing root node")
	}
	return &doc, nil
}

// LoadFile decodes a tree document from a JSON file.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
