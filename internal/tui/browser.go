// Package tui provides an interactive terminal browser for decision trees:
// step into the yes/no branches of each split and inspect the node text and
// fill color the renderer would emit.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avask/vizkit/internal/palette"
	"github.com/avask/vizkit/internal/tree"
	"github.com/avask/vizkit/internal/treeviz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	errRed = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type crumb struct {
	node   *tree.Node
	branch string // "yes" or "no" edge taken to reach node
}

// Model is the bubbletea model for the tree browser.
type Model struct {
	doc    *tree.Document
	colors []palette.Color
	path   []crumb
}

// NewModel builds a browser rooted at the document's tree.
func NewModel(doc *tree.Document) Model {
	return Model{
		doc:    doc,
		colors: palette.Brew(len(doc.ClassNames)),
		path:   []crumb{{node: doc.Root}},
	}
}

func (m Model) current() *tree.Node {
	return m.path[len(m.path)-1].node
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "left", "h", "y":
		if n := m.current(); !n.Leaf && n.Left != nil {
			m.path = append(m.path, crumb{node: n.Left, branch: "yes"})
		}

	case "right", "l", "n":
		if n := m.current(); !n.Leaf && n.Right != nil {
			m.path = append(m.path, crumb{node: n.Right, branch: "no"})
		}

	case "backspace", "u":
		if len(m.path) > 1 {
			m.path = m.path[:len(m.path)-1]
		}
	}

	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(cyan.Render("tree browser"))
	sb.WriteString(dim.Render(fmt.Sprintf("  %d nodes, depth %d", m.doc.Root.Size(), m.doc.Root.Depth())))
	sb.WriteString("\n\n")

	sb.WriteString(dim.Render("path: "))
	sb.WriteString(white.Render("root"))
	for _, c := range m.path[1:] {
		sb.WriteString(dim.Render(" → "))
		if c.branch == "yes" {
			sb.WriteString(green.Render(c.branch))
		} else {
			sb.WriteString(yellow.Render(c.branch))
		}
	}
	sb.WriteString("\n\n")

	n := m.current()

	lines, err := treeviz.Describe(n, m.doc.FeatureNames, m.doc.ClassNames)
	if err != nil {
		sb.WriteString(errRed.Render(err.Error()))
		sb.WriteString("\n")
	} else {
		for _, line := range lines {
			sb.WriteString(white.Render(line))
			sb.WriteString("\n")
		}
	}

	if hex, err := treeviz.NodeColor(n, m.colors); err == nil {
		// lipgloss backgrounds take #rrggbb; drop the confidence alpha.
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex[:7])).Render("      ")
		sb.WriteString(dim.Render("fill: "))
		sb.WriteString(swatch)
		sb.WriteString(dim.Render(" " + hex))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if n.Leaf {
		sb.WriteString(dim.Render("leaf · backspace up · q quit"))
	} else {
		var moves []string
		if n.Left != nil {
			moves = append(moves, "←/y yes")
		}
		if n.Right != nil {
			moves = append(moves, "→/n no")
		}
		moves = append(moves, "backspace up", "q quit")
		sb.WriteString(dim.Render(strings.Join(moves, " · ")))
	}
	sb.WriteString("\n")

	return sb.String()
}

// Run starts the browser and blocks until the user quits.
func Run(doc *tree.Document) error {
	_, err := tea.NewProgram(NewModel(doc)).Run()
	return err
}
