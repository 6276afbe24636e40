// Package visualization renders junction switching tables as diagrams
package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/anggasct/points"
)

// DOTGenerator generates Graphviz DOT format representations of a junction's switching table
type DOTGenerator struct {
	table   table
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowBlocked     bool
	RankDirection   string // "TB", "LR", "BT", "RL"
	NodeShape       string
	TransitionStyle string
	BlockedStyle    string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowBlocked:     true,
		RankDirection:   "LR",
		NodeShape:       "circle",
		TransitionStyle: "solid",
		BlockedStyle:    "dashed",
	}
}

// NewDOTGenerator creates a new DOT generator for the table of a junction type
func NewDOTGenerator(junctionType points.JunctionType, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		table:   tableForType(junctionType),
		options: opts,
	}
}

// NewJunctionDOTGenerator creates a DOT generator that labels arms with the
// junction's directions and highlights its current state
func NewJunctionDOTGenerator(j *points.Junction, options ...DOTOptions) *DOTGenerator {
	g := NewDOTGenerator(j.Type(), options...)
	g.table = tableForJunction(j)
	return g
}

// Generate creates a DOT representation of the switching table
func (g *DOTGenerator) Generate() (string, error) {
	if err := g.table.check(); err != nil {
		return "", err
	}

	var dot strings.Builder

	dot.WriteString(fmt.Sprintf("digraph %q {\n", g.table.title()))
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s];\n", g.options.NodeShape))
	dot.WriteString("  edge [fontsize=10];\n\n")

	g.generateStates(&dot)
	g.generateTransitions(&dot)

	dot.WriteString("}\n")

	return dot.String(), nil
}

func (g *DOTGenerator) generateStates(dot *strings.Builder) {
	dot.WriteString("  // States\n")
	for state := 0; state < 2; state++ {
		fillColor := "lightblue"
		label := stateName(state)
		if state == 0 {
			label += "\\n(initial)"
		}
		if state == g.table.current {
			fillColor = "lightgreen"
			label += "\\n(current)"
		}
		dot.WriteString(fmt.Sprintf("  %q [style=\"filled\" fillcolor=%s label=\"%s\"];\n",
			stateName(state), fillColor, label))
	}
	dot.WriteString("\n")
}

func (g *DOTGenerator) generateTransitions(dot *strings.Builder) {
	dot.WriteString("  // Transitions\n")
	for _, row := range g.table.rows {
		style := g.options.TransitionStyle
		color := "black"
		if row.Blocked() {
			if !g.options.ShowBlocked {
				continue
			}
			style = g.options.BlockedStyle
			color = "red"
		}
		dot.WriteString(fmt.Sprintf("  %q -> %q [label=%q style=%s color=%s];\n",
			stateName(row.State), stateName(row.NextState), g.table.edgeLabel(row), style, color))
	}
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// GenerateSVG converts the DOT representation to SVG with the Graphviz dot command
func (g *DOTGenerator) GenerateSVG() (string, error) {
	dotContent, err := g.Generate()
	if err != nil {
		return "", err
	}

	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(dotContent)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}
