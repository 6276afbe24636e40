package visualization_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anggasct/points"
	"github.com/anggasct/points/visualization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDOTGeneration(t *testing.T) {
	generator := visualization.NewDOTGenerator(points.Alternating)

	dotContent, err := generator.Generate()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(dotContent, "digraph \"alternating\" {"))
	assert.Contains(t, dotContent, "\"state 0\" [style=\"filled\" fillcolor=lightblue label=\"state 0\\n(initial)\"];")
	assert.Contains(t, dotContent, "\"state 0\" -> \"state 1\" [label=\"base -> default\" style=solid color=black];")
	assert.Contains(t, dotContent, "\"state 1\" -> \"state 0\" [label=\"base -> secondary\" style=solid color=black];")
	assert.Contains(t, dotContent, "\"state 1\" -> \"state 1\" [label=\"default -> none\" style=dashed color=red];")
	assert.NotContains(t, dotContent, "lightgreen")

	t.Logf("Generated DOT content:\n%s", dotContent)
}

func TestDOTGenerationHidesBlocked(t *testing.T) {
	options := visualization.DefaultDOTOptions()
	options.ShowBlocked = false

	dotContent, err := visualization.NewDOTGenerator(points.OneWay, options).Generate()
	require.NoError(t, err)

	assert.NotContains(t, dotContent, "none")
	assert.Equal(t, 4, strings.Count(dotContent, "-> \"state 0\""))
}

func TestDOTGenerationForJunction(t *testing.T) {
	j := points.NewJunction(points.Lazy, points.Up, points.Right, points.Left, points.WithName("siding"))
	_, err := j.Enter(points.Left)
	require.NoError(t, err)

	dotContent, err := visualization.NewJunctionDOTGenerator(j).Generate()
	require.NoError(t, err)

	assert.Contains(t, dotContent, "digraph \"siding (lazy)\"")
	assert.Contains(t, dotContent, "label=\"base UP -> secondary LEFT\"")
	assert.Contains(t, dotContent, "fillcolor=lightgreen label=\"state 1\\n(current)\"")
}

func TestDOTGenerationUnknownType(t *testing.T) {
	_, err := visualization.NewDOTGenerator(points.JunctionType(12)).Generate()
	assert.True(t, points.IsConfigurationError(err))
}

func TestDOTGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprung.dot")

	require.NoError(t, visualization.NewDOTGenerator(points.Sprung).GenerateToFile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph \"sprung\"")
}

func TestDOTGenerateSVG(t *testing.T) {
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("graphviz not installed")
	}

	svg, err := visualization.NewDOTGenerator(points.Lazy).GenerateSVG()
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
}

func TestMermaidGeneration(t *testing.T) {
	out, err := visualization.GenerateMermaid(points.Lazy)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "stateDiagram-v2\n"))
	assert.Contains(t, out, "%% lazy\n")
	assert.Contains(t, out, "[*] --> S0")
	assert.Contains(t, out, "S1 --> S0 : base -> secondary\n")
	assert.Contains(t, out, "S0 --> S1 : secondary -> base\n")
	assert.NotContains(t, out, "classDef")
}

func TestMermaidGenerationForJunction(t *testing.T) {
	j := points.NewJunction(points.OneWay, points.Down, points.Up, points.Left)

	out, err := visualization.GenerateJunctionMermaid(j)
	require.NoError(t, err)

	assert.Contains(t, out, "S0 --> S0 : base DOWN -> none (blocked)\n")
	assert.Contains(t, out, "class S0 current\n")

	_, err = visualization.GenerateMermaid(points.JunctionType(-3))
	assert.Error(t, err)
}
