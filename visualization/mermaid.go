package visualization

import (
	"fmt"
	"strings"

	"github.com/anggasct/points"
)

// GenerateMermaid produces a Mermaid state diagram of a junction type's switching table.
// Blocked transitions are drawn with the "blocked" label suffix.
func GenerateMermaid(junctionType points.JunctionType) (string, error) {
	return generateMermaid(tableForType(junctionType))
}

// GenerateJunctionMermaid is GenerateMermaid with the junction's arm
// directions and current state overlaid.
func GenerateJunctionMermaid(j *points.Junction) (string, error) {
	return generateMermaid(tableForJunction(j))
}

func generateMermaid(t table) (string, error) {
	if err := t.check(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    %%%% %s\n", t.title()))
	sb.WriteString("    [*] --> S0\n")
	for state := 0; state < 2; state++ {
		sb.WriteString(fmt.Sprintf("    state \"%s\" as S%d\n", stateName(state), state))
	}

	for _, row := range t.rows {
		label := t.edgeLabel(row)
		if row.Blocked() {
			label += " (blocked)"
		}
		sb.WriteString(fmt.Sprintf("    S%d --> S%d : %s\n", row.State, row.NextState, sanitizeMermaidLabel(label)))
	}

	if t.current >= 0 {
		sb.WriteString("    classDef current fill:#9f9\n")
		sb.WriteString(fmt.Sprintf("    class S%d current\n", t.current))
	}
	return sb.String(), nil
}

// Mermaid transition labels end at a colon or newline
func sanitizeMermaidLabel(label string) string {
	return strings.NewReplacer(":", " ", "\n", " ").Replace(label)
}
