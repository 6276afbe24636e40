package visualization

import (
	"fmt"

	"github.com/anggasct/points"
)

// table is the data both renderers draw from
type table struct {
	junctionType points.JunctionType
	name         string
	arms         map[string]points.Direction
	rows         []points.Transition
	current      int
}

func tableForType(junctionType points.JunctionType) table {
	return table{
		junctionType: junctionType,
		rows:         junctionType.Transitions(),
		current:      -1,
	}
}

func tableForJunction(j *points.Junction) table {
	t := tableForType(j.Type())
	t.name = j.Name()
	t.current = j.State()
	t.arms = map[string]points.Direction{
		"base":      j.Base(),
		"default":   j.DefaultArm(),
		"secondary": j.SecondaryArm(),
	}
	return t
}

func (t table) check() error {
	if !t.junctionType.Valid() {
		return points.NewConfigurationError("visualization", fmt.Sprintf("unknown junction type %s", t.junctionType))
	}
	return nil
}

func (t table) title() string {
	if t.name != "" {
		return fmt.Sprintf("%s (%s)", t.name, t.junctionType)
	}
	return t.junctionType.String()
}

func (t table) arm(name string) string {
	if d, ok := t.arms[name]; ok {
		return fmt.Sprintf("%s %s", name, d)
	}
	return name
}

func (t table) edgeLabel(row points.Transition) string {
	return fmt.Sprintf("%s -> %s", t.arm(row.Entry), t.arm(row.Exit))
}

func stateName(state int) string {
	return fmt.Sprintf("state %d", state)
}
