package points

// rail labels the role of one of a junction's arms
type rail int8

const (
	railNone rail = iota - 1
	railBase
	railDefaultArm
	railSecondaryArm
)

func (r rail) String() string {
	switch r {
	case railBase:
		return "base"
	case railDefaultArm:
		return "default"
	case railSecondaryArm:
		return "secondary"
	default:
		return "none"
	}
}

// transition is one cell of the switching table
type transition struct {
	exit rail
	next int
}

// junctionStates is indexed by [type][state][entry rail].
// Entry on railNone never reaches the table.
var junctionStates = [4][2][3]transition{
	Lazy: {
		{
			railBase:         {railDefaultArm, 0},
			railDefaultArm:   {railBase, 0},
			railSecondaryArm: {railBase, 1},
		},
		{
			railBase:         {railSecondaryArm, 0},
			railDefaultArm:   {railBase, 0},
			railSecondaryArm: {railBase, 1},
		},
	},
	Sprung: {
		{
			railBase:         {railDefaultArm, 0},
			railDefaultArm:   {railBase, 0},
			railSecondaryArm: {railBase, 0},
		},
		{
			railBase:         {railDefaultArm, 0},
			railDefaultArm:   {railBase, 0},
			railSecondaryArm: {railBase, 0},
		},
	},
	Alternating: {
		{
			railBase:         {railDefaultArm, 1},
			railDefaultArm:   {railNone, 0},
			railSecondaryArm: {railNone, 0},
		},
		{
			railBase:         {railSecondaryArm, 0},
			railDefaultArm:   {railNone, 1},
			railSecondaryArm: {railNone, 1},
		},
	},
	OneWay: {
		{
			railBase:         {railNone, 0},
			railDefaultArm:   {railBase, 0},
			railSecondaryArm: {railBase, 0},
		},
		{
			railBase:         {railNone, 0},
			railDefaultArm:   {railBase, 0},
			railSecondaryArm: {railBase, 0},
		},
	},
}

// Transition is a read-only row of a junction type's switching table.
// Entry and Exit name the arms: "base", "default", "secondary" or "none".
type Transition struct {
	State     int
	Entry     string
	Exit      string
	NextState int
}

// Blocked reports whether the transition has no exit
func (t Transition) Blocked() bool {
	return t.Exit == railNone.String()
}

// Transitions lists the switching table of t, ordered by state then entry arm.
// It returns nil for an unknown type.
func (t JunctionType) Transitions() []Transition {
	if !t.Valid() {
		return nil
	}
	rows := make([]Transition, 0, 6)
	for state, byRail := range junctionStates[t] {
		for entry, tr := range byRail {
			rows = append(rows, Transition{
				State:     state,
				Entry:     rail(entry).String(),
				Exit:      tr.exit.String(),
				NextState: tr.next,
			})
		}
	}
	return rows
}
