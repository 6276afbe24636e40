package points

import (
	"fmt"

	"github.com/google/uuid"
)

// Junction is a three-armed track switch.
//
// A vehicle arrives on the base arm or on one of the two branch arms (default
// and secondary). The junction type's table decides the exit arm and the next
// internal state. State starts at 0 and only changes inside Enter.
//
// Junction does no locking; callers serialize Enter per junction.
type Junction struct {
	id           string
	name         string
	junctionType JunctionType
	currentState int

	baseDirection         Direction
	defaultArmDirection   Direction
	secondaryArmDirection Direction

	observers *ObserverManager
}

// Option configures a Junction at construction
type Option func(*Junction)

// WithName sets a human readable name used in errors and logs
func WithName(name string) Option {
	return func(j *Junction) {
		j.name = name
	}
}

// WithID replaces the generated junction ID
func WithID(id string) Option {
	return func(j *Junction) {
		j.id = id
	}
}

// WithObserver attaches an observer to the junction
func WithObserver(observer Observer) Option {
	return func(j *Junction) {
		j.observers.AddObserver(observer)
	}
}

// NewJunction creates a junction in state 0.
// The arms are not validated; see Validate.
func NewJunction(junctionType JunctionType, base, defaultArm, secondaryArm Direction, opts ...Option) *Junction {
	j := &Junction{
		id:                    uuid.New().String(),
		junctionType:          junctionType,
		baseDirection:         base,
		defaultArmDirection:   defaultArm,
		secondaryArmDirection: secondaryArm,
		observers:             NewObserverManager(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Enter routes a vehicle arriving with the given direction of travel and
// returns the direction it leaves in. A return of None means the vehicle
// has no valid exit; that is a result, not an error.
func (j *Junction) Enter(direction Direction) (Direction, error) {
	if !j.junctionType.Valid() {
		err := NewConfigurationError("junction "+j.label(), fmt.Sprintf("unknown junction type %s", j.junctionType))
		j.observers.NotifyError(err)
		return None, err
	}

	entry := j.railFor(direction)
	if entry == railNone {
		err := NewInvalidEntryDirectionError(direction, j)
		j.observers.NotifyError(err)
		return None, err
	}

	from := j.currentState
	tr := junctionStates[j.junctionType][from][entry]
	j.currentState = tr.next

	exit := j.directionOf(tr.exit)
	j.observers.NotifyEnter(EnterEvent{
		JunctionID:   j.id,
		JunctionName: j.name,
		Type:         j.junctionType,
		Entry:        direction,
		Exit:         exit,
		FromState:    from,
		ToState:      tr.next,
	})
	return exit, nil
}

// railFor matches base, then default, then secondary
func (j *Junction) railFor(direction Direction) rail {
	switch direction {
	case j.baseDirection:
		return railBase
	case j.defaultArmDirection:
		return railDefaultArm
	case j.secondaryArmDirection:
		return railSecondaryArm
	}
	return railNone
}

func (j *Junction) directionOf(r rail) Direction {
	switch r {
	case railBase:
		return j.baseDirection
	case railDefaultArm:
		return j.defaultArmDirection
	case railSecondaryArm:
		return j.secondaryArmDirection
	}
	return None
}

// Validate checks that the type is known and that the three arms are
// distinct cardinal directions.
func (j *Junction) Validate() error {
	component := "junction " + j.label()
	if !j.junctionType.Valid() {
		return NewConfigurationError(component, fmt.Sprintf("unknown junction type %s", j.junctionType))
	}
	arms := []struct {
		name string
		dir  Direction
	}{
		{"base", j.baseDirection},
		{"default", j.defaultArmDirection},
		{"secondary", j.secondaryArmDirection},
	}
	seen := make(map[Direction]string, len(arms))
	for _, arm := range arms {
		if !arm.dir.IsCardinal() {
			return NewConfigurationError(component, fmt.Sprintf("%s arm has non-cardinal direction %s", arm.name, arm.dir))
		}
		if other, ok := seen[arm.dir]; ok {
			return NewConfigurationError(component, fmt.Sprintf("%s and %s arms share direction %s", other, arm.name, arm.dir))
		}
		seen[arm.dir] = arm.name
	}
	return nil
}

// AddObserver attaches an observer
func (j *Junction) AddObserver(observer Observer) {
	if j.observers == nil {
		j.observers = NewObserverManager()
	}
	j.observers.AddObserver(observer)
}

// RemoveObserver detaches an observer
func (j *Junction) RemoveObserver(observer Observer) {
	if j.observers != nil {
		j.observers.RemoveObserver(observer)
	}
}

func (j *Junction) ID() string              { return j.id }
func (j *Junction) Name() string            { return j.name }
func (j *Junction) Type() JunctionType      { return j.junctionType }
func (j *Junction) State() int              { return j.currentState }
func (j *Junction) Base() Direction         { return j.baseDirection }
func (j *Junction) DefaultArm() Direction   { return j.defaultArmDirection }
func (j *Junction) SecondaryArm() Direction { return j.secondaryArmDirection }

func (j *Junction) String() string {
	return fmt.Sprintf("%s junction %s [base=%s default=%s secondary=%s state=%d]",
		j.junctionType, j.label(), j.baseDirection, j.defaultArmDirection, j.secondaryArmDirection, j.currentState)
}

func (j *Junction) label() string {
	if j.name != "" {
		return j.name
	}
	return j.id
}
