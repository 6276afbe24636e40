package points

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestObserver is a mock observer for testing that captures all observer events
type TestObserver struct {
	mutex   sync.RWMutex
	Enters  []EnterEvent
	Blocked []EnterEvent
	Errors  []error
}

// NewTestObserver creates a new test observer
func NewTestObserver() *TestObserver {
	return &TestObserver{
		Enters:  make([]EnterEvent, 0),
		Blocked: make([]EnterEvent, 0),
		Errors:  make([]error, 0),
	}
}

func (o *TestObserver) OnEnter(event EnterEvent) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Enters = append(o.Enters, event)
}

func (o *TestObserver) OnBlocked(event EnterEvent) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Blocked = append(o.Blocked, event)
}

func (o *TestObserver) OnError(err error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.Errors = append(o.Errors, err)
}

// arrival is one step of a scripted run against a junction
type arrival struct {
	enter Direction
	exit  Direction
	state int
}

// AssertArrivals feeds each arrival to j and checks the exit and resulting state
func AssertArrivals(t *testing.T, j *Junction, arrivals ...arrival) {
	t.Helper()
	for i, a := range arrivals {
		got, err := j.Enter(a.enter)
		require.NoError(t, err, "arrival %d (%s)", i, a.enter)
		assert.Equal(t, a.exit, got, "exit of arrival %d (%s)", i, a.enter)
		assert.Equal(t, a.state, j.State(), "state after arrival %d (%s)", i, a.enter)
	}
}
