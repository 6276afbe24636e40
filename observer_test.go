package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enterOnlyObserver struct {
	count int
}

func (o *enterOnlyObserver) OnEnter(event EnterEvent) {
	o.count++
}

type panickingObserver struct {
	BaseObserver
	errors []error
}

func (o *panickingObserver) OnEnter(event EnterEvent) {
	panic("boom")
}

func (o *panickingObserver) OnError(err error) {
	o.errors = append(o.errors, err)
}

func TestObserver_EnterEvents(t *testing.T) {
	observer := NewTestObserver()
	j := NewJunction(Alternating, Up, Right, Left, WithName("loop"), WithObserver(observer))

	_, err := j.Enter(Up)
	require.NoError(t, err)
	_, err = j.Enter(Right)
	require.NoError(t, err)

	require.Len(t, observer.Enters, 2)
	assert.Equal(t, EnterEvent{
		JunctionID:   j.ID(),
		JunctionName: "loop",
		Type:         Alternating,
		Entry:        Up,
		Exit:         Right,
		FromState:    0,
		ToState:      1,
	}, observer.Enters[0])

	require.Len(t, observer.Blocked, 1)
	assert.Equal(t, Right, observer.Blocked[0].Entry)
	assert.True(t, observer.Blocked[0].Blocked())
	assert.Empty(t, observer.Errors)
}

func TestObserver_Errors(t *testing.T) {
	observer := NewTestObserver()
	j := NewJunction(Lazy, Up, Right, Left)
	j.AddObserver(observer)

	_, err := j.Enter(Down)
	require.Error(t, err)

	assert.Empty(t, observer.Enters)
	require.Len(t, observer.Errors, 1)
	assert.Equal(t, err, observer.Errors[0])
}

func TestObserver_Remove(t *testing.T) {
	observer := NewTestObserver()
	j := NewJunction(Lazy, Up, Right, Left, WithObserver(observer))

	j.RemoveObserver(observer)
	_, err := j.Enter(Up)
	require.NoError(t, err)

	assert.Empty(t, observer.Enters)
}

func TestObserver_PlainObserverSkipsExtendedHooks(t *testing.T) {
	observer := &enterOnlyObserver{}
	j := NewJunction(OneWay, Up, Right, Left, WithObserver(observer))

	exit, err := j.Enter(Up)
	require.NoError(t, err)
	assert.Equal(t, None, exit)
	_, err = j.Enter(Down)
	require.Error(t, err)

	assert.Equal(t, 1, observer.count)
}

func TestObserver_PanicIsContained(t *testing.T) {
	bad := &panickingObserver{}
	good := NewTestObserver()
	j := NewJunction(Lazy, Up, Right, Left, WithObserver(bad), WithObserver(good))

	exit, err := j.Enter(Up)
	require.NoError(t, err)
	assert.Equal(t, Right, exit)

	require.Len(t, bad.errors, 1)
	assert.Contains(t, bad.errors[0].Error(), "observer panic in OnEnter")
	assert.Len(t, good.Enters, 1)
}

func TestObserverManager_Nil(t *testing.T) {
	var om *ObserverManager

	assert.Equal(t, 0, om.Len())
	assert.NotPanics(t, func() {
		om.NotifyEnter(EnterEvent{})
		om.NotifyError(nil)
	})

	om = NewObserverManager()
	om.AddObserver(nil)
	assert.Equal(t, 0, om.Len())
}
