package points

import "fmt"

// EnterEvent describes one vehicle arrival routed by a junction
type EnterEvent struct {
	JunctionID   string
	JunctionName string
	Type         JunctionType
	Entry        Direction
	Exit         Direction
	FromState    int
	ToState      int
}

// Blocked reports whether the arrival had no valid exit
func (e EnterEvent) Blocked() bool {
	return e.Exit == None
}

// Observer represents an entity that observes junction arrivals
type Observer interface {
	// OnEnter is called after every routed arrival, blocked ones included
	OnEnter(event EnterEvent)
}

// ExtendedObserver provides additional optional observation methods
type ExtendedObserver interface {
	Observer

	// OnBlocked is called when an arrival resolves to None
	OnBlocked(event EnterEvent)

	// OnError is called when Enter fails
	OnError(err error)
}

// BaseObserver provides a default implementation with no-op methods
type BaseObserver struct{}

// OnEnter implements the required Observer method
func (o *BaseObserver) OnEnter(event EnterEvent) {}

// OnBlocked implements the optional ExtendedObserver method
func (o *BaseObserver) OnBlocked(event EnterEvent) {}

// OnError implements the optional ExtendedObserver method
func (o *BaseObserver) OnError(err error) {}

// ObserverManager manages a collection of observers.
// A panicking observer is reported to OnError and never reaches the caller of Enter.
type ObserverManager struct {
	observers []Observer
}

// NewObserverManager creates a new observer manager
func NewObserverManager() *ObserverManager {
	return &ObserverManager{
		observers: make([]Observer, 0),
	}
}

// AddObserver adds an observer to the manager
func (om *ObserverManager) AddObserver(observer Observer) {
	if observer == nil {
		return
	}
	om.observers = append(om.observers, observer)
}

// RemoveObserver removes an observer from the manager
func (om *ObserverManager) RemoveObserver(observer Observer) {
	for i, obs := range om.observers {
		if obs == observer {
			om.observers = append(om.observers[:i], om.observers[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered observers
func (om *ObserverManager) Len() int {
	if om == nil {
		return 0
	}
	return len(om.observers)
}

// NotifyEnter notifies all observers of a routed arrival, and extended
// observers of a blocked one.
func (om *ObserverManager) NotifyEnter(event EnterEvent) {
	if om == nil {
		return
	}
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		guard(observer, "OnEnter", func() { observer.OnEnter(event) })
		if !event.Blocked() {
			continue
		}
		if extObs, ok := observer.(ExtendedObserver); ok {
			guard(observer, "OnBlocked", func() { extObs.OnBlocked(event) })
		}
	}
}

// NotifyError notifies all observers of errors
func (om *ObserverManager) NotifyError(err error) {
	if om == nil {
		return
	}
	observers := make([]Observer, len(om.observers))
	copy(observers, om.observers)

	for _, observer := range observers {
		if extObs, ok := observer.(ExtendedObserver); ok {
			func() {
				defer func() { recover() }()
				extObs.OnError(err)
			}()
		}
	}
}

func guard(observer Observer, method string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if extObs, ok := observer.(ExtendedObserver); ok {
				func() {
					defer func() { recover() }()
					extObs.OnError(fmt.Errorf("observer panic in %s: %v", method, r))
				}()
			}
		}
	}()
	fn()
}
