package observers

import (
	"fmt"
	"sort"
	"sync"

	"github.com/anggasct/points"
)

// ValidationObserver records arrivals a simulation should treat as anomalies:
// blocked exits and rejected entries. It also tracks which junctions saw traffic.
type ValidationObserver struct {
	expectedJunctions map[string]bool
	visitedJunctions  map[string]bool
	violations        []string
	mutex             sync.RWMutex
}

// NewValidationObserver creates a new validation observer
func NewValidationObserver() *ValidationObserver {
	return &ValidationObserver{
		expectedJunctions: make(map[string]bool),
		visitedJunctions:  make(map[string]bool),
		violations:        make([]string, 0),
	}
}

// AddExpectedJunction adds a junction, by name or ID, that should see traffic
func (o *ValidationObserver) AddExpectedJunction(junction string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.expectedJunctions[junction] = true
}

// OnEnter marks the junction as visited
func (o *ValidationObserver) OnEnter(event points.EnterEvent) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.visitedJunctions[junctionLabel(event.JunctionID, event.JunctionName)] = true
}

// OnBlocked records a blocked arrival
func (o *ValidationObserver) OnBlocked(event points.EnterEvent) {
	o.addViolation(fmt.Sprintf("%s junction %s blocked %s arrival in state %d",
		event.Type, junctionLabel(event.JunctionID, event.JunctionName), event.Entry, event.FromState))
}

// OnError records a rejected arrival
func (o *ValidationObserver) OnError(err error) {
	o.addViolation(fmt.Sprintf("error occurred: %v", err))
}

func (o *ValidationObserver) addViolation(message string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.violations = append(o.violations, message)
}

// GetViolations returns all violations in the order they occurred
func (o *ValidationObserver) GetViolations() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	result := make([]string, len(o.violations))
	copy(result, o.violations)
	return result
}

// GetUnvisitedJunctions returns expected junctions that saw no traffic, sorted
func (o *ValidationObserver) GetUnvisitedJunctions() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()

	var unvisited []string
	for junction := range o.expectedJunctions {
		if !o.visitedJunctions[junction] {
			unvisited = append(unvisited, junction)
		}
	}
	sort.Strings(unvisited)
	return unvisited
}

// HasViolations returns whether any violations occurred
func (o *ValidationObserver) HasViolations() bool {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return len(o.violations) > 0
}

// Reset clears visits and violations; expected junctions are kept
func (o *ValidationObserver) Reset() {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	o.visitedJunctions = make(map[string]bool)
	o.violations = make([]string, 0)
}
