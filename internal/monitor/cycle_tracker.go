package monitor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CycleSummary is the record of one monitoring cycle.
type CycleSummary struct {
	CycleID   string
	StartedAt time.Time
	Duration  time.Duration
	Results   []CheckResult
}

// Count returns how many results have the given outcome.
func (cs CycleSummary) Count(outcome Outcome) int {
	n := 0
	for _, r := range cs.Results {
		if r.Outcome == outcome {
			n++
		}
	}
	return n
}

// ChangedTargets returns the names of targets that were first seen or changed.
func (cs CycleSummary) ChangedTargets() []string {
	var names []string
	for _, r := range cs.Results {
		if r.Outcome == OutcomeChanged || r.Outcome == OutcomeFirstSeen {
			names = append(names, r.Target.Name)
		}
	}
	return names
}

// CycleTracker tracks results within a monitoring cycle
type CycleTracker struct {
	mutex          sync.RWMutex
	currentCycleID string
	startedAt      time.Time
	results        []CheckResult
	maxCycles      int
	currentCycle   int
}

// NewCycleTracker creates a new CycleTracker. maxCycles <= 0 means no limit.
func NewCycleTracker(maxCycles int) *CycleTracker {
	return &CycleTracker{
		maxCycles: maxCycles,
	}
}

// StartCycle begins a new cycle, increments the counter and returns the new cycle ID.
func (ct *CycleTracker) StartCycle(startedAt time.Time) string {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	ct.currentCycle++
	ct.currentCycleID = uuid.NewString()
	ct.startedAt = startedAt
	ct.results = nil
	return ct.currentCycleID
}

// Record appends a check result to the current cycle.
func (ct *CycleTracker) Record(result CheckResult) {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()
	ct.results = append(ct.results, result)
}

// EndCycle closes the current cycle and returns its summary.
func (ct *CycleTracker) EndCycle(finishedAt time.Time) CycleSummary {
	ct.mutex.Lock()
	defer ct.mutex.Unlock()

	summary := CycleSummary{
		CycleID:   ct.currentCycleID,
		StartedAt: ct.startedAt,
		Duration:  finishedAt.Sub(ct.startedAt),
		Results:   ct.results,
	}
	ct.results = nil
	return summary
}

// ShouldContinue returns false if the maximum number of cycles has been reached.
func (ct *CycleTracker) ShouldContinue() bool {
	ct.mutex.RLock()
	defer ct.mutex.RUnlock()
	if ct.maxCycles <= 0 {
		return true // Run indefinitely
	}
	return ct.currentCycle < ct.maxCycles
}

// CompletedCycles returns how many cycles have been started.
func (ct *CycleTracker) CompletedCycles() int {
	ct.mutex.RLock()
	defer ct.mutex.RUnlock()
	return ct.currentCycle
}
