package monitor

import (
	"testing"
	"time"

	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCycleTracker_Basic(t *testing.T) {
	ct := NewCycleTracker(0)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	id := ct.StartCycle(start)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	ct.Record(CheckResult{Target: config.Target{Name: "A"}, Outcome: OutcomeChanged})
	ct.Record(CheckResult{Target: config.Target{Name: "B"}, Outcome: OutcomeUnchanged})
	ct.Record(CheckResult{Target: config.Target{Name: "C"}, Outcome: OutcomeFirstSeen})

	summary := ct.EndCycle(start.Add(2 * time.Second))
	assert.Equal(t, id, summary.CycleID)
	assert.Equal(t, 2*time.Second, summary.Duration)
	assert.Len(t, summary.Results, 3)
	assert.Equal(t, 1, summary.Count(OutcomeUnchanged))
	assert.Equal(t, []string{"A", "C"}, summary.ChangedTargets())

	next := ct.StartCycle(start.Add(time.Minute))
	assert.NotEqual(t, id, next)
	assert.Empty(t, ct.EndCycle(start.Add(time.Minute)).Results)
}

func TestCycleTracker_ShouldContinue(t *testing.T) {
	unlimited := NewCycleTracker(0)
	for i := 0; i < 5; i++ {
		unlimited.StartCycle(time.Now())
	}
	assert.True(t, unlimited.ShouldContinue())

	negative := NewCycleTracker(-1)
	for i := 0; i < 3; i++ {
		negative.StartCycle(time.Now())
	}
	assert.True(t, negative.ShouldContinue())

	bounded := NewCycleTracker(2)
	assert.True(t, bounded.ShouldContinue())
	bounded.StartCycle(time.Now())
	assert.True(t, bounded.ShouldContinue())
	bounded.StartCycle(time.Now())
	assert.False(t, bounded.ShouldContinue())
	assert.Equal(t, 2, bounded.CompletedCycles())
}
