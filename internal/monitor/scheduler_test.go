package monitor

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingChecker struct {
	mu      sync.Mutex
	checked []string
	onCheck func(target config.Target)
}

func (rc *recordingChecker) Check(_ context.Context, target config.Target) CheckResult {
	rc.mu.Lock()
	rc.checked = append(rc.checked, target.ShortName)
	rc.mu.Unlock()
	if rc.onCheck != nil {
		rc.onCheck(target)
	}
	return CheckResult{Target: target, Outcome: OutcomeUnchanged, CheckedAt: time.Now()}
}

func (rc *recordingChecker) Checked() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return append([]string(nil), rc.checked...)
}

type countingObserver struct {
	mu     sync.Mutex
	checks int
	cycles int
}

func (o *countingObserver) ObserveCheck(string, string, time.Duration, time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.checks++
}

func (o *countingObserver) ObserveCycle(time.Duration, time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.cycles++
}

var schedulerTargets = []config.Target{
	{Name: "One", ShortName: "one", URL: "http://one.invalid/"},
	{Name: "Two", ShortName: "two", URL: "http://two.invalid/"},
	{Name: "Three", ShortName: "three", URL: "http://three.invalid/"},
}

func TestScheduler_RunCycleChecksInOrder(t *testing.T) {
	rc := &recordingChecker{}
	obs := &countingObserver{}
	s := NewScheduler(config.NewDefaultMonitorConfig(), schedulerTargets, rc, obs, zerolog.Nop())

	summary := s.RunCycle(context.Background())

	assert.Equal(t, []string{"one", "two", "three"}, rc.Checked())
	assert.Len(t, summary.Results, 3)
	assert.NotEmpty(t, summary.CycleID)
	assert.Equal(t, 3, obs.checks)
	assert.Equal(t, 1, obs.cycles)
}

func TestScheduler_RunStopsAfterMaxCycles(t *testing.T) {
	cfg := config.NewDefaultMonitorConfig()
	cfg.MaxCycles = 3
	rc := &recordingChecker{}
	s := NewScheduler(cfg, schedulerTargets[:1], rc, nil, zerolog.Nop()).WithInterval(time.Millisecond)

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, []string{"one", "one", "one"}, rc.Checked())
}

func TestScheduler_CancelWhileSleeping(t *testing.T) {
	rc := &recordingChecker{}
	s := NewScheduler(config.NewDefaultMonitorConfig(), schedulerTargets[:1], rc, nil, zerolog.Nop()).WithInterval(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return len(rc.Checked()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
	assert.Len(t, rc.Checked(), 1)
}

func TestScheduler_CancelBetweenTargets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rc := &recordingChecker{}
	rc.onCheck = func(target config.Target) {
		if target.ShortName == "one" {
			cancel()
		}
	}
	s := NewScheduler(config.NewDefaultMonitorConfig(), schedulerTargets, rc, nil, zerolog.Nop())

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, []string{"one"}, rc.Checked())
}

func TestScheduler_NegativeMaxCyclesRunsUntilCancelled(t *testing.T) {
	cfg := config.NewDefaultMonitorConfig()
	cfg.MaxCycles = -1

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rc := &recordingChecker{}
	rc.onCheck = func(config.Target) {
		if len(rc.Checked()) >= 3 {
			cancel()
		}
	}
	s := NewScheduler(cfg, schedulerTargets[:1], rc, nil, zerolog.Nop()).WithInterval(time.Millisecond)

	require.NoError(t, s.Run(ctx))
	assert.Equal(t, []string{"one", "one", "one"}, rc.Checked())
}
