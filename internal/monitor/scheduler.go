package monitor

import (
	"context"
	"time"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/rs/zerolog"
)

// CycleObserver receives per-check and per-cycle measurements.
type CycleObserver interface {
	ObserveCheck(target, outcome string, dur time.Duration, at time.Time)
	ObserveCycle(dur time.Duration, finishedAt time.Time)
}

type nopObserver struct{}

func (nopObserver) ObserveCheck(string, string, time.Duration, time.Time) {}
func (nopObserver) ObserveCycle(time.Duration, time.Time)                 {}

// TargetChecker checks a single target.
type TargetChecker interface {
	Check(ctx context.Context, target config.Target) CheckResult
}

// Scheduler alternates between checking every target once and sleeping.
type Scheduler struct {
	logger   zerolog.Logger
	targets  []config.Target
	checker  TargetChecker
	tracker  *CycleTracker
	observer CycleObserver
	interval time.Duration
	now      func() time.Time
}

// NewScheduler creates a new monitor scheduler.
func NewScheduler(cfg config.MonitorConfig, targets []config.Target, checker TargetChecker, observer CycleObserver, logger zerolog.Logger) *Scheduler {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Scheduler{
		logger:   logger.With().Str("component", "MonitorScheduler").Logger(),
		targets:  targets,
		checker:  checker,
		tracker:  NewCycleTracker(cfg.MaxCycles),
		observer: observer,
		interval: cfg.CheckInterval(),
		now:      time.Now,
	}
}

// WithInterval overrides the sleep between cycles.
func (s *Scheduler) WithInterval(d time.Duration) *Scheduler {
	s.interval = d
	return s
}

// Run executes cycles until ctx is cancelled or the cycle limit is reached.
// Cancellation takes effect while sleeping or between targets; a check
// already in progress is allowed to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info().Int("targets", len(s.targets)).Dur("interval", s.interval).Msg("Starting MonitorScheduler")

	for {
		s.RunCycle(ctx)

		if ctx.Err() != nil {
			s.logger.Info().Msg("MonitorScheduler context cancelled, main loop stopping")
			return nil
		}
		if !s.tracker.ShouldContinue() {
			s.logger.Info().Int("cycles", s.tracker.CompletedCycles()).Msg("Maximum cycles reached, stopping")
			return nil
		}

		s.logger.Debug().Dur("interval", s.interval).Msg("Sleeping until next cycle")
		timer := time.NewTimer(s.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info().Msg("MonitorScheduler context cancelled while sleeping")
			return nil
		case <-timer.C:
		}
	}
}

// RunCycle checks every target once, sequentially and in configuration order.
func (s *Scheduler) RunCycle(ctx context.Context) CycleSummary {
	start := s.now()
	cycleID := s.tracker.StartCycle(start)
	logger := s.logger.With().Str("cycle_id", cycleID).Logger()
	logger.Info().Str("started_at", common.FormatCompact(start)).Msg("Starting web page monitoring")

	// An in-flight check is not interrupted by shutdown.
	checkCtx := context.WithoutCancel(ctx)

	for _, target := range s.targets {
		if ctx.Err() != nil {
			logger.Info().Str("target", target.Name).Msg("Context cancelled, skipping remaining targets")
			break
		}
		logger.Info().Str("target", target.Name).Str("url", target.URL).Msg("####")

		result := s.checker.Check(checkCtx, target)
		s.tracker.Record(result)
		s.observer.ObserveCheck(target.ShortName, string(result.Outcome), result.Duration, result.CheckedAt)
	}

	finished := s.now()
	summary := s.tracker.EndCycle(finished)
	s.observer.ObserveCycle(summary.Duration, finished)

	logger.Info().
		Int("checked", len(summary.Results)).
		Int("changed", summary.Count(OutcomeChanged)).
		Int("first_seen", summary.Count(OutcomeFirstSeen)).
		Strs("changed_targets", summary.ChangedTargets()).
		Int("failed", summary.Count(OutcomeFetchFailed)+summary.Count(OutcomeStoreFailed)).
		Dur("duration", summary.Duration).
		Msg("Completed one cycle of web page checks")
	return summary
}
