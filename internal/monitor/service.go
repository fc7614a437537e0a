package monitor

import (
	"context"

	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/aleister1102/pagewatch/internal/datastore"
	"github.com/aleister1102/pagewatch/internal/notifier"
	"github.com/rs/zerolog"
)

// MonitoringService wires the fetcher, checker and scheduler for a set of targets.
type MonitoringService struct {
	logger    zerolog.Logger
	targets   []config.Target
	checker   *Checker
	scheduler *Scheduler
}

// NewMonitoringService builds every monitoring component from the loaded
// configuration. Storage paths are resolved against baseDir.
func NewMonitoringService(
	gCfg *config.GlobalConfig,
	baseDir string,
	sink notifier.AlertSink,
	observer CycleObserver,
	baseLogger zerolog.Logger,
) (*MonitoringService, error) {
	if err := validateMonitoringConfig(gCfg); err != nil {
		return nil, err
	}
	instanceLogger := baseLogger.With().Str("component", "MonitoringService").Logger()

	httpClient, err := initializeHTTPClient(gCfg, baseLogger)
	if err != nil {
		return nil, err
	}
	paths, err := initializePathGenerator(gCfg, baseDir, baseLogger)
	if err != nil {
		return nil, err
	}

	notifications := notifier.NewNotificationHelper(sink, gCfg.NotificationConfig, baseLogger)
	checker := NewChecker(
		baseLogger,
		NewFetcher(httpClient, notifications, baseLogger),
		NewProcessor(baseLogger),
		datastore.NewFingerprintStore(baseLogger),
		datastore.NewSnapshotStore(baseLogger),
		paths,
		notifications,
		gCfg.MonitorConfig.TargetElementID(),
	)

	return &MonitoringService{
		logger:    instanceLogger,
		targets:   gCfg.Targets,
		checker:   checker,
		scheduler: NewScheduler(gCfg.MonitorConfig, gCfg.Targets, checker, observer, baseLogger),
	}, nil
}

// Run starts the check/sleep loop and blocks until ctx is cancelled or the
// configured cycle limit is reached.
func (s *MonitoringService) Run(ctx context.Context) error {
	if len(s.targets) == 0 {
		s.logger.Warn().Msg("No targets configured, cycles will be empty")
	}
	return s.scheduler.Run(ctx)
}

// RunOnce performs a single cycle.
func (s *MonitoringService) RunOnce(ctx context.Context) CycleSummary {
	return s.scheduler.RunCycle(ctx)
}
