package main

import (
	"context"
	"time"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/aleister1102/pagewatch/internal/logger"
	"github.com/aleister1102/pagewatch/internal/metrics"
	"github.com/aleister1102/pagewatch/internal/monitor"
	"github.com/aleister1102/pagewatch/internal/notifier"
	"github.com/rs/zerolog"
)

// closer is implemented by alert sinks holding a connection.
type closer interface {
	Close() error
}

// run builds every component from gCfg and blocks in the monitoring loop
// until ctx is cancelled or the configured cycle limit is reached.
func run(ctx context.Context, gCfg *config.GlobalConfig, configPath, baseDir string, startedAt time.Time) error {
	logDir := config.ResolvePath(baseDir, gCfg.LogConfig.LogDir)
	appLogger, err := logger.New(gCfg.LogConfig, logDir, startedAt)
	if err != nil {
		return common.WrapError(err, "could not initialize logger")
	}
	defer appLogger.Close()
	zLogger := *appLogger.GetZerolog()

	zLogger.Info().Msg("-=-=-=-=-=-=-=-=-")
	zLogger.Info().
		Str("started_at", common.FormatCompact(startedAt)).
		Str("base_dir", baseDir).
		Str("config_path", configPath).
		Str("log_file", appLogger.FilePath()).
		Msg("Script execution started")

	deleted := logger.PruneOldLogs(logDir, startedAt, gCfg.LogConfig.Retention(), zLogger)
	if len(deleted) > 0 {
		zLogger.Info().Int("count", len(deleted)).Msg("Old log files removed")
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Warn().Err(err).Msg("Configuration has problems, continuing with the values as loaded")
	}
	zLogger.Info().Int("targets", len(gCfg.Targets)).Msg("Configuration loaded")

	sink := notifier.NewAlertSink(gCfg.NotificationConfig, zLogger)
	if c, ok := sink.(closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				zLogger.Debug().Err(err).Msg("Failed to close alert sink")
			}
		}()
	}

	observer, err := buildObserver(gCfg, baseDir, zLogger)
	if err != nil {
		return err
	}

	service, err := monitor.NewMonitoringService(gCfg, baseDir, sink, observer, zLogger)
	if err != nil {
		return common.WrapError(err, "could not initialize monitoring service")
	}

	if err := service.Run(ctx); err != nil {
		return common.WrapError(err, "monitoring stopped")
	}
	zLogger.Info().Msg("pagewatch stopped")
	return nil
}

// buildObserver returns the metrics recorder. The textfile is only written
// when a path is configured.
func buildObserver(gCfg *config.GlobalConfig, baseDir string, zLogger zerolog.Logger) (monitor.CycleObserver, error) {
	textfilePath := ""
	if gCfg.MetricsConfig.TextfilePath != "" {
		textfilePath = config.ResolvePath(baseDir, gCfg.MetricsConfig.TextfilePath)
	}
	recorder, err := metrics.NewRecorder(textfilePath, zLogger)
	if err != nil {
		return nil, common.WrapError(err, "could not initialize metrics")
	}
	return recorder, nil
}
