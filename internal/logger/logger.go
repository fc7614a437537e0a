package logger

import (
	"path/filepath"
	"time"

	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger represents the main logger with configuration. It owns the run's
// log file and must be closed when the process is done with it.
type Logger struct {
	zerolog    zerolog.Logger
	config     LoggerConfig
	fileLogger *lumberjack.Logger
}

// GetZerolog returns the underlying zerolog instance
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// FilePath returns the path of the run's log file, empty when file logging is off
func (l *Logger) FilePath() string {
	if l.fileLogger == nil {
		return ""
	}
	return l.config.FilePath
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	if l.fileLogger == nil {
		return nil
	}
	return l.fileLogger.Close()
}

// LogFileName returns the per-run log file name, e.g. debug-2024-05-01-0930.log
func LogFileName(startedAt time.Time) string {
	return config.DefaultLogFilePrefix + startedAt.Format(config.DefaultLogTimestampLayout) + ".log"
}

// New creates the process logger writing to the console and to a new
// debug-<timestamp>.log file inside logDir.
func New(cfg config.LogConfig, logDir string, startedAt time.Time) (*Logger, error) {
	return NewLoggerBuilder().
		WithFilePath(filepath.Join(logDir, LogFileName(startedAt))).
		WithConfig(cfg).
		Build()
}
