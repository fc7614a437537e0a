package logger

import (
	"io"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config    LoggerConfig
	factory   *WriterFactory
	converter *ConfigConverter
	configErr error
}

// NewLoggerBuilder creates a new logger builder
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config:    DefaultLoggerConfig(),
		factory:   NewWriterFactory(),
		converter: NewConfigConverter(),
	}
}

// WithConfig sets the logger configuration. An unparsable level falls back
// to debug and is reported once the logger exists.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	filePath := lb.config.FilePath
	loggerConfig, err := lb.converter.ConvertConfig(cfg)
	loggerConfig.FilePath = filePath
	lb.config = loggerConfig
	lb.configErr = err
	return lb
}

// WithFilePath sets the file the run logs to
func (lb *LoggerBuilder) WithFilePath(path string) *LoggerBuilder {
	lb.config.FilePath = path
	return lb
}

// WithConsoleOutput redirects console output, stderr by default
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.factory.consoleOutput = w
	return lb
}

// WithoutConsole disables the console writer
func (lb *LoggerBuilder) WithoutConsole() *LoggerBuilder {
	lb.config.EnableConsole = false
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if err := lb.validateConfig(); err != nil {
		return nil, err
	}

	writers, fileLogger := lb.createWriters()
	if len(writers) == 0 {
		return nil, common.NewError("no output writers configured")
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	zerologInstance := zerolog.New(multiWriter).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	if lb.configErr != nil {
		zerologInstance.Warn().Err(lb.configErr).Str("level", lb.config.Level.String()).Msg("Invalid log level configured, using fallback")
	}

	return &Logger{
		zerolog:    zerologInstance,
		config:     lb.config,
		fileLogger: fileLogger,
	}, nil
}

// validateConfig validates the logger configuration
func (lb *LoggerBuilder) validateConfig() error {
	if lb.config.EnableFile && lb.config.FilePath == "" {
		return common.NewValidationError("file_path", lb.config.FilePath, "file path required when file logging enabled")
	}

	if lb.config.MaxSizeMB <= 0 {
		return common.NewValidationError("max_size_mb", lb.config.MaxSizeMB, "max size must be positive")
	}

	return nil
}

// createWriters creates the appropriate writers based on configuration
func (lb *LoggerBuilder) createWriters() ([]io.Writer, *lumberjack.Logger) {
	var writers []io.Writer
	var fileLogger *lumberjack.Logger

	if lb.config.EnableConsole {
		writers = append(writers, lb.factory.CreateConsoleWriter(lb.config.Format))
	}

	if lb.config.EnableFile {
		var fileWriter io.Writer
		fileWriter, fileLogger = lb.factory.CreateFileWriter(lb.config)
		writers = append(writers, fileWriter)
	}

	return writers, fileLogger
}
