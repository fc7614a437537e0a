package config

// LogConfig defines configuration for logging
type LogConfig struct {
	LogDir        string `json:"log_dir,omitempty" yaml:"log_dir,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty" validate:"omitempty,min=1"`
	RetentionDays int    `json:"retention_days,omitempty" yaml:"retention_days,omitempty" validate:"min=1"`
	DisableFile   bool   `json:"disable_file" yaml:"disable_file"`
}

// NewDefaultLogConfig creates default log configuration
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
		RetentionDays: DefaultLogRetentionDays,
	}
}

// Retention returns the number of days run logs are kept, falling back to the
// default when the configured value is not positive.
func (lc LogConfig) Retention() int {
	if lc.RetentionDays <= 0 {
		return DefaultLogRetentionDays
	}
	return lc.RetentionDays
}
