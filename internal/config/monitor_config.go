package config

import (
	"time"
)

// MonitorConfig defines configuration for the polling loop and page fetches
type MonitorConfig struct {
	CheckIntervalSeconds int    `json:"check_interval_seconds,omitempty" yaml:"check_interval_seconds,omitempty" validate:"min=1"`
	HTTPTimeoutSeconds   int    `json:"http_timeout_seconds,omitempty" yaml:"http_timeout_seconds,omitempty" validate:"min=1"`
	ElementID            string `json:"element_id,omitempty" yaml:"element_id,omitempty" validate:"required"`
	MaxCycles            int    `json:"max_cycles,omitempty" yaml:"max_cycles,omitempty" validate:"min=0"`
	UserAgent            string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	InsecureSkipVerify   bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	EnableHTTP2          bool   `json:"enable_http2" yaml:"enable_http2"`
	MaxContentSizeMB     int    `json:"max_content_size_mb,omitempty" yaml:"max_content_size_mb,omitempty" validate:"min=0"`
}

// NewDefaultMonitorConfig creates default monitor configuration
func NewDefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		CheckIntervalSeconds: DefaultMonitorCheckIntervalSeconds,
		HTTPTimeoutSeconds:   DefaultMonitorHTTPTimeoutSeconds,
		ElementID:            DefaultMonitorElementID,
		MaxCycles:            0, // 0 means run indefinitely
		UserAgent:            DefaultMonitorUserAgent,
		InsecureSkipVerify:   false,
		EnableHTTP2:          true,
		MaxContentSizeMB:     DefaultMonitorMaxContentSizeMB,
	}
}

// CheckInterval returns the sleep between cycles, falling back to the default
// when the configured value is not positive.
func (mc MonitorConfig) CheckInterval() time.Duration {
	if mc.CheckIntervalSeconds <= 0 {
		return DefaultMonitorCheckIntervalSeconds * time.Second
	}
	return time.Duration(mc.CheckIntervalSeconds) * time.Second
}

// HTTPTimeout returns the per-request timeout, falling back to the default
// when the configured value is not positive.
func (mc MonitorConfig) HTTPTimeout() time.Duration {
	if mc.HTTPTimeoutSeconds <= 0 {
		return DefaultMonitorHTTPTimeoutSeconds * time.Second
	}
	return time.Duration(mc.HTTPTimeoutSeconds) * time.Second
}

// TargetElementID returns the id of the element extracted from every page
func (mc MonitorConfig) TargetElementID() string {
	if mc.ElementID == "" {
		return DefaultMonitorElementID
	}
	return mc.ElementID
}

// MaxContentBytes returns the largest response body accepted, falling back to
// the default when the configured value is not positive.
func (mc MonitorConfig) MaxContentBytes() int64 {
	mb := mc.MaxContentSizeMB
	if mb <= 0 {
		mb = DefaultMonitorMaxContentSizeMB
	}
	return int64(mb) * 1024 * 1024
}
