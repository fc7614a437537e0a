package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aleister1102/pagewatch/internal/common"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	Targets            []Target           `json:"targets" yaml:"targets" validate:"unique=ShortName,dive"`
	MonitorConfig      MonitorConfig      `json:"monitor_config,omitempty" yaml:"monitor_config,omitempty"`
	LogConfig          LogConfig          `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	NotificationConfig NotificationConfig `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
	StorageConfig      StorageConfig      `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	MetricsConfig      MetricsConfig      `json:"metrics_config,omitempty" yaml:"metrics_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		Targets:            []Target{},
		MonitorConfig:      NewDefaultMonitorConfig(),
		LogConfig:          NewDefaultLogConfig(),
		NotificationConfig: NewDefaultNotificationConfig(),
		StorageConfig:      NewDefaultStorageConfig(),
		MetricsConfig:      NewDefaultMetricsConfig(),
	}
}

// LoadGlobalConfig reads the configuration file at filePath. The document is
// either a bare list of targets or a full GlobalConfig object; missing
// sections keep their defaults. A missing or malformed file is an error.
func LoadGlobalConfig(filePath string) (*GlobalConfig, error) {
	if filePath == "" {
		return nil, common.NewValidationError("config_file", filePath, "no config file found")
	}
	if !fileExists(filePath) {
		return nil, common.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, common.WrapError(err, "failed to load config file content")
	}

	cfg := NewDefaultGlobalConfig()
	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, common.WrapError(err, "failed to parse config content")
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	if isYAMLFile(filePath) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks the extension, looking past a trailing ".local"
func isYAMLFile(filePath string) bool {
	ext := filepath.Ext(strings.TrimSuffix(filePath, LocalConfigSuffix))
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return common.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	if len(root.Content) == 0 {
		return common.NewError("empty YAML document in '%s'", filePath)
	}

	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		if err := doc.Decode(&cfg.Targets); err != nil {
			return common.NewError("failed to decode YAML target list from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := doc.Decode(cfg); err != nil {
		return common.NewError("failed to decode YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &cfg.Targets); err != nil {
			return common.NewError("failed to unmarshal JSON target list from '%s': %w", filePath, err)
		}
		return nil
	}
	if err := json.Unmarshal(trimmed, cfg); err != nil {
		return common.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
