package monitor

import (
	"time"

	"github.com/aleister1102/pagewatch/internal/common"
	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/aleister1102/pagewatch/internal/datastore"
	"github.com/aleister1102/pagewatch/internal/httpclient"
	"github.com/rs/zerolog"
)

// validateMonitoringConfig rejects a configuration the service cannot start with
func validateMonitoringConfig(gCfg *config.GlobalConfig) error {
	if gCfg == nil {
		return common.WrapError(common.ErrInvalidConfiguration, "global configuration is nil")
	}
	return nil
}

// initializeHTTPClient creates and configures the HTTP client used for page fetches
func initializeHTTPClient(gCfg *config.GlobalConfig, logger zerolog.Logger) (*httpclient.HTTPClient, error) {
	httpTimeout := determineHTTPTimeout(gCfg, logger)

	userAgent := gCfg.MonitorConfig.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultMonitorUserAgent
	}

	httpClient, err := httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(httpTimeout).
		WithInsecureSkipVerify(gCfg.MonitorConfig.InsecureSkipVerify).
		WithUserAgent(userAgent).
		WithFollowRedirects(true).
		WithMaxRedirects(10).
		WithHTTP2(gCfg.MonitorConfig.EnableHTTP2).
		WithMaxContentSize(gCfg.MonitorConfig.MaxContentBytes()).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to create HTTP client for monitoring")
	}
	return httpClient, nil
}

// determineHTTPTimeout determines the HTTP timeout from configuration
func determineHTTPTimeout(gCfg *config.GlobalConfig, logger zerolog.Logger) time.Duration {
	timeout := gCfg.MonitorConfig.HTTPTimeout()
	if gCfg.MonitorConfig.HTTPTimeoutSeconds <= 0 {
		logger.Warn().
			Int("configured_timeout", gCfg.MonitorConfig.HTTPTimeoutSeconds).
			Dur("default_timeout", timeout).
			Msg("Invalid timeout configured, using default")
	}
	return timeout
}

// initializePathGenerator resolves the storage directory against the base directory and creates it
func initializePathGenerator(gCfg *config.GlobalConfig, baseDir string, logger zerolog.Logger) (*datastore.FilePathGenerator, error) {
	dataDir := config.ResolvePath(baseDir, gCfg.StorageConfig.DataDir)
	paths := datastore.NewFilePathGenerator(dataDir, gCfg.StorageConfig, logger)
	if err := paths.EnsureBaseDir(); err != nil {
		return nil, err
	}
	return paths, nil
}
