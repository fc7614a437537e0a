package config

import "github.com/aleister1102/pagewatch/internal/common"

const (
	// Monitor Defaults
	DefaultMonitorCheckIntervalSeconds = 300
	DefaultMonitorHTTPTimeoutSeconds   = 30
	DefaultMonitorElementID            = "content"
	DefaultMonitorMaxContentSizeMB     = 10
	DefaultMonitorUserAgent            = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// Log Defaults
	DefaultLogLevel           = "debug"
	DefaultLogFormat          = "console"
	DefaultLogFilePrefix      = "debug-"
	DefaultLogRetentionDays   = 56
	DefaultMaxLogSizeMB       = 100
	DefaultLogTimestampLayout = common.LayoutLogFileStamp

	// Notification Defaults
	DefaultNotificationAppName  = "Notification"
	DefaultNotificationTitle    = "checkForChange Alert"
	DefaultNotificationCategory = "Intranet"

	// Storage Defaults
	DefaultFingerprintFilePrefix = "hash_"
	DefaultSnapshotFilePrefix    = "contents_"

	// Config file lookup
	ConfigPathEnvVar  = "PAGEWATCH_CONFIG_PATH"
	BaseDirEnvVar     = "PAGEWATCH_BASE_DIR"
	LocalConfigSuffix = ".local"
)
