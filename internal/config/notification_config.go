package config

// NotificationConfig defines configuration for user-facing alerts
type NotificationConfig struct {
	DesktopEnabled bool   `json:"desktop_enabled" yaml:"desktop_enabled"`
	AppName        string `json:"app_name,omitempty" yaml:"app_name,omitempty"`
	Title          string `json:"title,omitempty" yaml:"title,omitempty"`
	Category       string `json:"category,omitempty" yaml:"category,omitempty"`
}

// NewDefaultNotificationConfig creates default notification configuration
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		DesktopEnabled: true,
		AppName:        DefaultNotificationAppName,
		Title:          DefaultNotificationTitle,
		Category:       DefaultNotificationCategory,
	}
}
