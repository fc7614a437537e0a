package notifier

import (
	"fmt"

	"github.com/aleister1102/pagewatch/internal/config"
	"github.com/rs/zerolog"
)

// NotificationHelper formats monitor events into alerts and hands them to an AlertSink.
type NotificationHelper struct {
	sink   AlertSink
	title  string
	logger zerolog.Logger
}

// NewNotificationHelper creates a new NotificationHelper.
func NewNotificationHelper(sink AlertSink, cfg config.NotificationConfig, logger zerolog.Logger) *NotificationHelper {
	if sink == nil {
		sink = NopNotifier{}
	}
	title := cfg.Title
	if title == "" {
		title = config.DefaultNotificationTitle
	}
	return &NotificationHelper{
		sink:   sink,
		title:  title,
		logger: logger.With().Str("module", "NotificationHelper").Logger(),
	}
}

// NewAlertSink picks the sink the configuration asks for.
func NewAlertSink(cfg config.NotificationConfig, logger zerolog.Logger) AlertSink {
	if !cfg.DesktopEnabled {
		logger.Info().Msg("Desktop notifications disabled, alerts go to the log only")
		return NewLogNotifier(logger)
	}
	appName := cfg.AppName
	if appName == "" {
		appName = config.DefaultNotificationAppName
	}
	category := cfg.Category
	if category == "" {
		category = config.DefaultNotificationCategory
	}
	return NewDesktopNotifier(appName, category, logger)
}

// SendFetchFailed reports a transport failure while fetching a page.
func (nh *NotificationHelper) SendFetchFailed(name string) {
	nh.send(FormatFetchFailedMessage(name))
}

// SendConnectFailed reports that a check could not obtain content.
func (nh *NotificationHelper) SendConnectFailed(name string) {
	nh.send(FormatConnectFailedMessage(name))
}

// SendFirstObservation reports that a target had no stored fingerprint.
func (nh *NotificationHelper) SendFirstObservation(name string) {
	nh.send(FormatFirstObservationMessage(name))
}

// SendChangeDetected reports a changed fingerprint.
func (nh *NotificationHelper) SendChangeDetected(name string) {
	nh.send(FormatChangeDetectedMessage(name))
}

func (nh *NotificationHelper) send(message string) {
	nh.logger.Debug().Str("title", nh.title).Str("message", message).Msg("Dispatching alert")
	nh.sink.Notify(nh.title, message)
}

// FormatFetchFailedMessage builds the fetch failure alert text.
func FormatFetchFailedMessage(name string) string {
	return fmt.Sprintf("Unable to fetch content from %s: will try again later", name)
}

// FormatConnectFailedMessage builds the connect failure alert text.
func FormatConnectFailedMessage(name string) string {
	return fmt.Sprintf("Unable to connect to %s: will try again later", name)
}

// FormatFirstObservationMessage builds the first observation alert text.
func FormatFirstObservationMessage(name string) string {
	return fmt.Sprintf("No previous hash for %s: storing hash for next use", name)
}

// FormatChangeDetectedMessage builds the change alert text.
func FormatChangeDetectedMessage(name string) string {
	return fmt.Sprintf("Change detected on %s", name)
}
