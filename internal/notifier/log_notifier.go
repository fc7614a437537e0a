package notifier

import "github.com/rs/zerolog"

// LogNotifier writes alerts to the log instead of the desktop.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new LogNotifier
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With().Str("module", "LogNotifier").Logger()}
}

// Notify logs the alert at warn level.
func (ln *LogNotifier) Notify(title, message string) {
	ln.logger.Warn().Str("title", title).Msg(message)
}
