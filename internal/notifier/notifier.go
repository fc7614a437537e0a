package notifier

// AlertSink delivers a short user-facing alert. Delivery is best-effort:
// implementations log their own failures and never return them.
type AlertSink interface {
	Notify(title, message string)
}

// NopNotifier drops every alert.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(title, message string) {}
