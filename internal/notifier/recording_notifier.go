package notifier

import "sync"

// Alert is one notification captured by RecordingNotifier.
type Alert struct {
	Title   string
	Message string
}

// RecordingNotifier keeps every alert in memory. Safe for concurrent use.
type RecordingNotifier struct {
	mu     sync.Mutex
	alerts []Alert
}

// NewRecordingNotifier creates an empty RecordingNotifier
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

// Notify records the alert.
func (rn *RecordingNotifier) Notify(title, message string) {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	rn.alerts = append(rn.alerts, Alert{Title: title, Message: message})
}

// Alerts returns a copy of the recorded alerts in arrival order.
func (rn *RecordingNotifier) Alerts() []Alert {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	out := make([]Alert, len(rn.alerts))
	copy(out, rn.alerts)
	return out
}

// Messages returns only the message text of each recorded alert.
func (rn *RecordingNotifier) Messages() []string {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	out := make([]string, 0, len(rn.alerts))
	for _, a := range rn.alerts {
		out = append(out, a.Message)
	}
	return out
}

// Reset forgets all recorded alerts.
func (rn *RecordingNotifier) Reset() {
	rn.mu.Lock()
	defer rn.mu.Unlock()
	rn.alerts = nil
}
