package notifier

import (
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

// DesktopNotifier posts alerts to the freedesktop notification daemon over
// the session bus.
type DesktopNotifier struct {
	logger   zerolog.Logger
	appName  string
	category string
	urgency  byte
	expire   int32

	// connect is replaced in tests
	connect func() (busObject, error)

	mu   sync.Mutex
	conn *dbus.Conn
}

// busObject is the subset of dbus.BusObject the notifier calls.
type busObject interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
}

// NewDesktopNotifier creates a new DesktopNotifier. The bus connection is
// opened lazily on the first alert and reused afterwards.
func NewDesktopNotifier(appName, category string, logger zerolog.Logger) *DesktopNotifier {
	dn := &DesktopNotifier{
		logger:   logger.With().Str("module", "DesktopNotifier").Logger(),
		appName:  appName,
		category: category,
		urgency:  UrgencyCritical,
		expire:   ExpireNever,
	}
	dn.connect = dn.sessionObject
	return dn
}

// Notify sends one notification. Any failure is logged at debug level and dropped.
func (dn *DesktopNotifier) Notify(title, message string) {
	obj, err := dn.connect()
	if err != nil {
		dn.logger.Debug().Err(err).Str("title", title).Str("message", message).Msg("Desktop notification unavailable")
		return
	}

	hints := map[string]dbus.Variant{
		"urgency":  dbus.MakeVariant(dn.urgency),
		"category": dbus.MakeVariant(dn.category),
	}

	call := obj.Call(DBusNotifyMethod, 0,
		dn.appName,
		uint32(0), // replaces_id
		"",        // app_icon
		title,
		message,
		[]string{}, // actions
		hints,
		dn.expire,
	)
	if call.Err != nil {
		dn.logger.Debug().Err(call.Err).Str("title", title).Str("message", message).Msg("Failed to send desktop notification")
		dn.reset()
		return
	}

	dn.logger.Info().Str("title", title).Str("message", message).Msg("Desktop notification sent")
}

// Close releases the session bus connection if one was opened.
func (dn *DesktopNotifier) Close() error {
	dn.mu.Lock()
	defer dn.mu.Unlock()
	if dn.conn == nil {
		return nil
	}
	err := dn.conn.Close()
	dn.conn = nil
	return err
}

func (dn *DesktopNotifier) sessionObject() (busObject, error) {
	dn.mu.Lock()
	defer dn.mu.Unlock()

	if dn.conn == nil {
		conn, err := dbus.ConnectSessionBus()
		if err != nil {
			return nil, err
		}
		dn.conn = conn
	}
	return dn.conn.Object(DBusNotificationsDestination, dbus.ObjectPath(DBusNotificationsPath)), nil
}

// reset drops a connection that failed a call so the next alert reconnects.
func (dn *DesktopNotifier) reset() {
	dn.mu.Lock()
	defer dn.mu.Unlock()
	if dn.conn != nil {
		_ = dn.conn.Close()
		dn.conn = nil
	}
}
