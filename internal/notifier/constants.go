package notifier

// Freedesktop notification service coordinates
const (
	DBusNotificationsDestination = "org.freedesktop.Notifications"
	DBusNotificationsPath        = "/org/freedesktop/Notifications"
	DBusNotifyMethod             = "org.freedesktop.Notifications.Notify"
)

// Notification hints
const (
	UrgencyCritical byte = 2

	// ExpireNever keeps the notification on screen until dismissed
	ExpireNever int32 = 0
)
