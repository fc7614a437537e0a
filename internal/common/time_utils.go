package common

import "time"

// Time layouts used in file names and log banners
const (
	// LayoutCompactStamp is second resolution, e.g. 2024-05-01_093015
	LayoutCompactStamp = "2006-01-02_150405"
	// LayoutLogFileStamp is minute resolution, e.g. 2024-05-01-0930
	LayoutLogFileStamp = "2006-01-02-1504"
)

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysAgo returns the start of the day n calendar days before t.
func DaysAgo(t time.Time, n int) time.Time {
	return StartOfDay(t).AddDate(0, 0, -n)
}

// FormatCompact formats t with LayoutCompactStamp
func FormatCompact(t time.Time) string {
	return t.Format(LayoutCompactStamp)
}
