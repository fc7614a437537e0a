package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 5, 1, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), DaysAgo(now, 56))
	assert.Equal(t, StartOfDay(now), DaysAgo(now, 0))
}

func TestFormatCompact(t *testing.T) {
	ts := time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC)
	assert.Equal(t, "2024-05-01_093015", FormatCompact(ts))
	assert.Equal(t, "2024-05-01-0930", ts.Format(LayoutLogFileStamp))
}
