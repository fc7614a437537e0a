package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveCheck(t *testing.T) {
	r, err := NewRecorder("", zerolog.Nop())
	require.NoError(t, err)

	now := time.Unix(1700000000, 0)
	r.ObserveCheck("ex", "first_seen", 200*time.Millisecond, now)
	r.ObserveCheck("ex", "unchanged", 100*time.Millisecond, now.Add(time.Minute))
	r.ObserveCheck("ex", "unchanged", 0, now.Add(2*time.Minute))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.checksTotal.WithLabelValues("ex", "first_seen")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.checksTotal.WithLabelValues("ex", "unchanged")))
	assert.Equal(t, float64(now.Unix()), testutil.ToFloat64(r.lastChangeTime.WithLabelValues("ex")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.checkDuration, "pagewatch_check_duration_seconds"))
}

func TestRecorder_ObserveCycleWritesTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagewatch.prom")
	r, err := NewRecorder(path, zerolog.Nop())
	require.NoError(t, err)

	r.ObserveCheck("ex", "changed", time.Second, time.Now())
	r.ObserveCycle(3*time.Second, time.Unix(1700000000, 0))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.cyclesTotal))
	assert.Equal(t, 1700000000.0, testutil.ToFloat64(r.lastCycleEnd))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `pagewatch_checks_total{outcome="changed",target="ex"} 1`), text)
	assert.True(t, strings.Contains(text, "pagewatch_cycles_total 1"), text)
}

func TestRecorder_WriteTextfileDisabled(t *testing.T) {
	r, err := NewRecorder("", zerolog.Nop())
	require.NoError(t, err)
	assert.NoError(t, r.WriteTextfile())
}

func TestRecorder_WriteTextfileBadPath(t *testing.T) {
	r, err := NewRecorder(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"), zerolog.Nop())
	require.NoError(t, err)
	assert.Error(t, r.WriteTextfile())
	assert.NotPanics(t, func() { r.ObserveCycle(time.Second, time.Now()) })
}
