// Package metrics exports check and cycle counters through a private
// Prometheus registry, optionally written to a node-exporter textfile.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Recorder owns the monitor collectors and the registry they live in.
type Recorder struct {
	registry *prometheus.Registry

	checksTotal    *prometheus.CounterVec
	checkDuration  *prometheus.HistogramVec
	cyclesTotal    prometheus.Counter
	cycleDuration  prometheus.Histogram
	lastCycleEnd   prometheus.Gauge
	lastChangeTime *prometheus.GaugeVec

	textfilePath string
	logger       zerolog.Logger
}

// NewRecorder registers the collectors against a fresh registry. An empty
// textfilePath disables WriteTextfile.
func NewRecorder(textfilePath string, logger zerolog.Logger) (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		checksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pagewatch_checks_total",
			Help: "Target checks partitioned by target and outcome.",
		}, []string{"target", "outcome"}),
		checkDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pagewatch_check_duration_seconds",
			Help:    "Wall time of one target check.",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}, []string{"target"}),
		cyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pagewatch_cycles_total",
			Help: "Completed monitoring cycles.",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pagewatch_cycle_duration_seconds",
			Help:    "Wall time of one monitoring cycle.",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		}),
		lastCycleEnd: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pagewatch_last_cycle_timestamp_seconds",
			Help: "Unix time the last cycle finished.",
		}),
		lastChangeTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "pagewatch_last_change_timestamp_seconds",
			Help: "Unix time a change or first observation was last recorded per target.",
		}, []string{"target"}),
		textfilePath: textfilePath,
		logger:       logger.With().Str("component", "MetricsRecorder").Logger(),
	}

	for _, collector := range []prometheus.Collector{
		r.checksTotal,
		r.checkDuration,
		r.cyclesTotal,
		r.cycleDuration,
		r.lastCycleEnd,
		r.lastChangeTime,
	} {
		if err := r.registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register monitor collector: %w", err)
		}
	}
	return r, nil
}

// ObserveCheck records one target check.
func (r *Recorder) ObserveCheck(target, outcome string, dur time.Duration, at time.Time) {
	r.checksTotal.WithLabelValues(target, outcome).Inc()
	if dur > 0 {
		r.checkDuration.WithLabelValues(target).Observe(dur.Seconds())
	}
	if outcome == "changed" || outcome == "first_seen" {
		r.lastChangeTime.WithLabelValues(target).Set(float64(at.Unix()))
	}
}

// ObserveCycle records a finished cycle and, when configured, rewrites the
// textfile. Textfile errors are logged at warn level.
func (r *Recorder) ObserveCycle(dur time.Duration, finishedAt time.Time) {
	r.cyclesTotal.Inc()
	r.cycleDuration.Observe(dur.Seconds())
	r.lastCycleEnd.Set(float64(finishedAt.Unix()))

	if err := r.WriteTextfile(); err != nil {
		r.logger.Warn().Err(err).Str("path", r.textfilePath).Msg("Failed to write metrics textfile")
	}
}

// WriteTextfile writes the registry in Prometheus text format. It is a no-op
// when no path is configured.
func (r *Recorder) WriteTextfile() error {
	if r.textfilePath == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(r.textfilePath, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	r.logger.Debug().Str("path", r.textfilePath).Msg("Metrics textfile written")
	return nil
}
