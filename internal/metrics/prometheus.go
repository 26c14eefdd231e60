// SPDX-License-Identifier: EPL-2.0

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline names used as label values.
const (
	PipelineCancel  = "cancel"
	PipelineLag     = "lag"
	PipelineAlign   = "align"
	PipelineInspect = "inspect"
)

// Metrics contains the Prometheus metrics of a single command run. They live
// in a private registry so that nothing leaks into the global one.
type Metrics struct {
	registry *prometheus.Registry

	Runs          *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	FramesWritten *prometheus.CounterVec
	LagFrames     prometheus.Gauge
	LagSeconds    prometheus.Gauge
}

// NewMetrics creates and registers all metrics
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audpost_runs_total",
			Help: "Total number of pipeline runs by outcome",
		}, []string{"pipeline", "outcome"}),
		RunDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "audpost_run_duration_seconds",
			Help:    "Wall time of a pipeline run",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}, []string{"pipeline"}),
		FramesWritten: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "audpost_frames_written_total",
			Help: "Total number of PCM frames written to output files",
		}, []string{"pipeline"}),
		LagFrames: factory.NewGauge(prometheus.GaugeOpts{
			Name: "audpost_lag_frames",
			Help: "Last measured offset between two recordings in frames",
		}),
		LagSeconds: factory.NewGauge(prometheus.GaugeOpts{
			Name: "audpost_lag_seconds",
			Help: "Last measured offset between two recordings in seconds",
		}),
	}
}

// ObserveRun records the outcome and duration of a pipeline run started at
// start.
func (m *Metrics) ObserveRun(pipeline string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}

	m.Runs.WithLabelValues(pipeline, outcome).Inc()
	m.RunDuration.WithLabelValues(pipeline).Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddFrames(pipeline string, frames int) {
	m.FramesWritten.WithLabelValues(pipeline).Add(float64(frames))
}

func (m *Metrics) SetLag(frames int, seconds float64) {
	m.LagFrames.Set(float64(frames))
	m.LagSeconds.Set(seconds)
}

// Registry exposes the private registry, e.g. for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector. The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}

	return nil
}
