// SPDX-License-Identifier: MIT

package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Task outcome labels.
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusCanceled = "canceled"
)

// Metrics instruments a batch run.
type Metrics struct {
	// TasksTotal counts finished tasks by status.
	TasksTotal *prometheus.CounterVec
	// TaskSeconds observes the wall time of each executed task.
	TaskSeconds prometheus.Histogram
}

// NewMetrics creates the batch metrics and registers them with reg.
// A nil reg leaves them unregistered. Registering twice on one registry panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		TasksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dpkit",
			Subsystem: "batch",
			Name:      "tasks_total",
			Help:      "Finished batch tasks by status.",
		}, []string{"status"}),
		TaskSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dpkit",
			Subsystem: "batch",
			Name:      "task_seconds",
			Help:      "Wall time of one batch task.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}),
	}
}

func (m *Metrics) observe(status string, seconds float64) {
	if m == nil {
		return
	}
	m.TasksTotal.WithLabelValues(status).Inc()
	if status != StatusCanceled {
		m.TaskSeconds.Observe(seconds)
	}
}
