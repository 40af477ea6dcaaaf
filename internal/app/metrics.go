package app

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen11/go-todo-web/internal/domain"
)

// Metrics holds the Prometheus collectors for todo use cases. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	operations  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	titleLength prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "todoapp_todo_operations_total",
				Help: "Total number of todo operations by outcome",
			},
			[]string{"operation", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "todoapp_todo_operation_duration_seconds",
				Help:    "Duration of todo operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		titleLength: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "todoapp_todo_title_length_chars",
				Help:    "Length distribution of stored todo titles in characters",
				Buckets: []float64{5, 10, 20, 30, 40, 50},
			},
		),
	}
}

// observe is deferred by service methods; errp is read when the method returns.
func (m *Metrics) observe(operation string, start time.Time, errp *error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, resultLabel(*errp)).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeTitle(chars int) {
	if m == nil {
		return
	}
	m.titleLength.Observe(float64(chars))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}
