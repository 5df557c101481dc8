// Package metrics exposes prometheus instrumentation for the client.
// Everything here is optional; a nil *Metrics disables recording.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ValidationErrors *prometheus.CounterVec
}

// New registers the client metrics with reg. A nil registerer falls
// back to the default prometheus registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marzpay_client_requests_total",
				Help: "Total number of API requests issued by the client",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "marzpay_client_request_duration_seconds",
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "status_code"},
		),
		ValidationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "marzpay_client_validation_errors_total",
				Help: "Total number of requests rejected by client-side validation",
			},
			[]string{"field", "rule"},
		),
	}
}

// RecordRequest counts one completed (or failed) API call. A zero
// status means no response was received.
func (m *Metrics) RecordRequest(method, endpoint string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	code := strconv.Itoa(status)
	m.RequestsTotal.WithLabelValues(method, endpoint, code).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint, code).Observe(elapsed.Seconds())
}

// RecordValidationError counts one client-side validation rejection.
func (m *Metrics) RecordValidationError(field, rule string) {
	if m == nil {
		return
	}

	m.ValidationErrors.WithLabelValues(field, rule).Inc()
}
