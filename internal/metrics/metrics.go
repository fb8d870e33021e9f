// Package metrics provides the Prometheus collectors exported by smarthomed.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smarthome"

// Metrics holds a private registry and the collectors registered on it.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	ReadingsStored      *prometheus.CounterVec
	IngestMessagesTotal *prometheus.CounterVec
}

// New creates and registers every collector, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		ReadingsStored: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "readings",
				Name:      "stored_total",
				Help:      "Total number of sensor readings stored",
			},
			[]string{"source"}, // source: http, mqtt
		),
		IngestMessagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ingest",
				Name:      "messages_total",
				Help:      "Total number of MQTT sensor reports received",
			},
			[]string{"status"}, // status: success, error
		),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ReadingsStored,
		m.IngestMessagesTotal,
	)
	return m
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// ReadingStored counts one stored reading from source.
func (m *Metrics) ReadingStored(source string) {
	if m == nil {
		return
	}
	m.ReadingsStored.WithLabelValues(source).Inc()
}

// IngestResult counts one processed MQTT report.
func (m *Metrics) IngestResult(err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.IngestMessagesTotal.WithLabelValues(status).Inc()
}
