// Package metrics defines the Prometheus collectors of the service.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/qanyare/restaurant-service/internal/events"
)

// Metrics groups the collectors registered on one registry
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	OrdersCreated       prometheus.Counter
	ReservationsCreated prometheus.Counter
}

// New registers the collectors on a fresh registry, together with the Go and
// process collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "qanyare_http_requests_total",
			Help: "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qanyare_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "qanyare_orders_created_total",
			Help: "Orders placed.",
		}),
		ReservationsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "qanyare_reservations_created_total",
			Help: "Reservations made.",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Publish counts domain events so the metrics can act as an event sink
func (m *Metrics) Publish(_ context.Context, event events.Event) error {
	switch event.Type {
	case events.OrderCreated:
		m.OrdersCreated.Inc()
	case events.ReservationCreated:
		m.ReservationsCreated.Inc()
	}
	return nil
}
