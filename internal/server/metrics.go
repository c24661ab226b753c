package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexisbeaulieu97/woosign/pkg/variants"
)

// Metrics holds the gallery's collectors on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	resolutions *prometheus.CounterVec
	requests    *prometheus.CounterVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "woosign_axis_resolutions_total",
				Help: "Axis lookups performed while resolving component styles, by outcome.",
			},
			[]string{"component", "outcome"},
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "woosign_http_requests_total",
				Help: "Gallery HTTP requests by route pattern and status code.",
			},
			[]string{"route", "code"},
		),
	}
	m.registry.MustRegister(m.resolutions, m.requests)
	return m
}

// ObserveResolution counts every axis lookup of a resolution.
func (m *Metrics) ObserveResolution(component string, lookups []variants.AxisResolution) {
	for _, l := range lookups {
		m.resolutions.WithLabelValues(component, l.Outcome.String()).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
