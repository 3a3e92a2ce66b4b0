// Package metrics provides Prometheus metrics for the catalog and the context-URL builder
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Catalog metrics
	ElementsRegistered  *prometheus.CounterVec
	RegistrationsFailed *prometheus.CounterVec
	UnresolvedElements  *prometheus.CounterVec

	// Context URL metrics
	ContextURLsBuilt *prometheus.CounterVec
	ShapeViolations  *prometheus.CounterVec
}

// New creates all metrics and registers them with reg.
// A nil reg leaves them unregistered, which is what tests usually want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ElementsRegistered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odatacore_catalog_elements_registered_total",
				Help: "Total number of schema elements registered, by element kind",
			},
			[]string{"kind"},
		),
		RegistrationsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odatacore_catalog_registrations_failed_total",
				Help: "Total number of rejected registrations, by error code",
			},
			[]string{"code"},
		),
		UnresolvedElements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odatacore_catalog_unresolved_elements_total",
				Help: "Total number of placeholder elements handed out for failed lookups, by element kind",
			},
			[]string{"kind"},
		),
		ContextURLsBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odatacore_context_urls_built_total",
				Help: "Total number of context URL descriptors built, by input shape",
			},
			[]string{"source"},
		),
		ShapeViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "odatacore_shape_violations_total",
				Help: "Total number of shape violations reported while building descriptors, by error code",
			},
			[]string{"code"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.ElementsRegistered,
			m.RegistrationsFailed,
			m.UnresolvedElements,
			m.ContextURLsBuilt,
			m.ShapeViolations,
		)
	}

	return m
}

// RecordRegistration increments the registered-elements counter.
func (m *Metrics) RecordRegistration(kind string) {
	if m == nil {
		return
	}
	m.ElementsRegistered.WithLabelValues(kind).Inc()
}

// RecordRegistrationFailure increments the failed-registrations counter.
func (m *Metrics) RecordRegistrationFailure(code string) {
	if m == nil {
		return
	}
	m.RegistrationsFailed.WithLabelValues(code).Inc()
}

// RecordUnresolved increments the placeholder counter.
func (m *Metrics) RecordUnresolved(kind string) {
	if m == nil {
		return
	}
	m.UnresolvedElements.WithLabelValues(kind).Inc()
}

// RecordContextURL increments the built-descriptors counter.
func (m *Metrics) RecordContextURL(source string) {
	if m == nil {
		return
	}
	m.ContextURLsBuilt.WithLabelValues(source).Inc()
}

// RecordShapeViolation increments the shape-violation counter.
func (m *Metrics) RecordShapeViolation(code string) {
	if m == nil {
		return
	}
	m.ShapeViolations.WithLabelValues(code).Inc()
}
