// Package metrics holds the prometheus collectors for the service and the
// context helpers the middleware uses to update them.
package metrics

import (
	"context"
	"net/http"
	"runtime"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Validation outcomes recorded by AddValidation.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Metrics owns a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	requests    prometheus.Counter
	errors      prometheus.Counter
	panics      prometheus.Counter
	goroutines  prometheus.Gauge
	validations *prometheus.CounterVec

	requestCount atomic.Int64
}

// New registers the service collectors under namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}),
		errors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Total number of requests that returned an error.",
		}),
		panics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "panics_total",
			Help:      "Total number of recovered panics.",
		}),
		goroutines: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "goroutines",
			Help:      "Goroutine count, sampled every thousand requests.",
		}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Payload validations by model, shape and outcome.",
		}, []string{"model", "shape", "outcome"}),
	}

	m.registry.MustRegister(
		m.requests,
		m.errors,
		m.panics,
		m.goroutines,
		m.validations,
		collectors.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// =============================================================================
// Context helpers
// =============================================================================

type ctxKey int

const key ctxKey = 1

// Set stores m on ctx for the helpers below.
func Set(ctx context.Context, m *Metrics) context.Context {
	return context.WithValue(ctx, key, m)
}

func from(ctx context.Context) *Metrics {
	m, _ := ctx.Value(key).(*Metrics)
	return m
}

// AddRequests increments the request count and returns the new total.
func AddRequests(ctx context.Context) int64 {
	m := from(ctx)
	if m == nil {
		return 0
	}
	m.requests.Inc()
	return m.requestCount.Add(1)
}

// AddGoroutines samples the current goroutine count.
func AddGoroutines(ctx context.Context) int64 {
	m := from(ctx)
	if m == nil {
		return 0
	}
	n := runtime.NumGoroutine()
	m.goroutines.Set(float64(n))
	return int64(n)
}

func AddErrors(ctx context.Context) {
	if m := from(ctx); m != nil {
		m.errors.Inc()
	}
}

func AddPanics(ctx context.Context) {
	if m := from(ctx); m != nil {
		m.panics.Inc()
	}
}

// AddValidation counts one validation of model/shape.
func AddValidation(ctx context.Context, model, shape, outcome string) {
	if m := from(ctx); m != nil {
		m.validations.WithLabelValues(model, shape, outcome).Inc()
	}
}
