// Package metrics registers the Prometheus instruments for the registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ProjectsRegistered prometheus.Counter
	MRVSubmitted       prometheus.Counter
	MRVProcessed       *prometheus.CounterVec
	CreditsMinted      prometheus.Counter
	CreditsTransferred prometheus.Counter
	CreditsRetired     prometheus.Counter
	LogEntries         prometheus.Gauge
	RequestDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewFor(prometheus.DefaultRegisterer)
}

// NewFor registers the metrics on the given registerer. Tests pass a fresh
// registry so parallel instances do not collide.
func NewFor(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ProjectsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "bluecarbon_projects_registered_total",
			Help: "Total number of projects registered",
		}),
		MRVSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "bluecarbon_mrv_submitted_total",
			Help: "Total number of MRV packages submitted",
		}),
		MRVProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bluecarbon_mrv_processed_total",
			Help: "Total number of MRV submissions processed, by outcome",
		}, []string{"outcome"}),
		CreditsMinted: factory.NewCounter(prometheus.CounterOpts{
			Name: "bluecarbon_credits_minted_total",
			Help: "Total number of mint operations",
		}),
		CreditsTransferred: factory.NewCounter(prometheus.CounterOpts{
			Name: "bluecarbon_credits_transferred_total",
			Help: "Total number of transfer operations",
		}),
		CreditsRetired: factory.NewCounter(prometheus.CounterOpts{
			Name: "bluecarbon_credits_retired_total",
			Help: "Total number of retirement operations",
		}),
		LogEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bluecarbon_log_entries",
			Help: "Current length of the append-only event log",
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bluecarbon_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}
