package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	outcomeInvalid  = "invalid"
	outcomeCanceled = "canceled"
)

// metrics live in their own registry so several servers can run in one
// process, as they do in tests.
type metrics struct {
	registry *prometheus.Registry
	searches *prometheus.CounterVec
	duration prometheus.Histogram
	results  prometheus.Histogram
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &metrics{
		registry: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "anadawg",
			Name:      "searches_total",
			Help:      "Searches served, by outcome.",
		}, []string{"outcome"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "anadawg",
			Name:      "search_duration_seconds",
			Help:      "Time spent walking the dictionary for one rack.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		results: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "anadawg",
			Name:      "search_results",
			Help:      "Words found per rack.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}
}
