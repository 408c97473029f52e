// Package metrics defines the Prometheus metrics exported by the serve command.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of pulls and registry searches. A nil *Metrics records
// nothing.
type Metrics struct {
	PullOutcome    *prometheus.CounterVec
	PullDuration   prometheus.Histogram
	PullRecords    prometheus.Histogram
	SearchDuration prometheus.Histogram
	CacheLookups   *prometheus.CounterVec
}

// New creates the metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PullOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frtally_pulls_total",
			Help: "Total pulls by outcome",
		}, []string{"outcome"}), // outcome: "ok", "truncated", "error"

		PullDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "frtally_pull_duration_seconds",
			Help:    "Duration of a pull including the registry search and storage",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		PullRecords: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "frtally_pull_records",
			Help:    "Number of registry records aggregated per pull",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000},
		}),

		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "frtally_registry_search_duration_seconds",
			Help:    "Duration of registry searches that missed the cache",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "frtally_search_cache_lookups_total",
			Help: "Search cache lookups by result",
		}, []string{"result"}), // result: "hit", "miss", "error"
	}
}

// ObservePull records one finished pull
func (m *Metrics) ObservePull(d time.Duration, records int, truncated bool, err error) {
	if m == nil {
		return
	}
	m.PullDuration.Observe(d.Seconds())
	switch {
	case err != nil:
		m.PullOutcome.WithLabelValues("error").Inc()
		return
	case truncated:
		m.PullOutcome.WithLabelValues("truncated").Inc()
	default:
		m.PullOutcome.WithLabelValues("ok").Inc()
	}
	m.PullRecords.Observe(float64(records))
}

// ObserveSearch records the duration of a registry search
func (m *Metrics) ObserveSearch(d time.Duration) {
	if m != nil {
		m.SearchDuration.Observe(d.Seconds())
	}
}

// IncrementCacheLookup records a cache lookup result: "hit", "miss" or "error"
func (m *Metrics) IncrementCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}
