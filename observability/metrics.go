package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the sync and
// query paths.
type Metrics struct {
	FacilitiesSynced *prometheus.CounterVec // labels: category
	SyncErrors       *prometheus.CounterVec // labels: category
	SyncDuration     *prometheus.HistogramVec

	NearbyRequests prometheus.Counter
	BedStatusMiss  prometheus.Counter
}

// NewMetrics creates and registers all metrics with the default Prometheus
// registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.FacilitiesSynced,
		m.SyncErrors,
		m.SyncDuration,
		m.NearbyRequests,
		m.BedStatusMiss,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FacilitiesSynced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sos_server",
			Name:      "facilities_synced_total",
			Help:      "Facilities upserted from the public-data feeds, by category.",
		}, []string{"category"}),
		SyncErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sos_server",
			Name:      "sync_errors_total",
			Help:      "Feed sync failures, by category.",
		}, []string{"category"}),
		SyncDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sos_server",
			Name:      "sync_duration_seconds",
			Help:      "Duration of a complete fetch-transform-upsert cycle, by category.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"category"}),
		NearbyRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos_server",
			Name:      "nearby_requests_total",
			Help:      "Nearby facility queries served.",
		}),
		BedStatusMiss: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sos_server",
			Name:      "bed_status_miss_total",
			Help:      "Hospitals served without a cached realtime bed status.",
		}),
	}
}
