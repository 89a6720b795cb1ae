package metrics

import "github.com/prometheus/client_golang/prometheus"

// Discovery pipeline Prometheus metrics.
var (
	EventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "events_total",
			Help:      "Total lifecycle events consumed from the feed",
		},
		[]string{"kind", "status"}, // kind: created/updated/deleted, status: ok/error/rejected
	)

	EventDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "discovery",
			Name:      "event_duration_seconds",
			Help:      "End-to-end event processing duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"kind"},
	)

	MatchesNotifiedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "matches_notified_total",
			Help:      "Total match notifications dispatched",
		},
	)

	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "upstream_requests_total",
			Help:      "Total outbound requests to upstream collaborators",
		},
		[]string{"target", "status"}, // target: companies/applicants
	)

	SyncPassesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "discovery",
			Name:      "sync_passes_total",
			Help:      "Total applicant re-sync passes",
		},
		[]string{"status"},
	)
)

var discoveryMetricsRegistered bool

// RegisterDiscoveryMetrics registers the pipeline metrics. Must be called
// once from main.
func RegisterDiscoveryMetrics() {
	if discoveryMetricsRegistered {
		return
	}
	prometheus.MustRegister(EventsTotal)
	prometheus.MustRegister(EventDuration)
	prometheus.MustRegister(MatchesNotifiedTotal)
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(SyncPassesTotal)
	discoveryMetricsRegistered = true
}
