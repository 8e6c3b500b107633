// Package telemetry exposes Prometheus collectors for the recommendation
// engine and its adapters.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecommendationRequests counts recommendation calls by result status.
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastemaker_recommendation_requests_total",
			Help: "Total recommendation requests by result status",
		},
		[]string{"status"},
	)

	// ExternalResolutions counts external metadata lookups by outcome.
	ExternalResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastemaker_external_resolutions_total",
			Help: "Total external track resolutions by outcome",
		},
		[]string{"outcome"},
	)

	// CacheLookups counts track cache lookups by result.
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tastemaker_track_cache_lookups_total",
			Help: "Total track cache lookups by result",
		},
		[]string{"result"},
	)

	// RecommendationDuration tracks end-to-end recommendation latency.
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tastemaker_recommendation_duration_seconds",
			Help:    "Duration of recommendation calls in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)
)

// ObserveRecommendation records one finished recommendation call.
func ObserveRecommendation(status string, elapsed time.Duration) {
	RecommendationRequests.WithLabelValues(status).Inc()
	RecommendationDuration.Observe(elapsed.Seconds())
}

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
