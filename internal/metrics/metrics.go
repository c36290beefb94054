// Cinematch - Film Catalog Queries and Similar-Title Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Catalog Metrics
	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog column loads in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	CatalogLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_load_errors_total",
			Help: "Total number of failed catalog loads",
		},
		[]string{"error_type"},
	)

	CatalogRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_rows",
			Help: "Number of films in the most recently read catalog",
		},
	)

	// Recommendation Engine Metrics
	RecommendBuildStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_build_stage_duration_seconds",
			Help:    "Duration of each recommendation model build stage",
			Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		},
		[]string{"stage"},
	)

	RecommendModelFilms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_model_films",
			Help: "Number of films in the built recommendation model",
		},
	)

	RecommendModelVocabulary = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_model_vocabulary",
			Help: "Number of terms in the recommendation model vocabulary",
		},
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_request_duration_seconds",
			Help:    "Recommendation ranking latency in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// Query Service Metrics
	QueryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_requests_total",
			Help: "Total number of descriptive catalog queries by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCatalogLoad records a successful load served from the file or the
// snapshot cache.
func RecordCatalogLoad(source string, rows int, duration time.Duration) {
	CatalogLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if source == "file" {
		CatalogRows.Set(float64(rows))
	}
}

// RecordCatalogError records a failed load.
func RecordCatalogError(errorType string) {
	CatalogLoadErrors.WithLabelValues(errorType).Inc()
}

// RecordBuildStage records how long one model build stage took.
func RecordBuildStage(stage string, duration time.Duration) {
	RecommendBuildStageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// SetModelSize publishes the dimensions of the built model.
func SetModelSize(films, vocabulary int) {
	RecommendModelFilms.Set(float64(films))
	RecommendModelVocabulary.Set(float64(vocabulary))
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendRequests.WithLabelValues(outcome).Inc()
	RecommendRequestDuration.Observe(duration.Seconds())
}

// RecordQuery records one descriptive query.
func RecordQuery(operation, outcome string) {
	QueryRequests.WithLabelValues(operation, outcome).Inc()
}
