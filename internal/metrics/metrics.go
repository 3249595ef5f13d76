// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Analytical store query latency and failures
// - Dashboard section degradation and circuit breaker state
// - API endpoint latency and throughput
// - Dataset downloads

var (
	// Store Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "territorio_db_query_duration_seconds",
			Help:    "Duration of analytical store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "driver"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "territorio_db_query_errors_total",
			Help: "Total number of analytical store query errors",
		},
		[]string{"operation", "driver", "error_type"},
	)

	// Dashboard Metrics
	SectionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "territorio_dashboard_section_failures_total",
			Help: "Dashboard sections replaced by their default value",
		},
		[]string{"section"},
	)

	BreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "territorio_breaker_state",
			Help: "Circuit breaker state per dashboard section (0=closed, 1=half-open, 2=open)",
		},
		[]string{"section"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "territorio_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "territorio_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "territorio_api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "territorio_store_up",
			Help: "Whether the last background ping of the analytical store succeeded (1) or failed (0)",
		},
	)

	// Dataset Metrics
	DatasetDownloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "territorio_dataset_download_duration_seconds",
			Help:    "Duration of dataset downloads from object storage",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	DatasetDownloadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "territorio_dataset_download_bytes_total",
			Help: "Bytes downloaded from object storage for the dataset file",
		},
	)
)

// RecordDBQuery records the duration of a store query and, when it failed,
// the error class.
func RecordDBQuery(operation, driver string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, driver).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, driver, classifyError(err)).Inc()
	}
}

// classifyError keeps the error_type label bounded.
func classifyError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "query"
	}
}

// RecordSectionFailure counts a dashboard section that fell back to its default.
func RecordSectionFailure(section string) {
	SectionFailures.WithLabelValues(section).Inc()
}

// SetBreakerState publishes a circuit breaker state (0=closed, 1=half-open, 2=open).
func SetBreakerState(section string, state int) {
	BreakerState.WithLabelValues(section).Set(float64(state))
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetStoreUp publishes the result of a background store ping.
func SetStoreUp(up bool) {
	if up {
		StoreUp.Set(1)
	} else {
		StoreUp.Set(0)
	}
}

// RecordDatasetDownload records a completed dataset download.
func RecordDatasetDownload(duration time.Duration, bytes int64) {
	DatasetDownloadDuration.Observe(duration.Seconds())
	DatasetDownloadBytes.Add(float64(bytes))
}
