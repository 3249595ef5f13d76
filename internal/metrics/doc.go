// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

/*
Package metrics defines Territorio's Prometheus metrics, exposed at /metrics.

	territorio_db_query_duration_seconds{operation,driver}
	territorio_db_query_errors_total{operation,driver,error_type}
	territorio_dashboard_section_failures_total{section}
	territorio_breaker_state{section}              0=closed 1=half-open 2=open
	territorio_api_requests_total{method,endpoint,status}
	territorio_api_request_duration_seconds{method,endpoint}
	territorio_api_active_requests
	territorio_store_up
	territorio_dataset_download_duration_seconds
	territorio_dataset_download_bytes_total

The endpoint label is the chi route pattern, never the raw path, so region
names do not create new series.
*/
package metrics
