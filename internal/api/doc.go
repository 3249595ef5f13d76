// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

/*
Package api provides the HTTP layer: the dashboard page, the JSON data
endpoint and the health probes.

Routes:

	GET /                         dashboard page (embedded html/template)
	GET /static/*                 embedded scripts and styles
	GET /api/data/{region}        dashboard sections for one region
	GET /api/v1/health            status, driver, store connectivity, uptime
	GET /api/v1/health/live       liveness probe
	GET /api/v1/health/ready      readiness probe, 503 until the store answers
	GET /metrics                  Prometheus exposition

The data endpoint never fails because of the store: each section degrades on
its own inside the dashboard service and the response is always 200 with the
full shape. JSON responses carry an ETag; a matching If-None-Match gets 304.

Middleware order: request ID, real IP, panic recovery, CORS (go-chi/cors),
Prometheus metrics, then per-group rate limiting (go-chi/httprate), security
headers and gzip.
*/
package api
