// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

/*
Package middleware provides HTTP middleware shared by the dashboard routes.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and seeds the logging
    context with request and correlation IDs
  - PrometheusMetrics: request count, latency and in-flight gauge, labeled by
    chi route pattern
  - Compression: gzip for the dashboard page and JSON responses

The API router installs them in this order:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	...
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(middleware.Compression)

PrometheusMetrics takes an http.HandlerFunc; the api package adapts it with
chiMiddleware.
*/
package middleware
