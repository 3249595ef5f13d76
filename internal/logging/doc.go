// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

// Package logging provides zerolog-based structured logging for Territorio.
//
// JSON output is the default; "console" gives human-readable lines for
// development.
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("driver", "duckdb").Msg("Analytical store opened read-only")
//	logging.Warn().Err(err).Str("section", "kpis").Msg("Dashboard section query failed")
//
// # Request Context
//
// The request ID middleware stores a request ID and a correlation ID in the
// request context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to encode response")
//
// # slog
//
// NewSlogLogger adapts the global zerolog logger to log/slog for libraries
// that log through slog, such as sutureslog in the supervisor tree.
package logging
