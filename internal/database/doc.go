// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

// Package database provides read-only access to the census analytical store.
//
// # Overview
//
// The store is a pre-built dataset with two tables: censo_manzanas (one row
// per census block, with population, housing, schooling and age/sex counts)
// and denue (one row per registered business). Nothing in this package
// writes to either table; DuckDB and SQLite files are opened read-only.
//
// # Architecture
//
//   - database.go: handle lifecycle (open, ping, close exactly once)
//   - dialect.go: per-driver connection strings, placeholders and casts
//   - database_connection.go: connection pool configuration
//   - database_utils.go: query deadlines and metrics
//   - query_helpers.go: generic row scanning
//   - census.go: region list, KPI totals, activity ranking
//   - census_demographics.go: schooling and age/sex aggregates
//
// # Drivers
//
//   - duckdb (default): github.com/duckdb/duckdb-go/v2, access_mode=read_only
//   - sqlite: modernc.org/sqlite (pure Go), mode=ro
//   - postgres: github.com/jackc/pgx/v5/stdlib, read-only transactions
//
// Every aggregate is scoped by exact, case-sensitive equality on the region
// name. SUM results are cast to a floating type in SQL so that each engine
// returns a value that scans into sql.NullFloat64; a NULL sum (no matching
// rows) is reported as zero.
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to open analytical store")
//	}
//	defer db.Close()
//
//	totals, err := db.KPITotals(ctx, "Jalisco")
package database
