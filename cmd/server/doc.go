// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

/*
Package main is the entry point for Territorio, a read-only dashboard over a
census and business directory dataset.

# Commands

	territorio [serve]          run the HTTP server (default)
	territorio regions          print the sorted region names
	territorio report <region>  print the dashboard JSON for one region
	territorio version          print build information

# Startup

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Dataset: optional download from S3-compatible storage
 4. Store: read-only DuckDB, SQLite or PostgreSQL handle, pinged once
 5. Supervisor tree: store monitor and HTTP server under suture v4

A store that cannot be opened is fatal. Once running, query failures only
degrade the affected dashboard section.

# Signals

SIGINT and SIGTERM cancel the supervisor context. The HTTP server drains
in-flight requests for up to 10s and the store is closed last.

# Example

	export DB_DRIVER=duckdb
	export DUCKDB_PATH=/data/censo_denue.duckdb
	export S3_BUCKET=inegi-datasets S3_KEY=2020/censo_denue.duckdb S3_REGION=us-east-1
	territorio serve
*/
package main
