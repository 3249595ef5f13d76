// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

/*
Package config loads Territorio's configuration with Koanf v2.

Sources, lowest priority first:
  - built-in defaults (providers/structs)
  - an optional YAML file: $CONFIG_PATH, config.yaml, config.yml,
    /etc/territorio/config.yaml or /etc/territorio/config.yml
  - environment variables, through an explicit name mapping

# Sections

	database   driver (duckdb|sqlite|postgres), path, dsn, max_memory, threads, query_timeout
	dataset    s3_bucket, s3_key, s3_region, s3_endpoint, s3_use_path_style, overwrite
	server     port, host, timeout, environment, template_dir
	security   cors_origins, rate_limit_reqs, rate_limit_window, rate_limit_disabled
	breaker    enabled, max_requests, interval, timeout, failure_threshold
	logging    level, format, caller

# Environment Variables

	DB_DRIVER=duckdb
	DUCKDB_PATH=/data/censo_denue.duckdb
	DATABASE_DSN=postgres://reader@db/censo
	S3_BUCKET=inegi-datasets
	HTTP_PORT=8000
	CORS_ORIGINS=https://a.example,https://b.example
	BREAKER_FAILURE_THRESHOLD=5
	LOG_LEVEL=debug

Load validates the result: struct tags through internal/validation, then
cross-field rules such as requiring a DSN for postgres and a path for the
file-backed drivers.
*/
package config
