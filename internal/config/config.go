// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Data:
//     - Database: analytical store driver, file path or DSN, engine limits
//     - Dataset: optional S3-compatible source for the dataset file
//
//  2. Serving:
//     - Server: HTTP server configuration (port, host, timeout)
//     - Security: CORS and rate limiting
//     - Breaker: per-section circuit breakers for dashboard queries
//
//  3. Observability:
//     - Logging: Log levels and output formats
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds analytical store settings.
type DatabaseConfig struct {
	Driver string `koanf:"driver" validate:"oneof=duckdb sqlite postgres"`

	// Path is the dataset file opened by the duckdb and sqlite drivers.
	Path string `koanf:"path"`

	// DSN is the connection string used by the postgres driver.
	DSN string `koanf:"dsn"`

	// MaxMemory and Threads tune DuckDB only (0 threads = use NumCPU).
	MaxMemory string `koanf:"max_memory" validate:"omitempty,memlimit"`
	Threads   int    `koanf:"threads" validate:"gte=0"`

	// QueryTimeout is applied to queries whose context carries no deadline.
	QueryTimeout time.Duration `koanf:"query_timeout" validate:"gt=0"`
}

// DatasetConfig describes where the dataset file can be downloaded from when it
// is not already present on disk. Leaving S3Bucket empty disables the download.
type DatasetConfig struct {
	S3Bucket       string `koanf:"s3_bucket"`
	S3Key          string `koanf:"s3_key"`
	S3Region       string `koanf:"s3_region"`
	S3Endpoint     string `koanf:"s3_endpoint" validate:"omitempty,url"`
	S3UsePathStyle bool   `koanf:"s3_use_path_style"`

	// Overwrite re-downloads the dataset even if the file exists.
	Overwrite bool `koanf:"overwrite"`
}

// Enabled reports whether a remote dataset source is configured.
func (d DatasetConfig) Enabled() bool {
	return d.S3Bucket != ""
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	Environment string        `koanf:"environment" validate:"oneof=development staging production"`

	// TemplateDir overrides the embedded dashboard page when set.
	TemplateDir string `koanf:"template_dir"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// BreakerConfig configures the circuit breaker placed in front of each
// dashboard section query.
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`

	// MaxRequests is the number of requests allowed in half-open state.
	MaxRequests uint32 `koanf:"max_requests" validate:"gte=1"`

	// Interval is the cyclic reset period for counts while closed.
	Interval time.Duration `koanf:"interval" validate:"gte=0"`

	// Timeout is the duration in open state before transitioning to half-open.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// FailureThreshold is the number of consecutive failures before opening.
	FailureThreshold uint32 `koanf:"failure_threshold" validate:"gte=1"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration using the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
