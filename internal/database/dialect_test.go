// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package database

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/territorio/internal/config"
)

func TestLookupDialect(t *testing.T) {
	for _, name := range []string{"duckdb", "sqlite", "postgres"} {
		d, err := lookupDialect(name)
		checkNoError(t, err)
		checkStringEqual(t, "name", d.name, name)
		if d.open == nil {
			t.Errorf("%s: open func is nil", name)
		}
	}

	_, err := lookupDialect("mysql")
	if !errors.Is(err, ErrUnsupportedDialect) {
		t.Errorf("lookupDialect(mysql) error = %v, want ErrUnsupportedDialect", err)
	}
}

func TestDialectRebind(t *testing.T) {
	tests := []struct {
		driver string
		query  string
		want   string
	}{
		{"duckdb", "SELECT 1 WHERE a = ? AND b = ?", "SELECT 1 WHERE a = ? AND b = ?"},
		{"sqlite", "SELECT 1 WHERE a = ?", "SELECT 1 WHERE a = ?"},
		{"postgres", "SELECT 1 WHERE a = ? AND b = ?", "SELECT 1 WHERE a = $1 AND b = $2"},
		{"postgres", "SELECT 1", "SELECT 1"},
		{"postgres", "SELECT 'México' WHERE n = ?", "SELECT 'México' WHERE n = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := lookupDialect(tt.driver)
			checkNoError(t, err)
			checkStringEqual(t, "rebind", d.rebind(tt.query), tt.want)
		})
	}
}

func TestDialectSum(t *testing.T) {
	tests := map[string]string{
		"duckdb":   "CAST(SUM(POBTOT) AS DOUBLE)",
		"sqlite":   "CAST(SUM(POBTOT) AS REAL)",
		"postgres": "CAST(SUM(POBTOT) AS DOUBLE PRECISION)",
	}
	for driver, want := range tests {
		d, err := lookupDialect(driver)
		checkNoError(t, err)
		checkStringEqual(t, driver, d.sum("POBTOT"), want)
	}
}

func TestDuckDBConnString(t *testing.T) {
	got := duckDBConnString(&config.DatabaseConfig{Path: "/data/censo.duckdb", Threads: 4, MaxMemory: "2 GB"})

	if !strings.HasPrefix(got, "/data/censo.duckdb?") {
		t.Errorf("conn string should start with the path, got %q", got)
	}
	for _, part := range []string{"access_mode=read_only", "threads=4", "max_memory=2GB", "autoinstall_known_extensions=false"} {
		if !strings.Contains(got, part) {
			t.Errorf("conn string %q missing %q", got, part)
		}
	}

	got = duckDBConnString(&config.DatabaseConfig{Path: "censo.duckdb"})
	if strings.Contains(got, "max_memory") {
		t.Errorf("max_memory should be omitted when unset, got %q", got)
	}
	if strings.Contains(got, "threads=0") {
		t.Errorf("threads should default to the CPU count, got %q", got)
	}
}

func TestSQLiteConnString(t *testing.T) {
	got := sqliteConnString(&config.DatabaseConfig{Path: "/data/censo.sqlite"})
	checkStringEqual(t, "dsn", got, "file:/data/censo.sqlite?mode=ro&_pragma=query_only(1)&_pragma=busy_timeout(5000)")
}

func TestOpenPostgres_InvalidDSN(t *testing.T) {
	_, err := openPostgres(&config.DatabaseConfig{Driver: "postgres", DSN: "postgres://user@host:notaport/db"})
	checkError(t, err)
}

func TestOpenPostgres_Lazy(t *testing.T) {
	// stdlib.OpenDB does not dial until first use.
	conn, err := openPostgres(&config.DatabaseConfig{Driver: "postgres", DSN: "postgres://census@127.0.0.1:1/censo?connect_timeout=1"})
	checkNoError(t, err)
	checkNoError(t, conn.Close())
}
