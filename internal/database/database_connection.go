// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package database

import (
	"runtime"
	"time"
)

// configureConnectionPool sizes the pool for concurrent read-only queries.
//   - max_open: NumCPU() for parallel dashboard requests
//   - max_idle: 2 for connection reuse
//   - max_lifetime: 1h
//   - max_idle_time: 5m
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}
