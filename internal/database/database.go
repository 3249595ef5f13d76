// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/territorio/internal/config"
	"github.com/tomtom215/territorio/internal/logging"
)

// DB wraps the shared read-only connection to the analytical store. One DB is
// opened at startup and passed to every consumer; it is closed exactly once.
type DB struct {
	conn    *sql.DB
	cfg     *config.DatabaseConfig
	dialect dialect

	closeOnce sync.Once
	closeErr  error
}

// New opens the analytical store described by cfg and verifies it responds.
// An unreachable store is an error; callers treat it as fatal.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	d, err := lookupDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	conn, err := d.open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d.name, err)
	}

	db := &DB{conn: conn, cfg: cfg, dialect: d}
	db.configureConnectionPool()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s database: %w", d.name, err)
	}

	logging.Info().
		Str("driver", d.name).
		Str("path", cfg.Path).
		Msg("Analytical store opened read-only")

	return db, nil
}

// NewFromConn wraps an already opened handle. The handle's lifetime passes to
// the returned DB. Used by tests that load fixtures before handing the
// connection over.
func NewFromConn(conn *sql.DB, cfg *config.DatabaseConfig) (*DB, error) {
	d, err := lookupDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}
	return &DB{conn: conn, cfg: cfg, dialect: d}, nil
}

// Conn returns the underlying SQL database handle.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.dialect.name
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close releases the connection. Only the first call closes the handle;
// later calls return the same result.
func (db *DB) Close() error {
	db.closeOnce.Do(func() {
		if db.conn != nil {
			db.closeErr = db.conn.Close()
		}
	})
	return db.closeErr
}
