// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package database

import (
	"database/sql"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/tomtom215/territorio/internal/config"
)

// ErrUnsupportedDialect is returned for a driver name with no dialect.
var ErrUnsupportedDialect = errors.New("unsupported database driver")

// dialect captures what differs between the supported engines.
type dialect struct {
	name       string // config name: duckdb, sqlite, postgres
	floatType  string // type used to cast SUM() results
	dollarArgs bool   // $1, $2 placeholders instead of ?
	open       func(cfg *config.DatabaseConfig) (*sql.DB, error)
}

var dialects = map[string]dialect{
	"duckdb": {
		name:      "duckdb",
		floatType: "DOUBLE",
		open:      openDuckDB,
	},
	"sqlite": {
		name:      "sqlite",
		floatType: "REAL",
		open:      openSQLite,
	},
	"postgres": {
		name:       "postgres",
		floatType:  "DOUBLE PRECISION",
		dollarArgs: true,
		open:       openPostgres,
	},
}

func lookupDialect(name string) (dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return dialect{}, fmt.Errorf("%w: %q", ErrUnsupportedDialect, name)
	}
	return d, nil
}

// sum renders SUM(expr) cast to the dialect's floating type.
func (d dialect) sum(expr string) string {
	return fmt.Sprintf("CAST(SUM(%s) AS %s)", expr, d.floatType)
}

// rebind rewrites ? placeholders to $n for engines that need it. Queries in
// this package never contain a literal question mark.
func (d dialect) rebind(query string) string {
	if !d.dollarArgs || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// duckDBConnString builds the DuckDB DSN. The dataset is never modified, so
// the file is opened read-only and extension auto-install is disabled.
func duckDBConnString(cfg *config.DatabaseConfig) string {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	connStr := fmt.Sprintf("%s?access_mode=read_only&threads=%d&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, threads)
	if cfg.MaxMemory != "" {
		connStr += "&max_memory=" + strings.ReplaceAll(cfg.MaxMemory, " ", "")
	}
	return connStr
}

func openDuckDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	return sql.Open("duckdb", duckDBConnString(cfg))
}

// sqliteConnString opens the file as a read-only URI with query_only set on
// every pooled connection.
func sqliteConnString(cfg *config.DatabaseConfig) string {
	return "file:" + cfg.Path + "?mode=ro&_pragma=query_only(1)&_pragma=busy_timeout(5000)"
}

func openSQLite(cfg *config.DatabaseConfig) (*sql.DB, error) {
	return sql.Open("sqlite", sqliteConnString(cfg))
}

// openPostgres parses the DSN with pgx and forces read-only transactions for
// the session.
func openPostgres(cfg *config.DatabaseConfig) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres DSN: %w", err)
	}
	if connConfig.RuntimeParams == nil {
		connConfig.RuntimeParams = make(map[string]string)
	}
	connConfig.RuntimeParams["default_transaction_read_only"] = "on"
	connConfig.RuntimeParams["application_name"] = "territorio"
	return stdlib.OpenDB(*connConfig), nil
}
