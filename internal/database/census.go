// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/territorio/internal/models"
)

// DefaultActivityLimit is the number of activities in the ranking.
const DefaultActivityLimit = 5

// ListRegions returns the distinct region names present in the census block
// table, sorted by the engine's default string ordering.
func (db *DB) ListRegions(ctx context.Context) (regions []string, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("list_regions", time.Now(), &err)

	query := `
		SELECT DISTINCT NOM_ENT
		FROM censo_manzanas
		WHERE NOM_ENT IS NOT NULL
		ORDER BY NOM_ENT`

	regions, err = queryAndScan(ctx, db.conn, query, nil, func(rows *sql.Rows) (string, error) {
		var name string
		err := rows.Scan(&name)
		return name, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	return regions, nil
}

// KPITotals returns total population and housing units from the census block
// table and the number of registered businesses for one region. An error from
// either query fails the whole call.
func (db *DB) KPITotals(ctx context.Context, region string) (totals models.KPITotals, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("kpi_totals", time.Now(), &err)

	censusQuery := db.dialect.rebind(fmt.Sprintf(`
		SELECT %s, %s
		FROM censo_manzanas
		WHERE NOM_ENT = ?`,
		db.dialect.sum("POBTOT"), db.dialect.sum("VIVTOT")))

	var population, housing sql.NullFloat64
	if err = db.conn.QueryRowContext(ctx, censusQuery, region).Scan(&population, &housing); err != nil {
		return models.KPITotals{}, fmt.Errorf("failed to query census totals: %w", err)
	}

	businessQuery := db.dialect.rebind(`
		SELECT COUNT(id)
		FROM denue
		WHERE entidad = ?`)

	var businesses int64
	if err = db.conn.QueryRowContext(ctx, businessQuery, region).Scan(&businesses); err != nil {
		return models.KPITotals{}, fmt.Errorf("failed to query business count: %w", err)
	}

	return models.KPITotals{
		Population: floatOrZero(population),
		Housing:    floatOrZero(housing),
		Businesses: businesses,
	}, nil
}

// TopActivities ranks business activities in a region by number of
// businesses, most frequent first. Equal counts are ordered by activity name
// so the ranking is the same on every engine.
func (db *DB) TopActivities(ctx context.Context, region string, limit int) (activities []models.ActivityCount, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("top_activities", time.Now(), &err)

	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	query := db.dialect.rebind(fmt.Sprintf(`
		SELECT nombre_act, COUNT(*) AS total
		FROM denue
		WHERE entidad = ?
		GROUP BY nombre_act
		ORDER BY total DESC, nombre_act ASC
		LIMIT %d`, limit))

	activities, err = queryAndScan(ctx, db.conn, query, []interface{}{region}, func(rows *sql.Rows) (models.ActivityCount, error) {
		var a models.ActivityCount
		err := rows.Scan(&a.Name, &a.Total)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query top activities: %w", err)
	}
	return activities, nil
}
