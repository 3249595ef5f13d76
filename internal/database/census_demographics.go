// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/territorio/internal/models"
)

// AgeBand maps a pyramid label to the census column suffix holding its counts
// (P_<Column>_M and P_<Column>_F).
type AgeBand struct {
	Label  string
	Column string
}

// AgeBands lists the pyramid bands from youngest to oldest.
var AgeBands = []AgeBand{
	{Label: "0-2", Column: "0A2"},
	{Label: "3-5", Column: "3A5"},
	{Label: "6-11", Column: "6A11"},
	{Label: "12-14", Column: "12A14"},
	{Label: "15-17", Column: "15A17"},
	{Label: "18-24", Column: "18A24"},
	{Label: "60+", Column: "60YMAS"},
}

// EducationTotals returns the population aged 15 and over by schooling
// level. Primary and secondary add their incomplete and complete columns; the
// post-basic figure is a single combined column.
func (db *DB) EducationTotals(ctx context.Context, region string) (totals models.EducationTotals, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("education_totals", time.Now(), &err)

	query := db.dialect.rebind(fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM censo_manzanas
		WHERE NOM_ENT = ?`,
		db.dialect.sum("P15YM_SE"),
		db.dialect.sum("P15PRI_IN + P15PRI_CO"),
		db.dialect.sum("P15SEC_IN + P15SEC_CO"),
		db.dialect.sum("P18YM_PB"),
	))

	var noSchooling, primary, secondary, postBasic sql.NullFloat64
	err = db.conn.QueryRowContext(ctx, query, region).Scan(&noSchooling, &primary, &secondary, &postBasic)
	if err != nil {
		return models.EducationTotals{}, fmt.Errorf("failed to query education totals: %w", err)
	}

	return models.EducationTotals{
		NoSchooling: floatOrZero(noSchooling),
		Primary:     floatOrZero(primary),
		Secondary:   floatOrZero(secondary),
		PostBasic:   floatOrZero(postBasic),
	}, nil
}

// PyramidTotals returns male and female population per age band, in AgeBands
// order.
func (db *DB) PyramidTotals(ctx context.Context, region string) (totals models.PyramidTotals, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()
	defer db.observe("pyramid_totals", time.Now(), &err)

	columns := make([]string, 0, len(AgeBands)*2)
	for _, band := range AgeBands {
		columns = append(columns,
			db.dialect.sum("P_"+band.Column+"_M"),
			db.dialect.sum("P_"+band.Column+"_F"),
		)
	}

	query := db.dialect.rebind(fmt.Sprintf(`
		SELECT %s
		FROM censo_manzanas
		WHERE NOM_ENT = ?`,
		strings.Join(columns, ", ")))

	values := make([]sql.NullFloat64, len(columns))
	dest := make([]interface{}, len(values))
	for i := range values {
		dest[i] = &values[i]
	}

	if err = db.conn.QueryRowContext(ctx, query, region).Scan(dest...); err != nil {
		return models.PyramidTotals{}, fmt.Errorf("failed to query population pyramid: %w", err)
	}

	bands := make([]models.AgeBandTotals, len(AgeBands))
	for i, band := range AgeBands {
		bands[i] = models.AgeBandTotals{
			Label:  band.Label,
			Male:   floatOrZero(values[2*i]),
			Female: floatOrZero(values[2*i+1]),
		}
	}
	return models.PyramidTotals{Bands: bands}, nil
}
