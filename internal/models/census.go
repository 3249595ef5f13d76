// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package models

// Raw aggregates read from the analytical store for one region. Null sums
// arrive here as zero.

// KPITotals holds the three headline totals for a region.
type KPITotals struct {
	Population float64 // SUM(POBTOT)
	Housing    float64 // SUM(VIVTOT)
	Businesses int64   // COUNT(id) in the business registry
}

// ActivityCount is one business activity and the number of registered
// businesses carrying it.
type ActivityCount struct {
	Name  string
	Total int64
}

// EducationTotals holds the population aged 15+ by schooling level.
// PostBasic is a single combined figure covering both upper-secondary and
// higher education.
type EducationTotals struct {
	NoSchooling float64
	Primary     float64
	Secondary   float64
	PostBasic   float64
}

// AgeBandTotals is the male and female population of one age band.
type AgeBandTotals struct {
	Label  string
	Male   float64
	Female float64
}

// PyramidTotals lists the age bands from youngest to oldest.
type PyramidTotals struct {
	Bands []AgeBandTotals
}
