// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package models

// DashboardData is the body of GET /api/data/{region}. The four sections are
// always present; a section whose query failed carries its default value.
//
// Example:
//
//	{
//	  "kpis": {"poblacion_total": "9,209,944", "viviendas_totales": "2,647,914", "numero_negocios": "812,000"},
//	  "actividades_economicas": {"labels": ["Comercio al por menor"], "values": [1200]},
//	  "perfil_educativo": {"labels": ["Sin Escolaridad", ...], "values": [120, ...]},
//	  "piramide_poblacional": {"labels": ["0-2", ...], "hombres": [-300, ...], "mujeres": [290, ...]}
//	}
type DashboardData struct {
	KPIs       KPIs           `json:"kpis"`
	Activities ActivityChart  `json:"actividades_economicas"`
	Education  EducationChart `json:"perfil_educativo"`
	Pyramid    PyramidChart   `json:"piramide_poblacional"`
}

// KPIs are thousands-grouped totals, or "Error" when the totals could not be read.
type KPIs struct {
	Population string `json:"poblacion_total"`
	Housing    string `json:"viviendas_totales"`
	Businesses string `json:"numero_negocios"`
}

// ActivityChart is a bar chart of the most common business activities.
type ActivityChart struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

// EducationChart is a bar chart of schooling levels.
type EducationChart struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// PyramidChart is a population pyramid; male values are negative so the
// bars mirror around zero.
type PyramidChart struct {
	Labels []string  `json:"labels"`
	Male   []float64 `json:"hombres"`
	Female []float64 `json:"mujeres"`
}
