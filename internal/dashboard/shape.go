// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package dashboard

import (
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/unicode/norm"

	"github.com/tomtom215/territorio/internal/models"
)

// ErrorSentinel replaces every KPI value when the KPI section fails.
const ErrorSentinel = "Error"

const (
	maxLabelRunes       = 45
	truncatedLabelRunes = 42
	labelEllipsis       = "..."
)

// EducationLabels are the five schooling levels in chart order. The last two
// share the census post-basic total in equal halves, since the source data
// does not separate upper secondary from higher education.
var EducationLabels = []string{"Sin Escolaridad", "Primaria", "Secundaria", "Media Superior", "Superior"}

// FormatCount renders a total with comma thousands grouping and no decimals.
func FormatCount(v float64) string {
	return humanize.Comma(int64(math.RoundToEven(v)))
}

// TruncateLabel shortens labels longer than 45 characters to their first 42
// characters followed by "...". Length is counted in runes after NFC
// normalization so accented names are never split mid-character.
func TruncateLabel(label string) string {
	label = norm.NFC.String(label)
	runes := []rune(label)
	if len(runes) <= maxLabelRunes {
		return label
	}
	return string(runes[:truncatedLabelRunes]) + labelEllipsis
}

// ShapeKPIs formats the three headline totals.
func ShapeKPIs(t models.KPITotals) models.KPIs {
	return models.KPIs{
		Population: FormatCount(t.Population),
		Housing:    FormatCount(t.Housing),
		Businesses: humanize.Comma(t.Businesses),
	}
}

// ErrorKPIs is the KPI section of a failed request.
func ErrorKPIs() models.KPIs {
	return models.KPIs{
		Population: ErrorSentinel,
		Housing:    ErrorSentinel,
		Businesses: ErrorSentinel,
	}
}

// ShapeActivities builds the ranking chart, keeping the store's order.
func ShapeActivities(activities []models.ActivityCount) models.ActivityChart {
	chart := models.ActivityChart{
		Labels: make([]string, 0, len(activities)),
		Values: make([]int64, 0, len(activities)),
	}
	for _, a := range activities {
		chart.Labels = append(chart.Labels, TruncateLabel(a.Name))
		chart.Values = append(chart.Values, a.Total)
	}
	return chart
}

func emptyActivities() models.ActivityChart {
	return models.ActivityChart{Labels: []string{}, Values: []int64{}}
}

// ShapeEducation builds the schooling chart.
func ShapeEducation(t models.EducationTotals) models.EducationChart {
	half := t.PostBasic / 2
	labels := make([]string, len(EducationLabels))
	copy(labels, EducationLabels)
	return models.EducationChart{
		Labels: labels,
		Values: []float64{t.NoSchooling, t.Primary, t.Secondary, half, half},
	}
}

func emptyEducation() models.EducationChart {
	return models.EducationChart{Labels: []string{}, Values: []float64{}}
}

// ShapePyramid builds the population pyramid. Male counts are negated so the
// chart mirrors them left of the axis; a zero stays 0 rather than -0.
func ShapePyramid(t models.PyramidTotals) models.PyramidChart {
	chart := models.PyramidChart{
		Labels: make([]string, 0, len(t.Bands)),
		Male:   make([]float64, 0, len(t.Bands)),
		Female: make([]float64, 0, len(t.Bands)),
	}
	for _, band := range t.Bands {
		male := band.Male
		if male != 0 {
			male = -male
		}
		chart.Labels = append(chart.Labels, band.Label)
		chart.Male = append(chart.Male, male)
		chart.Female = append(chart.Female, band.Female)
	}
	return chart
}

func emptyPyramid() models.PyramidChart {
	return models.PyramidChart{Labels: []string{}, Male: []float64{}, Female: []float64{}}
}
