// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package dashboard

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/territorio/internal/config"
	"github.com/tomtom215/territorio/internal/logging"
	"github.com/tomtom215/territorio/internal/metrics"
	"github.com/tomtom215/territorio/internal/models"
)

// Section names, used for breakers, metrics and log fields. The four data
// sections match the JSON keys of the response.
const (
	SectionRegions    = "regions"
	SectionKPIs       = "kpis"
	SectionActivities = "actividades_economicas"
	SectionEducation  = "perfil_educativo"
	SectionPyramid    = "piramide_poblacional"
)

var sections = []string{SectionRegions, SectionKPIs, SectionActivities, SectionEducation, SectionPyramid}

// Store is the read-only query surface the dashboard is built from.
// *database.DB implements it.
type Store interface {
	ListRegions(ctx context.Context) ([]string, error)
	KPITotals(ctx context.Context, region string) (models.KPITotals, error)
	TopActivities(ctx context.Context, region string, limit int) ([]models.ActivityCount, error)
	EducationTotals(ctx context.Context, region string) (models.EducationTotals, error)
	PyramidTotals(ctx context.Context, region string) (models.PyramidTotals, error)
}

// Service assembles dashboard responses. Every section is computed behind its
// own failure boundary: an error or an open breaker replaces that section
// with its default and leaves the others untouched. Nothing is retried.
type Service struct {
	store         Store
	activityLimit int
	breakers      map[string]*gobreaker.CircuitBreaker[any]
}

// NewService creates a dashboard service over store. With breakers disabled
// every call goes straight to the store.
func NewService(store Store, cfg config.BreakerConfig) *Service {
	s := &Service{
		store:         store,
		activityLimit: 5,
	}
	if !cfg.Enabled {
		return s
	}

	s.breakers = make(map[string]*gobreaker.CircuitBreaker[any], len(sections))
	for _, name := range sections {
		metrics.SetBreakerState(name, stateToInt(gobreaker.StateClosed))
		s.breakers[name] = newBreaker(name, cfg)
	}
	return s
}

func newBreaker(name string, cfg config.BreakerConfig) *gobreaker.CircuitBreaker[any] {
	threshold := cfg.FailureThreshold
	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A client hanging up says nothing about the store.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("section", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Dashboard circuit breaker state changed")
			metrics.SetBreakerState(name, stateToInt(to))
		},
	})
}

// stateToInt maps breaker states to the gauge values 0=closed, 1=half-open, 2=open.
func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// guard runs fn behind the section's breaker. A non-nil error means the
// caller must substitute the section default; it has already been logged and
// counted.
func guard[T any](ctx context.Context, s *Service, section, region string, fn func(context.Context) (T, error)) (T, error) {
	var (
		result T
		err    error
	)

	if cb := s.breakers[section]; cb != nil {
		var out any
		out, err = cb.Execute(func() (any, error) {
			return fn(ctx)
		})
		if err == nil {
			result = out.(T)
		}
	} else {
		result, err = fn(ctx)
	}

	if err != nil {
		event := logging.Ctx(ctx).Warn().Err(err).Str("section", section)
		if region != "" {
			event = event.Str("region", region)
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			event.Msg("Dashboard section short-circuited, using default")
		} else {
			event.Msg("Dashboard section query failed, using default")
		}
		metrics.RecordSectionFailure(section)
		var zero T
		return zero, err
	}
	return result, nil
}

// Regions returns the sorted region names, or an empty list when the store
// cannot be queried.
func (s *Service) Regions(ctx context.Context) []string {
	regions, err := guard(ctx, s, SectionRegions, "", s.store.ListRegions)
	if err != nil || regions == nil {
		return []string{}
	}
	return regions
}

// KPIs returns the formatted headline totals for region. If either underlying
// query fails all three values become ErrorSentinel.
func (s *Service) KPIs(ctx context.Context, region string) models.KPIs {
	totals, err := guard(ctx, s, SectionKPIs, region, func(ctx context.Context) (models.KPITotals, error) {
		return s.store.KPITotals(ctx, region)
	})
	if err != nil {
		return ErrorKPIs()
	}
	return ShapeKPIs(totals)
}

// Activities returns the top business activities for region.
func (s *Service) Activities(ctx context.Context, region string) models.ActivityChart {
	activities, err := guard(ctx, s, SectionActivities, region, func(ctx context.Context) ([]models.ActivityCount, error) {
		return s.store.TopActivities(ctx, region, s.activityLimit)
	})
	if err != nil {
		return emptyActivities()
	}
	if len(activities) > s.activityLimit {
		activities = activities[:s.activityLimit]
	}
	return ShapeActivities(activities)
}

// Education returns the schooling profile for region.
func (s *Service) Education(ctx context.Context, region string) models.EducationChart {
	totals, err := guard(ctx, s, SectionEducation, region, func(ctx context.Context) (models.EducationTotals, error) {
		return s.store.EducationTotals(ctx, region)
	})
	if err != nil {
		return emptyEducation()
	}
	return ShapeEducation(totals)
}

// Pyramid returns the population pyramid for region.
func (s *Service) Pyramid(ctx context.Context, region string) models.PyramidChart {
	totals, err := guard(ctx, s, SectionPyramid, region, func(ctx context.Context) (models.PyramidTotals, error) {
		return s.store.PyramidTotals(ctx, region)
	})
	if err != nil {
		return emptyPyramid()
	}
	return ShapePyramid(totals)
}

// Build assembles the full response for region. The sections are queried
// one after another; each one degrades on its own.
func (s *Service) Build(ctx context.Context, region string) models.DashboardData {
	start := time.Now()
	data := models.DashboardData{
		KPIs:       s.KPIs(ctx, region),
		Activities: s.Activities(ctx, region),
		Education:  s.Education(ctx, region),
		Pyramid:    s.Pyramid(ctx, region),
	}
	logging.Ctx(ctx).Debug().
		Str("region", region).
		Dur("duration", time.Since(start)).
		Msg("Dashboard assembled")
	return data
}
