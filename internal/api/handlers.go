// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package api

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/tomtom215/territorio/internal/config"
	"github.com/tomtom215/territorio/internal/models"
)

// DashboardService builds the dashboard sections. *dashboard.Service
// implements it.
type DashboardService interface {
	Build(ctx context.Context, region string) models.DashboardData
	Regions(ctx context.Context) []string
}

// StoreHealth is the store surface used by the health endpoints.
// *database.DB implements it.
type StoreHealth interface {
	Ping(ctx context.Context) error
	Driver() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_dashboard.go: dashboard page and data endpoint
//   - handlers_health.go: health and probe endpoints
//   - handlers_helpers.go: JSON and error response helpers
type Handler struct {
	store     StoreHealth
	dashboard DashboardService
	config    *config.Config
	version   string
	startTime time.Time
	pages     *template.Template
}

// NewHandler creates the API handler. The dashboard page template comes
// from cfg.Server.TemplateDir when set, otherwise from the embedded copy; a
// template that fails to parse is a startup error.
//
// Example:
//
//	handler, err := api.NewHandler(db, dashboard.NewService(db, cfg.Breaker), cfg, version)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(":8000", router.SetupChi())
func NewHandler(store StoreHealth, svc DashboardService, cfg *config.Config, version string) (*Handler, error) {
	templateDir := ""
	if cfg != nil {
		templateDir = cfg.Server.TemplateDir
	}

	pages, err := loadTemplates(templateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard templates: %w", err)
	}

	return &Handler{
		store:     store,
		dashboard: svc,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
		pages:     pages,
	}, nil
}
