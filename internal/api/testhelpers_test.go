// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/territorio/internal/config"
	"github.com/tomtom215/territorio/internal/models"
)

// fakeDashboard records the regions it was asked for.
type fakeDashboard struct {
	mu        sync.Mutex
	regions   []string
	requested []string
}

func (f *fakeDashboard) Build(_ context.Context, region string) models.DashboardData {
	f.mu.Lock()
	f.requested = append(f.requested, region)
	f.mu.Unlock()

	if region != "Ciudad de México" {
		return models.DashboardData{
			KPIs:       models.KPIs{Population: "0", Housing: "0", Businesses: "0"},
			Activities: models.ActivityChart{Labels: []string{}, Values: []int64{}},
			Education: models.EducationChart{
				Labels: []string{"Sin Escolaridad", "Primaria", "Secundaria", "Media Superior", "Superior"},
				Values: []float64{0, 0, 0, 0, 0},
			},
			Pyramid: models.PyramidChart{Labels: []string{}, Male: []float64{}, Female: []float64{}},
		}
	}
	return models.DashboardData{
		KPIs:       models.KPIs{Population: "9,209,944", Housing: "2,647,914", Businesses: "812,000"},
		Activities: models.ActivityChart{Labels: []string{"Restaurantes"}, Values: []int64{64000}},
		Education: models.EducationChart{
			Labels: []string{"Sin Escolaridad", "Primaria", "Secundaria", "Media Superior", "Superior"},
			Values: []float64{1, 2, 3, 2, 2},
		},
		Pyramid: models.PyramidChart{Labels: []string{"0-2"}, Male: []float64{-10}, Female: []float64{11}},
	}
}

func (f *fakeDashboard) Regions(_ context.Context) []string {
	return f.regions
}

func (f *fakeDashboard) lastRequested() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requested) == 0 {
		return ""
	}
	return f.requested[len(f.requested)-1]
}

// fakeStore answers pings with pingErr.
type fakeStore struct {
	pingErr error
}

func (f *fakeStore) Ping(_ context.Context) error { return f.pingErr }
func (f *fakeStore) Driver() string { return "duckdb" }

var errPing = errors.New("connection refused")

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8000, Timeout: 30 * time.Second, Environment: "development"},
		Security: config.SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
	}
}

func setupTestHandler(t *testing.T, store StoreHealth, dash *fakeDashboard) *Handler {
	t.Helper()
	if dash == nil {
		dash = &fakeDashboard{regions: []string{"Ciudad de México", "Jalisco", "Oaxaca"}}
	}
	h, err := NewHandler(store, dash, testConfig(), "test")
	if err != nil {
		t.Fatalf("NewHandler() error: %v", err)
	}
	return h
}

func setupTestRouter(t *testing.T, store StoreHealth, dash *fakeDashboard) http.Handler {
	t.Helper()
	h := setupTestHandler(t, store, dash)
	return NewRouter(h, NewChiMiddlewareFromConfig(&testConfig().Security)).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
