// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package api

import (
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/territorio/internal/models"
)

type healthEnvelope struct {
	Status   string              `json:"status"`
	Data     models.HealthStatus `json:"data"`
	Metadata models.Metadata     `json:"metadata"`
	Error    *models.APIError    `json:"error"`
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus string
		wantDB     bool
	}{
		{"store reachable", nil, "healthy", true},
		{"store down", errPing, "degraded", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(t, &fakeStore{pingErr: tt.pingErr}, nil)

			rec := doRequest(t, router, http.MethodGet, "/api/v1/health", nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var env healthEnvelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if env.Data.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", env.Data.Status, tt.wantStatus)
			}
			if env.Data.DatabaseConnected != tt.wantDB {
				t.Errorf("database_connected = %v, want %v", env.Data.DatabaseConnected, tt.wantDB)
			}
			if env.Data.Driver != "duckdb" {
				t.Errorf("driver = %q, want duckdb", env.Data.Driver)
			}
			if env.Data.Version != "test" {
				t.Errorf("version = %q, want test", env.Data.Version)
			}
			if env.Metadata.RequestID == "" {
				t.Error("metadata should carry the request ID")
			}
			if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Error("health responses should carry security headers")
			}
		})
	}
}

func TestHealthLive(t *testing.T) {
	router := setupTestRouter(t, &fakeStore{pingErr: errPing}, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/health/live", nil)

	if rec.Code != http.StatusOK {
		t.Errorf("liveness should not depend on the store, got %d", rec.Code)
	}
}

func TestHealthReady(t *testing.T) {
	ready := setupTestRouter(t, &fakeStore{}, nil)
	if rec := doRequest(t, ready, http.MethodGet, "/api/v1/health/ready", nil); rec.Code != http.StatusOK {
		t.Errorf("ready status = %d, want 200", rec.Code)
	}

	notReady := setupTestRouter(t, &fakeStore{pingErr: errPing}, nil)
	rec := doRequest(t, notReady, http.MethodGet, "/api/v1/health/ready", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("not ready status = %d, want 503", rec.Code)
	}
}

func TestHealth_NilStore(t *testing.T) {
	h := setupTestHandler(t, nil, nil)
	rec := doRequest(t, NewRouter(h, nil).SetupChi(), http.MethodGet, "/api/v1/health/ready", nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}
