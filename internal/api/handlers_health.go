// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/territorio/internal/models"
)

// healthPingTimeout bounds the store ping made by the health endpoints.
const healthPingTimeout = 2 * time.Second

func (h *Handler) storeConnected(ctx context.Context) bool {
	if h.store == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.store.Ping(ctx) == nil
}

// Health reports overall status, store connectivity and uptime. It always
// answers 200; status is "degraded" when the store does not respond.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.storeConnected(r.Context())

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	driver := ""
	if h.store != nil {
		driver = h.store.Driver()
	}

	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:            status,
			Version:           h.version,
			Driver:            driver,
			DatabaseConnected: dbConnected,
			Uptime:            time.Since(h.startTime).Seconds(),
		},
		Metadata: newMetadata(r),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: newMetadata(r),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 503 until the store answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := h.storeConnected(r.Context())

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, r, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"ready":              ready,
			"database_connected": ready,
		},
		Metadata: newMetadata(r),
	})
}
