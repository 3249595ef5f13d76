// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package api

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/territorio/internal/logging"
)

const pageTitle = "Dashboard de Análisis Territorial"

// Index renders the dashboard page with the region selector filled in. A
// store failure leaves the selector empty; the page itself always renders.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	regions := h.dashboard.Regions(r.Context())

	var buf bytes.Buffer
	err := h.pages.ExecuteTemplate(&buf, indexTemplate, indexPage{
		Title:   pageTitle,
		Regions: regions,
		Nonce:   cspNonceFromContext(r.Context()),
		Version: h.version,
	})
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute index template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write index page")
	}
}

// Data returns the four dashboard sections for the region in the path.
// Section failures are folded into the payload, so the status is always 200.
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	region := regionParam(r)

	logging.Ctx(r.Context()).Debug().
		Str("region", sanitizeLogValue(region)).
		Msg("Building dashboard data")

	respondJSON(w, r, http.StatusOK, h.dashboard.Build(r.Context(), region))
}

// regionParam returns the decoded {region} path segment. chi matches on
// RawPath when the request path has escapes that Path cannot round-trip, in
// which case the parameter is still escaped.
func regionParam(r *http.Request) string {
	region := chi.URLParam(r, "region")
	if r.URL.RawPath == "" {
		return region
	}
	if decoded, err := url.PathUnescape(region); err == nil {
		return decoded
	}
	return region
}
