// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/territorio/internal/logging"
)

// captureIDs runs one request through RequestID and returns the IDs the
// handler saw in its context.
func captureIDs(t *testing.T, header string) (requestID, correlationID string, rec *httptest.ResponseRecorder) {
	t.Helper()
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = logging.RequestIDFromContext(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/data/Jalisco", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return requestID, correlationID, rec
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	requestID, correlationID, rec := captureIDs(t, "")

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("response %s is not a UUID: %v", RequestIDHeader, err)
	}
	if requestID != responseID {
		t.Errorf("context ID %q does not match header %q", requestID, responseID)
	}
	if correlationID == "" {
		t.Error("expected a correlation ID in context")
	}
}

func TestRequestID_PreservesUpstreamID(t *testing.T) {
	requestID, _, rec := captureIDs(t, "edge-7f3a9c")

	if requestID != "edge-7f3a9c" {
		t.Errorf("context ID = %q, want upstream ID", requestID)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "edge-7f3a9c" {
		t.Errorf("response header = %q, want upstream ID", got)
	}
}

func TestRequestID_RejectsUnsafeUpstreamID(t *testing.T) {
	tests := map[string]string{
		"newline":   "abc\ninjected",
		"space":     "abc def",
		"too long":  strings.Repeat("a", maxRequestIDLength+1),
		"non-ascii": "méxico",
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			requestID, _, _ := captureIDs(t, header)
			if requestID == header {
				t.Errorf("unsafe upstream ID %q was accepted", header)
			}
			if _, err := uuid.Parse(requestID); err != nil {
				t.Errorf("replacement ID %q is not a UUID", requestID)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id, _, _ := captureIDs(t, "")
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}
