// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func newCapturedSlog(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf))), &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	line := strings.TrimSpace(buf.String())
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", line, err)
	}
	return entry
}

func TestSlogHandler_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*slog.Logger)
		level string
	}{
		{"debug", func(l *slog.Logger) { l.Debug("m") }, "debug"},
		{"info", func(l *slog.Logger) { l.Info("m") }, "info"},
		{"warn", func(l *slog.Logger) { l.Warn("m") }, "warn"},
		{"error", func(l *slog.Logger) { l.Error("m") }, "error"},
	}

	captureGlobal(t, "trace")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newCapturedSlog(t)
			tt.log(logger)

			entry := decodeLine(t, buf)
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
		})
	}
}

func TestSlogHandler_AttributeKinds(t *testing.T) {
	captureGlobal(t, "info")
	logger, buf := newCapturedSlog(t)

	logger.Info("service restarted",
		slog.String("service", "http-server"),
		slog.Int("attempt", 3),
		slog.Bool("backoff", true),
		slog.Float64("ratio", 0.5),
		slog.Duration("wait", 2*time.Second),
		slog.Any("err", errors.New("boom")),
	)

	entry := decodeLine(t, buf)
	if entry["message"] != "service restarted" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["service"] != "http-server" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["attempt"] != float64(3) {
		t.Errorf("attempt = %v", entry["attempt"])
	}
	if entry["backoff"] != true {
		t.Errorf("backoff = %v", entry["backoff"])
	}
	if entry["err"] != "boom" {
		t.Errorf("err = %v", entry["err"])
	}
}

func TestSlogHandler_GroupsAndAttrs(t *testing.T) {
	captureGlobal(t, "info")
	logger, buf := newCapturedSlog(t)

	logger.With("layer", "api").WithGroup("supervisor").With("id", 7).WithGroup("tree").Info("event", "name", "root")

	entry := decodeLine(t, buf)
	if entry["layer"] != "api" {
		t.Errorf("attr added before any group should stay top-level, got entry %v", entry)
	}
	if entry["supervisor.id"] != float64(7) {
		t.Errorf("attr added inside a group should carry that group only, got entry %v", entry)
	}
	if entry["supervisor.tree.name"] != "root" {
		t.Errorf("expected outer-to-inner group prefix, got entry %v", entry)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	captureGlobal(t, "warn")

	h := NewSlogHandler()
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNewSlogLogger(t *testing.T) {
	if NewSlogLogger() == nil {
		t.Fatal("NewSlogLogger() returned nil")
	}
}
