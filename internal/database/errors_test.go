// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package database

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

type failingCloser struct{ closed bool }

func (c *failingCloser) Close() error {
	c.closed = true
	return errors.New("database is locked")
}

func TestCloseWithLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	closer := &failingCloser{}

	closeWithLog(closer, logger, "rows")

	if !closer.closed {
		t.Fatal("Close was not called")
	}
	out := buf.String()
	if !strings.Contains(out, "type=rows") || !strings.Contains(out, "database is locked") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestCloseWithLog_Nil(t *testing.T) {
	closeWithLog(nil, nil, "rows")
}

func TestCloseQuietly(t *testing.T) {
	closer := &failingCloser{}
	closeQuietly(closer)
	if !closer.closed {
		t.Error("Close was not called")
	}
}
