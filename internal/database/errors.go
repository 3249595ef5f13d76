// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package database

import (
	"io"
	"log/slog"

	"github.com/tomtom215/territorio/internal/logging"
)

// closeWithLog closes a resource and logs any error.
// If logger is nil, the global zerolog logger is used.
func closeWithLog(closer io.Closer, logger *slog.Logger, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		if logger != nil {
			logger.Error("failed to close resource", "type", resourceType, "error", err)
			return
		}
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and ignores any error.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// CloseWithLog closes the store and logs a failure through logger.
// Used on the shutdown path where there is nothing left to return the error to.
func (db *DB) CloseWithLog(logger *slog.Logger) {
	closeWithLog(db, logger, "analytical store")
}
