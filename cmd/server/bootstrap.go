// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/territorio/internal/config"
	"github.com/tomtom215/territorio/internal/database"
	"github.com/tomtom215/territorio/internal/dataset"
	"github.com/tomtom215/territorio/internal/logging"
)

// datasetFetchTimeout bounds the startup download of the dataset file.
const datasetFetchTimeout = 30 * time.Minute

// loadConfig loads configuration and initializes logging from it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	return cfg, nil
}

// openStore downloads the dataset file when a remote source is configured and
// then opens the shared read-only store.
func openStore(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	if cfg.Dataset.Enabled() {
		fetchCtx, cancel := context.WithTimeout(ctx, datasetFetchTimeout)
		defer cancel()

		client, err := dataset.NewClient(fetchCtx, cfg.Dataset)
		if err != nil {
			return nil, err
		}
		if _, err := dataset.Fetch(fetchCtx, client, cfg.Dataset, cfg.Database.Path); err != nil && !errors.Is(err, dataset.ErrNotConfigured) {
			return nil, fmt.Errorf("failed to fetch dataset: %w", err)
		}
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func closeStore(db *database.DB) {
	db.CloseWithLog(logging.NewSlogLogger())
}
