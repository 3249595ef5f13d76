// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/territorio/internal/dashboard"
	"github.com/tomtom215/territorio/internal/models"
)

// dashboardReader is the part of dashboard.Service the one-shot commands use.
type dashboardReader interface {
	Regions(ctx context.Context) []string
	Build(ctx context.Context, region string) models.DashboardData
}

func regionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "Print the sorted list of regions in the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(ctx context.Context, svc dashboardReader) error {
				return writeRegions(ctx, cmd.OutOrStdout(), svc)
			})
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <region>",
		Short: "Print the dashboard JSON for one region",
		Long: `Print the same JSON document served by GET /api/data/{region}.

Unknown regions produce zero KPIs and empty charts, exactly as the API does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDashboard(func(ctx context.Context, svc dashboardReader) error {
				return writeReport(ctx, cmd.OutOrStdout(), svc, args[0])
			})
		},
	}
}

// withDashboard opens the store for the duration of fn.
func withDashboard(fn func(context.Context, dashboardReader) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := exitOnSignal()
	defer stop()

	db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore(db)

	return fn(ctx, dashboard.NewService(db, cfg.Breaker))
}

func writeRegions(ctx context.Context, w io.Writer, svc dashboardReader) error {
	for _, region := range svc.Regions(ctx) {
		if _, err := fmt.Fprintln(w, region); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(ctx context.Context, w io.Writer, svc dashboardReader, region string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(svc.Build(ctx, region)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
