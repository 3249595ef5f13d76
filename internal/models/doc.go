// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

/*
Package models defines the data structures shared by the store, the
dashboard assembler and the HTTP layer.

Model Categories:

 1. Store aggregates (census.go): raw per-region totals read from the
    census block table and the business registry.

 2. Dashboard payload (dashboard.go): the chart-ready JSON returned by
    GET /api/data/{region}. The JSON keys are a contract with the dashboard
    page and must not change.

 3. Operational responses (api_responses.go): envelope, error and health types.
*/
package models
