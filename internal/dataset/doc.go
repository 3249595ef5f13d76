// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

// Package dataset downloads the census and business directory file from
// S3-compatible object storage before the analytical store is opened.
//
// Fetch is a no-op returning ErrNotConfigured when no bucket is set, and
// skips the download when the destination file exists unless Overwrite is
// set. Downloads are written to a temporary file and renamed into place.
package dataset
