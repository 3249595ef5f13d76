// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

// Package validation wraps go-playground/validator v10 with a shared
// validator instance, the custom "memlimit" tag for DuckDB memory limits,
// and readable error messages.
//
//	if verr := validation.ValidateStruct(cfg.Database); verr != nil {
//	    return fmt.Errorf("invalid database config: %w", verr)
//	}
package validation
