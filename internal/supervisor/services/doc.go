// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

/*
Package services adapts long-running components to suture's Serve pattern.

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService wraps *http.Server. Context cancellation triggers
Shutdown with its own deadline, and http.ErrServerClosed is treated as a
clean stop.

StoreMonitorService pings the analytical store in the background and
publishes territorio_store_up. Repeated failures are logged at most once per
reminder interval.

Both implement fmt.Stringer so supervisor events name them.
*/
package services
