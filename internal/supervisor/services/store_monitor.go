// Territorio - Territorial Census and Business Density Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/territorio

package services

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/territorio/internal/logging"
	"github.com/tomtom215/territorio/internal/metrics"
)

// Pinger is satisfied by *database.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService pings the analytical store on a fixed interval and
// publishes the result as the territorio_store_up gauge. Transitions are
// logged once; a store that stays down is re-reported at most every
// reminderInterval.
type StoreMonitorService struct {
	store            Pinger
	interval         time.Duration
	pingTimeout      time.Duration
	reminderInterval time.Duration
	name             string
}

// NewStoreMonitorService creates a monitor. A non-positive interval means 30s.
func NewStoreMonitorService(store Pinger, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &StoreMonitorService{
		store:            store,
		interval:         interval,
		pingTimeout:      5 * time.Second,
		reminderInterval: 5 * time.Minute,
		name:             "store-monitor",
	}
}

// Serve implements suture.Service.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	stillDown := rate.Sometimes{Interval: s.reminderInterval}
	up := s.check(ctx, true, &stillDown)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			up = s.check(ctx, up, &stillDown)
		}
	}
}

// check pings once and returns the new state. wasUp is the previous state.
func (s *StoreMonitorService) check(ctx context.Context, wasUp bool, stillDown *rate.Sometimes) bool {
	pingCtx, cancel := context.WithTimeout(ctx, s.pingTimeout)
	defer cancel()

	err := s.store.Ping(pingCtx)
	if ctx.Err() != nil {
		// Shutting down; keep the last published value.
		return wasUp
	}
	metrics.SetStoreUp(err == nil)

	switch {
	case err == nil && !wasUp:
		logging.Info().Msg("Analytical store reachable again")
	case err != nil && wasUp:
		*stillDown = rate.Sometimes{Interval: s.reminderInterval}
		stillDown.Do(func() {
			logging.Warn().Err(err).Msg("Analytical store unreachable")
		})
	case err != nil:
		stillDown.Do(func() {
			logging.Warn().Err(err).Msg("Analytical store still unreachable")
		})
	}
	return err == nil
}

// String identifies the service in supervisor logs.
func (s *StoreMonitorService) String() string {
	return s.name
}
