// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSweepInterval is the janitor sweep period used when none is given.
const DefaultSweepInterval = 5 * time.Minute

// Janitor periodically sweeps long-expired entries out of a Store.
//
// It implements suture.Service so the embedding application can add it to its
// supervisor tree (see internal/supervisor). Running a janitor is optional:
// freshness is always enforced on read, the janitor only bounds memory held
// by keys that are never read again.
type Janitor struct {
	store    *Store
	interval time.Duration
	logger   zerolog.Logger
}

// NewJanitor creates a janitor for the given store.
// A non-positive interval uses DefaultSweepInterval.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewJanitor(store *Store, interval time.Duration, logger zerolog.Logger) *Janitor {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Janitor{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("component", "cache-janitor").Logger(),
	}
}

// Serve sweeps the store until the context is canceled.
func (j *Janitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if evicted := j.store.Sweep(); evicted > 0 {
				j.logger.Debug().
					Int("evicted", evicted).
					Int("remaining", j.store.Len()).
					Msg("swept expired entries")
			}
		}
	}
}

// String identifies the service in supervisor logs.
func (j *Janitor) String() string {
	return "cache-janitor"
}
