// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

// Package cache provides the thread-safe in-memory TTL store backing the
// posting-time engine.
//
// The store is an explicit dependency injected into the engine rather than a
// package-level singleton, so tests can isolate cache state and control time.
// Freshness is evaluated on read: Put never schedules eviction, and an entry
// stays in the map until it is superseded, swept by the optional Janitor, or
// discarded on a stale read. Concurrent misses for the same key may both
// resolve and both write; the last write wins, which is harmless because
// resolution is idempotent and side-effect free.
package cache

import (
	"sync"
	"time"
)

// Entry is a stored value together with the instant it was stored.
type Entry struct {
	Value    any
	StoredAt time.Time
}

// Stats tracks store performance counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	TotalKeys int64
	LastSweep time.Time
}

// Store is a thread-safe in-memory store with read-time TTL evaluation.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry

	// maxAge is the default freshness window applied by GetFresh when the
	// caller passes a non-positive maxAge, and the retention ceiling used
	// by Sweep.
	maxAge time.Duration

	now func() time.Time

	statsMu sync.Mutex
	stats   Stats
}

// Option configures a Store.
type Option func(*Store)

// WithNowFunc overrides the store clock. Tests use this to backdate entries
// and to make freshness checks deterministic.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store with the given default freshness window.
// A non-positive maxAge falls back to one hour.
func New(maxAge time.Duration, opts ...Option) *Store {
	if maxAge <= 0 {
		maxAge = time.Hour
	}

	s := &Store{
		entries: make(map[string]Entry),
		maxAge:  maxAge,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key builds the composite cache key for a platform and content-type scope.
// An empty contentType means "all content types"; the scopes must never
// collide, so the unscoped form is spelled out explicitly.
func Key(platform, contentType string) string {
	if contentType == "" {
		contentType = "all"
	}
	return platform + ":" + contentType
}

// Put stores a value under key, stamped with the store clock.
// An existing entry for the same key is superseded.
func (s *Store) Put(key string, value any) {
	s.mu.Lock()
	s.entries[key] = Entry{Value: value, StoredAt: s.now()}
	total := int64(len(s.entries))
	s.mu.Unlock()

	s.statsMu.Lock()
	s.stats.TotalKeys = total
	s.statsMu.Unlock()
}

// GetFresh returns the entry for key if it was stored less than maxAge ago.
// A non-positive maxAge uses the store default. Stale or absent entries count
// as misses; stale entries are left in place for the Janitor (a concurrent
// Put may already have superseded them).
func (s *Store) GetFresh(key string, maxAge time.Duration) (Entry, bool) {
	if maxAge <= 0 {
		maxAge = s.maxAge
	}

	s.mu.RLock()
	entry, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists || s.now().Sub(entry.StoredAt) >= maxAge {
		s.recordMiss()
		return Entry{}, false
	}

	s.recordHit()
	return entry, true
}

// Delete removes a specific entry. No-op for absent keys.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	if _, exists := s.entries[key]; exists {
		delete(s.entries, key)
		s.mu.Unlock()
		s.recordEviction(1)
		return
	}
	s.mu.Unlock()
}

// Clear removes all entries in a single atomic operation.
func (s *Store) Clear() {
	s.mu.Lock()
	evicted := int64(len(s.entries))
	s.entries = make(map[string]Entry)
	s.mu.Unlock()

	s.statsMu.Lock()
	s.stats.Evictions += evicted
	s.stats.TotalKeys = 0
	s.statsMu.Unlock()
}

// Len returns the current number of entries, fresh or stale.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep removes entries older than the store's retention ceiling and returns
// the number removed. The Janitor calls this periodically; it only reclaims
// memory and never changes what GetFresh would return.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	evicted := 0
	for key, entry := range s.entries {
		if now.Sub(entry.StoredAt) >= s.maxAge {
			delete(s.entries, key)
			evicted++
		}
	}
	total := int64(len(s.entries))
	s.mu.Unlock()

	s.statsMu.Lock()
	s.stats.Evictions += int64(evicted)
	s.stats.TotalKeys = total
	s.stats.LastSweep = now
	s.statsMu.Unlock()

	return evicted
}

// GetStats returns a snapshot of the store counters.
func (s *Store) GetStats() Stats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return s.stats
}

// HitRate returns the hit rate as a percentage.
func (s *Store) HitRate() float64 {
	stats := s.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

func (s *Store) recordHit() {
	s.statsMu.Lock()
	s.stats.Hits++
	s.statsMu.Unlock()
}

func (s *Store) recordMiss() {
	s.statsMu.Lock()
	s.stats.Misses++
	s.statsMu.Unlock()
}

func (s *Store) recordEviction(n int64) {
	s.statsMu.Lock()
	s.stats.Evictions += n
	s.statsMu.Unlock()
}
