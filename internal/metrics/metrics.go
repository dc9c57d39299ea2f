// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

// Package metrics provides Prometheus instrumentation for the posting-time
// engine: lookup throughput and provenance, cache efficiency, resolver
// failures, and resolution latency.
//
// Collectors register on the default registry; the embedding application owns
// the /metrics exposition endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LookupsTotal counts posting-data lookups by platform and the
	// provenance of the returned window (api, aggregated, industry).
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postwise_lookups_total",
			Help: "Total posting-data lookups by platform and data source",
		},
		[]string{"platform", "data_source"},
	)

	// CacheHits counts lookups served from the TTL cache.
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postwise_cache_hits_total",
			Help: "Total posting-data cache hits",
		},
	)

	// CacheMisses counts lookups that required fresh resolution.
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "postwise_cache_misses_total",
			Help: "Total posting-data cache misses",
		},
	)

	// ResolverFailures counts source resolver errors, panics, and open
	// circuit breakers by platform. Each failure degrades the lookup to
	// industry benchmark data rather than surfacing an error.
	ResolverFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "postwise_resolver_failures_total",
			Help: "Total source resolver failures by platform",
		},
		[]string{"platform"},
	)

	// ResolveDuration observes end-to-end resolution latency for cache
	// misses. Resolution is table-driven today, so the buckets skew low;
	// they leave headroom for a real analytics client behind the same
	// interface.
	ResolveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "postwise_resolve_duration_seconds",
			Help:    "Posting-data resolution duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.025, 0.1, 0.5, 1, 2.5},
		},
		[]string{"platform"},
	)

	// CacheEntries tracks the current number of cached windows.
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "postwise_cache_entries",
			Help: "Current number of cached posting windows",
		},
	)
)
