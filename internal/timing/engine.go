// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/postwise/internal/cache"
	"github.com/tomtom215/postwise/internal/metrics"
)

// ErrUnsupportedPlatform is returned for platforms outside the supported set
// when Platforms.Strict is enabled. In lenient mode (the default) the engine
// degrades to the default platform's industry benchmark instead.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Engine resolves posting-time insights through a tiered chain: TTL cache,
// per-platform source resolver behind a circuit breaker, and the industry
// benchmark fallback. It is the sole owner of the cache; resolvers never
// touch it. Safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
	store  *cache.Store

	sources  map[Platform]source
	breakers map[Platform]*gobreaker.CircuitBreaker[*PostingWindow]

	// now is the engine clock. Replaceable via SetClock so tests control
	// cache aging and the simulated live signals.
	now func() time.Time
}

// NewEngine creates a posting-time engine.
//
// A nil cfg uses DefaultConfig. The cache store is an explicit dependency so
// callers control isolation and lifetime; a nil store gets a private one
// sized by cfg.Cache.TTL. Callers needing per-session isolation must not
// share a store across unrelated sessions.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, store *cache.Store) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if store == nil {
		store = cache.New(cfg.Cache.TTL)
	}

	e := &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "timing").Logger(),
		store:    store,
		sources:  make(map[Platform]source),
		breakers: make(map[Platform]*gobreaker.CircuitBreaker[*PostingWindow]),
		now:      time.Now,
	}

	for _, p := range Platforms() {
		e.sources[p] = sourceFor(p)
		e.breakers[p] = e.newBreaker(p)
	}

	return e, nil
}

// newBreaker builds the circuit breaker guarding one platform's resolver.
func (e *Engine) newBreaker(p Platform) *gobreaker.CircuitBreaker[*PostingWindow] {
	threshold := e.config.Breaker.FailureThreshold
	logger := e.logger

	return gobreaker.NewCircuitBreaker[*PostingWindow](gobreaker.Settings{
		Name:     "source-" + string(p),
		Interval: e.config.Breaker.Interval,
		Timeout:  e.config.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("source breaker state change")
		},
	})
}

// SetClock replaces the engine clock. Intended for tests and deterministic
// replays; not safe to call concurrently with lookups.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Store returns the engine's cache store, so the embedding application can
// wire a cache.Janitor or inspect hit rates.
func (e *Engine) Store() *cache.Store {
	return e.store
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// PostingData resolves the posting window for a platform, optionally scoped
// to a content type.
//
// Resolution order: valid cache entry (the only early return), source
// resolver, industry benchmark. Both resolver and fallback results are
// cached; benchmark data is valid, just lower provenance. For any supported
// platform the call always succeeds. Unknown platforms follow the
// Platforms.Strict setting.
func (e *Engine) PostingData(ctx context.Context, platform Platform, opts *Options) (*PostingWindow, error) {
	if opts == nil {
		opts = &Options{}
	}

	if !platform.Valid() {
		return e.handleUnsupported(platform, opts)
	}

	key := cache.Key(string(platform), string(opts.ContentType))
	logger := e.logger.With().
		Str("platform", string(platform)).
		Str("content_type", string(opts.ContentType)).
		Logger()

	useCache := e.config.Cache.Enabled && !opts.BypassCache
	maxAge := opts.CacheDuration
	if maxAge <= 0 {
		maxAge = e.config.Cache.TTL
	}

	if useCache {
		if entry, ok := e.store.GetFresh(key, maxAge); ok {
			metrics.CacheHits.Inc()
			logger.Debug().Msg("cache hit")
			return entry.Value.(*PostingWindow).Clone(), nil
		}
		metrics.CacheMisses.Inc()
	}

	start := time.Now()
	window := e.resolve(ctx, platform, opts.ContentType, logger)
	if window == nil {
		window = IndustryBenchmark(platform, opts.ContentType, e.now())
	}

	window.ContentTypeInsights = contentTypeInsights(platform)

	if e.config.Cache.Enabled {
		e.store.Put(key, window)
		metrics.CacheEntries.Set(float64(e.store.Len()))
	}

	metrics.LookupsTotal.WithLabelValues(string(platform), string(window.DataSource)).Inc()
	metrics.ResolveDuration.WithLabelValues(string(platform)).Observe(time.Since(start).Seconds())

	logger.Debug().
		Str("data_source", string(window.DataSource)).
		Ints("optimal_hours", window.OptimalHours).
		Msg("resolved posting window")

	return window.Clone(), nil
}

// resolve runs the platform's source resolver through its circuit breaker.
// Every failure mode, resolver error, resolver panic, or open breaker,
// collapses to nil so the caller falls back to benchmark data.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) resolve(ctx context.Context, platform Platform, contentType ContentType, logger zerolog.Logger) *PostingWindow {
	src := e.sources[platform]
	if src == nil {
		return nil
	}

	window, err := e.breakers[platform].Execute(func() (w *PostingWindow, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("source panic: %v", r)
			}
		}()
		return src.fetch(ctx, contentType, e.now())
	})
	if err != nil {
		metrics.ResolverFailures.WithLabelValues(string(platform)).Inc()
		logger.Warn().Err(err).Msg("source resolver failed, using industry benchmark")
		return nil
	}

	return window
}

// handleUnsupported applies the configured unknown-platform policy.
//
// Lenient mode answers with the default platform's industry benchmark and
// does not cache: the result is keyed to neither the requested platform (not
// a valid key) nor the default platform (a genuine lookup there deserves its
// own resolution).
func (e *Engine) handleUnsupported(platform Platform, opts *Options) (*PostingWindow, error) {
	if e.config.Platforms.Strict {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, platform)
	}

	fallback := e.config.Platforms.Default
	e.logger.Warn().
		Str("platform", string(platform)).
		Str("fallback", string(fallback)).
		Msg("unsupported platform, serving default benchmark")

	window := IndustryBenchmark(fallback, opts.ContentType, e.now())
	window.ContentTypeInsights = contentTypeInsights(fallback)
	metrics.LookupsTotal.WithLabelValues(string(fallback), string(SourceIndustry)).Inc()

	return window, nil
}
