// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

// Package postwise recommends when to publish on social platforms.
//
// Given a platform and an optional content type it answers with optimal
// posting hours and days, a synthetic engagement score, a trend signal, and a
// ranked cross-type performance comparison. Answers resolve through a tiered
// chain (TTL cache, per-platform resolver behind a circuit breaker, industry
// benchmark tables) so a lookup for any supported platform never fails.
//
// Minimal use:
//
//	engine, err := postwise.New(nil, postwise.Logger(), nil)
//	if err != nil { ... }
//	window, _ := engine.PostingData(ctx, postwise.PlatformTikTok, &postwise.Options{
//		ContentType: postwise.ContentTypeReel,
//	})
//
// For long-lived processes, run a Janitor under a Maintenance supervisor to
// reclaim memory from expired cache entries:
//
//	store := postwise.NewStore(time.Hour)
//	engine, _ := postwise.New(cfg, logger, store)
//	m := postwise.NewMaintenance(postwise.SlogLogger(), postwise.DefaultMaintenanceConfig())
//	m.Add(postwise.NewJanitor(store, 5*time.Minute, logger))
//	go m.Serve(ctx)
package postwise

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/postwise/internal/cache"
	"github.com/tomtom215/postwise/internal/timing"
)

// Core types, re-exported from the engine.
type (
	Engine         = timing.Engine
	Config         = timing.Config
	Options        = timing.Options
	PostingWindow  = timing.PostingWindow
	InsightsReport = timing.InsightsReport
	BestTime       = timing.BestTime

	ContentTypePerformance = timing.ContentTypePerformance

	Platform       = timing.Platform
	ContentType    = timing.ContentType
	DataSource     = timing.DataSource
	TrendDirection = timing.TrendDirection

	// Store is the TTL cache backing an Engine. Share one across engines
	// only when those engines should share results.
	Store = cache.Store

	// Janitor periodically sweeps expired entries out of a Store. It
	// implements suture.Service.
	Janitor = cache.Janitor
)

// Supported platforms.
const (
	PlatformInstagram = timing.PlatformInstagram
	PlatformTikTok    = timing.PlatformTikTok
	PlatformX         = timing.PlatformX
	PlatformThreads   = timing.PlatformThreads
	PlatformYouTube   = timing.PlatformYouTube
	PlatformLinkedIn  = timing.PlatformLinkedIn
	PlatformFacebook  = timing.PlatformFacebook
)

// Content types. ContentTypeAll (the zero value) means no filter.
const (
	ContentTypeAll         = timing.ContentTypeAll
	ContentTypeReel        = timing.ContentTypeReel
	ContentTypeShortVideo  = timing.ContentTypeShortVideo
	ContentTypeCarousel    = timing.ContentTypeCarousel
	ContentTypeSingleImage = timing.ContentTypeSingleImage
	ContentTypeVideo       = timing.ContentTypeVideo
	ContentTypeStory       = timing.ContentTypeStory
	ContentTypeText        = timing.ContentTypeText
)

// Data provenance markers.
const (
	SourceAPI        = timing.SourceAPI
	SourceAggregated = timing.SourceAggregated
	SourceIndustry   = timing.SourceIndustry
)

// Trend signals.
const (
	TrendUp     = timing.TrendUp
	TrendDown   = timing.TrendDown
	TrendStable = timing.TrendStable
)

// ErrUnsupportedPlatform is returned for unknown platforms when strict
// platform checking is enabled.
var ErrUnsupportedPlatform = timing.ErrUnsupportedPlatform

// Platforms returns the closed set of supported platforms.
func Platforms() []Platform { return timing.Platforms() }

// ContentTypes returns the closed set of content types.
func ContentTypes() []ContentType { return timing.ContentTypes() }

// DefaultConfig returns the engine configuration defaults.
func DefaultConfig() *Config { return timing.DefaultConfig() }

// New creates a posting-time engine. A nil cfg uses DefaultConfig; a nil
// store gets a private cache sized by the configured TTL.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg *Config, logger zerolog.Logger, store *Store) (*Engine, error) {
	return timing.NewEngine(cfg, logger, store)
}

// NewStore creates a standalone TTL cache store, for callers that want to
// control cache lifetime or share one across engines.
func NewStore(ttl time.Duration) *Store {
	return cache.New(ttl)
}

// NewJanitor creates a background sweeper for a store. Run it under a
// suture supervisor (see internal/supervisor) or any runner that calls
// Serve(ctx).
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewJanitor(store *Store, interval time.Duration, logger zerolog.Logger) *Janitor {
	return cache.NewJanitor(store, interval, logger)
}
