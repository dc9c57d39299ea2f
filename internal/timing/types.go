// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"time"
)

// Platform identifies a supported social platform. The set is closed;
// resolver dispatch switches over every value so adding a platform without a
// resolver fails review, not runtime.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformX         Platform = "x"
	PlatformThreads   Platform = "threads"
	PlatformYouTube   Platform = "youtube"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
)

// Platforms returns the closed set of supported platforms in a fresh slice.
func Platforms() []Platform {
	return []Platform{
		PlatformInstagram,
		PlatformTikTok,
		PlatformX,
		PlatformThreads,
		PlatformYouTube,
		PlatformLinkedIn,
		PlatformFacebook,
	}
}

// Valid reports whether p is a member of the supported set.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformX, PlatformThreads,
		PlatformYouTube, PlatformLinkedIn, PlatformFacebook:
		return true
	default:
		return false
	}
}

// ContentType identifies the format of a post. The zero value means
// "all content types" and is used as the unscoped query filter.
type ContentType string

const (
	// ContentTypeAll is the absent filter: recommendations for the
	// platform as a whole.
	ContentTypeAll ContentType = ""

	ContentTypeReel        ContentType = "reel"
	ContentTypeShortVideo  ContentType = "short_video"
	ContentTypeCarousel    ContentType = "carousel"
	ContentTypeSingleImage ContentType = "single_image"
	ContentTypeVideo       ContentType = "video"
	ContentTypeStory       ContentType = "story"
	ContentTypeText        ContentType = "text"
)

// ContentTypes returns the closed set of content types in a fresh slice.
// ContentTypeAll is a filter value, not a member.
func ContentTypes() []ContentType {
	return []ContentType{
		ContentTypeReel,
		ContentTypeShortVideo,
		ContentTypeCarousel,
		ContentTypeSingleImage,
		ContentTypeVideo,
		ContentTypeStory,
		ContentTypeText,
	}
}

// Valid reports whether c is a member of the closed set.
// ContentTypeAll is not a member; it is the absence of a filter.
func (c ContentType) Valid() bool {
	switch c {
	case ContentTypeReel, ContentTypeShortVideo, ContentTypeCarousel,
		ContentTypeSingleImage, ContentTypeVideo, ContentTypeStory, ContentTypeText:
		return true
	default:
		return false
	}
}

// DataSource tags the provenance of a posting window.
type DataSource string

const (
	// SourceAPI marks data from a real analytics API client. Reserved:
	// no such client ships today, but resolvers are interface-shaped so
	// one can be substituted without touching the engine.
	SourceAPI DataSource = "api"

	// SourceAggregated marks data from a simulated/aggregated source.
	SourceAggregated DataSource = "aggregated"

	// SourceIndustry marks the always-available benchmark fallback.
	// Consumers should treat it as "live personalization unavailable",
	// not as an error.
	SourceIndustry DataSource = "industry"
)

// TrendDirection describes where engagement is heading at the current hour.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// PostingWindow is the resolved posting-time insight for one
// platform/content-type pair. It is immutable once returned; the engine hands
// out defensive copies of cached windows, and callers must not mutate them.
type PostingWindow struct {
	// Platform the window applies to.
	Platform Platform `json:"platform" koanf:"platform"`

	// ContentType scope; empty means all content types.
	ContentType ContentType `json:"content_type,omitempty" koanf:"content_type"`

	// OptimalHours are the best hours to publish, ascending, in [0,23].
	// Non-empty after resolution.
	OptimalHours []int `json:"optimal_hours" koanf:"optimal_hours"`

	// OptimalDays are the best days to publish, ascending, in [0,6]
	// with 0 = Sunday. Non-empty after resolution.
	OptimalDays []int `json:"optimal_days" koanf:"optimal_days"`

	// CurrentEngagementScore is the simulated live engagement level in
	// [0,100]. Present only when a live/simulated source contributed it.
	CurrentEngagementScore *int `json:"current_engagement_score,omitempty" koanf:"current_engagement_score"`

	// TrendDirection at resolution time, when a source contributed it.
	TrendDirection TrendDirection `json:"trend_direction,omitempty" koanf:"trend_direction"`

	// DataSource tags provenance: api, aggregated, or industry.
	DataSource DataSource `json:"data_source" koanf:"data_source"`

	// Timestamp is the creation instant, used for cache-age evaluation.
	Timestamp time.Time `json:"timestamp" koanf:"timestamp"`

	// ContentTypeInsights compares every content type on this platform,
	// sorted descending by AverageEngagement. Always populated,
	// regardless of the ContentType filter.
	ContentTypeInsights []ContentTypePerformance `json:"content_type_insights" koanf:"content_type_insights"`
}

// Clone returns a deep copy. Cached windows are cloned on every cache hit so
// a caller mutation can never corrupt later reads.
func (w *PostingWindow) Clone() *PostingWindow {
	if w == nil {
		return nil
	}

	out := *w
	out.OptimalHours = append([]int(nil), w.OptimalHours...)
	out.OptimalDays = append([]int(nil), w.OptimalDays...)

	if w.CurrentEngagementScore != nil {
		score := *w.CurrentEngagementScore
		out.CurrentEngagementScore = &score
	}

	if w.ContentTypeInsights != nil {
		out.ContentTypeInsights = make([]ContentTypePerformance, len(w.ContentTypeInsights))
		for i := range w.ContentTypeInsights {
			out.ContentTypeInsights[i] = w.ContentTypeInsights[i].clone()
		}
	}

	return &out
}

// ContentTypePerformance is one row of the cross-type comparison table.
type ContentTypePerformance struct {
	// ContentType this row describes.
	ContentType ContentType `json:"content_type" koanf:"content_type"`

	// OptimalHours specific to this content type on the platform.
	OptimalHours []int `json:"optimal_hours" koanf:"optimal_hours"`

	// OptimalDays specific to this content type on the platform.
	OptimalDays []int `json:"optimal_days" koanf:"optimal_days"`

	// AverageEngagement is the expected engagement in [0,100].
	AverageEngagement int `json:"average_engagement" koanf:"average_engagement"`

	// PeakEngagement is AverageEngagement + 15 capped at 100, so it is
	// always >= AverageEngagement.
	PeakEngagement int `json:"peak_engagement" koanf:"peak_engagement"`

	// BestPlatforms ranks platforms for this content type.
	BestPlatforms []Platform `json:"best_platforms" koanf:"best_platforms"`
}

func (p ContentTypePerformance) clone() ContentTypePerformance {
	out := p
	out.OptimalHours = append([]int(nil), p.OptimalHours...)
	out.OptimalDays = append([]int(nil), p.OptimalDays...)
	out.BestPlatforms = append([]Platform(nil), p.BestPlatforms...)
	return out
}

// Options scope a posting-data lookup. The zero value means: all content
// types, cache enabled, config-default cache duration.
type Options struct {
	// ContentType filters the lookup; empty means all content types.
	ContentType ContentType `json:"content_type,omitempty"`

	// BypassCache skips the cache read. The resolved window is still
	// written back so later cached lookups benefit.
	BypassCache bool `json:"bypass_cache,omitempty"`

	// CacheDuration is the freshness window for this lookup.
	// Zero uses the configured default (60 minutes out of the box).
	CacheDuration time.Duration `json:"cache_duration,omitempty"`
}

// BestTime is one scored (day, hour) publishing slot.
type BestTime struct {
	// DayOfWeek in [0,6], 0 = Sunday.
	DayOfWeek int `json:"day_of_week"`

	// Hour in [0,23].
	Hour int `json:"hour"`

	// EngagementScore in [0,100].
	EngagementScore int `json:"engagement_score"`
}

// InsightsReport is the human-oriented view produced by PostingInsights.
type InsightsReport struct {
	// Platform the report covers.
	Platform Platform `json:"platform"`

	// BestTimes are the top scored (day, hour) slots, descending.
	BestTimes []BestTime `json:"best_times"`

	// CurrentPeakHours mirrors the resolved window's optimal hours.
	CurrentPeakHours []int `json:"current_peak_hours"`

	// Recommendations are human-readable summary strings.
	Recommendations []string `json:"recommendations"`

	// RequestID correlates the report with engine logs.
	RequestID string `json:"request_id"`

	// GeneratedAt is when the report was built.
	GeneratedAt time.Time `json:"generated_at"`
}
