// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"time"
)

// Static industry benchmark tables. These are the guaranteed-available
// fallback for every supported platform and the substrate every source
// resolver layers on top of. They are immutable at runtime; accessors return
// copies so no caller can reach the shared backing arrays.

// benchmark holds the platform-wide optimal posting hours and days.
type benchmark struct {
	hours []int
	days  []int
}

// platformBenchmarks maps each supported platform to its industry benchmark.
// Days use 0 = Sunday.
var platformBenchmarks = map[Platform]benchmark{
	PlatformInstagram: {hours: []int{11, 12, 13, 17, 18, 19}, days: []int{1, 2, 3, 4}},
	PlatformTikTok:    {hours: []int{18, 19, 20, 21}, days: []int{1, 2, 4, 5}},
	PlatformX:         {hours: []int{8, 9, 12, 17}, days: []int{1, 2, 3, 4, 5}},
	PlatformThreads:   {hours: []int{9, 10, 19, 20}, days: []int{0, 1, 3, 6}},
	PlatformYouTube:   {hours: []int{14, 15, 16, 17, 18}, days: []int{4, 5, 6}},
	PlatformLinkedIn:  {hours: []int{8, 9, 10, 12, 17}, days: []int{2, 3, 4}},
	PlatformFacebook:  {hours: []int{9, 13, 15, 19}, days: []int{0, 3, 4, 6}},
}

// contentTypeAdjustments overrides benchmark hours/days for specific
// (platform, content type) pairs. A missing pair, or an empty slice within a
// pair, means "use the unadjusted benchmark" for that dimension.
var contentTypeAdjustments = map[Platform]map[ContentType]benchmark{
	PlatformInstagram: {
		ContentTypeReel:     {hours: []int{9, 12, 15, 18, 21}, days: []int{1, 3, 5}},
		ContentTypeCarousel: {hours: []int{11, 13, 19}, days: []int{1, 2, 3}},
		// Stories follow daily routines more than weekly ones, so only
		// the hours are overridden.
		ContentTypeStory: {hours: []int{7, 8, 12, 17, 20}},
	},
	PlatformTikTok: {
		ContentTypeReel:       {hours: []int{18, 19, 20, 21, 22, 23}, days: []int{1, 2, 4, 5}},
		ContentTypeShortVideo: {hours: []int{18, 19, 20, 21, 22, 23}, days: []int{1, 2, 4, 5}},
	},
	PlatformX: {
		ContentTypeText: {hours: []int{8, 9, 12, 17, 18}, days: []int{1, 2, 3, 4, 5}},
	},
	PlatformYouTube: {
		ContentTypeVideo:      {hours: []int{14, 15, 16, 17}, days: []int{4, 5, 6}},
		ContentTypeShortVideo: {hours: []int{12, 15, 18, 20}, days: []int{5, 6}},
	},
	PlatformLinkedIn: {
		ContentTypeText:        {hours: []int{7, 8, 9, 12}, days: []int{2, 3, 4}},
		ContentTypeSingleImage: {hours: []int{9, 10, 12}, days: []int{2, 3}},
		ContentTypeVideo:       {hours: []int{8, 12, 17}, days: []int{2, 3, 4}},
	},
	PlatformFacebook: {
		ContentTypeVideo: {hours: []int{13, 15, 19, 20}, days: []int{3, 4, 6}},
		ContentTypeStory: {hours: []int{8, 12, 19}, days: []int{0, 6}},
	},
}

// contentTypeEngagement maps (platform, content type) to a base engagement
// score in [0,100]. Unmapped pairs score defaultEngagement.
var contentTypeEngagement = map[Platform]map[ContentType]int{
	PlatformInstagram: {
		ContentTypeReel:        85,
		ContentTypeCarousel:    72,
		ContentTypeStory:       70,
		ContentTypeVideo:       68,
		ContentTypeSingleImage: 65,
	},
	PlatformTikTok: {
		ContentTypeReel:       90,
		ContentTypeShortVideo: 88,
		ContentTypeVideo:      75,
	},
	PlatformX: {
		ContentTypeText:        66,
		ContentTypeVideo:       64,
		ContentTypeSingleImage: 61,
	},
	PlatformThreads: {
		ContentTypeText:        67,
		ContentTypeSingleImage: 59,
	},
	PlatformYouTube: {
		ContentTypeVideo:      82,
		ContentTypeShortVideo: 76,
	},
	PlatformLinkedIn: {
		ContentTypeVideo:       71,
		ContentTypeText:        68,
		ContentTypeCarousel:    66,
		ContentTypeSingleImage: 62,
	},
	PlatformFacebook: {
		ContentTypeVideo:       69,
		ContentTypeCarousel:    63,
		ContentTypeStory:       61,
		ContentTypeSingleImage: 60,
	},
}

// defaultEngagement is the score for any (platform, content type) pair
// missing from the table. Lookups never fail.
const defaultEngagement = 60

// peakEngagementBonus is added to the average to model the best-case slot.
const peakEngagementBonus = 15

// bestPlatformsByType ranks platforms per content type, best first.
var bestPlatformsByType = map[ContentType][]Platform{
	ContentTypeReel:        {PlatformInstagram, PlatformTikTok, PlatformFacebook},
	ContentTypeShortVideo:  {PlatformTikTok, PlatformYouTube, PlatformInstagram},
	ContentTypeCarousel:    {PlatformInstagram, PlatformLinkedIn, PlatformFacebook},
	ContentTypeSingleImage: {PlatformInstagram, PlatformX, PlatformFacebook},
	ContentTypeVideo:       {PlatformYouTube, PlatformFacebook, PlatformLinkedIn},
	ContentTypeStory:       {PlatformInstagram, PlatformFacebook},
	ContentTypeText:        {PlatformX, PlatformThreads, PlatformLinkedIn},
}

// BenchmarkHours returns the platform's benchmark posting hours.
// Unknown platforms get the Instagram table, the historical default.
func BenchmarkHours(platform Platform) []int {
	return append([]int(nil), benchmarkFor(platform).hours...)
}

// BenchmarkDays returns the platform's benchmark posting days.
func BenchmarkDays(platform Platform) []int {
	return append([]int(nil), benchmarkFor(platform).days...)
}

func benchmarkFor(platform Platform) benchmark {
	if b, ok := platformBenchmarks[platform]; ok {
		return b
	}
	return platformBenchmarks[PlatformInstagram]
}

// Adjustments returns the content-type hour/day overrides for the pair.
// Both slices are empty when no override exists; callers treat an empty
// slice as "use the unadjusted benchmark". Unknown content types are
// indistinguishable from unadjusted ones, so malformed filters degrade
// silently to the platform benchmark.
func Adjustments(platform Platform, contentType ContentType) (hours, days []int) {
	byType, ok := contentTypeAdjustments[platform]
	if !ok {
		return nil, nil
	}
	adj, ok := byType[contentType]
	if !ok {
		return nil, nil
	}
	return append([]int(nil), adj.hours...), append([]int(nil), adj.days...)
}

// IndustryBenchmark returns the guaranteed-available fallback window for a
// platform, scoped to contentType when an adjustment exists. It never fails,
// and the clock is used only to stamp the window.
func IndustryBenchmark(platform Platform, contentType ContentType, now time.Time) *PostingWindow {
	w := &PostingWindow{
		Platform:     platform,
		ContentType:  contentType,
		OptimalHours: BenchmarkHours(platform),
		OptimalDays:  BenchmarkDays(platform),
		DataSource:   SourceIndustry,
		Timestamp:    now,
	}
	applyAdjustments(w, platform, contentType)
	return w
}

// applyAdjustments overrides the window's hours/days with the content-type
// table, each dimension independently and only when non-empty.
func applyAdjustments(w *PostingWindow, platform Platform, contentType ContentType) {
	hours, days := Adjustments(platform, contentType)
	if len(hours) > 0 {
		w.OptimalHours = hours
	}
	if len(days) > 0 {
		w.OptimalDays = days
	}
}
