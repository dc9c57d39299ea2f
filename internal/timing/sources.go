// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"context"
	"sort"
	"time"
)

// source produces a best-effort posting window for one platform.
//
// Implementations layer the industry benchmark, the content-type adjustment
// override, and a platform-specific live/simulated augmentation. Returning
// (nil, nil) means "no live data available" and is not an error; the engine
// falls back to the industry benchmark. The interface takes a context so a
// real analytics client can be substituted without changing the engine;
// today's implementations resolve synchronously from static tables.
type source interface {
	platform() Platform

	fetch(ctx context.Context, contentType ContentType, now time.Time) (*PostingWindow, error)
}

// sourceFor selects the resolver for a platform. The switch is total over
// the closed platform set; unknown platforms get no resolver and degrade to
// benchmark data.
func sourceFor(p Platform) source {
	switch p {
	case PlatformInstagram:
		return instagramSource{}
	case PlatformTikTok:
		return tiktokSource{}
	case PlatformX:
		return xSource{}
	case PlatformThreads:
		return threadsSource{}
	case PlatformYouTube:
		return youtubeSource{}
	case PlatformLinkedIn:
		return linkedinSource{}
	case PlatformFacebook:
		return facebookSource{}
	default:
		return nil
	}
}

// aggregatedBase builds the benchmark-plus-adjustments window that every
// simulated source starts from.
func aggregatedBase(p Platform, contentType ContentType, now time.Time) *PostingWindow {
	w := IndustryBenchmark(p, contentType, now)
	w.DataSource = SourceAggregated
	return w
}

// instagramSource simulates Instagram audience data: on weekdays the current
// hour is injected into the optimal set, and a business-hours engagement
// score and trend are attached.
type instagramSource struct{}

func (instagramSource) platform() Platform { return PlatformInstagram }

func (instagramSource) fetch(_ context.Context, contentType ContentType, now time.Time) (*PostingWindow, error) {
	w := aggregatedBase(PlatformInstagram, contentType, now)

	hour := now.Hour()
	day := int(now.Weekday())

	if day >= 1 && day <= 5 && !containsInt(w.OptimalHours, hour) {
		w.OptimalHours = append(w.OptimalHours, hour)
		sort.Ints(w.OptimalHours)
	}

	score := CurrentEngagement(hour, day)
	w.CurrentEngagementScore = &score
	w.TrendDirection = TrendAt(hour)

	return w, nil
}

// tiktokSource simulates TikTok audience data: the engagement score is
// driven by whether the current hour falls inside the peak set.
type tiktokSource struct{}

func (tiktokSource) platform() Platform { return PlatformTikTok }

func (tiktokSource) fetch(_ context.Context, contentType ContentType, now time.Time) (*PostingWindow, error) {
	w := aggregatedBase(PlatformTikTok, contentType, now)

	hour := now.Hour()
	score := 55
	if containsInt(w.OptimalHours, hour) {
		score = 85
	}
	w.CurrentEngagementScore = &score
	w.TrendDirection = TrendAt(hour)

	return w, nil
}

// xSource simulates X audience data with the generic business-hours model.
type xSource struct{}

func (xSource) platform() Platform { return PlatformX }

func (xSource) fetch(_ context.Context, contentType ContentType, now time.Time) (*PostingWindow, error) {
	w := aggregatedBase(PlatformX, contentType, now)

	score := CurrentEngagement(now.Hour(), int(now.Weekday()))
	w.CurrentEngagementScore = &score
	w.TrendDirection = TrendAt(now.Hour())

	return w, nil
}

// threadsSource has no simulated feed yet; every fetch reports no live data
// so Threads lookups always resolve through the industry benchmark.
type threadsSource struct{}

func (threadsSource) platform() Platform { return PlatformThreads }

func (threadsSource) fetch(_ context.Context, _ ContentType, _ time.Time) (*PostingWindow, error) {
	return nil, nil
}

// youtubeSource simulates YouTube schedule data. It contributes hours, days,
// and a trend but no live engagement score, exercising the optional-score
// contract.
type youtubeSource struct{}

func (youtubeSource) platform() Platform { return PlatformYouTube }

func (youtubeSource) fetch(_ context.Context, contentType ContentType, now time.Time) (*PostingWindow, error) {
	w := aggregatedBase(PlatformYouTube, contentType, now)
	w.TrendDirection = TrendAt(now.Hour())
	return w, nil
}

// linkedinSource simulates LinkedIn audience data; its audience is the
// closest match for the generic business-hours model.
type linkedinSource struct{}

func (linkedinSource) platform() Platform { return PlatformLinkedIn }

func (linkedinSource) fetch(_ context.Context, contentType ContentType, now time.Time) (*PostingWindow, error) {
	w := aggregatedBase(PlatformLinkedIn, contentType, now)

	score := CurrentEngagement(now.Hour(), int(now.Weekday()))
	w.CurrentEngagementScore = &score
	w.TrendDirection = TrendAt(now.Hour())

	return w, nil
}

// facebookSource simulates Facebook audience data.
type facebookSource struct{}

func (facebookSource) platform() Platform { return PlatformFacebook }

func (facebookSource) fetch(_ context.Context, contentType ContentType, now time.Time) (*PostingWindow, error) {
	w := aggregatedBase(PlatformFacebook, contentType, now)

	score := CurrentEngagement(now.Hour(), int(now.Weekday()))
	w.CurrentEngagementScore = &score
	w.TrendDirection = TrendAt(now.Hour())

	return w, nil
}
