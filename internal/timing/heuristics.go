// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

// Engagement heuristics. All functions here are pure, total over their input
// domains, and clamp results to [0,100]; they never fail for any input.

// maxEngagement is the ceiling for every synthetic engagement score.
const maxEngagement = 100

// ContentTypeEngagement returns the base engagement score for a content type
// on a platform. Unmapped pairs, including unknown content types or
// platforms, score defaultEngagement.
func ContentTypeEngagement(contentType ContentType, platform Platform) int {
	if byType, ok := contentTypeEngagement[platform]; ok {
		if score, ok := byType[contentType]; ok {
			return score
		}
	}
	return defaultEngagement
}

// CurrentEngagement models generic business-hours engagement for an (hour,
// day) pair. It has no platform or content-type awareness; only resolvers
// that simulate business-hours audiences use it.
//
// Base 50; +20 for hours 9-17; +15 for weekdays (Mon-Fri); +15 for the
// midday band 10-15.
func CurrentEngagement(hour, day int) int {
	score := 50

	if hour >= 9 && hour <= 17 {
		score += 20
	}
	if day >= 1 && day <= 5 {
		score += 15
	}
	if hour >= 10 && hour <= 15 {
		score += 15
	}

	return clampScore(score)
}

// TrendAt returns the engagement trend for an hour of day.
// Total over [0,23]: morning and evening ramps trend up, late night trends
// down, and everything else is stable.
func TrendAt(hour int) TrendDirection {
	switch {
	case (hour >= 8 && hour <= 12) || (hour >= 18 && hour <= 21):
		return TrendUp
	case hour >= 22 || hour <= 6:
		return TrendDown
	default:
		return TrendStable
	}
}

// EngagementScore scores a (day, hour) publishing slot against a window's
// optimal sets. Base 50; +20 for an optimal day; +30 for an optimal hour;
// +20 extra when both hold, so a doubly-optimal slot always outranks a
// singly-optimal one, which outranks a non-optimal one.
func EngagementScore(day, hour int, optimalDays, optimalHours []int) int {
	score := 50

	dayHit := containsInt(optimalDays, day)
	hourHit := containsInt(optimalHours, hour)

	if dayHit {
		score += 20
	}
	if hourHit {
		score += 30
	}
	if dayHit && hourHit {
		score += 20
	}

	return clampScore(score)
}

// BestPlatformsFor returns the platform ranking for a content type, best
// first. Unrecognized content types get an empty ranking.
func BestPlatformsFor(contentType ContentType) []Platform {
	ranked, ok := bestPlatformsByType[contentType]
	if !ok {
		return []Platform{}
	}
	return append([]Platform(nil), ranked...)
}

func clampScore(score int) int {
	if score > maxEngagement {
		return maxEngagement
	}
	return score
}

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
