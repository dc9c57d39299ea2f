// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// dayNames maps day-of-week indices (0 = Sunday) to display names.
var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// highEngagementFloor is the live score at or above which the report
// suggests posting immediately.
const highEngagementFloor = 75

// contentTypeInsights builds the full cross-type comparison table for a
// platform: one row per content type in the closed set, sorted descending by
// average engagement with a stable name tiebreak. It runs for every resolved
// window regardless of the requested content-type filter.
func contentTypeInsights(platform Platform) []ContentTypePerformance {
	types := ContentTypes()
	insights := make([]ContentTypePerformance, 0, len(types))

	for _, ct := range types {
		hours := BenchmarkHours(platform)
		days := BenchmarkDays(platform)
		if adjHours, adjDays := Adjustments(platform, ct); len(adjHours) > 0 || len(adjDays) > 0 {
			if len(adjHours) > 0 {
				hours = adjHours
			}
			if len(adjDays) > 0 {
				days = adjDays
			}
		}

		avg := ContentTypeEngagement(ct, platform)
		peak := avg + peakEngagementBonus
		if peak > maxEngagement {
			peak = maxEngagement
		}

		insights = append(insights, ContentTypePerformance{
			ContentType:       ct,
			OptimalHours:      hours,
			OptimalDays:       days,
			AverageEngagement: avg,
			PeakEngagement:    peak,
			BestPlatforms:     BestPlatformsFor(ct),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		if insights[i].AverageEngagement != insights[j].AverageEngagement {
			return insights[i].AverageEngagement > insights[j].AverageEngagement
		}
		return insights[i].ContentType < insights[j].ContentType
	})

	return insights
}

// PostingInsights resolves the platform's posting window (cached semantics,
// no content-type filter) and expands it into a ranked best-times report
// with human-readable recommendations.
func (e *Engine) PostingInsights(ctx context.Context, platform Platform) (*InsightsReport, error) {
	requestID := uuid.NewString()
	logger := e.logger.With().
		Str("request_id", requestID).
		Str("platform", string(platform)).
		Logger()

	window, err := e.PostingData(ctx, platform, nil)
	if err != nil {
		return nil, err
	}

	bestTimes := e.rankBestTimes(window)

	report := &InsightsReport{
		Platform:         window.Platform,
		BestTimes:        bestTimes,
		CurrentPeakHours: append([]int(nil), window.OptimalHours...),
		Recommendations:  buildRecommendations(window),
		RequestID:        requestID,
		GeneratedAt:      e.now(),
	}

	logger.Debug().
		Int("best_times", len(report.BestTimes)).
		Str("data_source", string(window.DataSource)).
		Msg("insights report built")

	return report, nil
}

// rankBestTimes cross-products the window's optimal days and hours into
// scored slots, sorted by score descending with a deterministic (day, hour)
// tiebreak, truncated to the configured limit.
func (e *Engine) rankBestTimes(window *PostingWindow) []BestTime {
	slots := make([]BestTime, 0, len(window.OptimalDays)*len(window.OptimalHours))

	for _, day := range window.OptimalDays {
		for _, hour := range window.OptimalHours {
			slots = append(slots, BestTime{
				DayOfWeek:       day,
				Hour:            hour,
				EngagementScore: EngagementScore(day, hour, window.OptimalDays, window.OptimalHours),
			})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].EngagementScore != slots[j].EngagementScore {
			return slots[i].EngagementScore > slots[j].EngagementScore
		}
		if slots[i].DayOfWeek != slots[j].DayOfWeek {
			return slots[i].DayOfWeek < slots[j].DayOfWeek
		}
		return slots[i].Hour < slots[j].Hour
	})

	if max := e.config.Limits.MaxBestTimes; len(slots) > max {
		slots = slots[:max]
	}

	return slots
}

// buildRecommendations renders summary strings from fields already on the
// window. Pure formatting: no scoring or clock reads happen here.
func buildRecommendations(window *PostingWindow) []string {
	recs := make([]string, 0, 4)

	if len(window.OptimalDays) > 0 {
		names := make([]string, 0, len(window.OptimalDays))
		for _, day := range window.OptimalDays {
			if day >= 0 && day < len(dayNames) {
				names = append(names, dayNames[day])
			}
		}
		recs = append(recs, "Best days to post: "+strings.Join(names, ", "))
	}

	if len(window.OptimalHours) > 0 {
		hours := make([]string, 0, len(window.OptimalHours))
		for _, hour := range window.OptimalHours {
			hours = append(hours, fmt.Sprintf("%02d:00", hour))
		}
		recs = append(recs, "Peak engagement hours: "+strings.Join(hours, ", "))
	}

	switch window.TrendDirection {
	case TrendUp:
		recs = append(recs, "Engagement is trending up right now.")
	case TrendDown:
		recs = append(recs, "Engagement is trending down; consider scheduling for the next peak window.")
	case TrendStable:
		recs = append(recs, "Engagement is steady right now.")
	}

	if window.CurrentEngagementScore != nil && *window.CurrentEngagementScore >= highEngagementFloor {
		recs = append(recs, "Engagement is high right now. A post published within the hour should perform well.")
	}

	return recs
}
