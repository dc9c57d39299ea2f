// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"context"
	"strings"
	"testing"
)

func TestContentTypeInsightsShape(t *testing.T) {
	for _, platform := range Platforms() {
		insights := contentTypeInsights(platform)

		if len(insights) != len(ContentTypes()) {
			t.Fatalf("%s: %d rows, want %d", platform, len(insights), len(ContentTypes()))
		}

		seen := make(map[ContentType]bool)
		for i, row := range insights {
			seen[row.ContentType] = true

			if row.AverageEngagement < 0 || row.AverageEngagement > 100 {
				t.Errorf("%s/%s: avg %d out of [0,100]", platform, row.ContentType, row.AverageEngagement)
			}
			if row.PeakEngagement < row.AverageEngagement {
				t.Errorf("%s/%s: peak %d < avg %d", platform, row.ContentType, row.PeakEngagement, row.AverageEngagement)
			}
			if row.PeakEngagement > 100 {
				t.Errorf("%s/%s: peak %d > 100", platform, row.ContentType, row.PeakEngagement)
			}
			if len(row.OptimalHours) == 0 || len(row.OptimalDays) == 0 {
				t.Errorf("%s/%s: empty optimal sets", platform, row.ContentType)
			}

			if i > 0 {
				prev := insights[i-1]
				if prev.AverageEngagement < row.AverageEngagement {
					t.Errorf("%s: rows not descending at %d: %d then %d",
						platform, i, prev.AverageEngagement, row.AverageEngagement)
				}
				if prev.AverageEngagement == row.AverageEngagement && prev.ContentType > row.ContentType {
					t.Errorf("%s: tie not broken by name at %d: %s then %s",
						platform, i, prev.ContentType, row.ContentType)
				}
			}
		}
		if len(seen) != len(ContentTypes()) {
			t.Errorf("%s: duplicate content types in insights", platform)
		}
	}
}

func TestContentTypeInsightsTikTokRanking(t *testing.T) {
	insights := contentTypeInsights(PlatformTikTok)

	if insights[0].ContentType != ContentTypeReel || insights[0].AverageEngagement != 90 {
		t.Errorf("top row = %s/%d, want reel/90", insights[0].ContentType, insights[0].AverageEngagement)
	}
	if insights[1].ContentType != ContentTypeShortVideo {
		t.Errorf("second row = %s, want short_video", insights[1].ContentType)
	}
	if !equalInts(insights[0].OptimalHours, []int{18, 19, 20, 21, 22, 23}) {
		t.Errorf("reel row hours = %v, want the adjusted [18..23]", insights[0].OptimalHours)
	}
}

func TestPostingInsights(t *testing.T) {
	e, _, clock := newTestEngine(t, nil)

	report, err := e.PostingInsights(context.Background(), PlatformLinkedIn)
	if err != nil {
		t.Fatalf("PostingInsights: %v", err)
	}

	if report.Platform != PlatformLinkedIn {
		t.Errorf("Platform = %s, want linkedin", report.Platform)
	}
	if report.RequestID == "" {
		t.Error("RequestID must be set")
	}
	if !report.GeneratedAt.Equal(clock.Now()) {
		t.Errorf("GeneratedAt = %v, want %v", report.GeneratedAt, clock.Now())
	}
	if len(report.CurrentPeakHours) == 0 {
		t.Error("CurrentPeakHours must mirror the window's optimal hours")
	}

	if len(report.BestTimes) == 0 {
		t.Fatal("expected best times")
	}
	if max := e.Config().Limits.MaxBestTimes; len(report.BestTimes) > max {
		t.Errorf("%d best times, want at most %d", len(report.BestTimes), max)
	}
	for i, bt := range report.BestTimes {
		if bt.DayOfWeek < 2 || bt.DayOfWeek > 4 {
			t.Errorf("slot %d day = %d, want Tue-Thu", i, bt.DayOfWeek)
		}
		if bt.Hour < 0 || bt.Hour > 23 {
			t.Errorf("slot %d hour out of range: %+v", i, bt)
		}
		if bt.EngagementScore < 0 || bt.EngagementScore > 100 {
			t.Errorf("slot %d score %d out of [0,100]", i, bt.EngagementScore)
		}
		if i > 0 && report.BestTimes[i-1].EngagementScore < bt.EngagementScore {
			t.Errorf("best times not descending at %d", i)
		}
	}

	// Every slot comes from the optimal cross-product, so all carry the
	// doubly-optimal score.
	if report.BestTimes[0].EngagementScore != 100 {
		t.Errorf("top slot score = %d, want 100", report.BestTimes[0].EngagementScore)
	}
}

func TestPostingInsightsRecommendations(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)

	report, err := e.PostingInsights(context.Background(), PlatformLinkedIn)
	if err != nil {
		t.Fatalf("PostingInsights: %v", err)
	}

	var hasDays, hasHours bool
	for _, rec := range report.Recommendations {
		if strings.HasPrefix(rec, "Best days to post: ") {
			hasDays = true
			// LinkedIn's days are Tue-Thu.
			if !strings.Contains(rec, "Tuesday") || !strings.Contains(rec, "Thursday") {
				t.Errorf("days recommendation missing expected names: %q", rec)
			}
		}
		if strings.HasPrefix(rec, "Peak engagement hours: ") {
			hasHours = true
			if !strings.Contains(rec, "08:00") {
				t.Errorf("hours recommendation missing zero-padded hour: %q", rec)
			}
		}
	}
	if !hasDays {
		t.Error("missing best-days recommendation")
	}
	if !hasHours {
		t.Error("missing peak-hours recommendation")
	}
}

func TestPostingInsightsStrictUnsupported(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Platforms.Strict = true
	e, _, _ := newTestEngine(t, cfg)

	if _, err := e.PostingInsights(context.Background(), Platform("myspace")); err == nil {
		t.Error("strict mode should propagate the unsupported-platform error")
	}
}

func TestPostingInsightsUniqueRequestIDs(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	ctx := context.Background()

	a, err := e.PostingInsights(ctx, PlatformX)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := e.PostingInsights(ctx, PlatformX)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if a.RequestID == b.RequestID {
		t.Error("request IDs should be unique per report")
	}
}

func TestBuildRecommendationsTrendNotes(t *testing.T) {
	base := &PostingWindow{
		OptimalHours: []int{9},
		OptimalDays:  []int{2},
	}

	tests := []struct {
		name  string
		trend TrendDirection
		want  string
	}{
		{"up", TrendUp, "trending up"},
		{"down", TrendDown, "trending down"},
		{"stable", TrendStable, "steady"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := base.Clone()
			w.TrendDirection = tt.trend

			recs := buildRecommendations(w)
			found := false
			for _, rec := range recs {
				if strings.Contains(rec, tt.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("recommendations %v missing %q note", recs, tt.want)
			}
		})
	}
}

func TestBuildRecommendationsHighEngagement(t *testing.T) {
	score := 80
	w := &PostingWindow{
		OptimalHours:           []int{9},
		OptimalDays:            []int{2},
		CurrentEngagementScore: &score,
	}

	recs := buildRecommendations(w)
	found := false
	for _, rec := range recs {
		if strings.Contains(rec, "within the hour") {
			found = true
		}
	}
	if !found {
		t.Errorf("recommendations %v missing high-engagement note", recs)
	}

	low := 40
	w.CurrentEngagementScore = &low
	for _, rec := range buildRecommendations(w) {
		if strings.Contains(rec, "within the hour") {
			t.Error("low score must not produce the high-engagement note")
		}
	}
}
