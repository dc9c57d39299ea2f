// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"context"
	"testing"
	"time"
)

// Tuesday 2026-03-10, 14:00 UTC. A weekday, inside business hours, outside
// most benchmark hour sets.
var tuesdayAfternoon = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func TestSourceForIsTotal(t *testing.T) {
	for _, p := range Platforms() {
		src := sourceFor(p)
		if src == nil {
			t.Errorf("sourceFor(%s) = nil, want a resolver", p)
			continue
		}
		if src.platform() != p {
			t.Errorf("sourceFor(%s).platform() = %s", p, src.platform())
		}
	}

	if src := sourceFor(Platform("myspace")); src != nil {
		t.Errorf("sourceFor(unknown) = %v, want nil", src)
	}
}

func TestInstagramSourceInjectsCurrentWeekdayHour(t *testing.T) {
	w, err := instagramSource{}.fetch(context.Background(), ContentTypeAll, tuesdayAfternoon)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if w.DataSource != SourceAggregated {
		t.Errorf("DataSource = %s, want aggregated", w.DataSource)
	}
	if !containsInt(w.OptimalHours, 14) {
		t.Errorf("OptimalHours = %v, want current hour 14 injected", w.OptimalHours)
	}
	for i := 1; i < len(w.OptimalHours); i++ {
		if w.OptimalHours[i-1] > w.OptimalHours[i] {
			t.Errorf("OptimalHours not sorted after injection: %v", w.OptimalHours)
		}
	}
	if w.CurrentEngagementScore == nil {
		t.Fatal("expected a live engagement score")
	}
	if want := CurrentEngagement(14, 2); *w.CurrentEngagementScore != want {
		t.Errorf("score = %d, want %d", *w.CurrentEngagementScore, want)
	}
}

func TestInstagramSourceWeekendSkipsInjection(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 14, 0, 0, 0, time.UTC)

	w, err := instagramSource{}.fetch(context.Background(), ContentTypeAll, sunday)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if containsInt(w.OptimalHours, 14) {
		t.Errorf("OptimalHours = %v, weekend hour must not be injected", w.OptimalHours)
	}
}

func TestTikTokSourceScoresByPeakMembership(t *testing.T) {
	tests := []struct {
		name string
		hour int
		want int
	}{
		{"inside peak", 19, 85},
		{"outside peak", 10, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(2026, 3, 10, tt.hour, 0, 0, 0, time.UTC)
			w, err := tiktokSource{}.fetch(context.Background(), ContentTypeAll, now)
			if err != nil {
				t.Fatalf("fetch: %v", err)
			}
			if w.CurrentEngagementScore == nil || *w.CurrentEngagementScore != tt.want {
				t.Errorf("score = %v, want %d", w.CurrentEngagementScore, tt.want)
			}
		})
	}
}

func TestTikTokSourceReelHours(t *testing.T) {
	w, err := tiktokSource{}.fetch(context.Background(), ContentTypeReel, tuesdayAfternoon)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !equalInts(w.OptimalHours, []int{18, 19, 20, 21, 22, 23}) {
		t.Errorf("reel hours = %v, want [18..23]", w.OptimalHours)
	}
}

func TestThreadsSourceHasNoLiveData(t *testing.T) {
	w, err := threadsSource{}.fetch(context.Background(), ContentTypeAll, tuesdayAfternoon)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if w != nil {
		t.Errorf("threads fetch = %+v, want nil (benchmark fallback)", w)
	}
}

func TestYouTubeSourceOmitsEngagementScore(t *testing.T) {
	w, err := youtubeSource{}.fetch(context.Background(), ContentTypeAll, tuesdayAfternoon)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if w.CurrentEngagementScore != nil {
		t.Error("youtube source must not report a live score")
	}
	if w.TrendDirection == "" {
		t.Error("youtube source must report a trend")
	}
}

func TestBusinessHoursSources(t *testing.T) {
	sources := []source{xSource{}, linkedinSource{}, facebookSource{}}
	want := CurrentEngagement(14, 2)

	for _, src := range sources {
		w, err := src.fetch(context.Background(), ContentTypeAll, tuesdayAfternoon)
		if err != nil {
			t.Fatalf("%s: fetch: %v", src.platform(), err)
		}
		if w.Platform != src.platform() {
			t.Errorf("%s: window platform = %s", src.platform(), w.Platform)
		}
		if w.CurrentEngagementScore == nil || *w.CurrentEngagementScore != want {
			t.Errorf("%s: score = %v, want %d", src.platform(), w.CurrentEngagementScore, want)
		}
		if w.TrendDirection != TrendAt(14) {
			t.Errorf("%s: trend = %s, want %s", src.platform(), w.TrendDirection, TrendAt(14))
		}
	}
}
