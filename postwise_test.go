// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package postwise

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestEnumSets(t *testing.T) {
	if got := len(Platforms()); got != 7 {
		t.Errorf("%d platforms, want 7", got)
	}
	if got := len(ContentTypes()); got != 7 {
		t.Errorf("%d content types, want 7", got)
	}
}

func TestEngineEndToEnd(t *testing.T) {
	store := NewStore(time.Hour)
	engine, err := New(nil, zerolog.Nop(), store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	window, err := engine.PostingData(ctx, PlatformTikTok, &Options{ContentType: ContentTypeReel})
	if err != nil {
		t.Fatalf("PostingData: %v", err)
	}
	if window.Platform != PlatformTikTok {
		t.Errorf("Platform = %s, want tiktok", window.Platform)
	}
	if len(window.OptimalHours) == 0 {
		t.Error("empty optimal hours")
	}
	for _, h := range window.OptimalHours {
		if h < 18 || h > 23 {
			t.Errorf("tiktok reel hour %d outside [18,23]", h)
		}
	}

	report, err := engine.PostingInsights(ctx, PlatformLinkedIn)
	if err != nil {
		t.Fatalf("PostingInsights: %v", err)
	}
	if report.RequestID == "" || len(report.BestTimes) == 0 {
		t.Errorf("incomplete report: %+v", report)
	}

	if store.Len() == 0 {
		t.Error("lookups should have populated the shared store")
	}
}

func TestStrictModeError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Platforms.Strict = true

	engine, err := New(cfg, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = engine.PostingData(context.Background(), Platform("friendster"), nil)
	if !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("err = %v, want ErrUnsupportedPlatform", err)
	}
}

func TestJanitorUnderMaintenance(t *testing.T) {
	store := NewStore(time.Hour)
	m := NewMaintenance(SlogLogger(), DefaultMaintenanceConfig())
	m.Add(NewJanitor(store, time.Minute, zerolog.Nop()))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := m.ServeBackground(ctx)

	cancel()
	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("maintenance supervisor did not stop")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postwise.yaml")
	content := []byte("engine:\n  cache:\n    ttl: 20m\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.Engine.Cache.TTL != 20*time.Minute {
		t.Errorf("TTL = %v, want 20m", cfg.Engine.Cache.TTL)
	}

	engine, err := New(&cfg.Engine, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("New from loaded config: %v", err)
	}
	if engine.Config().Cache.TTL != 20*time.Minute {
		t.Errorf("engine TTL = %v, want 20m", engine.Config().Cache.TTL)
	}
}
