// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.Cache.TTL = 0 },
			wantErr: "cache.ttl",
		},
		{
			name:    "negative sweep interval",
			mutate:  func(c *Config) { c.Cache.SweepInterval = -time.Minute },
			wantErr: "cache.sweep_interval",
		},
		{
			name:    "unknown default platform",
			mutate:  func(c *Config) { c.Platforms.Default = "myspace" },
			wantErr: "platforms.default",
		},
		{
			name:    "zero failure threshold",
			mutate:  func(c *Config) { c.Breaker.FailureThreshold = 0 },
			wantErr: "breaker.failure_threshold",
		},
		{
			name:    "zero breaker timeout",
			mutate:  func(c *Config) { c.Breaker.Timeout = 0 },
			wantErr: "breaker.timeout",
		},
		{
			name:    "zero best times limit",
			mutate:  func(c *Config) { c.Limits.MaxBestTimes = 0 },
			wantErr: "limits.max_best_times",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()

	clone.Cache.TTL = time.Minute
	clone.Platforms.Strict = true

	if cfg.Cache.TTL != 60*time.Minute {
		t.Error("mutating the clone changed the original TTL")
	}
	if cfg.Platforms.Strict {
		t.Error("mutating the clone changed the original strict flag")
	}
}

func TestConfigMarshalJSONDurationsAsStrings(t *testing.T) {
	data, err := json.Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got := string(data)
	for _, want := range []string{`"1h0m0s"`, `"5m0s"`, `"1m0s"`, `"30s"`} {
		if !strings.Contains(got, want) {
			t.Errorf("marshaled config missing %s: %s", want, got)
		}
	}
}
