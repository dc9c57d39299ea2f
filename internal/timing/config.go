// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package timing

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Config contains all configuration for the posting-time engine.
type Config struct {
	// Cache contains TTL cache parameters.
	Cache CacheConfig `json:"cache" koanf:"cache"`

	// Platforms controls how inputs outside the supported set are handled.
	Platforms PlatformConfig `json:"platforms" koanf:"platforms"`

	// Breaker contains circuit breaker parameters for source resolvers.
	Breaker BreakerConfig `json:"breaker" koanf:"breaker"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// CacheConfig contains TTL cache parameters.
type CacheConfig struct {
	// Enabled controls whether lookups read and write the cache.
	// Default: true.
	Enabled bool `json:"enabled" koanf:"enabled"`

	// TTL is the default freshness window for cached windows, overridable
	// per lookup via Options.CacheDuration.
	// Default: 60m.
	TTL time.Duration `json:"ttl" koanf:"ttl" validate:"min=0"`

	// SweepInterval is how often the optional janitor reclaims stale
	// entries. Default: 5m.
	SweepInterval time.Duration `json:"sweep_interval" koanf:"sweep_interval" validate:"min=0"`
}

// PlatformConfig controls unsupported-platform behavior.
//
// The lenient default mirrors the historical behavior of falling through to a
// default platform's benchmark. Strict mode surfaces
// ErrUnsupportedPlatform instead, for callers that prefer an explicit signal
// over a silent degrade.
type PlatformConfig struct {
	// Strict makes lookups for unknown platforms fail with
	// ErrUnsupportedPlatform. Default: false.
	Strict bool `json:"strict" koanf:"strict"`

	// Default is the platform whose industry benchmark answers unknown
	// platform lookups in lenient mode. Default: instagram.
	Default Platform `json:"default" koanf:"default"`
}

// BreakerConfig contains circuit breaker parameters for source resolvers.
// An open breaker degrades lookups to industry benchmark data.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive resolver failures
	// that trips the breaker. Default: 3.
	FailureThreshold uint32 `json:"failure_threshold" koanf:"failure_threshold" validate:"min=1"`

	// Interval is the cyclic period in which the breaker clears its
	// failure counts while closed. Default: 60s.
	Interval time.Duration `json:"interval" koanf:"interval" validate:"min=0"`

	// Timeout is how long an open breaker waits before probing the
	// resolver again. Default: 30s.
	Timeout time.Duration `json:"timeout" koanf:"timeout" validate:"min=0"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// MaxBestTimes caps the scored (day, hour) slots in an insights
	// report. Default: 10.
	MaxBestTimes int `json:"max_best_times" koanf:"max_best_times" validate:"min=1"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled:       true,
			TTL:           60 * time.Minute,
			SweepInterval: 5 * time.Minute,
		},
		Platforms: PlatformConfig{
			Strict:  false,
			Default: PlatformInstagram,
		},
		Breaker: BreakerConfig{
			FailureThreshold: 3,
			Interval:         60 * time.Second,
			Timeout:          30 * time.Second,
		},
		Limits: LimitsConfig{
			MaxBestTimes: 10,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
	}
	if c.Cache.SweepInterval <= 0 {
		return fmt.Errorf("cache.sweep_interval must be positive, got %v", c.Cache.SweepInterval)
	}

	if !c.Platforms.Default.Valid() {
		return fmt.Errorf("platforms.default must be a supported platform, got %q", c.Platforms.Default)
	}

	if c.Breaker.FailureThreshold == 0 {
		return fmt.Errorf("breaker.failure_threshold must be positive")
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("breaker.timeout must be positive, got %v", c.Breaker.Timeout)
	}

	if c.Limits.MaxBestTimes < 1 {
		return fmt.Errorf("limits.max_best_times must be positive, got %d", c.Limits.MaxBestTimes)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - all nested structs contain only value types
	out := *c
	return &out
}

// MarshalJSON renders duration fields as human-readable strings.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		Cache struct {
			Enabled       bool   `json:"enabled"`
			TTL           string `json:"ttl"`
			SweepInterval string `json:"sweep_interval"`
		} `json:"cache"`
		Breaker struct {
			FailureThreshold uint32 `json:"failure_threshold"`
			Interval         string `json:"interval"`
			Timeout          string `json:"timeout"`
		} `json:"breaker"`
	}{
		Alias: (*Alias)(c),
		Cache: struct {
			Enabled       bool   `json:"enabled"`
			TTL           string `json:"ttl"`
			SweepInterval string `json:"sweep_interval"`
		}{
			Enabled:       c.Cache.Enabled,
			TTL:           c.Cache.TTL.String(),
			SweepInterval: c.Cache.SweepInterval.String(),
		},
		Breaker: struct {
			FailureThreshold uint32 `json:"failure_threshold"`
			Interval         string `json:"interval"`
			Timeout          string `json:"timeout"`
		}{
			FailureThreshold: c.Breaker.FailureThreshold,
			Interval:         c.Breaker.Interval.String(),
			Timeout:          c.Breaker.Timeout.String(),
		},
	})
}
