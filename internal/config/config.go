// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

// Package config loads Postwise configuration with Koanf v2, layered as
// defaults, then an optional config file (YAML or JSON), then environment
// variables. Precedence: ENV > file > defaults.
//
// Environment variables use the POSTWISE_ prefix with "__" as the nesting
// separator:
//
//	POSTWISE_ENGINE__CACHE__TTL=30m      -> engine.cache.ttl
//	POSTWISE_LOGGING__LEVEL=debug        -> logging.level
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/postwise/internal/logging"
	"github.com/tomtom215/postwise/internal/timing"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"postwise.yaml",
	"postwise.yml",
	"postwise.json",
	"/etc/postwise/config.yaml",
	"/etc/postwise/config.json",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "POSTWISE_CONFIG"

// envPrefix scopes the environment variables this package reads.
const envPrefix = "POSTWISE_"

// Config is the full Postwise configuration surface.
type Config struct {
	// Logging configures the process-wide zerolog logger.
	Logging logging.Config `json:"logging" koanf:"logging" validate:"required"`

	// Engine configures the posting-time engine.
	Engine timing.Config `json:"engine" koanf:"engine" validate:"required"`
}

// defaultConfig returns the built-in defaults, applied before file and env
// layers.
func defaultConfig() *Config {
	return &Config{
		Logging: logging.DefaultConfig(),
		Engine:  *timing.DefaultConfig(),
	}
}

// Load loads configuration from the default search paths (plus the
// POSTWISE_CONFIG override) and the environment.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile loads configuration from a specific file path; an empty path
// loads defaults plus environment only.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parserFor picks the koanf parser from the file extension.
// YAML is the primary format; JSON is supported for generated configs.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return jsonParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .yaml, .yml, or .json)", filepath.Ext(path))
	}
}

// envTransform maps POSTWISE_ENGINE__CACHE__TTL to engine.cache.ttl.
// Returning "" drops the variable.
func envTransform(key string) string {
	key = strings.TrimPrefix(key, envPrefix)
	if key == "CONFIG" {
		// POSTWISE_CONFIG selects the file path, it is not a config key.
		return ""
	}
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}

// findConfigFile returns the first existing config file, honoring the
// POSTWISE_CONFIG override, or "" when none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("struct validation: %w", err)
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	return nil
}
