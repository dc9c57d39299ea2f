// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package postwise

import (
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/tomtom215/postwise/internal/config"
	"github.com/tomtom215/postwise/internal/logging"
	"github.com/tomtom215/postwise/internal/supervisor"
)

// Application-level wiring, re-exported so embedding applications can reach
// the config, logging, and supervision layers without importing internal
// packages.
type (
	// AppConfig is the full configuration surface: logging plus engine.
	AppConfig = config.Config

	// LoggingConfig configures the process-wide zerolog logger.
	LoggingConfig = logging.Config

	// Maintenance supervises background services such as the cache
	// Janitor, restarting them on failure.
	Maintenance = supervisor.Maintenance

	// MaintenanceConfig tunes supervisor restart and shutdown behavior.
	MaintenanceConfig = supervisor.Config
)

// ConfigPathEnvVar names the environment variable that overrides the config
// file search path.
const ConfigPathEnvVar = config.ConfigPathEnvVar

// LoadConfig loads configuration from the default search paths and the
// environment. Precedence: environment, then file, then defaults.
func LoadConfig() (*AppConfig, error) {
	return config.Load()
}

// LoadConfigFile loads configuration from a specific YAML or JSON file, then
// applies environment overrides.
func LoadConfigFile(path string) (*AppConfig, error) {
	return config.LoadFile(path)
}

// InitLogging configures the process-wide logger. Safe to call repeatedly.
func InitLogging(cfg LoggingConfig) {
	logging.Init(cfg)
}

// Logger returns the process-wide zerolog logger.
func Logger() zerolog.Logger {
	return logging.Logger()
}

// SlogLogger returns an slog logger backed by the process-wide zerolog
// logger, for libraries (like the Maintenance supervisor) that speak slog.
func SlogLogger() *slog.Logger {
	return logging.NewSlogLogger()
}

// NewMaintenance creates a supervisor for background services. Zero-value
// fields in cfg fall back to defaults.
func NewMaintenance(logger *slog.Logger, cfg MaintenanceConfig) *Maintenance {
	return supervisor.NewMaintenance(logger, cfg)
}

// DefaultMaintenanceConfig returns the supervisor defaults.
func DefaultMaintenanceConfig() MaintenanceConfig {
	return supervisor.DefaultConfig()
}
