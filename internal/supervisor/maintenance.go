// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

// Package supervisor runs Postwise background services (the cache janitor,
// and any services the embedding application registers) under a suture
// supervisor so a panicking service restarts instead of silently dying.
package supervisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// Config holds supervisor restart and shutdown tuning.
type Config struct {
	// FailureThreshold is the number of failures before entering backoff.
	// Default: 5
	FailureThreshold float64

	// FailureDecay is the rate at which failures decay in seconds.
	// Default: 30
	FailureDecay float64

	// FailureBackoff is the duration to wait when threshold is exceeded.
	// Default: 15s
	FailureBackoff time.Duration

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 10s
	ShutdownTimeout time.Duration
}

// DefaultConfig returns production-ready defaults matching suture's
// built-in values.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Maintenance supervises Postwise's long-running housekeeping services.
// Postwise is a library, so the tree is flat: one supervisor, a handful of
// services, owned by whoever embeds the engine.
type Maintenance struct {
	root   *suture.Supervisor
	logger *slog.Logger
	config Config
}

// NewMaintenance creates a supervisor for Postwise background services.
func NewMaintenance(logger *slog.Logger, config Config) *Maintenance {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 5.0
	}
	if config.FailureDecay == 0 {
		config.FailureDecay = 30.0
	}
	if config.FailureBackoff == 0 {
		config.FailureBackoff = 15 * time.Second
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	// The correct sutureslog API is (&Handler{Logger: logger}).MustHook();
	// MustHook has a pointer receiver.
	handler := &sutureslog.Handler{Logger: logger}

	root := suture.New("postwise-maintenance", suture.Spec{
		EventHook:        handler.MustHook(),
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	})

	return &Maintenance{
		root:   root,
		logger: logger,
		config: config,
	}
}

// Add registers a service with the supervisor.
func (m *Maintenance) Add(svc suture.Service) suture.ServiceToken {
	return m.root.Add(svc)
}

// Remove stops and removes a previously added service.
func (m *Maintenance) Remove(token suture.ServiceToken) error {
	return m.root.Remove(token)
}

// Serve runs the supervisor and blocks until the context is canceled.
func (m *Maintenance) Serve(ctx context.Context) error {
	return m.root.Serve(ctx)
}

// ServeBackground runs the supervisor in a background goroutine. The
// returned channel receives the terminal error (or nil) when it stops.
func (m *Maintenance) ServeBackground(ctx context.Context) <-chan error {
	return m.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that failed to stop within the
// shutdown timeout.
func (m *Maintenance) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return m.root.UnstoppedServiceReport()
}
