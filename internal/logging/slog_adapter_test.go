// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlogHandlerForwardsToZerolog(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler)

	logger.Info("service started", "service", "cache-janitor", "restarts", 2)

	out := buf.String()
	if !strings.Contains(out, `"message":"service started"`) {
		t.Errorf("missing message: %s", out)
	}
	if !strings.Contains(out, `"service":"cache-janitor"`) {
		t.Errorf("missing string attr: %s", out)
	}
	if !strings.Contains(out, `"restarts":2`) {
		t.Errorf("missing int attr: %s", out)
	}
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("missing level: %s", out)
	}
}

func TestSlogHandlerLevelMapping(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))

	logger.Warn("w")
	logger.Error("e")

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("missing warn level: %s", out)
	}
	if !strings.Contains(out, `"level":"error"`) {
		t.Errorf("missing error level: %s", out)
	}
}

func TestSlogHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler).With("supervisor", "postwise-maintenance")

	logger.Info("restarting")

	if !strings.Contains(buf.String(), `"supervisor":"postwise-maintenance"`) {
		t.Errorf("missing bound attr: %s", buf.String())
	}
}

func TestSlogHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler).WithGroup("svc")

	logger.Info("tick", "name", "janitor")

	if !strings.Contains(buf.String(), `"svc.name":"janitor"`) {
		t.Errorf("missing group-prefixed attr: %s", buf.String())
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	quiet := zerolog.New(nil).Level(zerolog.ErrorLevel)
	handler := NewSlogHandlerWithLogger(quiet)

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled on an error-level logger")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled on an error-level logger")
	}
}
