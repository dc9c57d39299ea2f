// Postwise - Social Posting Time Optimization Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/postwise

// Package timing implements the posting-time optimization engine: given a
// platform and an optional content type it resolves the best hours and days
// to publish, a synthetic engagement score, a trend signal, and a ranked
// cross-type performance table.
//
// Resolution is a tiered fallback chain owned by Engine:
//
//  1. TTL cache (internal/cache), the only early-return path
//  2. per-platform source resolver behind a circuit breaker
//  3. industry benchmark tables, which never fail
//
// All heuristics are static lookup tables keyed by platform and content
// type; there is no learning and no real network I/O. The resolver interface
// is context-shaped so a real analytics client can replace the simulated
// sources without touching the engine or its callers.
//
// Public entry points are PostingData and PostingInsights; both are
// guaranteed non-failing for every platform in the supported set.
package timing
