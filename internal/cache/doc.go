// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package cache provides a thread-safe in-memory TTL cache used by the
// API layer to memoize expensive read endpoints (trending categories,
// recommendation lists).
//
// Entries expire after a per-cache TTL; a background goroutine sweeps
// expired entries periodically. Hit, miss, and eviction counters are
// exposed for the stats endpoint and Prometheus.
package cache
