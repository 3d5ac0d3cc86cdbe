// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package metrics defines the Prometheus instrumentation for the
// service: API request counters and latency histograms, catalog and
// history gauges, search and recommendation counters, and cache
// efficiency counters.
//
// Metrics register on the default registry via promauto and are served
// at /metrics by the API router.
package metrics
