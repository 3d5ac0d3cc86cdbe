// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package middleware holds the HTTP middleware applied by the API
// router: request-ID propagation, Prometheus instrumentation, and gzip
// response compression.
//
// Middleware here wraps http.HandlerFunc directly; chi's own middleware
// (RealIP, Recoverer, rate limiting, CORS) is mounted separately by the
// router.
package middleware
