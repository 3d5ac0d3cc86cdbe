// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package api exposes the service over HTTP using the chi router.
//
// All endpoints live under /api/v1 and return the models.APIResponse
// envelope. The router applies request-ID propagation, Prometheus
// instrumentation, gzip compression, per-IP rate limiting, and CORS;
// Prometheus metrics are served at /metrics.
//
// Handlers are thin: they parse and validate input, call into the
// catalog, history, recommendation, and report packages, and shape the
// response. No business logic lives here.
package api
