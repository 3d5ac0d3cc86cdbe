// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

import (
	"net/http"
	"time"
)

// healthStatus is the payload for the health endpoints.
type healthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Events        int     `json:"events"`
	Searches      int     `json:"searches"`
}

// Health reports overall service state with basic counters.
//
// Method: GET
// Path: /api/v1/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	respondJSON(w, http.StatusOK, successResponse(healthStatus{
		Status:        "ok",
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		Events:        h.store.Len(),
		Searches:      h.tracker.Len(),
	}, start))
}

// HealthLive is the liveness probe: the process is up.
//
// Method: GET
// Path: /api/v1/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondJSON(w, http.StatusOK, successResponse(map[string]string{"status": "alive"}, start))
}

// HealthReady is the readiness probe: dependencies are usable. The
// in-memory stores are always ready; report storage is probed when
// configured.
//
// Method: GET
// Path: /api/v1/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.reports != nil {
		if _, err := h.reports.Count(); err != nil {
			respondError(w, http.StatusServiceUnavailable, errCodeServiceError, "Report storage unavailable", err)
			return
		}
	}

	respondJSON(w, http.StatusOK, successResponse(map[string]string{"status": "ready"}, start))
}
