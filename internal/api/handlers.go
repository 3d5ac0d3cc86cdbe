// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

import (
	"net/http"
	"time"

	"github.com/civiclab/townsquare/internal/cache"
	"github.com/civiclab/townsquare/internal/catalog"
	"github.com/civiclab/townsquare/internal/config"
	"github.com/civiclab/townsquare/internal/history"
	"github.com/civiclab/townsquare/internal/models"
	"github.com/civiclab/townsquare/internal/recommend"
	"github.com/civiclab/townsquare/internal/reports"
)

// Handler bundles the dependencies the HTTP endpoints need. All fields
// are required except reports, which may be nil when report storage is
// disabled.
type Handler struct {
	store   *catalog.Store
	tracker *history.Tracker
	engine  *recommend.Engine
	reports *reports.Store
	cache   *cache.Cache
	cfg     config.APIConfig

	startedAt time.Time
}

// NewHandler wires the endpoint handlers to their dependencies.
func NewHandler(
	store *catalog.Store,
	tracker *history.Tracker,
	engine *recommend.Engine,
	reportStore *reports.Store,
	responseCache *cache.Cache,
	cfg config.APIConfig,
) *Handler {
	return &Handler{
		store:     store,
		tracker:   tracker,
		engine:    engine,
		reports:   reportStore,
		cache:     responseCache,
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// clampCount bounds a requested result count to [1, MaxPageSize],
// falling back to the default page size.
func (h *Handler) clampCount(requested int) int {
	if requested <= 0 {
		return h.cfg.DefaultPageSize
	}
	if requested > h.cfg.MaxPageSize {
		return h.cfg.MaxPageSize
	}
	return requested
}

// requireReports checks report storage availability.
func (h *Handler) requireReports(w http.ResponseWriter) bool {
	if h.reports == nil {
		respondError(w, http.StatusServiceUnavailable, errCodeServiceError, "Report storage not available", nil)
		return false
	}
	return true
}

// eventsPayload wraps an event slice in the list payload, never nil.
func eventsPayload(events []models.Event) models.EventsResponse {
	if events == nil {
		events = []models.Event{}
	}
	return models.EventsResponse{
		Total:  len(events),
		Events: events,
	}
}
