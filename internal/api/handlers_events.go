// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/civiclab/townsquare/internal/catalog"
	"github.com/civiclab/townsquare/internal/logging"
	"github.com/civiclab/townsquare/internal/metrics"
	"github.com/civiclab/townsquare/internal/models"
)

// createEventRequest is the POST /events body.
type createEventRequest struct {
	Title          string    `json:"title" validate:"required,min=3,max=200"`
	Description    string    `json:"description" validate:"max=2000"`
	Category       string    `json:"category" validate:"required,min=2,max=50"`
	EventDate      time.Time `json:"event_date" validate:"required"`
	Location       string    `json:"location" validate:"max=200"`
	Organizer      string    `json:"organizer" validate:"max=100"`
	ContactInfo    string    `json:"contact_info" validate:"max=100"`
	IsAnnouncement bool      `json:"is_announcement"`
	Priority       int       `json:"priority" validate:"gte=1,lte=5"`
}

// CreateEvent adds an event to the catalog.
//
// Method: POST
// Path: /api/v1/events
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidParameter, "Invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	ev := h.store.AddEvent(catalog.EventParams{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		EventDate:      req.EventDate,
		Location:       req.Location,
		Organizer:      req.Organizer,
		ContactInfo:    req.ContactInfo,
		IsAnnouncement: req.IsAnnouncement,
		Priority:       req.Priority,
	})

	metrics.CatalogEventsAdded.WithLabelValues(ev.Category).Inc()
	metrics.CatalogEvents.Set(float64(h.store.Len()))
	h.cache.Clear()

	respondJSON(w, http.StatusCreated, successResponse(ev, start))
}

// ListEvents returns catalog events, optionally filtered by category
// and a named date window.
//
// Method: GET
// Path: /api/v1/events?category=&date_filter=
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var events []models.Event
	if category := r.URL.Query().Get("category"); category != "" {
		events = h.store.EventsByCategory(category)
	} else {
		events = h.store.AllEvents()
	}

	if filter := r.URL.Query().Get("date_filter"); filter != "" {
		events = catalog.FilterByDate(events, filter)
	}

	respondJSON(w, http.StatusOK, successResponse(eventsPayload(events), start))
}

// GetEvent returns one event by ID.
//
// Method: GET
// Path: /api/v1/events/{id}
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidParameter, "Event ID must be an integer", err)
		return
	}

	ev, ok := h.store.GetByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, errCodeEventNotFound, "Event not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, successResponse(ev, start))
}

// RecentEvents returns the most recently added events, newest first.
//
// Method: GET
// Path: /api/v1/events/recent?limit=
func (h *Handler) RecentEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := h.clampCount(getIntParam(r, "limit", h.cfg.DefaultPageSize))
	events := h.store.RecentEvents(limit)

	respondJSON(w, http.StatusOK, successResponse(eventsPayload(events), start))
}

// HighPriorityEvents returns urgent events sorted by priority then date.
//
// Method: GET
// Path: /api/v1/events/high-priority
func (h *Handler) HighPriorityEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	events := h.store.HighPriorityEvents()
	respondJSON(w, http.StatusOK, successResponse(eventsPayload(events), start))
}

// Categories returns distinct categories in first-seen order.
//
// Method: GET
// Path: /api/v1/events/categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	categories := h.store.Categories()
	if categories == nil {
		categories = []string{}
	}

	respondJSON(w, http.StatusOK, successResponse(models.CategoriesResponse{
		Categories: categories,
	}, start))
}

// EventsByDate returns events on one calendar day.
//
// Method: GET
// Path: /api/v1/events/by-date?date=2026-09-15
func (h *Handler) EventsByDate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	raw := r.URL.Query().Get("date")
	if raw == "" {
		respondError(w, http.StatusBadRequest, errCodeInvalidParameter, "date parameter is required", nil)
		return
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, errCodeInvalidParameter, "date must be YYYY-MM-DD", err)
		return
	}

	events := h.store.EventsByDate(date)
	respondJSON(w, http.StatusOK, successResponse(eventsPayload(events), start))
}

// ClearEvents empties the catalog. Search history is left intact.
//
// Method: DELETE
// Path: /api/v1/events
func (h *Handler) ClearEvents(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	removed := h.store.Len()
	h.store.ClearAll()
	h.cache.Clear()
	metrics.CatalogEvents.Set(0)

	logging.Warn().Int("removed", removed).Msg("event catalog cleared")

	respondJSON(w, http.StatusOK, successResponse(map[string]int{"removed": removed}, start))
}
