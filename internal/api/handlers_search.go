// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

import (
	"net/http"
	"time"

	"github.com/civiclab/townsquare/internal/catalog"
	"github.com/civiclab/townsquare/internal/metrics"
	"github.com/civiclab/townsquare/internal/models"
	"github.com/civiclab/townsquare/internal/search"
)

// Search ranks catalog events against a search term and records the
// search in the session's history. An empty term lists events without
// ranking, so the endpoint doubles as a filtered browse.
//
// Method: GET
// Path: /api/v1/search?q=&category=&session=&date_filter=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	term := q.Get("q")
	category := q.Get("category")
	session := q.Get("session")

	// Every search lands in history, including empty ones: category
	// auto-detection and trending feed off them.
	h.tracker.Add(term, category, session)
	metrics.HistoryEntries.Set(float64(h.tracker.Len()))

	var events []models.Event
	if category != "" {
		events = h.store.EventsByCategory(category)
	} else {
		events = h.store.AllEvents()
	}

	events = search.Rank(events, term)

	if filter := q.Get("date_filter"); filter != "" {
		events = catalog.FilterByDate(events, filter)
	}

	metrics.RecordSearch(len(events))

	respondJSON(w, http.StatusOK, successResponse(eventsPayload(events), start))
}
