// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

import (
	"net/http"
	"time"

	"github.com/civiclab/townsquare/internal/cache"
	"github.com/civiclab/townsquare/internal/metrics"
	"github.com/civiclab/townsquare/internal/models"
)

// defaultRecommendationCount is used when no count parameter is given.
const defaultRecommendationCount = 5

// Recommendations returns personalized upcoming events for a session.
//
// Method: GET
// Path: /api/v1/recommendations?session=&count=
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	session := r.URL.Query().Get("session")
	if session == "" {
		session = models.AnonymousSession
	}
	count := getIntParam(r, "count", defaultRecommendationCount)
	if count < 1 {
		count = defaultRecommendationCount
	}
	if count > h.cfg.MaxPageSize {
		count = h.cfg.MaxPageSize
	}

	events := h.engine.Recommend(session, count)
	metrics.RecordRecommendation(time.Since(start))

	respondJSON(w, http.StatusOK, successResponse(eventsPayload(events), start))
}

// Trending returns the most searched categories of the last seven days.
// The result is cached briefly; trending moves slowly.
//
// Method: GET
// Path: /api/v1/trending?count=
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	count := getIntParam(r, "count", defaultRecommendationCount)
	if count < 1 {
		count = defaultRecommendationCount
	}

	key := cache.GenerateKey("trending", count)
	if cached, ok := h.cache.Get(key); ok {
		metrics.CacheHits.Inc()
		if payload, ok := cached.(models.TrendingResponse); ok {
			respondJSON(w, http.StatusOK, cachedResponse(payload, start))
			return
		}
	}
	metrics.CacheMisses.Inc()

	categories := h.tracker.TrendingCategories(count)
	if categories == nil {
		categories = []string{}
	}
	payload := models.TrendingResponse{Categories: categories}
	h.cache.Set(key, payload)

	respondJSON(w, http.StatusOK, successResponse(payload, start))
}

// Preferences returns a session's category search counts.
//
// Method: GET
// Path: /api/v1/preferences?session=
func (h *Handler) Preferences(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	session := r.URL.Query().Get("session")
	if session == "" {
		session = models.AnonymousSession
	}

	prefs := h.tracker.Preferences(session)
	if prefs == nil {
		prefs = map[string]int{}
	}
	respondJSON(w, http.StatusOK, successResponse(models.PreferencesResponse{
		Session:     session,
		Preferences: prefs,
	}, start))
}
