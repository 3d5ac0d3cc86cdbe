// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package history records search queries per session and in aggregate.
//
// The tracker feeds two signals: trending categories (global, windowed)
// and per-session preferences (for recommendations). It owns its entries
// exclusively and guards them with its own lock, independent of the
// catalog lock; entries are append-only and only removed by ClearAll.
package history

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/civiclab/townsquare/internal/logging"
	"github.com/civiclab/townsquare/internal/models"
)

// Windows for the aggregate queries.
const (
	trendingWindow = 7 * 24 * time.Hour
	popularWindow  = 30 * 24 * time.Hour
)

// Tracker records search history entries.
type Tracker struct {
	mu      sync.RWMutex
	entries []models.SearchHistoryEntry
	logger  zerolog.Logger
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{logger: logging.WithComponent("history")}
}

// Add appends one history entry stamped with the current time. An empty
// session is recorded as the anonymous session. When no category is given
// and the term is non-empty, the category is auto-detected from the term;
// when both term and category are empty the entry keeps an empty category
// (whether to record such a query at all is the caller's decision).
func (t *Tracker) Add(term, category, session string) {
	if session == "" {
		session = models.AnonymousSession
	}
	if category == "" && term != "" {
		category = DetectCategory(term)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, models.SearchHistoryEntry{
		ID:         len(t.entries) + 1,
		SearchTerm: term,
		Category:   category,
		SearchedAt: time.Now(),
		Session:    session,
	})

	t.logger.Debug().
		Str("term", term).
		Str("category", category).
		Str("session", session).
		Msg("search recorded")
}

// Len returns the number of recorded entries.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// TrendingCategories returns up to count category names from the last
// seven days, ordered by descending search frequency. Entries with an
// empty category are skipped. Equal counts keep first-encounter order
// (the order the category first appeared in the window), which makes the
// result stable across calls with unchanged history.
func (t *Tracker) TrendingCategories(count int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	counts := t.categoryCountsLocked(time.Now().Add(-trendingWindow), "")

	if count > len(counts) {
		count = len(counts)
	}
	out := make([]string, 0, count)
	for _, cc := range counts[:count] {
		out = append(out, cc.Category)
	}
	return out
}

// Preferences returns the category→count map of one session's history,
// skipping entries with an empty category.
func (t *Tracker) Preferences(session string) map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	prefs := make(map[string]int)
	for _, e := range t.entries {
		if e.Session == session && e.Category != "" {
			prefs[e.Category]++
		}
	}
	return prefs
}

// SessionHistory returns up to limit of the session's entries, most
// recent first.
func (t *Tracker) SessionHistory(session string, limit int) []models.SearchHistoryEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.SearchHistoryEntry, 0, limit)
	for i := len(t.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if t.entries[i].Session == session {
			out = append(out, t.entries[i])
		}
	}
	return out
}

// CategoryCountsSince returns global category counts for entries at or
// after since, ordered by count descending with first-encounter order on
// ties. Entries with an empty category are skipped.
func (t *Tracker) CategoryCountsSince(since time.Time) []models.CategoryCount {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.categoryCountsLocked(since, "")
}

// PopularCategories returns the top count categories of the last 30 days.
func (t *Tracker) PopularCategories(count int) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	counts := t.categoryCountsLocked(time.Now().Add(-popularWindow), "")
	if count > len(counts) {
		count = len(counts)
	}
	out := make([]string, 0, count)
	for _, cc := range counts[:count] {
		out = append(out, cc.Category)
	}
	return out
}

// ClearAll removes every recorded entry.
func (t *Tracker) ClearAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = nil
	t.logger.Info().Msg("search history cleared")
}

// categoryCountsLocked aggregates entries at or after since into ordered
// category counts. If session is non-empty, only that session's entries
// are counted. Must be called with at least the read lock held.
func (t *Tracker) categoryCountsLocked(since time.Time, session string) []models.CategoryCount {
	index := make(map[string]int)
	var counts []models.CategoryCount

	for _, e := range t.entries {
		if e.Category == "" || e.SearchedAt.Before(since) {
			continue
		}
		if session != "" && e.Session != session {
			continue
		}
		if i, seen := index[e.Category]; seen {
			counts[i].Count++
			continue
		}
		index[e.Category] = len(counts)
		counts = append(counts, models.CategoryCount{Category: e.Category, Count: 1})
	}

	// Stable sort keeps encounter order for equal counts.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
