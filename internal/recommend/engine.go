// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package recommend

import (
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/civiclab/townsquare/internal/models"
)

// Tuning constants for the recommendation pipeline.
const (
	// historyDepth is how many of the session's most recent searches
	// feed the category profile.
	historyDepth = 15

	// popularCategoryLimit bounds tier C (globally popular categories).
	popularCategoryLimit = 5

	// backfillCategoryLimit bounds the popular-events backfill.
	backfillCategoryLimit = 3

	// popularWindow is the lookback for global popularity.
	popularWindow = 30 * 24 * time.Hour

	relatedCategoryWeight = 1.0
	popularCategoryWeight = 0.5
)

// Catalog is the slice of the event catalog the engine consumes.
type Catalog interface {
	// EventsByCategory returns a category's events in insertion order.
	EventsByCategory(category string) []models.Event

	// RecentUpcomingEvents returns up to n most-recently-added events
	// that have not yet started, most recent first.
	RecentUpcomingEvents(n int) []models.Event
}

// History is the slice of the search-history tracker the engine consumes.
type History interface {
	// SessionHistory returns up to limit entries for a session, most
	// recent first.
	SessionHistory(session string, limit int) []models.SearchHistoryEntry

	// CategoryCountsSince returns global category counts for entries at
	// or after since, ordered by count descending.
	CategoryCountsSince(since time.Time) []models.CategoryCount
}

// Engine combines session history, category relationships, and the event
// catalog into a ranked personalized event list. It holds no state of its
// own and is safe for concurrent use as long as its providers are.
type Engine struct {
	catalog Catalog
	history History
	logger  zerolog.Logger
}

// NewEngine creates a recommendation engine over the given providers.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(catalog Catalog, history History, logger zerolog.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		history: history,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
}

// categoryProfile is one category in a session's search profile.
type categoryProfile struct {
	category   string
	count      int
	lastSearch time.Time
}

// Recommend returns up to count future events ranked for the session.
// A session with no history falls straight through to the popularity and
// recency backfill tiers; an exhausted catalog yields fewer than count.
func (e *Engine) Recommend(session string, count int) []models.Event {
	return e.recommendAt(session, count, time.Now())
}

// recommendAt is the clock-injected form of Recommend.
func (e *Engine) recommendAt(session string, count int, now time.Time) []models.Event {
	if count <= 0 {
		return []models.Event{}
	}

	recent := e.history.SessionHistory(session, historyDepth)

	var picked []models.Event
	if len(recent) > 0 {
		picked = e.scoreTiers(recent, count, now)
	}

	picked = e.backfillPopular(picked, count, now)
	picked = e.backfillRecent(picked, count)

	if len(picked) > count {
		picked = picked[:count]
	}

	e.logger.Debug().
		Str("session", session).
		Int("history", len(recent)).
		Int("returned", len(picked)).
		Msg("recommendations computed")

	return picked
}

// scoreTiers runs the three scoring tiers and returns the top count
// events by score. Each event keeps the maximum score it reached across
// tiers, never a sum.
func (e *Engine) scoreTiers(recent []models.SearchHistoryEntry, count int, now time.Time) []models.Event {
	own := sessionProfile(recent)

	ownNames := make([]string, 0, len(own))
	for _, p := range own {
		ownNames = append(ownNames, p.category)
	}

	scores := make(map[int]float64)
	byID := make(map[int]models.Event)

	record := func(ev models.Event, score float64) {
		if existing, ok := scores[ev.ID]; !ok || score > existing {
			scores[ev.ID] = score
			byID[ev.ID] = ev
		}
	}

	// Tier A: the session's own categories, weighted by search count.
	for _, p := range own {
		for _, ev := range e.upcomingByCategory(p.category, now) {
			record(ev, eventScore(ev, float64(p.count), true, now))
		}
	}

	// Tier B: related categories.
	for _, c := range relatedCategories(ownNames) {
		for _, ev := range e.upcomingByCategory(c, now) {
			record(ev, eventScore(ev, relatedCategoryWeight, false, now))
		}
	}

	// Tier C: globally popular categories of the last 30 days.
	for _, c := range e.popularCategories(popularCategoryLimit, now) {
		for _, ev := range e.upcomingByCategory(c, now) {
			record(ev, eventScore(ev, popularCategoryWeight, false, now))
		}
	}

	type scored struct {
		event models.Event
		score float64
	}
	ranked := make([]scored, 0, len(scores))
	for id, s := range scores {
		ranked = append(ranked, scored{event: byID[id], score: s})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].event.ID < ranked[j].event.ID
	})

	if len(ranked) > count {
		ranked = ranked[:count]
	}
	out := make([]models.Event, len(ranked))
	for i, r := range ranked {
		out[i] = r.event
	}
	return out
}

// backfillPopular appends events from the top globally-popular categories
// (priority ascending, then date) until count is reached, skipping events
// already picked.
func (e *Engine) backfillPopular(picked []models.Event, count int, now time.Time) []models.Event {
	if len(picked) >= count {
		return picked
	}

	chosen := idSet(picked)
	for _, c := range e.popularCategories(backfillCategoryLimit, now) {
		events := e.upcomingByCategory(c, now)
		sort.SliceStable(events, func(i, j int) bool {
			if events[i].Priority != events[j].Priority {
				return events[i].Priority < events[j].Priority
			}
			return events[i].EventDate.Before(events[j].EventDate)
		})
		for _, ev := range events {
			if len(picked) >= count {
				return picked
			}
			if _, dup := chosen[ev.ID]; dup {
				continue
			}
			chosen[ev.ID] = struct{}{}
			picked = append(picked, ev)
		}
	}
	return picked
}

// backfillRecent appends the most-recently-added future events until
// count is reached, skipping events already picked.
func (e *Engine) backfillRecent(picked []models.Event, count int) []models.Event {
	if len(picked) >= count {
		return picked
	}

	chosen := idSet(picked)
	for _, ev := range e.catalog.RecentUpcomingEvents(count) {
		if len(picked) >= count {
			break
		}
		if _, dup := chosen[ev.ID]; dup {
			continue
		}
		chosen[ev.ID] = struct{}{}
		picked = append(picked, ev)
	}
	return picked
}

// upcomingByCategory returns a category's events with date at or after
// now.
func (e *Engine) upcomingByCategory(category string, now time.Time) []models.Event {
	all := e.catalog.EventsByCategory(category)
	out := make([]models.Event, 0, len(all))
	for _, ev := range all {
		if ev.IsUpcoming(now) {
			out = append(out, ev)
		}
	}
	return out
}

// popularCategories returns up to limit globally popular category names
// over the last 30 days.
func (e *Engine) popularCategories(limit int, now time.Time) []string {
	counts := e.history.CategoryCountsSince(now.Add(-popularWindow))
	if limit > len(counts) {
		limit = len(counts)
	}
	out := make([]string, 0, limit)
	for _, cc := range counts[:limit] {
		out = append(out, cc.Category)
	}
	return out
}

// sessionProfile aggregates a session's recent entries into a category
// profile ordered by search count descending, then by most recent search.
// Entries with an empty category are skipped.
func sessionProfile(recent []models.SearchHistoryEntry) []categoryProfile {
	index := make(map[string]int)
	var profiles []categoryProfile

	for _, entry := range recent {
		if entry.Category == "" {
			continue
		}
		if i, seen := index[entry.Category]; seen {
			profiles[i].count++
			if entry.SearchedAt.After(profiles[i].lastSearch) {
				profiles[i].lastSearch = entry.SearchedAt
			}
			continue
		}
		index[entry.Category] = len(profiles)
		profiles = append(profiles, categoryProfile{
			category:   entry.Category,
			count:      1,
			lastSearch: entry.SearchedAt,
		})
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		if profiles[i].count != profiles[j].count {
			return profiles[i].count > profiles[j].count
		}
		return profiles[i].lastSearch.After(profiles[j].lastSearch)
	})
	return profiles
}

// idSet builds a set of the IDs present in events.
func idSet(events []models.Event) map[int]struct{} {
	set := make(map[int]struct{}, len(events))
	for _, ev := range events {
		set[ev.ID] = struct{}{}
	}
	return set
}
