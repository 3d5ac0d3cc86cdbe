// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package recommend

import (
	"io"
	"sort"
	"testing"
	"time"

	"github.com/civiclab/townsquare/internal/logging"
	"github.com/civiclab/townsquare/internal/models"
)

var engineNow = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)

// fakeCatalog implements Catalog over a flat event slice.
type fakeCatalog struct {
	events []models.Event
}

func (f *fakeCatalog) EventsByCategory(category string) []models.Event {
	var out []models.Event
	for _, ev := range f.events {
		if ev.Category == category {
			out = append(out, ev)
		}
	}
	return out
}

func (f *fakeCatalog) RecentUpcomingEvents(n int) []models.Event {
	var out []models.Event
	for i := len(f.events) - 1; i >= 0 && len(out) < n; i-- {
		if f.events[i].IsUpcoming(engineNow) {
			out = append(out, f.events[i])
		}
	}
	return out
}

// fakeHistory implements History over fixed entries.
type fakeHistory struct {
	entries []models.SearchHistoryEntry
	popular []models.CategoryCount
}

func (f *fakeHistory) SessionHistory(session string, limit int) []models.SearchHistoryEntry {
	var out []models.SearchHistoryEntry
	for i := len(f.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if f.entries[i].Session == session {
			out = append(out, f.entries[i])
		}
	}
	return out
}

func (f *fakeHistory) CategoryCountsSince(_ time.Time) []models.CategoryCount {
	return f.popular
}

func testEvent(id int, category string, daysAhead int) models.Event {
	return models.Event{
		ID:        id,
		Title:     category + " event",
		Category:  category,
		Priority:  3,
		EventDate: engineNow.Add(time.Duration(daysAhead) * 24 * time.Hour),
	}
}

func healthHistory(session string, n int) []models.SearchHistoryEntry {
	entries := make([]models.SearchHistoryEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, models.SearchHistoryEntry{
			ID:         i + 1,
			SearchTerm: "clinic",
			Category:   "Health",
			Session:    session,
			SearchedAt: engineNow.Add(-time.Duration(n-i) * time.Hour),
		})
	}
	return entries
}

func newTestEngine(catalog Catalog, history History) *Engine {
	return NewEngine(catalog, history, logging.NewTestLogger(io.Discard))
}

func TestRecommendOwnCategoryFirst(t *testing.T) {
	catalog := &fakeCatalog{events: []models.Event{
		testEvent(1, "Health", 5),
		testEvent(2, "Sports", 3),
		testEvent(3, "Health", 10),
		testEvent(4, "Community", 2),
	}}
	history := &fakeHistory{entries: healthHistory("alice", 3)}

	got := newTestEngine(catalog, history).recommendAt("alice", 2, engineNow)
	if len(got) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(got))
	}
	for _, ev := range got {
		if ev.Category != "Health" {
			t.Errorf("expected only Health events in top 2, got %s (id %d)", ev.Category, ev.ID)
		}
	}
	ids := []int{got[0].ID, got[1].ID}
	sort.Ints(ids)
	if ids[0] != 1 || ids[1] != 3 {
		t.Errorf("expected events 1 and 3, got %v", ids)
	}
}

func TestRecommendSkipsPastEvents(t *testing.T) {
	catalog := &fakeCatalog{events: []models.Event{
		testEvent(1, "Health", -2),
		testEvent(2, "Health", 4),
	}}
	history := &fakeHistory{entries: healthHistory("alice", 2)}

	got := newTestEngine(catalog, history).recommendAt("alice", 5, engineNow)
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("past events must never be recommended, got %v", got)
	}
}

func TestRecommendEmptyHistoryUsesBackfill(t *testing.T) {
	catalog := &fakeCatalog{events: []models.Event{
		testEvent(1, "Sports", 3),
		testEvent(2, "Safety", 5),
		testEvent(3, "Community", 1),
	}}
	history := &fakeHistory{
		popular: []models.CategoryCount{{Category: "Safety", Count: 4}},
	}

	got := newTestEngine(catalog, history).recommendAt("nobody", 2, engineNow)
	if len(got) != 2 {
		t.Fatalf("expected 2 backfilled recommendations, got %d", len(got))
	}
	// Popular backfill runs before the recency backfill.
	if got[0].ID != 2 {
		t.Errorf("expected popular Safety event first, got id %d", got[0].ID)
	}
}

func TestRecommendNoDuplicatesAcrossTiers(t *testing.T) {
	catalog := &fakeCatalog{events: []models.Event{
		testEvent(1, "Health", 5),
		testEvent(2, "Community", 3),
	}}
	// Health is both the session's own category and globally popular, and
	// Community is related to Health: the same events reach every tier.
	history := &fakeHistory{
		entries: healthHistory("alice", 2),
		popular: []models.CategoryCount{
			{Category: "Health", Count: 9},
			{Category: "Community", Count: 4},
		},
	}

	got := newTestEngine(catalog, history).recommendAt("alice", 10, engineNow)
	seen := make(map[int]int)
	for _, ev := range got {
		seen[ev.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("event %d returned %d times", id, n)
		}
	}
	if len(got) != 2 {
		t.Errorf("expected exactly 2 distinct events, got %d", len(got))
	}
}

func TestRecommendTruncatesToCount(t *testing.T) {
	var events []models.Event
	for i := 1; i <= 8; i++ {
		events = append(events, testEvent(i, "Health", i))
	}
	catalog := &fakeCatalog{events: events}
	history := &fakeHistory{entries: healthHistory("alice", 1)}

	got := newTestEngine(catalog, history).recommendAt("alice", 3, engineNow)
	if len(got) != 3 {
		t.Errorf("expected exactly 3 recommendations, got %d", len(got))
	}
}

func TestRecommendZeroCount(t *testing.T) {
	catalog := &fakeCatalog{events: []models.Event{testEvent(1, "Health", 5)}}
	history := &fakeHistory{entries: healthHistory("alice", 1)}

	if got := newTestEngine(catalog, history).recommendAt("alice", 0, engineNow); len(got) != 0 {
		t.Errorf("count 0 must return no events, got %v", got)
	}
}

func TestRecommendEmptyCatalog(t *testing.T) {
	engine := newTestEngine(&fakeCatalog{}, &fakeHistory{entries: healthHistory("alice", 3)})

	if got := engine.recommendAt("alice", 5, engineNow); len(got) != 0 {
		t.Errorf("empty catalog must yield no recommendations, got %v", got)
	}
}

func TestSessionProfileOrdering(t *testing.T) {
	now := engineNow
	entries := []models.SearchHistoryEntry{
		{Category: "Sports", SearchedAt: now.Add(-3 * time.Hour)},
		{Category: "Health", SearchedAt: now.Add(-2 * time.Hour)},
		{Category: "Health", SearchedAt: now.Add(-1 * time.Hour)},
		{Category: "Safety", SearchedAt: now.Add(-30 * time.Minute)},
		{Category: "", SearchedAt: now},
	}

	got := sessionProfile(entries)
	if len(got) != 3 {
		t.Fatalf("expected 3 categories (empty skipped), got %d", len(got))
	}
	if got[0].category != "Health" || got[0].count != 2 {
		t.Errorf("expected Health first with count 2, got %+v", got[0])
	}
	// Sports and Safety tie on count; the more recent search wins.
	if got[1].category != "Safety" || got[2].category != "Sports" {
		t.Errorf("tie must break by recency, got %+v", got[1:])
	}
}
