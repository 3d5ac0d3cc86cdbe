// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package catalog

import (
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/civiclab/townsquare/internal/logging"
	"github.com/civiclab/townsquare/internal/models"
)

// dayKey buckets events by calendar date, ignoring time of day.
type dayKey struct {
	year  int
	month time.Month
	day   int
}

func dayKeyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{year: y, month: m, day: d}
}

// EventParams carries the caller-supplied fields for a new event. The
// Store assigns ID and CreatedAt itself.
type EventParams struct {
	Title          string
	Description    string
	Category       string
	EventDate      time.Time
	Location       string
	Organizer      string
	ContactInfo    string
	IsAnnouncement bool
	Priority       int
}

// Store is the canonical in-memory event catalog plus all derived views.
//
// One RWMutex guards the events map and every index as a unit: AddEvent
// and ClearAll take the write lock, all queries take the read lock. This
// guarantees that no query ever sees a partially indexed event.
//
// Indexes hold event IDs rather than copies; the events map is the single
// source of truth. Events are immutable after insertion, so query results
// are value copies that can be handed out without further locking.
type Store struct {
	mu sync.RWMutex

	events map[int]models.Event
	nextID int

	byCategory map[string][]int // insertion order per category
	categories []string         // distinct categories, first-seen order
	byDate     map[dayKey][]int // calendar-day buckets
	byPriority map[int][]int    // FIFO per priority bucket
	recency    []int            // append-only insertion order

	logger zerolog.Logger
}

// NewStore creates an empty catalog. IDs start at 1.
func NewStore() *Store {
	return &Store{
		events:     make(map[int]models.Event),
		nextID:     1,
		byCategory: make(map[string][]int),
		byDate:     make(map[dayKey][]int),
		byPriority: make(map[int][]int),
		logger:     logging.WithComponent("catalog"),
	}
}

// AddEvent inserts a new event, assigns the next ID, stamps CreatedAt,
// and updates every index before returning. No field validation happens
// here; the API boundary is responsible for rejecting malformed input,
// and an out-of-range priority merely occupies an unused bucket.
func (s *Store) AddEvent(p EventParams) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev := models.Event{
		ID:             s.nextID,
		Title:          p.Title,
		Description:    p.Description,
		Category:       p.Category,
		EventDate:      p.EventDate,
		Location:       p.Location,
		Organizer:      p.Organizer,
		ContactInfo:    p.ContactInfo,
		IsAnnouncement: p.IsAnnouncement,
		CreatedAt:      time.Now(),
		Priority:       p.Priority,
	}
	s.nextID++

	s.events[ev.ID] = ev

	if _, seen := s.byCategory[ev.Category]; !seen {
		s.categories = append(s.categories, ev.Category)
	}
	s.byCategory[ev.Category] = append(s.byCategory[ev.Category], ev.ID)

	dk := dayKeyOf(ev.EventDate)
	s.byDate[dk] = append(s.byDate[dk], ev.ID)

	s.byPriority[ev.Priority] = append(s.byPriority[ev.Priority], ev.ID)

	s.recency = append(s.recency, ev.ID)

	s.logger.Debug().
		Int("id", ev.ID).
		Str("category", ev.Category).
		Int("priority", ev.Priority).
		Bool("announcement", ev.IsAnnouncement).
		Msg("event added")

	return ev
}

// GetByID looks up an event by its ID. The second return value is false
// for unknown IDs; lookups never fail otherwise.
func (s *Store) GetByID(id int) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[id]
	return ev, ok
}

// Len returns the number of events in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}

// AllEvents returns the full catalog ordered by event date ascending.
// Equal dates are broken by ID, so the ordering is deterministic.
func (s *Store) AllEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Event, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EventDate.Equal(out[j].EventDate) {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// EventsByCategory returns the events of one category in insertion order.
// An unknown category yields an empty slice, never an error.
func (s *Store) EventsByCategory(category string) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(s.byCategory[category])
}

// EventsByDate returns the events sharing the given calendar day, in
// insertion order. Time of day is ignored for bucketing.
func (s *Store) EventsByDate(date time.Time) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collectLocked(s.byDate[dayKeyOf(date)])
}

// RecentEvents returns up to n most-recently-added events, most recent
// first. The read is non-destructive: the recency view is an append-only
// list read from the tail, so repeated calls return identical results.
func (s *Store) RecentEvents(n int) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []models.Event{}
	}
	if n > len(s.recency) {
		n = len(s.recency)
	}

	out := make([]models.Event, 0, n)
	for i := len(s.recency) - 1; i >= len(s.recency)-n; i-- {
		out = append(out, s.events[s.recency[i]])
	}
	return out
}

// RecentUpcomingEvents returns up to n most-recently-added events whose
// date is at or after now, most recent first. This backs the last
// recommendation fallback tier.
func (s *Store) RecentUpcomingEvents(n int) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 {
		return []models.Event{}
	}

	now := time.Now()
	out := make([]models.Event, 0, n)
	for i := len(s.recency) - 1; i >= 0 && len(out) < n; i-- {
		ev := s.events[s.recency[i]]
		if ev.IsUpcoming(now) {
			out = append(out, ev)
		}
	}
	return out
}

// HighPriorityEvents returns every event at priority 1 or 2, ordered by
// priority ascending then event date ascending.
func (s *Store) HighPriorityEvents() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Event
	for p := models.PriorityHighest; p <= models.HighPriorityThreshold; p++ {
		out = append(out, s.collectLocked(s.byPriority[p])...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].EventDate.Before(out[j].EventDate)
	})
	if out == nil {
		out = []models.Event{}
	}
	return out
}

// Categories returns the distinct category names in first-seen order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// ClearAll empties the catalog and every index and resets the ID counter
// to 1. Callers must ensure no reads are relying on results spanning the
// reset; the lock only guarantees each individual operation is atomic.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = make(map[int]models.Event)
	s.nextID = 1
	s.byCategory = make(map[string][]int)
	s.categories = nil
	s.byDate = make(map[dayKey][]int)
	s.byPriority = make(map[int][]int)
	s.recency = nil

	s.logger.Info().Msg("catalog cleared")
}

// collectLocked resolves a list of IDs into event values. Must be called
// with at least the read lock held.
func (s *Store) collectLocked(ids []int) []models.Event {
	out := make([]models.Event, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.events[id])
	}
	return out
}
