// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package models

import "time"

// Priority bounds for events. Priority 1 is the most urgent, 5 the least.
// The catalog does not enforce these bounds (validation happens at the API
// boundary); an out-of-range priority simply lands in an unused bucket.
const (
	PriorityHighest = 1
	PriorityLowest  = 5

	// HighPriorityThreshold is the cutoff for the high-priority view:
	// events with Priority <= HighPriorityThreshold are considered urgent.
	HighPriorityThreshold = 2
)

// Event represents a municipal event or announcement.
//
// The ID is assigned once by the catalog and never reused; CreatedAt is
// stamped at insertion. Both are immutable for the lifetime of the
// process. IsAnnouncement distinguishes municipal announcements (true)
// from resident-facing events (false).
type Event struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	EventDate      time.Time `json:"event_date"`
	Location       string    `json:"location"`
	Organizer      string    `json:"organizer"`
	ContactInfo    string    `json:"contact_info"`
	IsAnnouncement bool      `json:"is_announcement"`
	CreatedAt      time.Time `json:"created_at"`
	Priority       int       `json:"priority"`
}

// IsUpcoming reports whether the event has not yet started relative to now.
func (e Event) IsUpcoming(now time.Time) bool {
	return !e.EventDate.Before(now)
}

// DaysUntil returns the fractional number of days between now and the
// event date. Negative for past events.
func (e Event) DaysUntil(now time.Time) float64 {
	return e.EventDate.Sub(now).Hours() / 24
}
