// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package models

import "time"

// AnonymousSession is the session identifier recorded when a query
// arrives without one.
const AnonymousSession = "anonymous"

// SearchHistoryEntry records one tracked query. Entries are append-only:
// they are never mutated or deleted individually, only cleared wholesale
// on a catalog reset.
type SearchHistoryEntry struct {
	ID         int       `json:"id"`
	SearchTerm string    `json:"search_term"`
	Category   string    `json:"category"`
	SearchedAt time.Time `json:"searched_at"`
	Session    string    `json:"session"`
}

// CategoryCount pairs a category name with an occurrence count. Used by
// trending and popularity queries; slices of CategoryCount are ordered by
// descending count with ties in first-encounter order.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
