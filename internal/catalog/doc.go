// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package catalog implements the in-memory event store and its derived
// indexes.
//
// A single Store owns the canonical event set and every view over it:
// id lookup, per-category lists, per-day buckets, priority buckets, the
// recency list, and the category universe. All views are updated inside
// the same write lock as the insert, so a reader never observes an event
// present in one index but absent from another.
//
// The catalog is append-only: events are never updated or deleted, only
// cleared wholesale via ClearAll. It carries no durability - the caller
// rebuilds it at process start (cmd/server seeds sample data).
package catalog
