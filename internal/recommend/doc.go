// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package recommend produces personalized event recommendations from a
// session's search history.
//
// The engine scores candidate events in three decreasing-confidence
// tiers - the session's own categories, categories related to them, and
// globally popular categories - keeping the best score per event, then
// backfills from popular and recently added events when the scored set
// is too small. Only future-dated events are ever recommended.
//
// The package depends on two narrow interfaces (Catalog, History) rather
// than on the concrete store and tracker, so wiring stays explicit and
// tests can substitute fixtures. The engine is an ordinary value owned
// by its caller; there is no package-level state.
package recommend
