// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package reports persists resident-submitted issue reports in BadgerDB.
//
// Reports are append-mostly: residents submit them, staff list them.
// They live outside the in-memory event catalog so they survive
// restarts. Keys are zero-padded sequence numbers under a single
// prefix, which makes listing in submission order a prefix scan.
package reports
