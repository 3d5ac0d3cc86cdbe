// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package services wraps long-running components as suture services.
//
// Each wrapper translates a component's own lifecycle into suture's
// context-aware Serve pattern: start the component, wait for context
// cancellation, then shut it down cleanly.
package services
