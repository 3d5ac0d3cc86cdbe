// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package supervisor builds the suture supervision tree that keeps the
// service's long-running components alive.
//
// The tree has two child layers under the root:
//
//   - storage: background maintenance for the reports database
//   - api: the HTTP server
//
// The layers isolate failures from each other. A crashing storage job
// restarts without disturbing the HTTP listener, and vice versa.
// Supervisor events are logged through sutureslog, which writes into
// the shared zerolog pipeline via the logging package's slog adapter.
package supervisor
