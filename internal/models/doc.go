// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package models defines the shared data types for Townsquare.
//
// The types here are plain data carriers with JSON tags and no behavior
// beyond small convenience accessors. They are shared by the catalog,
// search, history, recommendation, report, and API packages so that no
// domain package needs to import another domain package.
package models
