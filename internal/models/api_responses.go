// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package models

import "time"

// APIResponse is the standard envelope returned by every HTTP endpoint.
//
// Status is "success" or "error". Data carries the payload on success;
// Error is populated only on failure.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total": 15, "events": [...]},
//	  "metadata": {"timestamp": "2026-08-31T12:00:00Z", "cached": false}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata carries per-response observability fields.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// EventsResponse is the payload for endpoints returning event lists.
type EventsResponse struct {
	Total  int     `json:"total"`
	Events []Event `json:"events"`
}

// CategoriesResponse is the payload for the distinct-categories endpoint.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// TrendingResponse is the payload for the trending-categories endpoint.
type TrendingResponse struct {
	Categories []string `json:"categories"`
}

// PreferencesResponse is the payload for the session-preferences endpoint.
type PreferencesResponse struct {
	Session     string         `json:"session"`
	Preferences map[string]int `json:"preferences"`
}

// ReportsResponse is the payload for the issue-report list endpoint.
type ReportsResponse struct {
	Total   int           `json:"total"`
	Reports []IssueReport `json:"reports"`
}
