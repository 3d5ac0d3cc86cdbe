// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

// Error codes returned in the APIError envelope. Stable identifiers for
// clients; the message is free to change.
const (
	errCodeValidation       = "VALIDATION_ERROR"
	errCodeInvalidParameter = "INVALID_PARAMETER"
	errCodeEventNotFound    = "EVENT_NOT_FOUND"
	errCodeStorage          = "STORAGE_ERROR"
	errCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	errCodeServiceError     = "SERVICE_ERROR"
)
