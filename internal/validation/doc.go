// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package validation wraps go-playground/validator v10 for request
// validation in the API layer.
//
// A single validator instance is shared so struct metadata is cached
// once. Failed validations translate into human-readable messages and
// an error shape compatible with the API's VALIDATION_ERROR responses.
package validation
