// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package config loads service configuration with koanf v2 in three
// layers: struct defaults, an optional YAML file, then environment
// variables. Precedence is ENV > file > defaults.
//
// Environment variables map to config paths through an explicit table
// (HTTP_PORT -> server.port, LOG_LEVEL -> logging.level); unmapped
// variables are ignored so ambient environment noise cannot leak into
// the configuration.
package config
