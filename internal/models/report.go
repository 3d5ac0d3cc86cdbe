// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package models

import "time"

// IssueReport is a resident-submitted report of a municipal issue
// (pothole, broken streetlight, illegal dumping). Reports are stored in
// a separate persistent log and are unrelated to the event catalog.
type IssueReport struct {
	ID             int       `json:"id"`
	Location       string    `json:"location"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	AttachmentPath string    `json:"attachment_path,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
