// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package recommend

import (
	"math/rand"
	"time"

	"github.com/civiclab/townsquare/internal/models"
)

// eventScore computes the tiered recommendation score for one event.
// weight is the category weight of the tier (a session's search count in
// tier A, 1 in tier B, 0.5 in tier C); own marks tier A.
func eventScore(ev models.Event, weight float64, own bool, now time.Time) float64 {
	score := weight * 10

	if own {
		score += 5
	}

	score += float64(6-ev.Priority) * 2

	// Imminence bonus. Callers only score future events, so days is
	// never meaningfully negative here.
	switch days := ev.DaysUntil(now); {
	case days <= 7:
		score += 3
	case days <= 14:
		score += 2
	case days <= 30:
		score += 1
	}

	if ev.IsAnnouncement {
		score += 2
	}

	return score * jitter(ev.ID)
}

// jitter returns a deterministic factor in [0.8, 1.2) seeded by the
// event ID. The same ID always yields the same factor, so rankings are
// reproducible; the point is to break rigid ties, not randomness.
func jitter(id int) float64 {
	//nolint:gosec // math/rand is deliberate: deterministic, not cryptographic
	r := rand.New(rand.NewSource(int64(id)))
	return 0.8 + 0.4*r.Float64()
}
