// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/civiclab/townsquare/internal/models"
)

func TestJitterDeterministic(t *testing.T) {
	for _, id := range []int{1, 2, 42, 9999} {
		first := jitter(id)
		for i := 0; i < 5; i++ {
			if got := jitter(id); got != first {
				t.Fatalf("jitter(%d) not stable: %v vs %v", id, got, first)
			}
		}
		if first < 0.8 || first >= 1.2 {
			t.Errorf("jitter(%d) = %v, want [0.8, 1.2)", id, first)
		}
	}
}

func TestJitterVariesByID(t *testing.T) {
	if jitter(1) == jitter(2) {
		t.Error("distinct IDs should not share a jitter factor")
	}
}

func TestEventScoreComponents(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	ev := models.Event{
		ID:             7,
		Priority:       2,
		EventDate:      now.Add(5 * 24 * time.Hour),
		IsAnnouncement: true,
	}

	// weight 3, own: 3*10 + 5 + (6-2)*2 + 3 + 2 = 48, then jitter.
	want := 48.0 * jitter(7)
	if got := eventScore(ev, 3, true, now); math.Abs(got-want) > 1e-9 {
		t.Errorf("eventScore = %v, want %v", got, want)
	}
}

func TestEventScoreRecencyTiers(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	base := models.Event{ID: 1, Priority: 3}

	tests := []struct {
		daysAhead int
		bonus     float64
	}{
		{3, 3},
		{10, 2},
		{25, 1},
		{60, 0},
	}

	for _, tt := range tests {
		ev := base
		ev.EventDate = now.Add(time.Duration(tt.daysAhead) * 24 * time.Hour)
		// weight 1, not own: 10 + (6-3)*2 + bonus = 16 + bonus.
		want := (16 + tt.bonus) * jitter(ev.ID)
		if got := eventScore(ev, 1, false, now); math.Abs(got-want) > 1e-9 {
			t.Errorf("daysAhead %d: eventScore = %v, want %v", tt.daysAhead, got, want)
		}
	}
}

func TestEventScoreHigherWeightWins(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	ev := models.Event{ID: 1, Priority: 3, EventDate: now.Add(48 * time.Hour)}

	if eventScore(ev, 3, true, now) <= eventScore(ev, 1, false, now) {
		t.Error("own category with higher weight must outscore tier B")
	}
}

func TestRelatedCategories(t *testing.T) {
	got := relatedCategories([]string{"Sports"})
	if len(got) != 2 || got[0] != "Community" || got[1] != "Health" {
		t.Errorf("Sports neighbors = %v, want [Community Health]", got)
	}
}

func TestRelatedCategoriesExcludesOwnAndDedups(t *testing.T) {
	got := relatedCategories([]string{"Health", "Education"})
	// Health -> Community, Education, Environment; Education -> Community,
	// Health, Environment. Own categories drop out, duplicates collapse.
	if len(got) != 2 || got[0] != "Community" || got[1] != "Environment" {
		t.Errorf("got %v, want [Community Environment]", got)
	}
}

func TestRelatedCategoriesUnknownCategory(t *testing.T) {
	if got := relatedCategories([]string{"General"}); len(got) != 0 {
		t.Errorf("unknown category must have no neighbors, got %v", got)
	}
}
