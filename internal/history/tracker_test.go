// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package history

import (
	"testing"
	"time"

	"github.com/civiclab/townsquare/internal/models"
)

// seedEntry appends a raw entry with a chosen timestamp, bypassing Add's
// "now" stamping so windowed queries can be tested deterministically.
func seedEntry(t *Tracker, term, category, session string, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, models.SearchHistoryEntry{
		ID:         len(t.entries) + 1,
		SearchTerm: term,
		Category:   category,
		SearchedAt: at,
		Session:    session,
	})
}

func TestAddDefaultsSessionToAnonymous(t *testing.T) {
	tr := NewTracker()
	tr.Add("health fair", "", "")

	got := tr.SessionHistory(models.AnonymousSession, 10)
	if len(got) != 1 {
		t.Fatalf("expected 1 anonymous entry, got %d", len(got))
	}
	if got[0].Session != models.AnonymousSession {
		t.Errorf("session = %q, want %q", got[0].Session, models.AnonymousSession)
	}
}

func TestAddAutoDetectsCategory(t *testing.T) {
	tr := NewTracker()
	tr.Add("pothole repair on main road", "", "s1")

	got := tr.SessionHistory("s1", 1)
	if len(got) != 1 || got[0].Category != "Infrastructure" {
		t.Errorf("expected auto-detected Infrastructure, got %+v", got)
	}
}

func TestAddKeepsExplicitCategory(t *testing.T) {
	tr := NewTracker()
	tr.Add("anything at all", "Sports", "s1")

	got := tr.SessionHistory("s1", 1)
	if len(got) != 1 || got[0].Category != "Sports" {
		t.Errorf("explicit category must win, got %+v", got)
	}
}

func TestAddEmptyTermAndCategory(t *testing.T) {
	tr := NewTracker()
	tr.Add("", "", "s1")

	got := tr.SessionHistory("s1", 1)
	if len(got) != 1 || got[0].Category != "" {
		t.Errorf("expected entry with empty category, got %+v", got)
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"doctor appointment", "Health"},
		{"fitness class", "Health"}, // Health listed before Sports
		{"library book sale", "Education"},
		{"recycle drop-off", "Environment"},
		{"neighborhood watch", "Safety"},
		{"traffic light repair", "Infrastructure"},
		{"soccer tournament", "Sports"},
		{"holiday market", "Community"},
		{"xyzzy", "General"},
		{"", "General"},
		{"HOSPITAL visiting hours", "Health"},
	}

	for _, tt := range tests {
		if got := DetectCategory(tt.term); got != tt.want {
			t.Errorf("DetectCategory(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestTrendingCategoriesFrequencyOrder(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	for i := 0; i < 3; i++ {
		seedEntry(tr, "q", "Health", "s1", now.Add(-time.Hour))
	}
	for i := 0; i < 5; i++ {
		seedEntry(tr, "q", "Sports", "s2", now.Add(-2*time.Hour))
	}
	seedEntry(tr, "q", "Safety", "s3", now.Add(-3*time.Hour))

	got := tr.TrendingCategories(2)
	if len(got) != 2 || got[0] != "Sports" || got[1] != "Health" {
		t.Errorf("expected [Sports Health], got %v", got)
	}
}

func TestTrendingCategoriesWindow(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	seedEntry(tr, "q", "Health", "s1", now.Add(-8*24*time.Hour)) // outside window
	seedEntry(tr, "q", "Safety", "s1", now.Add(-time.Hour))

	got := tr.TrendingCategories(5)
	if len(got) != 1 || got[0] != "Safety" {
		t.Errorf("expected only Safety inside the 7-day window, got %v", got)
	}
}

func TestTrendingCategoriesTieKeepsEncounterOrder(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	seedEntry(tr, "q", "Education", "s1", now.Add(-time.Hour))
	seedEntry(tr, "q", "Environment", "s1", now.Add(-time.Hour))
	seedEntry(tr, "q", "Education", "s1", now.Add(-time.Hour))
	seedEntry(tr, "q", "Environment", "s1", now.Add(-time.Hour))

	got := tr.TrendingCategories(5)
	if len(got) != 2 || got[0] != "Education" || got[1] != "Environment" {
		t.Errorf("tie must preserve encounter order, got %v", got)
	}
}

func TestTrendingCategoriesSkipsEmptyCategory(t *testing.T) {
	tr := NewTracker()
	seedEntry(tr, "", "", "s1", time.Now())

	if got := tr.TrendingCategories(5); len(got) != 0 {
		t.Errorf("empty categories must be excluded, got %v", got)
	}
}

func TestPreferences(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	seedEntry(tr, "q", "Health", "alice", now)
	seedEntry(tr, "q", "Health", "alice", now)
	seedEntry(tr, "q", "Sports", "alice", now)
	seedEntry(tr, "q", "Safety", "bob", now)

	got := tr.Preferences("alice")
	if got["Health"] != 2 || got["Sports"] != 1 {
		t.Errorf("unexpected preferences: %v", got)
	}
	if _, ok := got["Safety"]; ok {
		t.Error("other sessions must not leak into preferences")
	}
}

func TestSessionHistoryMostRecentFirst(t *testing.T) {
	tr := NewTracker()
	tr.Add("first", "Health", "s1")
	tr.Add("second", "Sports", "s1")
	tr.Add("other", "Safety", "s2")
	tr.Add("third", "Community", "s1")

	got := tr.SessionHistory("s1", 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].SearchTerm != "third" || got[1].SearchTerm != "second" {
		t.Errorf("expected most recent first, got %v", got)
	}
}

func TestPopularCategoriesWindow(t *testing.T) {
	tr := NewTracker()
	now := time.Now()

	seedEntry(tr, "q", "Health", "s1", now.Add(-40*24*time.Hour)) // outside 30d
	seedEntry(tr, "q", "Sports", "s1", now.Add(-5*24*time.Hour))
	seedEntry(tr, "q", "Sports", "s2", now.Add(-2*24*time.Hour))
	seedEntry(tr, "q", "Safety", "s2", now.Add(-1*24*time.Hour))

	got := tr.PopularCategories(5)
	if len(got) != 2 || got[0] != "Sports" || got[1] != "Safety" {
		t.Errorf("expected [Sports Safety], got %v", got)
	}
}

func TestClearAll(t *testing.T) {
	tr := NewTracker()
	tr.Add("q", "Health", "s1")
	tr.ClearAll()

	if tr.Len() != 0 {
		t.Errorf("expected empty tracker, got %d entries", tr.Len())
	}
	if got := tr.TrendingCategories(5); len(got) != 0 {
		t.Errorf("expected no trending after clear, got %v", got)
	}
}
