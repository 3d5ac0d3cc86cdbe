// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package search ranks catalog events against a free-text query.
//
// Rank is a pure function of its inputs and the current time: it writes
// nothing, records nothing, and can be called concurrently. Recording a
// query into the search history is a separate, caller-driven step.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/civiclab/townsquare/internal/models"
)

// Scoring weights. The whole-term weights reward an exact phrase hit in
// a field; the token weights accumulate per matching word.
const (
	wholeTermTitle       = 100
	wholeTermDescription = 50
	wholeTermCategory    = 80
	wholeTermLocation    = 60

	tokenTitle       = 20
	tokenDescription = 10
	tokenCategory    = 15
	tokenLocation    = 12

	priorityWeight    = 5
	announcementBonus = 8
)

// Rank scores events against term and returns the matches ordered by
// relevance. An empty or whitespace-only term returns the input
// unchanged, preserving the caller's "all events" ordering. Events that
// score zero are excluded.
//
// Ordering: score descending, ties by event date ascending, then ID.
func Rank(events []models.Event, term string) []models.Event {
	return rankAt(events, term, time.Now())
}

// rankAt is the clock-injected form of Rank.
func rankAt(events []models.Event, term string, now time.Time) []models.Event {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return events
	}
	tokens := strings.Fields(normalized)

	type scored struct {
		event models.Event
		score float64
	}

	results := make([]scored, 0, len(events))
	for _, ev := range events {
		if score := scoreEvent(ev, normalized, tokens, now); score > 0 {
			results = append(results, scored{event: ev, score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		if !results[i].event.EventDate.Equal(results[j].event.EventDate) {
			return results[i].event.EventDate.Before(results[j].event.EventDate)
		}
		return results[i].event.ID < results[j].event.ID
	})

	out := make([]models.Event, len(results))
	for i, r := range results {
		out[i] = r.event
	}
	return out
}

// scoreEvent computes the relevance score of one event. All containment
// checks are case-insensitive substring matches.
func scoreEvent(ev models.Event, term string, tokens []string, now time.Time) float64 {
	title := strings.ToLower(ev.Title)
	description := strings.ToLower(ev.Description)
	category := strings.ToLower(ev.Category)
	location := strings.ToLower(ev.Location)

	var score float64

	if strings.Contains(title, term) {
		score += wholeTermTitle
	}
	if strings.Contains(description, term) {
		score += wholeTermDescription
	}
	if strings.Contains(category, term) {
		score += wholeTermCategory
	}
	if strings.Contains(location, term) {
		score += wholeTermLocation
	}

	for _, token := range tokens {
		if strings.Contains(title, token) {
			score += tokenTitle
		}
		if strings.Contains(description, token) {
			score += tokenDescription
		}
		if strings.Contains(category, token) {
			score += tokenCategory
		}
		if strings.Contains(location, token) {
			score += tokenLocation
		}
	}

	score += float64((6 - ev.Priority) * priorityWeight)

	// Imminent events rank higher; past events get no recency credit.
	switch days := ev.DaysUntil(now); {
	case days >= 0 && days <= 7:
		score += 10
	case days >= 0 && days <= 14:
		score += 5
	case days >= 0 && days <= 30:
		score += 2
	}

	if ev.IsAnnouncement {
		score += announcementBonus
	}

	return score
}
