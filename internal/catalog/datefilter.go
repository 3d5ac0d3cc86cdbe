// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package catalog

import (
	"strings"
	"time"

	"github.com/civiclab/townsquare/internal/models"
)

// Date filter keys accepted by FilterByDate. Matching is case-insensitive.
const (
	FilterToday     = "today"
	FilterTomorrow  = "tomorrow"
	FilterThisWeek  = "thisweek"  // today through today+6
	FilterNextWeek  = "nextweek"  // today+7 through today+13
	FilterThisMonth = "thismonth" // today through end of current month
	FilterNextMonth = "nextmonth" // the following calendar month
)

// FilterByDate narrows an already-fetched event sequence to a named date
// range relative to the current day. An unrecognized filter key returns
// the input unchanged.
func FilterByDate(events []models.Event, filter string) []models.Event {
	return filterByDateAt(events, filter, time.Now())
}

// filterByDateAt is the clock-injected form of FilterByDate.
func filterByDateAt(events []models.Event, filter string, now time.Time) []models.Event {
	today := startOfDay(now)

	switch strings.ToLower(filter) {
	case FilterToday:
		return filterRange(events, today, today.AddDate(0, 0, 1))
	case FilterTomorrow:
		return filterRange(events, today.AddDate(0, 0, 1), today.AddDate(0, 0, 2))
	case FilterThisWeek:
		return filterRange(events, today, today.AddDate(0, 0, 7))
	case FilterNextWeek:
		return filterRange(events, today.AddDate(0, 0, 7), today.AddDate(0, 0, 14))
	case FilterThisMonth:
		return filterRange(events, today, firstOfNextMonth(today))
	case FilterNextMonth:
		next := firstOfNextMonth(today)
		return filterRange(events, next, firstOfNextMonth(next))
	default:
		return events
	}
}

// filterRange keeps events with from <= EventDate < to.
func filterRange(events []models.Event, from, to time.Time) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, ev := range events {
		if !ev.EventDate.Before(from) && ev.EventDate.Before(to) {
			out = append(out, ev)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func firstOfNextMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
}
