// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package history

import "strings"

// GeneralCategory is recorded when a search term matches no keyword set.
const GeneralCategory = "General"

// categoryKeywords maps each detectable category to its keyword set.
// Checked in listed order, first match wins ("fitness" therefore resolves
// to Health, not Sports). This is a fixed data table: changing it is a
// data edit, not a code change.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Health", []string{"health", "medical", "doctor", "hospital", "wellness", "fitness"}},
	{"Education", []string{"school", "education", "library", "book", "learning", "student"}},
	{"Environment", []string{"environment", "green", "recycle", "garden", "conservation", "sustainability"}},
	{"Safety", []string{"safety", "police", "security", "emergency", "crime", "watch"}},
	{"Infrastructure", []string{"road", "traffic", "construction", "maintenance", "repair", "utility"}},
	{"Sports", []string{"sport", "game", "tournament", "fitness", "exercise", "athletic"}},
	{"Community", []string{"community", "event", "meeting", "gathering", "festival", "market"}},
}

// DetectCategory resolves a search term to a category by case-insensitive
// keyword containment. Falls back to GeneralCategory.
func DetectCategory(term string) string {
	lowered := strings.ToLower(term)
	for _, set := range categoryKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lowered, kw) {
				return set.category
			}
		}
	}
	return GeneralCategory
}
