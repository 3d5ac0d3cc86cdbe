// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package recommend

// relatedCategoryTable is the fixed category adjacency used for tier-B
// scoring. Immutable data: adjusting relationships is a data edit, not a
// code change.
var relatedCategoryTable = map[string][]string{
	"Community":      {"Health", "Education", "Safety"},
	"Health":         {"Community", "Education", "Environment"},
	"Education":      {"Community", "Health", "Environment"},
	"Environment":    {"Health", "Education", "Community"},
	"Safety":         {"Community", "Infrastructure"},
	"Infrastructure": {"Safety", "Environment"},
	"Sports":         {"Community", "Health"},
}

// relatedCategories unions the neighbors of every given category,
// excluding the categories themselves, deduplicated in encounter order.
func relatedCategories(own []string) []string {
	ownSet := make(map[string]struct{}, len(own))
	for _, c := range own {
		ownSet[c] = struct{}{}
	}

	seen := make(map[string]struct{})
	var out []string
	for _, c := range own {
		for _, neighbor := range relatedCategoryTable[c] {
			if _, isOwn := ownSet[neighbor]; isOwn {
				continue
			}
			if _, dup := seen[neighbor]; dup {
				continue
			}
			seen[neighbor] = struct{}{}
			out = append(out, neighbor)
		}
	}
	return out
}
