// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package main

import (
	"time"

	"github.com/civiclab/townsquare/internal/catalog"
)

// seedSampleData loads a starter catalog of municipal events and
// announcements so a fresh deployment has something to browse. Event
// dates are relative to startup, keeping the catalog's upcoming window
// populated no matter when the server starts.
func seedSampleData(store *catalog.Store) {
	now := time.Now()
	day := func(n int) time.Time { return now.AddDate(0, 0, n) }

	samples := []catalog.EventParams{
		{
			Title:          "Community Clean-up Day",
			Description:    "Join us for a community-wide clean-up initiative. We'll provide gloves, bags, and refreshments. Help keep our neighborhood beautiful!",
			Category:       "Community",
			EventDate:      day(7),
			Location:       "Central Park",
			Organizer:      "Municipality Environmental Department",
			ContactInfo:    "environment@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       2,
		},
		{
			Title:          "Road Maintenance Notice",
			Description:    "Scheduled road maintenance on Main Street will begin next week. Expect temporary traffic delays and detours.",
			Category:       "Infrastructure",
			EventDate:      day(3),
			Location:       "Main Street",
			Organizer:      "Municipality Public Works",
			ContactInfo:    "publicworks@municipality.gov.za",
			IsAnnouncement: true,
			Priority:       1,
		},
		{
			Title:          "Youth Sports Tournament",
			Description:    "Annual youth soccer tournament for ages 12-18. Registration required. Prizes for winners!",
			Category:       "Sports",
			EventDate:      day(14),
			Location:       "Municipal Sports Complex",
			Organizer:      "Youth Development Committee",
			ContactInfo:    "youth@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       3,
		},
		{
			Title:          "Health and Wellness Fair",
			Description:    "Free health screenings, nutrition advice, and fitness demonstrations. All ages welcome!",
			Category:       "Health",
			EventDate:      day(21),
			Location:       "Community Center",
			Organizer:      "Health Department",
			ContactInfo:    "health@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       3,
		},
		{
			Title:          "Water Conservation Workshop",
			Description:    "Learn about water-saving techniques and sustainable practices for your home and garden.",
			Category:       "Environment",
			EventDate:      day(10),
			Location:       "Library Meeting Room",
			Organizer:      "Environmental Education Team",
			ContactInfo:    "environment@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       4,
		},
		{
			Title:          "Safety Awareness Campaign",
			Description:    "Important safety tips for residents. Learn about emergency procedures and neighborhood watch programs.",
			Category:       "Safety",
			EventDate:      day(5),
			Location:       "Police Station Community Room",
			Organizer:      "Community Safety Unit",
			ContactInfo:    "safety@municipality.gov.za",
			IsAnnouncement: true,
			Priority:       2,
		},
		{
			Title:          "Educational Technology Expo",
			Description:    "Discover the latest in educational technology. Free workshops for teachers and parents.",
			Category:       "Education",
			EventDate:      day(28),
			Location:       "High School Auditorium",
			Organizer:      "Education Department",
			ContactInfo:    "education@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       4,
		},
		{
			Title:          "Holiday Market",
			Description:    "Local vendors, crafts, and festive activities. Perfect for holiday shopping and family fun!",
			Category:       "Community",
			EventDate:      day(35),
			Location:       "Town Square",
			Organizer:      "Events Committee",
			ContactInfo:    "events@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       3,
		},
		{
			Title:          "Public Library Book Sale",
			Description:    "Annual book sale with thousands of books at discounted prices. Proceeds support library programs.",
			Category:       "Education",
			EventDate:      day(12),
			Location:       "Central Library",
			Organizer:      "Library Friends Association",
			ContactInfo:    "library@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       4,
		},
		{
			Title:          "Traffic Light Maintenance",
			Description:    "Scheduled maintenance on traffic lights at Main Street intersection. Expect brief delays.",
			Category:       "Infrastructure",
			EventDate:      day(2),
			Location:       "Main Street & Oak Avenue",
			Organizer:      "Traffic Department",
			ContactInfo:    "traffic@municipality.gov.za",
			IsAnnouncement: true,
			Priority:       1,
		},
		{
			Title:          "Senior Citizens Health Fair",
			Description:    "Free health screenings, flu shots, and wellness information for residents 65 and older.",
			Category:       "Health",
			EventDate:      day(18),
			Location:       "Senior Center",
			Organizer:      "Health Department",
			ContactInfo:    "health@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       3,
		},
		{
			Title:          "Community Garden Workshop",
			Description:    "Learn sustainable gardening techniques and join our community garden initiative.",
			Category:       "Environment",
			EventDate:      day(25),
			Location:       "Community Garden",
			Organizer:      "Environmental Group",
			ContactInfo:    "environment@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       4,
		},
		{
			Title:          "Neighborhood Watch Meeting",
			Description:    "Monthly meeting to discuss community safety and crime prevention strategies.",
			Category:       "Safety",
			EventDate:      day(8),
			Location:       "Community Center",
			Organizer:      "Police Department",
			ContactInfo:    "safety@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       2,
		},
		{
			Title:          "Youth Art Exhibition",
			Description:    "Showcase of artwork created by local students. Awards ceremony and refreshments provided.",
			Category:       "Education",
			EventDate:      day(30),
			Location:       "Art Gallery",
			Organizer:      "Education Department",
			ContactInfo:    "education@municipality.gov.za",
			IsAnnouncement: false,
			Priority:       4,
		},
		{
			Title:          "Waste Collection Schedule Change",
			Description:    "Due to holiday, waste collection will be delayed by one day next week. Please adjust accordingly.",
			Category:       "Infrastructure",
			EventDate:      day(1),
			Location:       "All Areas",
			Organizer:      "Waste Management",
			ContactInfo:    "waste@municipality.gov.za",
			IsAnnouncement: true,
			Priority:       2,
		},
	}

	for _, params := range samples {
		store.AddEvent(params)
	}
}
