// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/civiclab/townsquare/internal/cache"
	"github.com/civiclab/townsquare/internal/catalog"
	"github.com/civiclab/townsquare/internal/config"
	"github.com/civiclab/townsquare/internal/history"
	"github.com/civiclab/townsquare/internal/logging"
	"github.com/civiclab/townsquare/internal/models"
	"github.com/civiclab/townsquare/internal/recommend"
	"github.com/civiclab/townsquare/internal/reports"
)

// envelope mirrors models.APIResponse with a raw Data payload so tests
// can decode it into the expected concrete type.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func testAPIConfig() config.APIConfig {
	return config.APIConfig{
		DefaultPageSize: 20,
		MaxPageSize:     100,
		CacheTTL:        time.Minute,
		RateLimitReqs:   1000,
		RateLimitWindow: time.Minute,
		CORSOrigins:     []string{"*"},
	}
}

// newTestServer builds a full router over fresh in-memory state.
func newTestServer(t *testing.T) (http.Handler, *catalog.Store, *history.Tracker) {
	t.Helper()

	store := catalog.NewStore()
	tracker := history.NewTracker()
	engine := recommend.NewEngine(store, tracker, logging.NewTestLogger(io.Discard))

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open in-memory badger: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	reportStore, err := reports.NewStore(db, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("reports.NewStore: %v", err)
	}

	cfg := testAPIConfig()
	handler := NewHandler(store, tracker, engine, reportStore, cache.New(cfg.CacheTTL), cfg)
	return NewRouter(handler, cfg), store, tracker
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope from %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data payload: %v", err)
	}
}

func futureDate(days int) time.Time {
	return time.Now().Add(time.Duration(days) * 24 * time.Hour).UTC().Truncate(time.Second)
}

func createEventBody(title, category string, priority int, date time.Time) map[string]any {
	return map[string]any{
		"title":      title,
		"category":   category,
		"priority":   priority,
		"event_date": date.Format(time.RFC3339),
	}
}

func TestCreateAndGetEvent(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/events",
		createEventBody("Town Hall Meeting", "Community", 2, futureDate(3)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created models.Event
	decodeData(t, env, &created)
	if created.ID != 1 || created.Category != "Community" {
		t.Errorf("unexpected created event: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt must be stamped")
	}

	rec, env = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/v1/events/%d", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var fetched models.Event
	decodeData(t, env, &fetched)
	if fetched.Title != "Town Hall Meeting" {
		t.Errorf("fetched title = %q", fetched.Title)
	}
}

func TestCreateEventValidation(t *testing.T) {
	router, _, _ := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing title", map[string]any{"category": "Health", "priority": 1, "event_date": futureDate(1).Format(time.RFC3339)}},
		{"priority out of range", createEventBody("Flu Shot Clinic", "Health", 9, futureDate(1))},
		{"short title", createEventBody("ab", "Health", 2, futureDate(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doRequest(t, router, http.MethodPost, "/api/v1/events", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if env.Error == nil || env.Error.Code != errCodeValidation {
				t.Errorf("expected VALIDATION_ERROR, got %+v", env.Error)
			}
		})
	}
}

func TestCreateEventBadJSON(t *testing.T) {
	router, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGetEventNotFound(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/events/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if env.Error == nil || env.Error.Code != errCodeEventNotFound {
		t.Errorf("expected EVENT_NOT_FOUND, got %+v", env.Error)
	}
}

func TestListEventsWithCategoryFilter(t *testing.T) {
	router, store, _ := newTestServer(t)

	store.AddEvent(catalog.EventParams{Title: "Vaccination Day", Category: "Health", Priority: 2, EventDate: futureDate(2)})
	store.AddEvent(catalog.EventParams{Title: "Road Closure", Category: "Infrastructure", Priority: 1, EventDate: futureDate(1)})

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/events?category=Health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload models.EventsResponse
	decodeData(t, env, &payload)
	if payload.Total != 1 || payload.Events[0].Category != "Health" {
		t.Errorf("unexpected payload: %+v", payload)
	}
}

func TestListEventsEmptyCatalog(t *testing.T) {
	router, _, _ := newTestServer(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/events", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload models.EventsResponse
	decodeData(t, env, &payload)
	if payload.Total != 0 || payload.Events == nil {
		t.Errorf("expected empty non-nil list, got %+v", payload)
	}
}

func TestHighPriorityEndpoint(t *testing.T) {
	router, store, _ := newTestServer(t)

	store.AddEvent(catalog.EventParams{Title: "Festival", Category: "Community", Priority: 4, EventDate: futureDate(5)})
	store.AddEvent(catalog.EventParams{Title: "Boil Water Notice", Category: "Health", Priority: 1, EventDate: futureDate(1), IsAnnouncement: true})
	store.AddEvent(catalog.EventParams{Title: "Bridge Inspection", Category: "Infrastructure", Priority: 2, EventDate: futureDate(2)})

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/events/high-priority", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload models.EventsResponse
	decodeData(t, env, &payload)
	if payload.Total != 2 {
		t.Fatalf("expected 2 high-priority events, got %d", payload.Total)
	}
	if payload.Events[0].Priority != 1 {
		t.Errorf("priority 1 must come first, got %+v", payload.Events[0])
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	router, store, _ := newTestServer(t)

	store.AddEvent(catalog.EventParams{Title: "A", Category: "Health", Priority: 3, EventDate: futureDate(1)})
	store.AddEvent(catalog.EventParams{Title: "B", Category: "Sports", Priority: 3, EventDate: futureDate(2)})
	store.AddEvent(catalog.EventParams{Title: "C", Category: "Health", Priority: 3, EventDate: futureDate(3)})

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/events/categories", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload models.CategoriesResponse
	decodeData(t, env, &payload)
	if len(payload.Categories) != 2 || payload.Categories[0] != "Health" || payload.Categories[1] != "Sports" {
		t.Errorf("categories = %v, want [Health Sports]", payload.Categories)
	}
}

func TestEventsByDateEndpoint(t *testing.T) {
	router, store, _ := newTestServer(t)

	day := futureDate(4)
	store.AddEvent(catalog.EventParams{Title: "On the day", Category: "Community", Priority: 3, EventDate: day})
	store.AddEvent(catalog.EventParams{Title: "Other day", Category: "Community", Priority: 3, EventDate: futureDate(9)})

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/events/by-date?date="+day.Format("2006-01-02"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload models.EventsResponse
	decodeData(t, env, &payload)
	if payload.Total != 1 || payload.Events[0].Title != "On the day" {
		t.Errorf("unexpected payload: %+v", payload)
	}

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/events/by-date?date=not-a-date", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", rec.Code)
	}
}

func TestClearEventsEndpoint(t *testing.T) {
	router, store, _ := newTestServer(t)
	store.AddEvent(catalog.EventParams{Title: "X", Category: "Health", Priority: 3, EventDate: futureDate(1)})

	rec, _ := doRequest(t, router, http.MethodDelete, "/api/v1/events", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if store.Len() != 0 {
		t.Errorf("catalog should be empty after DELETE, has %d", store.Len())
	}
}

func TestRecentEventsLimit(t *testing.T) {
	router, store, _ := newTestServer(t)
	for i := 0; i < 5; i++ {
		store.AddEvent(catalog.EventParams{Title: fmt.Sprintf("Event %d", i), Category: "Community", Priority: 3, EventDate: futureDate(i + 1)})
	}

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/events/recent?limit=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var payload models.EventsResponse
	decodeData(t, env, &payload)
	if payload.Total != 2 {
		t.Fatalf("expected 2 recent events, got %d", payload.Total)
	}
	if payload.Events[0].Title != "Event 4" {
		t.Errorf("newest must come first, got %+v", payload.Events[0])
	}
}
