// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package reports

import (
	"io"
	"testing"

	"github.com/dgraph-io/badger/v4"

	"github.com/civiclab/townsquare/internal/logging"
	"github.com/civiclab/townsquare/internal/models"
)

func newTestStore(t *testing.T) (*Store, *badger.DB) {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatalf("open in-memory badger: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close badger: %v", err)
		}
	})

	store, err := NewStore(db, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, db
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	store, _ := newTestStore(t)

	first, err := store.Add(models.IssueReport{Location: "Main St", Category: "Infrastructure", Description: "pothole"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := store.Add(models.IssueReport{Location: "Oak Ave", Category: "Safety", Description: "broken streetlight"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.SubmittedAt.IsZero() {
		t.Error("SubmittedAt must be stamped on Add")
	}
}

func TestListReturnsSubmissionOrder(t *testing.T) {
	store, _ := newTestStore(t)

	for _, loc := range []string{"A", "B", "C"} {
		if _, err := store.Add(models.IssueReport{Location: loc, Category: "Community"}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(got))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got[i].Location != want {
			t.Errorf("report %d location = %q, want %q", i, got[i].Location, want)
		}
	}
}

func TestListEmptyStore(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestCount(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Add(models.IssueReport{Location: "X", Category: "Health"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := store.Add(models.IssueReport{Location: "Y", Category: "Health"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}

func TestClearResetsCounter(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Add(models.IssueReport{Location: "X", Category: "Health"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty store after Clear, got %d", n)
	}

	report, err := store.Add(models.IssueReport{Location: "Z", Category: "Safety"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if report.ID != 1 {
		t.Errorf("expected ID counter reset to 1, got %d", report.ID)
	}
}

func TestNewStoreRecoversCounter(t *testing.T) {
	store, db := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := store.Add(models.IssueReport{Location: "X", Category: "Health"}); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	// A fresh store over the same DB must continue the sequence.
	reopened, err := NewStore(db, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	report, err := reopened.Add(models.IssueReport{Location: "Y", Category: "Safety"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if report.ID != 4 {
		t.Errorf("expected recovered counter to yield ID 4, got %d", report.ID)
	}
}
