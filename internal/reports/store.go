// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package reports

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/civiclab/townsquare/internal/models"
)

// reportKeyPrefix namespaces report records inside the shared BadgerDB.
const reportKeyPrefix = "report:"

// Store is a BadgerDB-backed issue-report log. IDs are assigned
// sequentially; the counter is recovered from the highest stored key at
// construction.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger

	mu     sync.Mutex
	nextID int
}

// NewStore creates a report store over an open BadgerDB handle and
// recovers the ID counter from existing records.
func NewStore(db *badger.DB, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		db:     db,
		logger: logger.With().Str("component", "reports").Logger(),
		nextID: 1,
	}

	if err := s.recoverNextID(); err != nil {
		return nil, fmt.Errorf("recover report counter: %w", err)
	}
	return s, nil
}

// Add persists a new report, assigning its ID and submission timestamp.
// The stored copy is returned.
func (s *Store) Add(report models.IssueReport) (models.IssueReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report.ID = s.nextID
	report.SubmittedAt = time.Now().UTC()

	data, err := json.Marshal(report)
	if err != nil {
		return models.IssueReport{}, fmt.Errorf("marshal report: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(reportKey(report.ID), data)
	})
	if err != nil {
		return models.IssueReport{}, fmt.Errorf("store report: %w", err)
	}

	s.nextID++
	s.logger.Info().
		Int("report_id", report.ID).
		Str("category", report.Category).
		Str("location", report.Location).
		Msg("issue report submitted")
	return report, nil
}

// List returns all reports in submission order.
func (s *Store) List() ([]models.IssueReport, error) {
	out := []models.IssueReport{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reportKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var report models.IssueReport
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &report)
			})
			if err != nil {
				return fmt.Errorf("decode report: %w", err)
			}
			out = append(out, report)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of stored reports.
func (s *Store) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reportKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Clear deletes all reports and resets the ID counter.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reportKeyPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		var keys [][]byte
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear reports: %w", err)
	}

	s.nextID = 1
	return nil
}

// recoverNextID scans backwards for the highest stored report ID.
func (s *Store) recoverNextID() error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reportKeyPrefix)
		opts.PrefetchValues = false
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the prefix range, then the first valid entry is the
		// highest key.
		it.Seek([]byte(reportKeyPrefix + "~"))
		if !it.Valid() {
			return nil
		}

		var id int
		key := string(it.Item().Key())
		if _, err := fmt.Sscanf(key, reportKeyPrefix+"%010d", &id); err != nil {
			return fmt.Errorf("parse report key %q: %w", key, err)
		}
		s.nextID = id + 1
		return nil
	})
}

// reportKey formats a zero-padded key so lexicographic order matches
// numeric order.
func reportKey(id int) []byte {
	return []byte(fmt.Sprintf(reportKeyPrefix+"%010d", id))
}
