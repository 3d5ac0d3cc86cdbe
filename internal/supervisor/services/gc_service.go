// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

package services

import (
	"context"
	"errors"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

const defaultGCInterval = 5 * time.Minute

// gcDiscardRatio is the minimum fraction of reclaimable space a value
// log file needs before badger rewrites it.
const gcDiscardRatio = 0.5

// BadgerGCService periodically runs value-log garbage collection on
// the reports database. Badger never reclaims value-log space on its
// own, so a disk-backed store grows without this.
type BadgerGCService struct {
	db       *badger.DB
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewBadgerGCService creates a GC service for the given database.
// Intervals <= 0 default to 5 minutes.
func NewBadgerGCService(db *badger.DB, interval time.Duration, logger zerolog.Logger) *BadgerGCService {
	if interval <= 0 {
		interval = defaultGCInterval
	}
	return &BadgerGCService{
		db:       db,
		interval: interval,
		logger:   logger,
		name:     "badger-gc",
	}
}

// Serve implements suture.Service. In-memory databases have no value
// log, so the service idles until canceled rather than erroring out.
func (g *BadgerGCService) Serve(ctx context.Context) error {
	if g.db.Opts().InMemory {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.collect()
		}
	}
}

// collect runs GC rounds until badger reports nothing left to rewrite.
func (g *BadgerGCService) collect() {
	for {
		err := g.db.RunValueLogGC(gcDiscardRatio)
		if err == nil {
			g.logger.Debug().Msg("Value log file rewritten")
			continue
		}
		if !errors.Is(err, badger.ErrNoRewrite) {
			g.logger.Warn().Err(err).Msg("Value log GC failed")
		}
		return
	}
}

// String implements fmt.Stringer for supervisor log messages.
func (g *BadgerGCService) String() string {
	return g.name
}
