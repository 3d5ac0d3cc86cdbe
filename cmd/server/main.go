// Townsquare - Municipal Events, Announcements, and Recommendations
// Copyright 2026 civiclab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/civiclab/townsquare

// Package main is the entry point for the Townsquare server.
//
// Townsquare is a municipal events and announcements service: residents
// browse and search the event catalog, submit issue reports, and get
// personalized event recommendations built from their search history.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Report storage: BadgerDB for resident-submitted issue reports
//  3. Catalog: in-memory event store, optionally seeded with sample data
//  4. Search history tracker and recommendation engine
//  5. HTTP server: REST API under /api/v1 plus Prometheus /metrics
//
// Long-running components run under a suture supervisor tree so a
// crashing background job restarts without taking the listener down.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, REPORTS_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml, or the path in CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests within the
// configured shutdown timeout, and closes the reports database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/civiclab/townsquare/internal/api"
	"github.com/civiclab/townsquare/internal/cache"
	"github.com/civiclab/townsquare/internal/catalog"
	"github.com/civiclab/townsquare/internal/config"
	"github.com/civiclab/townsquare/internal/history"
	"github.com/civiclab/townsquare/internal/logging"
	"github.com/civiclab/townsquare/internal/metrics"
	"github.com/civiclab/townsquare/internal/recommend"
	"github.com/civiclab/townsquare/internal/reports"
	"github.com/civiclab/townsquare/internal/supervisor"
	"github.com/civiclab/townsquare/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("reports_path", cfg.Reports.Path).
		Bool("reports_in_memory", cfg.Reports.InMemory).
		Bool("seed_sample_data", cfg.Catalog.SeedSampleData).
		Msg("Configuration loaded")

	db, err := openReportsDB(cfg.Reports)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open reports database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing reports database")
		}
	}()

	reportStore, err := reports.NewStore(db, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize report store")
	}

	store := catalog.NewStore()
	if cfg.Catalog.SeedSampleData {
		seedSampleData(store)
		logging.Info().Int("events", store.Len()).Msg("Sample catalog seeded")
	}
	metrics.CatalogEvents.Set(float64(store.Len()))

	tracker := history.NewTracker()
	engine := recommend.NewEngine(store, tracker, logging.Logger())

	responseCache := cache.New(cfg.API.CacheTTL)

	handler := api.NewHandler(store, tracker, engine, reportStore, responseCache, cfg.API)
	router := api.NewRouter(handler, cfg.API)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddStorageService(services.NewBadgerGCService(db, 0, logging.WithComponent("badger-gc")))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// openReportsDB opens the badger database backing issue reports.
// Badger's own logger is silenced; everything goes through zerolog.
func openReportsDB(cfg config.ReportsConfig) (*badger.DB, error) {
	if cfg.InMemory {
		return badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	}
	return badger.Open(badger.DefaultOptions(cfg.Path).WithLogger(nil))
}
