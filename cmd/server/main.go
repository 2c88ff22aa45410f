// Cinelog - Movie Catalog and Community Ratings API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelog

// Package main is the entry point for the Cinelog server.
//
// Cinelog is a movie catalog and community ratings API. Accounts
// authenticate with JWT bearer tokens (or HTTP Basic for administrative
// bootstrap); every resource group is guarded by a method-keyed policy
// table evaluated in middleware.
//
// The server initializes components in the following order:
//
//  1. Configuration: environment variables and optional YAML file (Koanf v2)
//  2. Logging: zerolog, JSON or console format
//  3. Storage: BadgerDB key-value store
//  4. HTTP server: Chi router with auth, quota, and metrics middleware
//
// Required configuration:
//   - JWT_SECRET: 32+ character secret for token signing (production)
//   - ADMIN_EMAIL / ADMIN_PASSWORD: the super-admin identity
//   - BADGER_PATH: database directory (default /data/cinelog)
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting connections, waits up to 10 seconds for in-flight requests,
// then closes the database.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/cinelog/internal/api"
	"github.com/tomtom215/cinelog/internal/config"
	"github.com/tomtom215/cinelog/internal/logging"
	"github.com/tomtom215/cinelog/internal/store"
)

const shutdownTimeout = 10 * time.Second

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
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Cinelog")

	st, err := store.Open(cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	router, err := api.NewRouter(cfg, st)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build router")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Server stopped")
}
