// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

// Command server runs the Arenascope HTTP proxy.
//
// The server exposes a REST API over the Clash Royale developer API for the
// Arenascope frontend: player profiles and battle logs, clan data, the card
// catalog, tournament search, and Path of Legends leaderboards. All upstream
// calls are authenticated with a bearer token supplied via CLASH_API_KEY or
// an api_key.txt file.
//
// Configuration is layered: built-in defaults, an optional config.yaml, and
// environment variables, in increasing priority. See internal/config.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arenascope/arenascope/internal/api"
	"github.com/arenascope/arenascope/internal/clashroyale"
	"github.com/arenascope/arenascope/internal/config"
	"github.com/arenascope/arenascope/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

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
		Str("version", version).
		Str("base_url", cfg.Upstream.BaseURL).
		Msg("Starting Arenascope")

	// One shared client; it holds no mutable state after construction.
	client := clashroyale.New(cfg.Upstream.APIKey, cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	handler := api.NewHandler(client, version)
	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Security.CORSOrigins
	router := api.NewRouter(handler, api.NewChiMiddleware(mwConfig))

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		_ = server.Close()
	}

	logging.Info().Msg("Application stopped gracefully")
}
