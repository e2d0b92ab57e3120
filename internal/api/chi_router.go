// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/arenascope/arenascope/internal/metrics"
	"github.com/arenascope/arenascope/internal/middleware"
)

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new Router.
func NewRouter(handler *Handler, chiMW *ChiMiddleware) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
	}
}

// Setup configures all HTTP routes using the Chi router.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware stack, applied to all routes in order
	r.Use(RequestIDWithLogging())         // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)           // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)        // Recover from panics
	r.Use(router.chiMiddleware.CORS())    // CORS must be global to handle OPTIONS preflight

	r.Get("/", router.handler.Index)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Prometheus)

		r.Get("/", router.handler.APIInfo)

		r.Route("/players", func(r chi.Router) {
			r.Get("/{tag}", router.handler.Player)
			r.Get("/{tag}/battlelog", router.handler.PlayerBattleLog)
			r.Get("/{tag}/currentdeck", router.handler.PlayerCurrentDeck)
			r.Get("/{tag}/stats", router.handler.PlayerStats)
		})

		r.Route("/clans", func(r chi.Router) {
			// Static route first; chi gives it precedence over /{tag}
			r.Get("/popular", router.handler.PopularClans)
			r.Get("/{tag}", router.handler.Clan)
			r.Get("/{tag}/members", router.handler.ClanMembers)
			r.Get("/{tag}/warlog", router.handler.ClanWarLog)
			r.Get("/{tag}/currentwar", router.handler.ClanCurrentWar)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Get("/", router.handler.Cards)
			r.Get("/rarity/{rarity}", router.handler.CardsByRarity)
			r.Get("/{name}", router.handler.CardByName)
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/search", router.handler.SearchTournaments)
		})

		r.Route("/leaderboards", func(r chi.Router) {
			r.Get("/pathoflegends/{season}", router.handler.PathOfLegendsLeaderboard)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteNotFound(w, req, "Endpoint not found. Check /api for available endpoints.")
	})

	return r
}
