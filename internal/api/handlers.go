// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/arenascope/arenascope/internal/clashroyale"
	"github.com/arenascope/arenascope/internal/validation"
)

// Handler holds the dependencies for all HTTP handlers. The client is shared
// across requests, it is immutable after construction.
type Handler struct {
	client  *clashroyale.Client
	version string
}

// NewHandler creates a new Handler.
func NewHandler(client *clashroyale.Client, version string) *Handler {
	return &Handler{
		client:  client,
		version: version,
	}
}

// Index handles GET / with a service banner.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"message": "Arenascope Clash Royale API",
		"status":  "running",
		"version": h.version,
	})
}

// APIInfo handles GET /api, listing the available endpoints.
func (h *Handler) APIInfo(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"message": "Arenascope Clash Royale API",
		"endpoints": map[string]interface{}{
			"players": map[string]interface{}{
				"base": "/api/players",
				"routes": []string{
					"GET /api/players/{tag} - Get player information",
					"GET /api/players/{tag}/battlelog - Get player battle log",
					"GET /api/players/{tag}/currentdeck - Get deck from the most recent battle",
					"GET /api/players/{tag}/stats - Get player statistics",
				},
			},
			"clans": map[string]interface{}{
				"base": "/api/clans",
				"routes": []string{
					"GET /api/clans/popular?limit={n} - Get popular clans",
					"GET /api/clans/{tag} - Get clan information",
					"GET /api/clans/{tag}/members - Get clan members",
					"GET /api/clans/{tag}/warlog - Get clan war log",
					"GET /api/clans/{tag}/currentwar - Get current clan war",
				},
			},
			"cards": map[string]interface{}{
				"base": "/api/cards",
				"routes": []string{
					"GET /api/cards/ - Get all cards",
					"GET /api/cards/rarity/{rarity} - Get cards by rarity",
					"GET /api/cards/{name} - Get a card by name",
				},
			},
			"tournaments": map[string]interface{}{
				"base": "/api/tournaments",
				"routes": []string{
					"GET /api/tournaments/search?name={name} - Search tournaments",
				},
			},
			"leaderboards": map[string]interface{}{
				"base": "/api/leaderboards",
				"routes": []string{
					"GET /api/leaderboards/pathoflegends/{season} - Get Path of Legends leaderboard",
				},
			},
		},
	})
}

// tagRequest carries a validated player or clan tag.
type tagRequest struct {
	Tag string `validate:"required,gametag"`
}

// urlParamTag extracts and validates a tag path parameter. Chi keeps path
// parameters percent-encoded, so the common '%23' prefix is unescaped before
// validation. Returns false after writing a 400 when the tag is malformed.
func urlParamTag(rw *ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := chi.URLParam(r, name)
	tag, err := url.PathUnescape(raw)
	if err != nil {
		tag = raw
	}

	if verr := validation.ValidateStruct(&tagRequest{Tag: tag}); verr != nil {
		rw.ValidationError(verr.Error(), nil)
		return "", false
	}
	return tag, true
}
