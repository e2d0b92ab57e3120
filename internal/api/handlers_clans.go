// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package api

import (
	"net/http"
	"strconv"
)

// Clan handles GET /api/clans/{tag}.
func (h *Handler) Clan(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tag, ok := urlParamTag(rw, r, "tag")
	if !ok {
		return
	}

	clan, err := h.client.GetClan(r.Context(), tag)
	if err != nil {
		respondUpstreamError(rw, r, err, "clan data")
		return
	}
	rw.Success(clan)
}

// ClanMembers handles GET /api/clans/{tag}/members.
func (h *Handler) ClanMembers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tag, ok := urlParamTag(rw, r, "tag")
	if !ok {
		return
	}

	members, err := h.client.GetClanMembers(r.Context(), tag)
	if err != nil {
		respondUpstreamError(rw, r, err, "clan members")
		return
	}
	rw.Success(members)
}

// ClanWarLog handles GET /api/clans/{tag}/warlog.
func (h *Handler) ClanWarLog(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tag, ok := urlParamTag(rw, r, "tag")
	if !ok {
		return
	}

	warLog, err := h.client.GetClanWarLog(r.Context(), tag)
	if err != nil {
		respondUpstreamError(rw, r, err, "war log")
		return
	}
	rw.Success(warLog)
}

// ClanCurrentWar handles GET /api/clans/{tag}/currentwar.
func (h *Handler) ClanCurrentWar(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tag, ok := urlParamTag(rw, r, "tag")
	if !ok {
		return
	}

	currentWar, err := h.client.GetClanCurrentWar(r.Context(), tag)
	if err != nil {
		respondUpstreamError(rw, r, err, "current war")
		return
	}
	rw.Success(currentWar)
}

// PopularClans handles GET /api/clans/popular. The optional limit query
// parameter defaults to 200; the client clamps it to the upstream maximum.
func (h *Handler) PopularClans(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	limit := 200
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			rw.BadRequest("limit must be a positive integer")
			return
		}
		limit = parsed
	}

	clans, err := h.client.GetPopularClans(r.Context(), limit)
	if err != nil {
		respondUpstreamError(rw, r, err, "popular clans")
		return
	}
	rw.Success(clans)
}
