// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package api

import (
	"net/http"
)

// Player handles GET /api/players/{tag}.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tag, ok := urlParamTag(rw, r, "tag")
	if !ok {
		return
	}

	player, err := h.client.GetPlayer(r.Context(), tag)
	if err != nil {
		respondUpstreamError(rw, r, err, "player data")
		return
	}
	rw.Success(player)
}

// PlayerBattleLog handles GET /api/players/{tag}/battlelog.
func (h *Handler) PlayerBattleLog(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tag, ok := urlParamTag(rw, r, "tag")
	if !ok {
		return
	}

	battleLog, err := h.client.GetPlayerBattleLog(r.Context(), tag)
	if err != nil {
		respondUpstreamError(rw, r, err, "battle log")
		return
	}
	rw.Success(battleLog)
}

// PlayerCurrentDeck handles GET /api/players/{tag}/currentdeck.
// The deck is taken from the player's most recent battle; the battle log is
// ordered newest first and the requesting player is team[0].
func (h *Handler) PlayerCurrentDeck(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tag, ok := urlParamTag(rw, r, "tag")
	if !ok {
		return
	}

	battleLog, err := h.client.GetPlayerBattleLog(r.Context(), tag)
	if err != nil {
		respondUpstreamError(rw, r, err, "current deck")
		return
	}

	battles, ok := battleLog.([]interface{})
	if !ok || len(battles) == 0 {
		rw.Success(map[string]interface{}{
			"cards":   []interface{}{},
			"message": "No recent battles found for this player",
		})
		return
	}

	mostRecent, ok := battles[0].(map[string]interface{})
	if !ok {
		rw.InternalError("Failed to extract deck from battle log")
		return
	}

	team, _ := mostRecent["team"].([]interface{})
	if len(team) == 0 {
		rw.NotFound("No team data found in the most recent battle")
		return
	}

	cards := []interface{}{}
	if player, ok := team[0].(map[string]interface{}); ok {
		if deck, ok := player["cards"].([]interface{}); ok {
			cards = deck
		}
	}

	data := map[string]interface{}{
		"cards":      cards,
		"battleTime": mostRecent["battleTime"],
		"battleType": mostRecent["type"],
	}
	if mode, ok := mostRecent["gameMode"].(map[string]interface{}); ok {
		data["gameMode"] = mode["name"]
	}
	rw.Success(data)
}

// PlayerStats handles GET /api/players/{tag}/stats, a summary projection of
// the player profile with stable snake_case keys for frontend charts.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	tag, ok := urlParamTag(rw, r, "tag")
	if !ok {
		return
	}

	player, err := h.client.GetPlayer(r.Context(), tag)
	if err != nil {
		respondUpstreamError(rw, r, err, "player stats")
		return
	}

	profile, ok := player.(map[string]interface{})
	if !ok {
		rw.InternalError("An unexpected error occurred while fetching player stats")
		return
	}

	rw.Success(map[string]interface{}{
		"player_tag":       profile["tag"],
		"player_name":      profile["name"],
		"current_trophies": profile["trophies"],
		"best_trophies":    profile["bestTrophies"],
		"total_battles":    numberOrZero(profile["battleCount"]),
		"total_wins":       numberOrZero(profile["wins"]),
		"total_losses":     numberOrZero(profile["losses"]),
	})
}

// numberOrZero defaults absent numeric fields to 0 in projections.
func numberOrZero(v interface{}) interface{} {
	if v == nil {
		return float64(0)
	}
	return v
}
