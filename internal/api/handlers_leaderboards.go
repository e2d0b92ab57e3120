// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arenascope/arenascope/internal/validation"
)

// seasonRequest carries a validated Path of Legends season identifier.
type seasonRequest struct {
	Season string `validate:"required,season"`
}

// PathOfLegendsLeaderboard handles GET /api/leaderboards/pathoflegends/{season}.
func (h *Handler) PathOfLegendsLeaderboard(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	season := chi.URLParam(r, "season")

	if verr := validation.ValidateStruct(&seasonRequest{Season: season}); verr != nil {
		rw.ValidationError(verr.Error(), nil)
		return
	}

	leaderboard, err := h.client.GetPathOfLegendsLeaderboard(r.Context(), season)
	if err != nil {
		respondUpstreamError(rw, r, err, "leaderboard")
		return
	}
	rw.Success(leaderboard)
}
