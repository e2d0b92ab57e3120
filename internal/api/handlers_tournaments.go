// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package api

import (
	"net/http"
)

// SearchTournaments handles GET /api/tournaments/search?name={name}.
func (h *Handler) SearchTournaments(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	name := r.URL.Query().Get("name")
	if name == "" {
		rw.BadRequest("Tournament name is required. Use ?name=<tournament_name>")
		return
	}

	tournaments, err := h.client.SearchTournaments(r.Context(), name)
	if err != nil {
		respondUpstreamError(rw, r, err, "tournaments")
		return
	}
	rw.Success(tournaments)
}
