// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package api

import (
	"net/http"

	"github.com/arenascope/arenascope/internal/clashroyale"
	"github.com/arenascope/arenascope/internal/logging"
)

// respondUpstreamError maps a client operation failure to the API contract:
// client-facing classifications (not found, forbidden, rate limited, other
// upstream statuses) become 400 with the classified message; infrastructure
// failures (timeout, connection loss, decode) are logged and become 500 with
// a generic message naming the operation.
func respondUpstreamError(rw *ResponseWriter, r *http.Request, err error, fetching string) {
	if clashroyale.ClientFacing(err) {
		rw.Error(http.StatusBadRequest, ErrCodeUpstreamError, err.Error())
		return
	}

	logging.Ctx(r.Context()).Error().
		Err(err).
		Str("operation", fetching).
		Msg("Upstream request failed")
	rw.InternalError("An unexpected error occurred while fetching " + fetching)
}
