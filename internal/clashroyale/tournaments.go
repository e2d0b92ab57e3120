// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package clashroyale

import (
	"context"
	"net/url"
)

// SearchTournaments searches open tournaments by name.
func (c *Client) SearchTournaments(ctx context.Context, name string) (any, error) {
	params := url.Values{}
	params.Set("name", name)
	return c.Get(ctx, "tournaments", params)
}
