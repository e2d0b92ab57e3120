// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package clashroyale

import "context"

// GetAllCards fetches the full card catalog.
func (c *Client) GetAllCards(ctx context.Context) (any, error) {
	return c.Get(ctx, "cards", nil)
}
