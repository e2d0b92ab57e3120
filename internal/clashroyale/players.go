// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package clashroyale

import "context"

// GetPlayer fetches a player's profile by tag.
func (c *Client) GetPlayer(ctx context.Context, tag string) (any, error) {
	return c.Get(ctx, "players/"+normalizePlayerTag(tag), nil)
}

// GetPlayerBattleLog fetches a player's recent battles, newest first.
func (c *Client) GetPlayerBattleLog(ctx context.Context, tag string) (any, error) {
	return c.Get(ctx, "players/"+normalizePlayerTag(tag)+"/battlelog", nil)
}
