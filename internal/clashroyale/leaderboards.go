// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package clashroyale

import "context"

// GetPathOfLegendsLeaderboard fetches the global Path of Legends ranking.
// The season "current" selects the ongoing season endpoint; any other value
// is treated as a season identifier (for example "2025-12") and selects that
// season's final rankings.
func (c *Client) GetPathOfLegendsLeaderboard(ctx context.Context, season string) (any, error) {
	if season == "current" {
		return c.Get(ctx, "locations/global/pathoflegend/players", nil)
	}
	return c.Get(ctx, "locations/global/pathoflegend/"+season+"/rankings/players", nil)
}
