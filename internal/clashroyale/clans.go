// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package clashroyale

import (
	"context"
	"net/url"
	"strconv"
)

// popularClansMinScore filters the clan search to established clans only.
const popularClansMinScore = 40000

// popularClansMaxLimit is the upstream page-size ceiling for clan search.
const popularClansMaxLimit = 200

// GetClan fetches a clan's profile by tag.
func (c *Client) GetClan(ctx context.Context, tag string) (any, error) {
	return c.Get(ctx, "clans/"+normalizeClanTag(tag), nil)
}

// GetClanMembers fetches a clan and projects its member list. The result is
// always an object with "members" and "memberCount" keys; both default when
// the clan payload omits them. No request beyond the clan fetch is made.
func (c *Client) GetClanMembers(ctx context.Context, tag string) (any, error) {
	clan, err := c.GetClan(ctx, tag)
	if err != nil {
		return nil, err
	}

	members := any([]any{})
	memberCount := any(float64(0))
	if obj, ok := clan.(map[string]any); ok {
		if v, ok := obj["memberList"]; ok && v != nil {
			members = v
		}
		if v, ok := obj["memberCount"]; ok && v != nil {
			memberCount = v
		}
	}
	return map[string]any{
		"members":     members,
		"memberCount": memberCount,
	}, nil
}

// GetClanWarLog fetches a clan's river race log.
func (c *Client) GetClanWarLog(ctx context.Context, tag string) (any, error) {
	return c.Get(ctx, "clans/"+normalizeClanTag(tag)+"/warlog", nil)
}

// GetClanCurrentWar fetches a clan's ongoing river race.
func (c *Client) GetClanCurrentWar(ctx context.Context, tag string) (any, error) {
	return c.Get(ctx, "clans/"+normalizeClanTag(tag)+"/currentwar", nil)
}

// GetPopularClans searches for high-score clans. limit is clamped to the
// upstream maximum of 200; values <= 0 fall back to 200.
func (c *Client) GetPopularClans(ctx context.Context, limit int) (any, error) {
	if limit <= 0 || limit > popularClansMaxLimit {
		limit = popularClansMaxLimit
	}
	params := url.Values{}
	params.Set("minScore", strconv.Itoa(popularClansMinScore))
	params.Set("limit", strconv.Itoa(limit))
	return c.Get(ctx, "clans", params)
}
