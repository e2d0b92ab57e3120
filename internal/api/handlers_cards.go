// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Cards handles GET /api/cards/.
func (h *Handler) Cards(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	cards, err := h.client.GetAllCards(r.Context())
	if err != nil {
		respondUpstreamError(rw, r, err, "cards")
		return
	}
	rw.Success(cards)
}

// CardsByRarity handles GET /api/cards/rarity/{rarity}, filtering the card
// catalog case-insensitively and returning the matches with their count.
func (h *Handler) CardsByRarity(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	rarity := chi.URLParam(r, "rarity")

	cards, err := h.client.GetAllCards(r.Context())
	if err != nil {
		respondUpstreamError(rw, r, err, "cards")
		return
	}

	filtered := []interface{}{}
	for _, card := range cardItems(cards) {
		if strings.EqualFold(cardField(card, "rarity"), rarity) {
			filtered = append(filtered, card)
		}
	}

	rw.Success(map[string]interface{}{
		"items": filtered,
		"count": len(filtered),
	})
}

// CardByName handles GET /api/cards/{name}, a case-insensitive lookup in the
// card catalog. The name arrives percent-encoded when it contains spaces.
func (h *Handler) CardByName(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	cards, err := h.client.GetAllCards(r.Context())
	if err != nil {
		respondUpstreamError(rw, r, err, "card info")
		return
	}

	for _, card := range cardItems(cards) {
		if strings.EqualFold(cardField(card, "name"), name) {
			rw.Success(card)
			return
		}
	}
	rw.NotFound(fmt.Sprintf("No card named %q", name))
}

// cardItems extracts the items array from the card catalog payload.
func cardItems(cards interface{}) []interface{} {
	obj, ok := cards.(map[string]interface{})
	if !ok {
		return nil
	}
	items, _ := obj["items"].([]interface{})
	return items
}

// cardField reads a string field from a card object, empty when absent.
func cardField(card interface{}, field string) string {
	obj, ok := card.(map[string]interface{})
	if !ok {
		return ""
	}
	value, _ := obj[field].(string)
	return value
}
