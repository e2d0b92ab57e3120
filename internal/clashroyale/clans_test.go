// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package clashroyale

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"
)

func TestGetClanEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		wantPath string
	}{
		{"bare lower case", "2abc123", "/clans/%232ABC123"},
		{"prefixed lower case", "#2abc123", "/clans/%232ABC123"},
		{"prefixed upper case", "#2ABC123", "/clans/%232ABC123"},
		{"bare upper case", "2ABC123", "/clans/%232ABC123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, client := newRecordingServer(t, http.StatusOK, `{"tag":"#2ABC123"}`)
			_, err := client.GetClan(context.Background(), tt.tag)
			checkNoError(t, err)
			checkStringEqual(t, "path", rec.path, tt.wantPath)
		})
	}
}

func TestGetClanWarLogEndpoint(t *testing.T) {
	rec, client := newRecordingServer(t, http.StatusOK, `{"items":[]}`)
	_, err := client.GetClanWarLog(context.Background(), "#2abc")
	checkNoError(t, err)
	checkStringEqual(t, "path", rec.path, "/clans/%232ABC/warlog")
}

func TestGetClanCurrentWarEndpoint(t *testing.T) {
	rec, client := newRecordingServer(t, http.StatusOK, `{"state":"warDay"}`)
	_, err := client.GetClanCurrentWar(context.Background(), "#2abc")
	checkNoError(t, err)
	checkStringEqual(t, "path", rec.path, "/clans/%232ABC/currentwar")
}

func TestGetClanMembersSingleUpstreamCall(t *testing.T) {
	rec, client := newRecordingServer(t, http.StatusOK,
		`{"tag":"#2ABC","memberCount":2,"memberList":[{"name":"Alice"},{"name":"Bob"}]}`)

	body, err := client.GetClanMembers(context.Background(), "#2abc")
	checkNoError(t, err)

	checkIntEqual(t, "upstream calls", rec.count, 1)
	checkStringEqual(t, "path", rec.path, "/clans/%232ABC")

	obj, ok := body.(map[string]any)
	if !ok {
		t.Fatalf("expected object result, got %T", body)
	}
	members, ok := obj["members"].([]any)
	if !ok {
		t.Fatalf("expected members array, got %T", obj["members"])
	}
	checkIntEqual(t, "members length", len(members), 2)
	if count, ok := obj["memberCount"].(float64); !ok || count != 2 {
		t.Errorf("memberCount: expected 2, got %v", obj["memberCount"])
	}
}

func TestGetClanMembersDefaults(t *testing.T) {
	_, client := newRecordingServer(t, http.StatusOK, `{"tag":"#2ABC"}`)

	body, err := client.GetClanMembers(context.Background(), "#2abc")
	checkNoError(t, err)

	obj := body.(map[string]any)
	members, ok := obj["members"].([]any)
	if !ok {
		t.Fatalf("expected members array default, got %T", obj["members"])
	}
	checkIntEqual(t, "members length", len(members), 0)
	if count, ok := obj["memberCount"].(float64); !ok || count != 0 {
		t.Errorf("memberCount: expected default 0, got %v", obj["memberCount"])
	}
}

func TestGetClanMembersPropagatesError(t *testing.T) {
	_, client := newRecordingServer(t, http.StatusNotFound, `{"reason":"notFound"}`)

	_, err := client.GetClanMembers(context.Background(), "#NOSUCH")
	checkError(t, err)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestGetPopularClansQuery(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit string
	}{
		{"within bounds", 50, "50"},
		{"at ceiling", 200, "200"},
		{"clamped above ceiling", 500, "200"},
		{"zero falls back to default", 0, "200"},
		{"negative falls back to default", -5, "200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, client := newRecordingServer(t, http.StatusOK, `{"items":[]}`)
			_, err := client.GetPopularClans(context.Background(), tt.limit)
			checkNoError(t, err)
			checkStringEqual(t, "path", rec.path, "/clans")

			query, parseErr := url.ParseQuery(rec.rawQuery)
			checkNoError(t, parseErr)
			checkStringEqual(t, "limit", query.Get("limit"), tt.wantLimit)
			checkStringEqual(t, "minScore", query.Get("minScore"), "40000")
		})
	}
}
