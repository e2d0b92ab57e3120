// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

package clashroyale

import (
	"errors"
	"fmt"
)

// Sentinel errors for upstream responses the proxy classifies explicitly.
// Match with errors.Is; the client wraps them with call context.
var (
	// ErrTimeout reports that the upstream call exceeded the configured timeout.
	ErrTimeout = errors.New("request to Clash Royale API timed out")

	// ErrNotFound reports an upstream HTTP 404.
	ErrNotFound = errors.New("resource not found, check the player tag or clan tag")

	// ErrForbidden reports an upstream HTTP 403.
	ErrForbidden = errors.New("access forbidden, check your API key")

	// ErrRateLimited reports an upstream HTTP 429.
	ErrRateLimited = errors.New("rate limit exceeded, please try again later")
)

// UpstreamStatusError reports a non-2xx upstream status outside the
// classified 404/403/429 set, carrying the status code and response body.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// ConnectionError reports a network-level failure reaching the upstream API
// (DNS resolution, connection refused, connection reset).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to Clash Royale API: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ClientFacing reports whether err belongs to the client-correctable set
// (not found, forbidden, rate limited, or any other non-2xx upstream status).
// Timeouts, connection failures and body decode failures are infrastructure
// conditions and map to a generic server error instead.
func ClientFacing(err error) bool {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrForbidden) || errors.Is(err, ErrRateLimited) {
		return true
	}
	var statusErr *UpstreamStatusError
	return errors.As(err, &statusErr)
}
