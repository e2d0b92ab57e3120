// Arenascope - Clash Royale Statistics Proxy
// Copyright 2026 Arenascope contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arenascope/arenascope

// Package clashroyale implements the outbound client for the Clash Royale
// developer API (https://developer.clashroyale.com/api-docs).
//
// The client issues bearer-authenticated GET requests, normalizes player and
// clan tags into their URL-encoded form, and classifies failures into the
// typed errors of errors.go so callers can distinguish client-correctable
// conditions (bad tag, bad key, rate limit) from infrastructure failures
// (timeout, connection loss).
//
// Responses are returned as decoded JSON values verbatim; the upstream
// payload shapes are owned by the API, not by this package.
package clashroyale

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/arenascope/arenascope/internal/metrics"
)

// maxErrorBodySize limits how much of an error response body is retained
// for diagnostics, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024

// Client handles communication with the Clash Royale API.
//
// All state is fixed at construction, so a single Client is safe for
// concurrent use and may be shared across requests.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Clash Royale API client. The trailing slash is stripped from
// baseURL; timeout bounds every request issued through the client. The key
// is not validated here, the configuration layer rejects empty credentials
// before a client is ever constructed.
func New(apiKey, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an authenticated GET against the given endpoint (relative
// resource path, leading slash optional) with params attached as the query
// string, and returns the decoded JSON body verbatim (object or array).
//
// Failures are classified per errors.go; a 2xx response with an undecodable
// body surfaces as a plain decode error distinct from the classified kinds.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) (any, error) {
	reqURL := c.baseURL + "/" + strings.TrimPrefix(endpoint, "/")
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	operation := operationLabel(endpoint)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		classified := classifyTransportError(err)
		metrics.RecordUpstreamRequest(operation, transportStatusLabel(classified), time.Since(start))
		return nil, classified
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.RecordUpstreamRequest(operation, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, classifyStatus(resp)
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return body, nil
}

// classifyTransportError maps errors from http.Client.Do to the package's
// error taxonomy. Timeouts (client deadline or context deadline) become
// ErrTimeout; everything else at the transport level is a ConnectionError.
func classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return &ConnectionError{Err: err}
}

// classifyStatus maps a non-2xx response to the package's error taxonomy.
func classifyStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return &UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}
}

// readBodyForError reads at most maxErrorBodySize bytes of the response body
// for error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("... (truncated)")...)
	}
	return body
}

// transportStatusLabel picks the metrics status label for transport failures.
func transportStatusLabel(err error) string {
	if errors.Is(err, ErrTimeout) {
		return "timeout"
	}
	return "connection_error"
}

// operationLabel returns the first path segment of an endpoint, the bounded
// cardinality label used for upstream metrics.
func operationLabel(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "/")
	if i := strings.IndexByte(endpoint, '/'); i >= 0 {
		return endpoint[:i]
	}
	return endpoint
}

// normalizePlayerTag URL-encodes a player tag for use in a resource path.
// The leading '#' is replaced by %23, or %23 is prepended when absent, so
// the result always carries exactly one encoded prefix.
func normalizePlayerTag(tag string) string {
	if strings.HasPrefix(tag, "#") {
		return "%23" + tag[1:]
	}
	return "%23" + tag
}

// normalizeClanTag strips every '#' from a clan tag, upper-cases the rest
// and prefixes the encoded '#'. Clan tags are upper-cased while player tags
// are passed through in their original casing; the upstream API resolves
// tags case-insensitively, so both forms reach the same resource.
func normalizeClanTag(tag string) string {
	clean := strings.ToUpper(strings.ReplaceAll(tag, "#", ""))
	return "%23" + clean
}
