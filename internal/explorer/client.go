// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package explorer provides the client for the block-explorer analytics
// assistant.
package explorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Configuration constants for the explorer API.
const (
	// chatPath is the analytics chat endpoint.
	chatPath = "/transactions/chat"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB
)

// sharedHTTPClient is the pooled HTTP client used for all explorer requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// ErrBlankQuery indicates an empty or whitespace-only query.
var ErrBlankQuery = errors.New("query is blank")

// APIError represents a non-2xx response from the explorer service.
type APIError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("explorer error (HTTP %d)", e.Status)
	}
	return body
}

// askRequest is the POST /transactions/chat request body.
type askRequest struct {
	Query string `json:"query"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a client for the block-explorer chat service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an explorer client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: sharedHTTPClient,
		logger:     slog.Default(),
	}
}

// WithHTTPClient sets a custom HTTP client (mainly for tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// WithLogger sets the structured logger used for request logging.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetBaseURL replaces the base URL for subsequent requests.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Ask sends one analytics query and returns the answer text.
// Blank queries are rejected before any network activity.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrBlankQuery
	}

	buf, err := json.Marshal(askRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatPath, bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("explorer request failed", "err", err)
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return "", fmt.Errorf("response exceeded maximum size of %d bytes", int64(MaxResponseSize))
	}

	c.logger.Debug("explorer request",
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{Status: resp.StatusCode, Body: string(body)}
	}

	return DecodeReply(body), nil
}

// =============================================================================
// REPLY DECODING
// =============================================================================

// replyEnvelope matches the JSON-object response shape.
type replyEnvelope struct {
	Response *string `json:"response"`
}

// DecodeReply resolves the explorer's three response encodings, in
// precedence order:
//
//  1. a JSON string — the decoded string is the answer
//  2. a JSON object with a string "response" field — that field is the answer
//  3. anything that is not valid JSON — the raw body verbatim
//
// A JSON object without a usable "response" field falls through to the raw
// body, so no well-formed reply is ever silently dropped.
func DecodeReply(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var asString string
	if err := json.Unmarshal(trimmed, &asString); err == nil {
		return asString
	}

	var env replyEnvelope
	if err := json.Unmarshal(trimmed, &env); err == nil && env.Response != nil {
		return *env.Response
	}

	return string(body)
}
