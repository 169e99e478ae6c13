// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry provides the client for the LLM registry/chat service.
package registry

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

// Configuration constants for the registry API.
const (
	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// Response size limit prevents memory exhaustion on a misbehaving backend.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB
)

// sharedHTTPClient is the pooled HTTP client used for all registry requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
	Timeout: DefaultTimeout,
}

// Error variables for common registry errors.
var (
	// ErrBlankQuery indicates an empty or whitespace-only chat query.
	ErrBlankQuery = errors.New("query is blank")

	// ErrBlankModelName indicates a registration without a model name.
	ErrBlankModelName = errors.New("model name is required")

	// ErrBlankCompanyName indicates a registration without a provider name.
	ErrBlankCompanyName = errors.New("company name is required")
)

// APIError represents a non-2xx response from the registry service.
// The body text is the user-facing message.
type APIError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("registry error (HTTP %d)", e.Status)
	}
	return body
}

// =============================================================================
// WIRE TYPES
// =============================================================================

// chatRequest is the POST /chat request body. ModelID is null for auto routing.
type chatRequest struct {
	Query   string `json:"query"`
	ModelID *int   `json:"modelId"`
}

// ChatReply is the POST /chat response body.
type ChatReply struct {
	Response     string `json:"response"`
	GeneratedVia string `json:"response_generated_via"`
}

// registerRequest is the POST /register request body. Optional fields are
// explicit nulls when blank, not omitted.
type registerRequest struct {
	ModelName        string  `json:"modelName"`
	CompanyName      string  `json:"companyName"`
	BaseURL          *string `json:"baseUrl"`
	APIKey           *string `json:"apiKey"`
	OpenAICompatible bool    `json:"openAiCompatible"`
}

// =============================================================================
// CLIENT
// =============================================================================

// Client is a client for the LLM registry/chat service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a registry client for the given base URL.
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

// SetBaseURL replaces the base URL. New requests use the new endpoint;
// requests already in flight are unaffected.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// =============================================================================
// OPERATIONS
// =============================================================================

// ListModels fetches the full descriptor list. The result fully replaces any
// cached copy held by the caller; there is no incremental merge.
func (c *Client) ListModels(ctx context.Context) ([]ModelDescriptor, error) {
	body, err := c.do(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return nil, err
	}

	var models []ModelDescriptor
	if err := json.Unmarshal(body, &models); err != nil {
		return nil, fmt.Errorf("failed to parse model list: %w", err)
	}
	return models, nil
}

// Register registers a new model endpoint and returns the stored descriptor.
// Validation failures are returned before any network activity.
func (c *Client) Register(ctx context.Context, reg Registration) (*ModelDescriptor, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	req := registerRequest{
		ModelName:        strings.TrimSpace(reg.ModelName),
		CompanyName:      strings.TrimSpace(reg.CompanyName),
		BaseURL:          optString(reg.BaseURL),
		APIKey:           optString(reg.APIKey),
		OpenAICompatible: reg.OpenAICompatible,
	}

	body, err := c.do(ctx, http.MethodPost, "/register", req)
	if err != nil {
		return nil, err
	}

	var desc ModelDescriptor
	if err := json.Unmarshal(body, &desc); err != nil {
		return nil, fmt.Errorf("failed to parse registration response: %w", err)
	}
	return &desc, nil
}

// Chat sends one query. A pinned ref targets that descriptor; Auto lets the
// registry route. Blank queries are rejected before any network activity.
func (c *Client) Chat(ctx context.Context, query string, ref ModelRef) (*ChatReply, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrBlankQuery
	}

	req := chatRequest{
		Query:   query,
		ModelID: ref.wireID(),
	}

	body, err := c.do(ctx, http.MethodPost, "/chat", req)
	if err != nil {
		return nil, err
	}

	var reply ChatReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, fmt.Errorf("failed to parse chat response: %w", err)
	}
	return &reply, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// do performs one request and returns the raw body of a 2xx response.
// Non-2xx responses become an APIError carrying the body text.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("registry request failed", "method", method, "path", path, "err", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := readResponse(resp)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("registry request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// readResponse reads the response body with a size limit.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) == MaxResponseSize {
		return nil, fmt.Errorf("response exceeded maximum size of %d bytes", int64(MaxResponseSize))
	}
	return body, nil
}
