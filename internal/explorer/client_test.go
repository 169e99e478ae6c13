// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// REPLY DECODING TESTS
// =============================================================================

func TestDecodeReply(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "plain text that is not JSON",
			body: "Plain text",
			want: "Plain text",
		},
		{
			name: "JSON-encoded string",
			body: `"Quoted"`,
			want: "Quoted",
		},
		{
			name: "JSON object with response field",
			body: `{"response":"Nested"}`,
			want: "Nested",
		},
		{
			name: "JSON object without response field falls back to raw body",
			body: `{"answer":"other"}`,
			want: `{"answer":"other"}`,
		},
		{
			name: "JSON object with non-string response falls back to raw body",
			body: `{"response":42}`,
			want: `{"response":42}`,
		},
		{
			name: "empty body",
			body: "",
			want: "",
		},
		{
			name: "JSON string wins over object interpretation",
			body: `"{\"response\":\"inner\"}"`,
			want: `{"response":"inner"}`,
		},
		{
			name: "multi-line plain text",
			body: "line one\nline two",
			want: "line one\nline two",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeReply([]byte(tc.body)))
		})
	}
}

// =============================================================================
// CLIENT TESTS
// =============================================================================

func TestAsk_SendsQueryPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transactions/chat", r.URL.Path)

		var req askRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "who sent tx 0xabc?", req.Query)

		w.Write([]byte(`{"response":"address 0xdef"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	answer, err := client.Ask(context.Background(), "who sent tx 0xabc?")
	require.NoError(t, err)
	assert.Equal(t, "address 0xdef", answer)
}

func TestAsk_PlainTextResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("Block 12345 has 210 transactions"))
	}))
	defer server.Close()

	answer, err := NewClient(server.URL).Ask(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "Block 12345 has 210 transactions", answer)
}

func TestAsk_BlankQueryNeverHitsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrBlankQuery)
	assert.Zero(t, calls.Load())
}

func TestAsk_Non2xxBodyIsErrorText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream indexer unavailable"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Ask(context.Background(), "q")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "upstream indexer unavailable", apiErr.Error())
}

func TestAPIError_EmptyBody(t *testing.T) {
	err := &APIError{Status: 500}
	assert.Equal(t, "explorer error (HTTP 500)", err.Error())
}
