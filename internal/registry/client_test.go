// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// CHAT TESTS
// =============================================================================

func TestChat_Success(t *testing.T) {
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": "Hi", "response_generated_via": "gpt-4o-mini"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	reply, err := client.Chat(context.Background(), "hello", Auto())
	require.NoError(t, err)
	assert.Equal(t, "Hi", reply.Response)
	assert.Equal(t, "gpt-4o-mini", reply.GeneratedVia)
	assert.Nil(t, gotBody.ModelID, "auto routing must send modelId null")
}

func TestChat_SpecificModelSendsID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ModelID)
		assert.Equal(t, 7, *req.ModelID)

		w.Write([]byte(`{"response": "ok", "response_generated_via": "m7"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Chat(context.Background(), "q", Specific(7))
	require.NoError(t, err)
}

func TestChat_BlankQueryNeverHitsNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	for _, q := range []string{"", "   ", "\t\n"} {
		_, err := client.Chat(context.Background(), q, Auto())
		assert.ErrorIs(t, err, ErrBlankQuery)
	}
	assert.Zero(t, calls.Load(), "blank queries must not issue requests")
}

func TestChat_Non2xxBodyIsErrorText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("model not found"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Chat(context.Background(), "q", Specific(99))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "model not found", apiErr.Error())
}

func TestChat_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Chat(context.Background(), "q", Auto())
	assert.Error(t, err)
}

func TestChat_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(server.URL)
	_, err := client.Chat(ctx, "q", Auto())
	assert.Error(t, err)
}

// =============================================================================
// LIST TESTS
// =============================================================================

func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/", r.URL.Path)
		w.Write([]byte(`[
			{"id": 1, "modelName": "gpt-4o", "companyName": "OpenAI", "baseUrl": null, "apiKey": null, "openAiCompatible": true},
			{"id": 2, "modelName": "claude-sonnet", "companyName": "Anthropic", "baseUrl": "https://api.anthropic.com", "apiKey": "sk-x", "openAiCompatible": false}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)

	assert.Equal(t, 1, models[0].ID)
	assert.Nil(t, models[0].BaseURL)
	assert.True(t, models[0].OpenAICompatible)

	require.NotNil(t, models[1].BaseURL)
	assert.Equal(t, "https://api.anthropic.com", *models[1].BaseURL)
	assert.Equal(t, "claude-sonnet (Anthropic)", models[1].Label())
}

func TestListModels_EmptyIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	models, err := NewClient(server.URL).ListModels(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, models)
	assert.Empty(t, models)
}

// =============================================================================
// REGISTER TESTS
// =============================================================================

func TestRegister_OptionalFieldsAreExplicitNull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)

		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))

		// Blank optionals must be present and null, not omitted.
		require.Contains(t, raw, "baseUrl")
		require.Contains(t, raw, "apiKey")
		assert.Equal(t, "null", string(raw["baseUrl"]))
		assert.Equal(t, "null", string(raw["apiKey"]))

		w.Write([]byte(`{"id": 3, "modelName": "llama3", "companyName": "Meta", "baseUrl": null, "apiKey": null, "openAiCompatible": false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	desc, err := client.Register(context.Background(), Registration{
		ModelName:   "llama3",
		CompanyName: "Meta",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, desc.ID)
}

func TestRegister_ValidatesBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Register(context.Background(), Registration{ModelName: "  ", CompanyName: "X"})
	assert.ErrorIs(t, err, ErrBlankModelName)

	_, err = client.Register(context.Background(), Registration{ModelName: "m", CompanyName: ""})
	assert.ErrorIs(t, err, ErrBlankCompanyName)

	assert.Zero(t, calls.Load(), "invalid registrations must not issue requests")
}

// =============================================================================
// MODEL REF TESTS
// =============================================================================

func TestModelRef(t *testing.T) {
	auto := Auto()
	assert.True(t, auto.IsAuto())
	assert.Nil(t, auto.wireID())
	assert.Equal(t, "auto", auto.String())

	ref := Specific(12)
	assert.False(t, ref.IsAuto())
	id, ok := ref.ID()
	assert.True(t, ok)
	assert.Equal(t, 12, id)
	require.NotNil(t, ref.wireID())
	assert.Equal(t, 12, *ref.wireID())

	// Zero value behaves as Auto.
	var zero ModelRef
	assert.True(t, zero.IsAuto())
}
