// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry provides the client for the LLM registry/chat service.
package registry

import (
	"fmt"
	"strings"
)

// =============================================================================
// MODEL DESCRIPTOR
// =============================================================================

// ModelDescriptor describes one registered model endpoint. The registry
// service owns these; the client only ever holds a read-only copy.
type ModelDescriptor struct {
	// ID uniquely identifies the descriptor within one registry listing.
	ID int `json:"id"`

	// ModelName is the model identifier used by the upstream provider.
	ModelName string `json:"modelName"`

	// CompanyName names the provider (e.g. "OpenAI", "Anthropic").
	CompanyName string `json:"companyName"`

	// BaseURL is the upstream endpoint; nil when the registry default applies.
	BaseURL *string `json:"baseUrl"`

	// APIKey is the upstream credential; nil when none was registered.
	// Never logged.
	APIKey *string `json:"apiKey"`

	// OpenAICompatible marks endpoints speaking the OpenAI wire format.
	OpenAICompatible bool `json:"openAiCompatible"`
}

// Label returns a display string like "GPT-4o (OpenAI)".
func (d ModelDescriptor) Label() string {
	name := strings.TrimSpace(d.ModelName)
	company := strings.TrimSpace(d.CompanyName)
	if company == "" {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, company)
}

// =============================================================================
// MODEL REFERENCE
// =============================================================================

// ModelRef selects which model a chat query targets. The zero value is
// Auto: the registry chooses the route. A Specific ref pins the query to
// one descriptor by ID. On the wire Auto encodes as modelId null.
type ModelRef struct {
	id     int
	pinned bool
}

// Auto returns a ref that lets the registry route the query.
func Auto() ModelRef {
	return ModelRef{}
}

// Specific returns a ref pinned to the descriptor with the given ID.
func Specific(id int) ModelRef {
	return ModelRef{id: id, pinned: true}
}

// IsAuto reports whether the registry chooses the route.
func (r ModelRef) IsAuto() bool {
	return !r.pinned
}

// ID returns the pinned descriptor ID and true, or 0 and false for Auto.
func (r ModelRef) ID() (int, bool) {
	return r.id, r.pinned
}

// String returns "auto" or the pinned ID for status display.
func (r ModelRef) String() string {
	if r.pinned {
		return fmt.Sprintf("model %d", r.id)
	}
	return "auto"
}

// wireID returns the JSON value for the modelId field: nil for Auto.
func (r ModelRef) wireID() *int {
	if !r.pinned {
		return nil
	}
	id := r.id
	return &id
}

// =============================================================================
// REGISTRATION
// =============================================================================

// Registration holds the fields for registering a new model endpoint.
// Optional fields are sent as explicit JSON null when blank.
type Registration struct {
	ModelName        string
	CompanyName      string
	BaseURL          string
	APIKey           string
	OpenAICompatible bool
}

// Validate checks the locally enforced constraints: model name and company
// name must be non-blank after trimming.
func (reg Registration) Validate() error {
	if strings.TrimSpace(reg.ModelName) == "" {
		return ErrBlankModelName
	}
	if strings.TrimSpace(reg.CompanyName) == "" {
		return ErrBlankCompanyName
	}
	return nil
}

// optString maps a blank string to JSON null, per the registry contract.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
