// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry provides the client for the LLM registry/chat service.
//
// The registry owns the list of registered model endpoints and routes chat
// queries to them. This client is a thin consumer of three endpoints:
//
//	GET  /          list registered model descriptors
//	POST /register  register a new model endpoint
//	POST /chat      send a query, optionally pinned to a specific model
//
// The service decides routing when no model is pinned ("auto"). Responses
// carry a provenance tag naming the model that actually answered.
package registry
