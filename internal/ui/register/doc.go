// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package register implements the model registration form for the TUI.
//
// The form collects a model name and company name (required), an
// optional base URL and API key, and an OpenAI-compatibility toggle.
// Validation runs locally before anything is sent; a successful
// registration clears the form, a failed one keeps every field so the
// user can correct and resubmit.
package register
