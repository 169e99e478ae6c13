// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package explorer provides the client for the block-explorer analytics
// assistant.
//
// The explorer backend answers natural-language questions about on-chain
// transactions. Its response encoding is not contractually fixed: the body
// may be plain text, a JSON-encoded string, or a JSON object with a
// "response" field. DecodeReply resolves the three shapes in that order of
// precedence so the client keeps working across backend encoding changes.
package explorer
