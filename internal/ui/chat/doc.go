// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the chat surface for the TUI.
//
// A Surface is one independent conversation pane: transcript viewport,
// input area, and spinner. Both the registry chat tab and the explorer
// chat tab are Surfaces; they differ only in the Dispatcher that carries
// a submitted query to its backend. Each surface allows a single
// in-flight request at a time, and submissions while busy are ignored
// rather than queued.
package chat
