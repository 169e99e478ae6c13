// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app implements the root Bubble Tea model for the TUI.
//
// The root model owns three tabs (registry chat, explorer chat, model
// registration), the model picker overlay, the notification center,
// and the backend clients. Surface-level messages fan out from here;
// app-wide concerns (model list cache, config reload, quit) are
// handled here directly.
package app
