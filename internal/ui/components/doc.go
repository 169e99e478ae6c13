// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the modeldeck TUI.
//
// Components are plain structs with Update/View methods in the Bubble Tea
// style. They hold no backend state: the chat surfaces and the app model
// own the data and pass it in for rendering.
package components
