// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the modeldeck TUI.
//
// All colors are Lip Gloss AdaptiveColor pairs so the same theme works
// on light and dark terminals. Theme bundles the configured styles and
// is constructed once at startup; components receive a *Theme rather
// than building their own styles.
package styles
