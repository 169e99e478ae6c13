// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI command surface of modeldeck:
// one-shot queries (ask, explorer), registry inspection (models),
// registration (register), an interactive REPL (chat), and config
// management. The bare `modeldeck` invocation starts the TUI and is
// handled in main.
package cli
