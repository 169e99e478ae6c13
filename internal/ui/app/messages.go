// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/jeranaias/modeldeck-tui/internal/config"
	"github.com/jeranaias/modeldeck-tui/internal/registry"
)

// ModelsMsg delivers the result of a registry model-list fetch.
// Models and Err are mutually exclusive.
type ModelsMsg struct {
	Models []registry.ModelDescriptor
	Err    error
}

// ConfigReloadedMsg delivers a validated config after a live reload.
// The config watcher sends it through tea.Program.Send.
type ConfigReloadedMsg struct {
	Config *config.Config
}
