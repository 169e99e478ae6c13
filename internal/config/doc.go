// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading for modeldeck.
//
// Supports both TOML and JSON configuration formats, with sensible
// defaults, environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.modeldeck/config.toml
//   - ~/.modeldeck/config.json
//   - Built-in defaults
//
// Environment overrides (applied last):
//   - MODELDECK_REGISTRY_URL
//   - MODELDECK_EXPLORER_URL
//   - MODELDECK_LOG_LEVEL
//   - MODELDECK_LOG_FILE
package config
