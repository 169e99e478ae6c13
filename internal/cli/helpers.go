// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jeranaias/modeldeck-tui/internal/config"
	"github.com/jeranaias/modeldeck-tui/internal/explorer"
	"github.com/jeranaias/modeldeck-tui/internal/registry"
)

// newRegistryClient builds a registry client honoring the configured
// timeout.
func newRegistryClient(cfg *config.Config) *registry.Client {
	return registry.NewClient(cfg.Registry.URL).
		WithHTTPClient(&http.Client{Timeout: cfg.Registry.Timeout()})
}

// newExplorerClient builds an explorer client honoring the configured
// timeout.
func newExplorerClient(cfg *config.Config) *explorer.Client {
	return explorer.NewClient(cfg.Explorer.URL).
		WithHTTPClient(&http.Client{Timeout: cfg.Explorer.Timeout()})
}

// resolveModelRef turns a --model flag into a ModelRef. Empty means
// auto routing; a number pins by ID; anything else is matched
// case-insensitively against registered model names, which costs one
// list fetch.
func resolveModelRef(ctx context.Context, client *registry.Client, flag string) (registry.ModelRef, error) {
	flag = strings.TrimSpace(flag)
	if flag == "" {
		return registry.Auto(), nil
	}

	if id, err := strconv.Atoi(flag); err == nil {
		return registry.Specific(id), nil
	}

	models, err := client.ListModels(ctx)
	if err != nil {
		return registry.Auto(), fmt.Errorf("resolving model %q: %w", flag, err)
	}
	for _, m := range models {
		if strings.EqualFold(strings.TrimSpace(m.ModelName), flag) {
			return registry.Specific(m.ID), nil
		}
	}
	return registry.Auto(), fmt.Errorf("no registered model named %q (try `modeldeck models`)", flag)
}
