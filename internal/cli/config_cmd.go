// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Config inspection and bootstrap handlers.
package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/modeldeck-tui/internal/config"
)

// HandleConfig handles `modeldeck config [show|init|path]`.
func HandleConfig(cfg *config.Config, args []string) error {
	parser := NewArgParser(args)

	switch parser.Subcommand() {
	case "", "show":
		fmt.Printf("registry url:     %s (timeout %s)\n", cfg.Registry.URL, cfg.Registry.Timeout())
		fmt.Printf("explorer url:     %s (timeout %s)\n", cfg.Explorer.URL, cfg.Explorer.Timeout())
		fmt.Printf("theme:            %s\n", cfg.UI.Theme)
		fmt.Printf("markdown:         %v\n", cfg.UI.Markdown)
		fmt.Printf("log level/format: %s/%s\n", cfg.Log.Level, cfg.Log.Format)
		return nil

	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil

	case "init":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !parser.BoolFlag("force") {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.SaveTOML(config.Default(), path); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil

	default:
		return fmt.Errorf("unknown config subcommand %q (show, init, path)", parser.Subcommand())
	}
}
