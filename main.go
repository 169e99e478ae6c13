// modeldeck - a terminal client for the model registry and block explorer.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/modeldeck-tui/internal/cli"
	"github.com/jeranaias/modeldeck-tui/internal/config"
	"github.com/jeranaias/modeldeck-tui/internal/logging"
	"github.com/jeranaias/modeldeck-tui/internal/ui/app"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger, logErr := logging.Init(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if logErr != nil {
		// Logging is best-effort; the client still works without it.
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", logErr)
	}

	switch cmd {
	case cli.CmdTUI:
		runTUI(cfg, logger)
	case cli.CmdAsk:
		exitOnError(cli.HandleAsk(cfg, args))
	case cli.CmdExplorer:
		exitOnError(cli.HandleExplorer(cfg, args))
	case cli.CmdChat:
		exitOnError(cli.HandleChat(cfg, args))
	case cli.CmdModels:
		exitOnError(cli.HandleModels(cfg, args))
	case cli.CmdRegister:
		exitOnError(cli.HandleRegister(cfg, args))
	case cli.CmdConfig:
		exitOnError(cli.HandleConfig(cfg, args))
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI starts the Bubble Tea program with config live-reload wired
// through tea.Program.Send.
func runTUI(cfg *config.Config, logger *slog.Logger) {
	m := app.New(cfg, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if path, err := config.ConfigPathTOML(); err == nil {
		watcher, err := config.NewWatcher(path, func(reloaded *config.Config) {
			p.Send(app.ConfigReloadedMsg{Config: reloaded})
		}, logger)
		if err == nil && watcher.Watch() == nil {
			defer watcher.Close()
		} else if err != nil {
			logger.Warn("config watcher unavailable", "error", err)
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
