// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdExplorer
	CmdChat
	CmdModels
	CmdRegister
	CmdConfig
	CmdVersion
	CmdHelp
)

const usageText = `modeldeck - terminal client for the model registry and block explorer

Usage:
  modeldeck                       Start the TUI (default)
  modeldeck ask "question"        One-shot query via the registry
    -m, --model NAME|ID           Pin a registered model (default: auto routing)
  modeldeck explorer "question"   One-shot query via the block explorer
  modeldeck chat                  Interactive chat REPL
    -m, --model NAME|ID           Pin a registered model
  modeldeck models                List registered models
  modeldeck register              Register a model endpoint
    --name NAME                   Model name (required)
    --company NAME                Provider name (required)
    --base-url URL                Upstream endpoint (optional)
    --api-key KEY                 Upstream credential (optional)
    --openai-compatible           Endpoint speaks the OpenAI wire format
  modeldeck config [show|init|path]
                                  Show, create, or locate the config file
  modeldeck version               Version info

Environment:
  MODELDECK_REGISTRY_URL          Override the registry base URL
  MODELDECK_EXPLORER_URL          Override the explorer base URL
  MODELDECK_LOG_LEVEL             debug, info, warn, error
  MODELDECK_LOG_FILE              Log file path
`

// Parse inspects os.Args and returns the command plus its remaining
// arguments.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}

	cmd := strings.ToLower(args[0])
	rest := args[1:]

	switch cmd {
	case "tui":
		return CmdTUI, rest
	case "ask", "a":
		return CmdAsk, rest
	case "explorer", "ex":
		return CmdExplorer, rest
	case "chat":
		return CmdChat, rest
	case "models", "m":
		return CmdModels, rest
	case "register", "reg":
		return CmdRegister, rest
	case "config", "cfg":
		return CmdConfig, rest
	case "version", "--version", "-v":
		return CmdVersion, rest
	case "help", "--help", "-h":
		return CmdHelp, rest
	default:
		// An unknown first argument is treated as an ask query, so
		// `modeldeck "what is X"` just works.
		return CmdAsk, args
	}
}

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// HandleVersion prints version info.
func HandleVersion() {
	fmt.Printf("modeldeck %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
