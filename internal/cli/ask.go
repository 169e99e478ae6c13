// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot query handlers for the registry and explorer
// backends.
//
// Examples:
//   modeldeck ask "explain rollups"
//   modeldeck ask --model gpt-4o "explain rollups"
//   modeldeck explorer "how many txs in block 120?"
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/config"
	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

var viaStyle = lipgloss.NewStyle().
	Foreground(styles.TextMuted).
	Italic(true)

// HandleAsk runs a one-shot registry chat query.
func HandleAsk(cfg *config.Config, args []string) error {
	parser := NewArgParser(args)
	query := parser.Rest()
	if query == "" {
		return fmt.Errorf("usage: modeldeck ask [--model NAME|ID] \"question\"")
	}

	client := newRegistryClient(cfg)
	ctx := context.Background()

	ref, err := resolveModelRef(ctx, client, parser.Flag("model", "m"))
	if err != nil {
		return err
	}

	reply, err := client.Chat(ctx, query, ref)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	displayResponse(reply.Response)
	if reply.GeneratedVia != "" && IsStdoutTTY() {
		fmt.Fprintln(os.Stdout, viaStyle.Render("via "+reply.GeneratedVia))
	}
	return nil
}

// HandleExplorer runs a one-shot explorer analytics query.
func HandleExplorer(cfg *config.Config, args []string) error {
	parser := NewArgParser(args)
	query := parser.Rest()
	if query == "" {
		return fmt.Errorf("usage: modeldeck explorer \"question\"")
	}

	reply, err := newExplorerClient(cfg).Ask(context.Background(), query)
	if err != nil {
		return fmt.Errorf("explorer query failed: %w", err)
	}

	displayResponse(reply)
	return nil
}
