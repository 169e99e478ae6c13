// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// models.go - Registry inspection and registration command handlers.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/jeranaias/modeldeck-tui/internal/config"
	"github.com/jeranaias/modeldeck-tui/internal/registry"
)

// HandleModels prints the registry model list.
func HandleModels(cfg *config.Config, _ []string) error {
	models, err := newRegistryClient(cfg).ListModels(context.Background())
	if err != nil {
		return fmt.Errorf("listing models: %w", err)
	}

	if len(models) == 0 {
		fmt.Println("No models registered yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tCOMPANY\tOPENAI-COMPATIBLE")
	for _, m := range models {
		compat := ""
		if m.OpenAICompatible {
			compat = "yes"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", m.ID, m.ModelName, m.CompanyName, compat)
	}
	return w.Flush()
}

// HandleRegister registers a model endpoint from the command line.
func HandleRegister(cfg *config.Config, args []string) error {
	parser := NewArgParser(args)

	reg := registry.Registration{
		ModelName:        strings.TrimSpace(parser.Flag("name", "n")),
		CompanyName:      strings.TrimSpace(parser.Flag("company", "c")),
		BaseURL:          strings.TrimSpace(parser.Flag("base-url", "url")),
		APIKey:           strings.TrimSpace(parser.Flag("api-key", "key")),
		OpenAICompatible: parser.BoolFlag("openai-compatible", "openai"),
	}
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("%w (usage: modeldeck register --name NAME --company COMPANY)", err)
	}

	desc, err := newRegistryClient(cfg).Register(context.Background(), reg)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Printf("Registered %s (id %d)\n", desc.Label(), desc.ID)
	return nil
}
