// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat REPL against the registry backend.
//
// Interactive commands:
//   /help, /h       Show available commands
//   /clear, /c      Clear conversation history
//   /model [name]   Show or switch the pinned model
//   /history        Show the transcript so far
//   /quit, /q       Exit (also Ctrl+D)
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/jeranaias/modeldeck-tui/internal/config"
	"github.com/jeranaias/modeldeck-tui/internal/model"
	"github.com/jeranaias/modeldeck-tui/internal/registry"
	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)
)

// replState holds the REPL's line editor and history file.
type replState struct {
	line        *liner.State
	historyFile string
}

func newREPL() *replState {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	historyFile := filepath.Join(dir, "chat_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	return &replState{line: line, historyFile: historyFile}
}

func (r *replState) prompt(p string) (string, error) {
	input, err := r.line.Prompt(p)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

func (r *replState) close() {
	if f, err := os.Create(r.historyFile); err == nil {
		r.line.WriteHistory(f)
		f.Close()
	}
	r.line.Close()
}

// HandleChat runs the interactive REPL.
func HandleChat(cfg *config.Config, args []string) error {
	if !IsStdinTTY() {
		return fmt.Errorf("chat requires an interactive terminal (use `modeldeck ask` for piped input)")
	}

	parser := NewArgParser(args)
	client := newRegistryClient(cfg)
	ctx := context.Background()

	ref, err := resolveModelRef(ctx, client, parser.Flag("model", "m"))
	if err != nil {
		return err
	}

	repl := newREPL()
	defer repl.close()

	conversation := model.NewConversation()

	fmt.Println(welcomeStyle.Render("modeldeck chat"))
	fmt.Println(infoStyle.Render(fmt.Sprintf("registry %s | routing: %s | /help for commands", cfg.Registry.URL, ref)))
	fmt.Println()

	for {
		input, err := repl.prompt(promptStyle.Render("> "))
		if err != nil {
			// Ctrl+D or Ctrl+C ends the session.
			fmt.Println()
			return nil
		}

		if strings.HasPrefix(strings.TrimSpace(input), "/") {
			done, newRef := handleREPLCommand(ctx, client, conversation, ref, input)
			ref = newRef
			if done {
				return nil
			}
			continue
		}

		userMsg := conversation.AppendUser(input)
		if userMsg == nil {
			continue
		}

		reply, err := client.Chat(ctx, userMsg.Text, ref)
		if err != nil {
			fmt.Println(errorStyle.Render("error: " + err.Error()))
			continue
		}

		conversation.AppendAI(reply.Response, reply.GeneratedVia)
		displayResponse(reply.Response)
		if reply.GeneratedVia != "" {
			fmt.Println(viaStyle.Render("via " + reply.GeneratedVia))
		}
		fmt.Println()
	}
}

// handleREPLCommand processes a /command. It returns true to exit and
// the (possibly updated) model ref.
func handleREPLCommand(ctx context.Context, client *registry.Client, conversation *model.Conversation, ref registry.ModelRef, input string) (bool, registry.ModelRef) {
	parts := strings.Fields(strings.TrimSpace(input))
	cmd := strings.ToLower(strings.TrimPrefix(parts[0], "/"))

	switch cmd {
	case "quit", "q", "exit":
		return true, ref

	case "help", "h":
		fmt.Println(infoStyle.Render("/clear  /model [name|id]  /history  /quit"))

	case "clear", "c":
		*conversation = *model.NewConversation()
		fmt.Println(infoStyle.Render("Conversation cleared."))

	case "model", "m":
		if len(parts) < 2 {
			fmt.Println(infoStyle.Render("routing: " + ref.String()))
			break
		}
		newRef, err := resolveModelRef(ctx, client, strings.Join(parts[1:], " "))
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
			break
		}
		ref = newRef
		fmt.Println(infoStyle.Render("routing: " + ref.String()))

	case "history":
		for _, msg := range conversation.History() {
			prefix := "you"
			if msg.Role == model.RoleAI {
				prefix = "ai"
				if msg.Via != "" {
					prefix = "ai (" + msg.Via + ")"
				}
			}
			fmt.Printf("%s: %s\n", promptStyle.Render(prefix), msg.Text)
		}

	default:
		fmt.Println(errorStyle.Render("unknown command /" + cmd + " (try /help)"))
	}

	return false, ref
}
