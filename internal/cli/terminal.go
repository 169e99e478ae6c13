// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"sync"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsStdoutTTY reports whether stdout is a terminal. Markdown rendering
// and colors are only used when it is, so piped output stays clean.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStdinTTY reports whether stdin is a terminal.
func IsStdinTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// =============================================================================
// MARKDOWN OUTPUT
// =============================================================================

var (
	mdOnce     sync.Once
	mdRenderer *glamour.TermRenderer
)

// renderMarkdown renders content for terminal display, falling back to
// the raw text when the renderer is unavailable or fails.
func renderMarkdown(content string) string {
	mdOnce.Do(func() {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err == nil {
			mdRenderer = r
		}
	})

	if mdRenderer == nil {
		return content
	}
	rendered, err := mdRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse prints a response, markdown-rendered only on a TTY.
func displayResponse(response string) {
	if IsStdoutTTY() {
		os.Stdout.WriteString(renderMarkdown(response))
		return
	}
	os.Stdout.WriteString(response)
	if len(response) > 0 && response[len(response)-1] != '\n' {
		os.Stdout.WriteString("\n")
	}
}
