// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// MARKDOWN RENDERER
// =============================================================================

// MarkdownRenderer wraps a glamour renderer with a lazily rebuilt word
// wrap width. Rendering falls back to the raw text on any failure so a
// bad reply never blanks the transcript.
type MarkdownRenderer struct {
	mu       sync.Mutex
	renderer *glamour.TermRenderer
	width    int
}

// NewMarkdownRenderer creates a renderer wrapping at the given width.
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	m := &MarkdownRenderer{}
	m.SetWidth(width)
	return m
}

// SetWidth rebuilds the renderer for a new wrap width.
// The glamour renderer bakes the width in at construction time.
func (m *MarkdownRenderer) SetWidth(width int) {
	if width < 20 {
		width = 20
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.renderer != nil && m.width == width {
		return
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.renderer = nil
		return
	}
	m.renderer = r
	m.width = width
}

// Render renders markdown for terminal display.
// Returns the original content if rendering fails.
func (m *MarkdownRenderer) Render(content string) string {
	m.mu.Lock()
	r := m.renderer
	m.mu.Unlock()

	if r == nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
