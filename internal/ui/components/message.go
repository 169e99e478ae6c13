// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/model"
	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLES
// =============================================================================

// MessageRenderer renders transcript messages as styled bubbles.
// User messages sit on the right, AI messages on the left with an
// optional provenance tag underneath.
type MessageRenderer struct {
	theme    *styles.Theme
	markdown *MarkdownRenderer
	width    int
	useMD    bool
}

// NewMessageRenderer creates a renderer for the given theme.
func NewMessageRenderer(theme *styles.Theme, useMarkdown bool) *MessageRenderer {
	return &MessageRenderer{
		theme:    theme,
		markdown: NewMarkdownRenderer(76),
		width:    80,
		useMD:    useMarkdown,
	}
}

// SetWidth sets the render width.
func (r *MessageRenderer) SetWidth(width int) {
	r.width = width
	r.markdown.SetWidth(width - 12)
}

// Render renders one message as a bubble.
func (r *MessageRenderer) Render(msg model.Message) string {
	maxBubble := r.width - 8
	if maxBubble < 24 {
		maxBubble = 24
	}

	if msg.Role == model.RoleUser {
		bubble := r.theme.UserBubble.MaxWidth(maxBubble).Render(msg.Text)
		return lipgloss.PlaceHorizontal(r.width, lipgloss.Right, bubble)
	}

	text := msg.Text
	if r.useMD {
		text = r.markdown.Render(text)
	} else {
		text = ParseCodeBlocks(text, maxBubble)
	}

	bubble := r.theme.AIBubble.MaxWidth(maxBubble).Render(text)
	if msg.Via != "" {
		tag := r.theme.Provenance.Render("via " + msg.Via)
		bubble = lipgloss.JoinVertical(lipgloss.Left, bubble, tag)
	}
	return bubble
}

// RenderAll renders a full transcript joined with blank lines.
func (r *MessageRenderer) RenderAll(msgs []model.Message) string {
	if len(msgs) == 0 {
		return r.theme.ThinkingText.Render("No messages yet. Type below to start.")
	}

	parts := make([]string, 0, len(msgs)*2-1)
	for i, m := range msgs {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, r.Render(m))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
