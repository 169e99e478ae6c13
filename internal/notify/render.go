// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package notify

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

// =============================================================================
// NOTIFICATION RENDERING
// =============================================================================

// Render renders a single notification box.
func Render(n Notification, width int) string {
	maxWidth := 60
	if width > 0 && width-8 < maxWidth {
		maxWidth = width - 8
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	var accent lipgloss.AdaptiveColor
	var icon string

	switch n.Kind {
	case KindError:
		accent = styles.Rose
		icon = styles.StatusIndicators.Error
	case KindSuccess:
		accent = styles.Emerald
		icon = styles.StatusIndicators.Success
	default:
		accent = styles.Cyan
		icon = styles.StatusIndicators.Info
	}

	iconStyle := lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	textStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(maxWidth - 8)

	text := n.Text
	if len(text) > maxWidth-10 {
		text = wrapText(text, maxWidth-10)
	}

	content := iconStyle.Render(icon+" ") + textStyle.Render(text)

	box := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 2).
		MaxWidth(maxWidth)

	return box.Render(content)
}

// RenderStack renders active notifications stacked vertically in the
// bottom-right corner, newest at the bottom.
func RenderStack(items []Notification, width, height int) string {
	if len(items) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(items))
	for _, n := range items {
		rendered = append(rendered, Render(n, width))
	}

	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)

	positioned := lipgloss.NewStyle().
		MarginRight(2).
		MarginBottom(1).
		Render(stack)

	if width > 0 && height > 0 {
		return lipgloss.Place(
			width, height,
			lipgloss.Right, lipgloss.Bottom,
			positioned,
		)
	}

	return positioned
}

// wrapText performs simple word wrapping for notification text.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var line strings.Builder

	for _, word := range words {
		switch {
		case line.Len() == 0:
			line.WriteString(word)
		case line.Len()+1+len(word) <= maxWidth:
			line.WriteString(" ")
			line.WriteString(word)
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
		}
	}

	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}
