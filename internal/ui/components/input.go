// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

// =============================================================================
// INPUT AREA COMPONENT
// =============================================================================

// InputArea is the styled single-line text input with a character counter.
type InputArea struct {
	input    textinput.Model
	maxChars int
	width    int
	focused  bool
	theme    *styles.Theme
}

// NewInputArea creates a new InputArea component.
func NewInputArea(theme *styles.Theme, placeholder string) *InputArea {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 4096
	ti.Width = 70
	ti.Prompt = "> "

	ti.PromptStyle = lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	ti.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Italic(true)

	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Cyan)

	return &InputArea{
		input:    ti,
		maxChars: 4096,
		width:    80,
		theme:    theme,
	}
}

// Focus focuses the input.
func (i *InputArea) Focus() tea.Cmd {
	i.focused = true
	return i.input.Focus()
}

// Blur removes focus from the input.
func (i *InputArea) Blur() {
	i.focused = false
	i.input.Blur()
}

// Focused returns whether the input is focused.
func (i *InputArea) Focused() bool {
	return i.focused
}

// SetWidth sets the input area width.
func (i *InputArea) SetWidth(width int) {
	i.width = width
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	i.input.Width = inputWidth
}

// SetPlaceholder sets the placeholder text.
func (i *InputArea) SetPlaceholder(placeholder string) {
	i.input.Placeholder = placeholder
}

// Value returns the current input value.
func (i *InputArea) Value() string {
	return i.input.Value()
}

// SetValue sets the input value.
func (i *InputArea) SetValue(value string) {
	i.input.SetValue(value)
}

// Reset clears the input.
func (i *InputArea) Reset() {
	i.input.Reset()
}

// Update handles input updates.
func (i *InputArea) Update(msg tea.Msg) (*InputArea, tea.Cmd) {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return i, cmd
}

// View renders the input area with a focus-aware border and counter.
func (i *InputArea) View() string {
	borderColor := styles.Overlay
	if i.focused {
		borderColor = styles.Cyan
	}

	containerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(i.width - 2)

	inputSection := containerStyle.Render(i.input.View())

	counterStyle := lipgloss.NewStyle().
		Width(i.width - 4).
		Align(lipgloss.Right)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputSection,
		counterStyle.Render(i.renderCharCounter()),
	)
}

// ViewCompact renders a single-line input without the counter box.
func (i *InputArea) ViewCompact() string {
	return i.input.View()
}

// renderCharCounter renders the character counter with color coding.
func (i *InputArea) renderCharCounter() string {
	count := len([]rune(i.input.Value()))

	percent := 0.0
	if i.maxChars > 0 {
		percent = float64(count) / float64(i.maxChars) * 100
	}

	var style lipgloss.Style
	switch {
	case percent >= 90:
		style = lipgloss.NewStyle().Foreground(styles.Rose).Bold(true)
	case percent >= 75:
		style = lipgloss.NewStyle().Foreground(styles.Amber)
	default:
		style = lipgloss.NewStyle().Foreground(styles.TextMuted)
	}

	return style.Render(fmt.Sprintf("%d / %d chars", count, i.maxChars))
}
