// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the surface: transcript, then spinner row while busy,
// then the input box.
func (s *Surface) View() string {
	sections := []string{s.viewport.View()}

	if s.busy {
		sections = append(sections, s.theme.ThinkingText.Render(s.spinner.View()))
	}

	sections = append(sections, s.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
