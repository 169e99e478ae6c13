// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/notify"
	"github.com/jeranaias/modeldeck-tui/internal/ui/components"
)

// View renders the full screen: tab bar, active tab, notifications,
// status bar. The picker replaces the chat transcript while visible.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Starting modeldeck..."
	}

	var b strings.Builder
	b.WriteString(m.tabBar.View(int(m.activeTab), m.width))
	b.WriteString("\n")

	if m.picker.Visible() {
		b.WriteString(lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, m.picker.View()))
	} else {
		b.WriteString(m.activeView())
	}
	b.WriteString("\n")

	if m.notifications.HasActive() {
		b.WriteString(notify.RenderStack(m.notifications.Active(), m.width, 0))
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar.View(m.statusContext(), m.shortcuts()))
	return b.String()
}

func (m *Model) contentHeight() int {
	h := m.height - 2
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) activeView() string {
	switch m.activeTab {
	case TabExplorer:
		return m.explorerSurface.View()
	case TabRegister:
		return m.form.View()
	default:
		return m.chatSurface.View()
	}
}

// statusContext describes the active tab's backend in the status bar.
func (m *Model) statusContext() string {
	switch m.activeTab {
	case TabExplorer:
		return "explorer " + m.cfg.Explorer.URL
	case TabRegister:
		return "registry " + m.cfg.Registry.URL
	default:
		return "registry " + m.cfg.Registry.URL + " | " + m.picker.SelectionLabel()
	}
}

func (m *Model) shortcuts() []components.Shortcut {
	common := []components.Shortcut{
		{Key: "ctrl+t", Desc: "next tab"},
		{Key: "ctrl+c", Desc: "quit"},
	}
	if m.activeTab == TabChat {
		return append([]components.Shortcut{
			{Key: "ctrl+o", Desc: "pick model"},
			{Key: "ctrl+r", Desc: "refresh models"},
		}, common...)
	}
	return common
}
