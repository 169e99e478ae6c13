// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
	"github.com/jeranaias/modeldeck-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Shortcut is a key binding hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom status line: context on the left,
// shortcut hints on the right.
type StatusBar struct {
	theme *styles.Theme
	width int
}

// NewStatusBar creates a new status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{theme: theme, width: 80}
}

// SetWidth sets the render width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View(context string, shortcuts []Shortcut) string {
	left := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(context)

	var hints []string
	for _, sc := range shortcuts {
		hints = append(hints,
			s.theme.ShortcutKey.Render(sc.Key)+" "+s.theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Not enough room: drop hints before truncating context.
		right = ""
		gap = s.width - lipgloss.Width(left) - 2
		if gap < 1 {
			left = util.TruncateWidth(context, s.width-4)
			gap = 1
		}
	}

	return s.theme.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", gap) + right,
	)
}

// =============================================================================
// TAB BAR
// =============================================================================

// TabBar renders the top tab strip with the brand name.
type TabBar struct {
	theme *styles.Theme
	Tabs  []string
}

// NewTabBar creates a tab bar with the given tab names.
func NewTabBar(theme *styles.Theme, tabs []string) *TabBar {
	return &TabBar{theme: theme, Tabs: tabs}
}

// View renders the tab strip with the active tab highlighted.
func (t *TabBar) View(active int, width int) string {
	brand := t.theme.HeaderBrand.Render(" modeldeck ")

	var rendered []string
	for i, name := range t.Tabs {
		if i == active {
			rendered = append(rendered, t.theme.TabActive.Render(name))
		} else {
			rendered = append(rendered, t.theme.Tab.Render(name))
		}
	}

	row := brand + " " + strings.Join(rendered, " ")
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Width(width).
		Render(row)
}
