// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/registry"
	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
	"github.com/jeranaias/modeldeck-tui/internal/util"
)

// =============================================================================
// MODEL PICKER
// =============================================================================

// PickerState tracks what we know about the registry's model list.
// Loading and Unknown are distinct from an empty list: an empty list is
// a definitive answer from the registry, Unknown means the last fetch
// failed and the list could not be determined.
type PickerState int

const (
	// PickerLoading means a model list fetch is in progress.
	PickerLoading PickerState = iota
	// PickerReady means the list was fetched (possibly empty).
	PickerReady
	// PickerUnknown means the last fetch failed.
	PickerUnknown
)

// ModelPicker lets the user choose between automatic routing and a
// specific registered model. The "Auto" entry is always present and
// always selectable, regardless of registry state.
type ModelPicker struct {
	theme  *styles.Theme
	state  PickerState
	models []registry.ModelDescriptor

	// cursor 0 is the Auto entry; 1..len(models) are specific models.
	cursor  int
	visible bool
	width   int
}

// NewModelPicker creates a picker in the loading state with Auto selected.
func NewModelPicker(theme *styles.Theme) *ModelPicker {
	return &ModelPicker{
		theme: theme,
		state: PickerLoading,
		width: 60,
	}
}

// SetLoading marks a fetch as in progress. The current selection and
// model list are kept so the picker stays usable during a refresh.
func (p *ModelPicker) SetLoading() {
	p.state = PickerLoading
}

// SetModels installs a fetched model list.
// If the previously selected model is gone, selection falls back to Auto.
func (p *ModelPicker) SetModels(models []registry.ModelDescriptor) {
	prev := p.Selection()
	p.models = models
	p.state = PickerReady

	p.cursor = 0
	if prevID, ok := prev.ID(); ok {
		for i, m := range models {
			if m.ID == prevID {
				p.cursor = i + 1
				break
			}
		}
	}
}

// SetUnknown marks the model list as unavailable after a failed fetch.
// Any previously fetched list is discarded; only Auto remains selectable.
func (p *ModelPicker) SetUnknown() {
	p.state = PickerUnknown
	p.models = nil
	p.cursor = 0
}

// State returns the current registry knowledge state.
func (p *ModelPicker) State() PickerState {
	return p.state
}

// Models returns the current model list.
func (p *ModelPicker) Models() []registry.ModelDescriptor {
	return p.models
}

// Show opens the picker overlay.
func (p *ModelPicker) Show() {
	p.visible = true
}

// Hide closes the picker overlay.
func (p *ModelPicker) Hide() {
	p.visible = false
}

// Visible reports whether the picker overlay is open.
func (p *ModelPicker) Visible() bool {
	return p.visible
}

// SetWidth sets the render width.
func (p *ModelPicker) SetWidth(width int) {
	p.width = width
}

// MoveUp moves the cursor up one entry.
func (p *ModelPicker) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor down one entry.
func (p *ModelPicker) MoveDown() {
	if p.cursor < len(p.models) {
		p.cursor++
	}
}

// Selection returns the model reference under the cursor.
func (p *ModelPicker) Selection() registry.ModelRef {
	if p.cursor == 0 || p.cursor > len(p.models) {
		return registry.Auto()
	}
	return registry.Specific(p.models[p.cursor-1].ID)
}

// SelectionLabel returns a human-readable label for the current selection.
func (p *ModelPicker) SelectionLabel() string {
	if p.cursor == 0 || p.cursor > len(p.models) {
		return "Auto"
	}
	return p.models[p.cursor-1].Label()
}

// View renders the picker overlay.
func (p *ModelPicker) View() string {
	if !p.visible {
		return ""
	}

	title := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Bold(true).
		Render("Select model")

	var body string
	switch p.state {
	case PickerLoading:
		body = p.theme.ThinkingText.Render(styles.StatusIndicators.Pending + " Loading models...")
		if len(p.models) > 0 {
			body = p.renderList() + "\n" + body
		}
	case PickerUnknown:
		warn := lipgloss.NewStyle().Foreground(styles.Amber).
			Render(styles.StatusIndicators.Error + " Model list unavailable")
		body = p.renderList() + "\n" + warn
	default:
		if len(p.models) == 0 {
			empty := p.theme.PickerMeta.Render("No models registered yet")
			body = p.renderList() + "\n" + empty
		} else {
			body = p.renderList()
		}
	}

	hint := p.theme.PickerMeta.Render("up/down move, enter select, esc close")

	return p.theme.PickerBox.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hint),
	)
}

// renderList renders the Auto entry plus any known models.
func (p *ModelPicker) renderList() string {
	maxLabel := p.width - 12
	if maxLabel < 16 {
		maxLabel = 16
	}

	var b strings.Builder
	b.WriteString(p.renderEntry(0, "Auto", "let the registry route"))

	for i, m := range p.models {
		label := util.TruncateWidth(m.Label(), maxLabel)
		meta := fmt.Sprintf("id %d", m.ID)
		if m.OpenAICompatible {
			meta += ", openai-compatible"
		}
		b.WriteString("\n")
		b.WriteString(p.renderEntry(i+1, label, meta))
	}

	return b.String()
}

func (p *ModelPicker) renderEntry(index int, label, meta string) string {
	metaView := p.theme.PickerMeta.Render(" " + meta)
	if index == p.cursor {
		return p.theme.PickerItemSelected.Render(label) + metaView
	}
	return p.theme.PickerItem.Render(label) + metaView
}
