// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package register

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/modeldeck-tui/internal/registry"
	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

// =============================================================================
// FORM FIELDS
// =============================================================================

const (
	fieldModelName = iota
	fieldCompanyName
	fieldBaseURL
	fieldAPIKey
	fieldCompatible
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Model name",
	"Company",
	"Base URL (optional)",
	"API key (optional)",
	"OpenAI compatible",
}

// =============================================================================
// MESSAGES
// =============================================================================

// RegisteredMsg reports a successful registration. The root model uses
// it to notify and to refresh the model picker.
type RegisteredMsg struct {
	Descriptor registry.ModelDescriptor
}

// RegisterErrMsg reports a failed registration attempt. The form keeps
// its field values.
type RegisterErrMsg struct {
	Err error
}

// =============================================================================
// FORM MODEL
// =============================================================================

// Form is the Bubble Tea model for the registration tab.
type Form struct {
	theme  *styles.Theme
	client *registry.Client
	logger *slog.Logger

	inputs     [fieldCompatible]textinput.Model
	compatible bool
	focus      int

	// busy is true while a registration request is in flight.
	busy    bool
	errText string

	width int
}

// NewForm creates a registration form backed by the given client.
func NewForm(theme *styles.Theme, client *registry.Client) *Form {
	f := &Form{
		theme:  theme,
		client: client,
		logger: slog.Default(),
	}
	placeholders := [fieldCompatible]string{"gpt-4o", "OpenAI", "https://api.example.com/v1", ""}
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		in.Prompt = ""
		if i == fieldAPIKey {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.inputs[i] = in
	}
	f.inputs[fieldModelName].Focus()
	return f
}

// WithLogger sets the structured logger.
func (f *Form) WithLogger(logger *slog.Logger) *Form {
	if logger != nil {
		f.logger = logger
	}
	return f
}

// Busy reports whether a registration request is in flight.
func (f *Form) Busy() bool {
	return f.busy
}

// Values returns the current field values as a Registration.
func (f *Form) Values() registry.Registration {
	return registry.Registration{
		ModelName:        strings.TrimSpace(f.inputs[fieldModelName].Value()),
		CompanyName:      strings.TrimSpace(f.inputs[fieldCompanyName].Value()),
		BaseURL:          strings.TrimSpace(f.inputs[fieldBaseURL].Value()),
		APIKey:           strings.TrimSpace(f.inputs[fieldAPIKey].Value()),
		OpenAICompatible: f.compatible,
	}
}

// SetSize resizes the form.
func (f *Form) SetSize(width, _ int) {
	f.width = width
	inputWidth := width - 30
	if inputWidth < 20 {
		inputWidth = 20
	}
	for i := range f.inputs {
		f.inputs[i].Width = inputWidth
	}
}

// Focus focuses the first field.
func (f *Form) Focus() tea.Cmd {
	return f.setFocus(f.focus)
}

// Blur removes focus from every field.
func (f *Form) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Update routes a message to the form.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return f.handleKey(msg)

	case RegisteredMsg:
		f.busy = false
		f.errText = ""
		f.reset()
		return f, nil

	case RegisterErrMsg:
		// Field values survive so the user can correct and resubmit.
		f.busy = false
		f.errText = validationHint(msg.Err)
		f.logger.Warn("registration failed", "error", msg.Err)
		return f, nil
	}

	return f.updateFocused(msg)
}

func (f *Form) handleKey(msg tea.KeyMsg) (*Form, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return f, f.setFocus((f.focus + 1) % fieldCount)

	case "shift+tab", "up":
		return f, f.setFocus((f.focus + fieldCount - 1) % fieldCount)

	case " ":
		if f.focus == fieldCompatible {
			f.compatible = !f.compatible
			return f, nil
		}

	case "enter":
		if f.focus == fieldCompatible {
			return f, f.submit()
		}
		return f, f.setFocus(f.focus + 1)

	case "ctrl+s":
		return f, f.submit()
	}

	return f.updateFocused(msg)
}

func (f *Form) updateFocused(msg tea.Msg) (*Form, tea.Cmd) {
	if f.focus >= fieldCompatible {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f *Form) setFocus(index int) tea.Cmd {
	if index < 0 || index >= fieldCount {
		index = 0
	}
	f.focus = index
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	if index < fieldCompatible {
		return f.inputs[index].Focus()
	}
	return nil
}

// submit validates locally and launches the registration request.
// Submissions while busy are ignored.
func (f *Form) submit() tea.Cmd {
	if f.busy {
		return nil
	}

	reg := f.Values()
	if err := reg.Validate(); err != nil {
		// Rejected locally; the error message flows back like a failed
		// request so the root model can notify, but nothing is sent.
		return func() tea.Msg { return RegisterErrMsg{Err: err} }
	}

	f.busy = true
	f.errText = ""
	client := f.client
	return func() tea.Msg {
		desc, err := client.Register(context.Background(), reg)
		if err != nil {
			return RegisterErrMsg{Err: err}
		}
		return RegisteredMsg{Descriptor: *desc}
	}
}

// reset clears every field after a successful registration.
func (f *Form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.compatible = false
	f.setFocus(fieldModelName)
}

func validationHint(err error) string {
	switch {
	case errors.Is(err, registry.ErrBlankModelName):
		return "Model name is required"
	case errors.Is(err, registry.ErrBlankCompanyName):
		return "Company is required"
	default:
		return err.Error()
	}
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the form.
func (f *Form) View() string {
	var b strings.Builder
	b.WriteString(f.theme.Header.Render("Register a model"))
	b.WriteString("\n\n")

	for i := 0; i < fieldCompatible; i++ {
		b.WriteString(f.renderLabel(i))
		b.WriteString(" ")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	check := "[ ]"
	if f.compatible {
		check = "[x]"
	}
	b.WriteString(f.renderLabel(fieldCompatible))
	b.WriteString(" ")
	b.WriteString(check)
	b.WriteString("\n\n")

	switch {
	case f.busy:
		b.WriteString(f.theme.InfoStyle.Render("Registering..."))
	case f.errText != "":
		b.WriteString(f.theme.FormError.Render(f.errText))
	default:
		b.WriteString(f.theme.ShortcutDesc.Render("tab next field, space toggle, ctrl+s submit"))
	}

	return f.theme.FormBox.Render(b.String())
}

func (f *Form) renderLabel(index int) string {
	style := f.theme.FormLabel
	if index == f.focus {
		style = f.theme.FormLabelFocus
	}
	return style.Render(lipgloss.NewStyle().Width(20).Render(fieldLabels[index]))
}
