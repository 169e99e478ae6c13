// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package register

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/modeldeck-tui/internal/registry"
	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

func newTestForm(t *testing.T) *Form {
	t.Helper()
	f := NewForm(styles.NewTheme(), registry.NewClient("http://127.0.0.1:0"))
	f.SetSize(100, 30)
	return f
}

func (f *Form) setField(index int, value string) {
	f.inputs[index].SetValue(value)
}

func TestForm_SubmitRejectsMissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		model   string
		company string
		hint    string
	}{
		{"both blank", "", "", "Model name is required"},
		{"model blank", "   ", "OpenAI", "Model name is required"},
		{"company blank", "gpt-4o", "\t", "Company is required"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestForm(t)
			f.setField(fieldModelName, tc.model)
			f.setField(fieldCompanyName, tc.company)

			cmd := f.submit()
			if cmd == nil {
				t.Fatal("submit returned nil command for invalid form")
			}
			if f.Busy() {
				t.Error("form busy after rejected submit")
			}

			// The command carries the validation error back without
			// touching the network.
			msg, ok := cmd().(RegisterErrMsg)
			if !ok {
				t.Fatalf("command produced %T, want RegisterErrMsg", cmd())
			}
			f, _ = f.Update(msg)
			if f.errText != tc.hint {
				t.Errorf("error text = %q, want %q", f.errText, tc.hint)
			}
		})
	}
}

func TestForm_SubmitWithValidFields(t *testing.T) {
	f := newTestForm(t)
	f.setField(fieldModelName, "  gpt-4o  ")
	f.setField(fieldCompanyName, "OpenAI")

	cmd := f.submit()
	if cmd == nil {
		t.Fatal("submit returned nil command for valid form")
	}
	if !f.Busy() {
		t.Error("form not busy after submit")
	}

	// Values are trimmed before validation and dispatch.
	if got := f.Values().ModelName; got != "gpt-4o" {
		t.Errorf("ModelName = %q, want trimmed value", got)
	}
}

func TestForm_IgnoresSubmitWhileBusy(t *testing.T) {
	f := newTestForm(t)
	f.setField(fieldModelName, "gpt-4o")
	f.setField(fieldCompanyName, "OpenAI")
	if cmd := f.submit(); cmd == nil {
		t.Fatal("first submit returned nil command")
	}
	if cmd := f.submit(); cmd != nil {
		t.Error("submit while busy returned a command")
	}
}

func TestForm_SuccessClearsFields(t *testing.T) {
	f := newTestForm(t)
	f.setField(fieldModelName, "gpt-4o")
	f.setField(fieldCompanyName, "OpenAI")
	f.setField(fieldBaseURL, "https://api.openai.com/v1")
	f.setField(fieldAPIKey, "sk-secret")
	f.compatible = true
	f.submit()

	f, _ = f.Update(RegisteredMsg{Descriptor: registry.ModelDescriptor{ID: 1}})

	if f.Busy() {
		t.Error("form busy after success")
	}
	got := f.Values()
	if got.ModelName != "" || got.CompanyName != "" || got.BaseURL != "" || got.APIKey != "" {
		t.Errorf("fields not cleared: %+v", got)
	}
	if got.OpenAICompatible {
		t.Error("compatibility toggle not cleared")
	}
	if f.focus != fieldModelName {
		t.Errorf("focus = %d, want first field", f.focus)
	}
}

func TestForm_FailureKeepsFields(t *testing.T) {
	f := newTestForm(t)
	f.setField(fieldModelName, "gpt-4o")
	f.setField(fieldCompanyName, "OpenAI")
	f.compatible = true
	f.submit()

	f, _ = f.Update(RegisterErrMsg{Err: errors.New("registry unreachable")})

	if f.Busy() {
		t.Error("form busy after failure")
	}
	got := f.Values()
	if got.ModelName != "gpt-4o" || got.CompanyName != "OpenAI" || !got.OpenAICompatible {
		t.Errorf("fields lost on failure: %+v", got)
	}
	if f.errText != "registry unreachable" {
		t.Errorf("error text = %q", f.errText)
	}
}

func TestForm_FocusCyclesThroughFields(t *testing.T) {
	f := newTestForm(t)
	for i := 1; i < fieldCount; i++ {
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
		if f.focus != i {
			t.Fatalf("after %d tabs focus = %d", i, f.focus)
		}
	}
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.focus != fieldModelName {
		t.Errorf("focus did not wrap, got %d", f.focus)
	}
}

func TestForm_SpaceTogglesCompatibilityOnly(t *testing.T) {
	f := newTestForm(t)
	f.focus = fieldCompatible
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !f.compatible {
		t.Error("space did not toggle compatibility")
	}

	f.setFocus(fieldModelName)
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !f.compatible {
		t.Error("space on a text field flipped the toggle")
	}
}

func TestForm_ViewShowsValidationError(t *testing.T) {
	f := newTestForm(t)
	cmd := f.submit()
	if cmd == nil {
		t.Fatal("submit returned nil command")
	}
	f, _ = f.Update(cmd())
	if view := f.View(); !strings.Contains(view, "Model name is required") {
		t.Error("view missing validation error")
	}
}
