// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/modeldeck-tui/internal/model"
	"github.com/jeranaias/modeldeck-tui/internal/ui/components"
	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

// =============================================================================
// CHAT SURFACE
// =============================================================================

// Surface is one independent conversation pane. The zero value is not
// usable; construct with NewSurface.
type Surface struct {
	name       string
	theme      *styles.Theme
	dispatcher Dispatcher
	logger     *slog.Logger

	conversation *model.Conversation

	viewport viewport.Model
	input    *components.InputArea
	spinner  components.Spinner
	renderer *components.MessageRenderer
	keys     KeyMap

	// busy is true while a dispatch is in flight. Submissions while
	// busy are ignored, not queued.
	busy bool

	width  int
	height int
}

// NewSurface creates a surface named name, dispatching through d.
// The name keys ReplyMsg/DispatchErrMsg routing and must be unique
// among surfaces handled by one program.
func NewSurface(name string, theme *styles.Theme, d Dispatcher, placeholder string, markdown bool) *Surface {
	return &Surface{
		name:         name,
		theme:        theme,
		dispatcher:   d,
		logger:       slog.Default(),
		conversation: model.NewConversation(),
		viewport:     viewport.New(80, 20),
		input:        components.NewInputArea(theme, placeholder),
		spinner:      components.NewSpinner("Thinking"),
		renderer:     components.NewMessageRenderer(theme, markdown),
		keys:         DefaultKeyMap(),
	}
}

// WithLogger sets the structured logger.
func (s *Surface) WithLogger(logger *slog.Logger) *Surface {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Name returns the surface routing name.
func (s *Surface) Name() string {
	return s.name
}

// Busy reports whether a dispatch is in flight.
func (s *Surface) Busy() bool {
	return s.busy
}

// Conversation returns the surface's conversation.
func (s *Surface) Conversation() *model.Conversation {
	return s.conversation
}

// Focus focuses the input area.
func (s *Surface) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes input focus.
func (s *Surface) Blur() {
	s.input.Blur()
}

// SetSize resizes the surface to the given terminal region.
func (s *Surface) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.input.SetWidth(width)
	s.renderer.SetWidth(width - 4)

	// Input box is 3 rows plus one spacer; the transcript gets the rest.
	vpHeight := height - 4
	if vpHeight < 3 {
		vpHeight = 3
	}
	s.viewport.Width = width
	s.viewport.Height = vpHeight
	s.refreshTranscript(false)
}

// Init implements tea.Model-style initialization for the surface.
func (s *Surface) Init() tea.Cmd {
	return s.input.Focus()
}

// Update routes a message to the surface. Reply and error messages
// addressed to other surfaces are ignored.
func (s *Surface) Update(msg tea.Msg) (*Surface, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)

	case ReplyMsg:
		if msg.Surface != s.name {
			return s, nil
		}
		s.busy = false
		s.spinner.Stop()
		s.conversation.AppendAI(msg.Text, msg.Via)
		s.refreshTranscript(true)
		return s, nil

	case DispatchErrMsg:
		if msg.Surface != s.name {
			return s, nil
		}
		// The conversation keeps the user turn; only the busy state
		// is rolled back so the query can be retried.
		s.busy = false
		s.spinner.Stop()
		s.logger.Warn("dispatch failed", "surface", s.name, "error", msg.Err)
		return s, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	s.spinner, cmd = s.spinner.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	s.viewport, cmd = s.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

// handleKey processes a key press.
func (s *Surface) handleKey(msg tea.KeyMsg) (*Surface, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Submit):
		return s, s.submit()

	case key.Matches(msg, s.keys.Cancel):
		s.input.Reset()
		return s, nil

	case key.Matches(msg, s.keys.Clear):
		s.conversation = model.NewConversation()
		s.refreshTranscript(false)
		return s, nil

	case key.Matches(msg, s.keys.ScrollUp):
		s.viewport.LineUp(1)
		return s, nil

	case key.Matches(msg, s.keys.ScrollDn):
		s.viewport.LineDown(1)
		return s, nil

	case key.Matches(msg, s.keys.PageUp):
		s.viewport.ViewUp()
		return s, nil

	case key.Matches(msg, s.keys.PageDown):
		s.viewport.ViewDown()
		return s, nil

	case key.Matches(msg, s.keys.Top):
		s.viewport.GotoTop()
		return s, nil

	case key.Matches(msg, s.keys.Bottom):
		s.viewport.GotoBottom()
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit validates the input and launches a dispatch. Blank input and
// submissions while busy produce no command and no network traffic.
func (s *Surface) submit() tea.Cmd {
	if s.busy {
		return nil
	}

	text := s.input.Value()
	userMsg := s.conversation.AppendUser(text)
	if userMsg == nil {
		// Blank after trimming. Rejected locally.
		return nil
	}

	s.input.Reset()
	s.busy = true
	s.refreshTranscript(true)

	query := userMsg.Text
	dispatch := func() tea.Msg {
		reply, err := s.dispatcher.Dispatch(context.Background(), query)
		if err != nil {
			return DispatchErrMsg{Surface: s.name, Err: err}
		}
		return ReplyMsg{Surface: s.name, Text: reply.Text, Via: reply.Via}
	}
	return tea.Batch(s.spinner.Start(), dispatch)
}

// refreshTranscript re-renders the conversation into the viewport.
func (s *Surface) refreshTranscript(toBottom bool) {
	s.viewport.SetContent(s.renderer.RenderAll(s.conversation.History()))
	if toBottom {
		s.viewport.GotoBottom()
	}
}
