// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/modeldeck-tui/internal/ui/styles"
)

// fakeDispatcher records queries and returns a canned reply or error.
type fakeDispatcher struct {
	mu      sync.Mutex
	queries []string
	reply   Reply
	err     error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, query string) (Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	if f.err != nil {
		return Reply{}, f.err
	}
	return f.reply, nil
}

func (f *fakeDispatcher) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queries)
}

func newTestSurface(t *testing.T, d Dispatcher) *Surface {
	t.Helper()
	s := NewSurface("test", styles.NewTheme(), d, "Ask something", false)
	s.SetSize(80, 24)
	return s
}

func TestSurface_SubmitRejectsBlankLocally(t *testing.T) {
	fake := &fakeDispatcher{}
	s := newTestSurface(t, fake)

	for _, value := range []string{"", "   ", "\t\n"} {
		s.input.SetValue(value)
		if cmd := s.submit(); cmd != nil {
			t.Errorf("submit(%q) returned a command, want nil", value)
		}
	}

	if s.Busy() {
		t.Error("surface busy after blank submissions")
	}
	if !s.Conversation().IsEmpty() {
		t.Errorf("conversation has %d messages, want 0", s.Conversation().Len())
	}
	if fake.calls() != 0 {
		t.Errorf("dispatcher called %d times for blank input", fake.calls())
	}
}

func TestSurface_SubmitStartsDispatch(t *testing.T) {
	fake := &fakeDispatcher{reply: Reply{Text: "answer"}}
	s := newTestSurface(t, fake)

	s.input.SetValue("what is a rollup?")
	cmd := s.submit()
	if cmd == nil {
		t.Fatal("submit returned nil command for non-blank input")
	}
	if !s.Busy() {
		t.Error("surface not busy after submit")
	}
	if s.input.Value() != "" {
		t.Errorf("input not cleared, got %q", s.input.Value())
	}
	if s.Conversation().Len() != 1 {
		t.Fatalf("conversation has %d messages, want 1", s.Conversation().Len())
	}
	if got := s.Conversation().Last().Text; got != "what is a rollup?" {
		t.Errorf("user message = %q", got)
	}
}

func TestSurface_IgnoresSubmitWhileBusy(t *testing.T) {
	fake := &fakeDispatcher{reply: Reply{Text: "answer"}}
	s := newTestSurface(t, fake)

	s.input.SetValue("first")
	if cmd := s.submit(); cmd == nil {
		t.Fatal("first submit returned nil command")
	}

	s.input.SetValue("second")
	if cmd := s.submit(); cmd != nil {
		t.Error("submit while busy returned a command, want nil")
	}
	if s.Conversation().Len() != 1 {
		t.Errorf("conversation has %d messages, want 1 (second submit queued?)", s.Conversation().Len())
	}
}

func TestSurface_ReplyAppendsWithProvenance(t *testing.T) {
	fake := &fakeDispatcher{}
	s := newTestSurface(t, fake)
	s.input.SetValue("hello")
	s.submit()

	s, _ = s.Update(ReplyMsg{Surface: "test", Text: "hi there", Via: "gpt-4o"})

	if s.Busy() {
		t.Error("surface still busy after reply")
	}
	if s.Conversation().Len() != 2 {
		t.Fatalf("conversation has %d messages, want 2", s.Conversation().Len())
	}
	last := s.Conversation().Last()
	if last.Text != "hi there" || last.Via != "gpt-4o" {
		t.Errorf("AI message = %q via %q", last.Text, last.Via)
	}
}

func TestSurface_DispatchErrorPreservesConversation(t *testing.T) {
	fake := &fakeDispatcher{err: errors.New("connection refused")}
	s := newTestSurface(t, fake)
	s.input.SetValue("hello")
	s.submit()

	s, _ = s.Update(DispatchErrMsg{Surface: "test", Err: fake.err})

	if s.Busy() {
		t.Error("surface still busy after dispatch error")
	}
	if s.Conversation().Len() != 1 {
		t.Fatalf("conversation has %d messages, want 1 (user turn dropped?)", s.Conversation().Len())
	}
	if s.Conversation().Last().Text != "hello" {
		t.Errorf("surviving message = %q", s.Conversation().Last().Text)
	}
}

func TestSurface_EscClearsInputWithoutDispatch(t *testing.T) {
	fake := &fakeDispatcher{}
	s := newTestSurface(t, fake)
	s.input.SetValue("half-typed question")

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if s.input.Value() != "" {
		t.Errorf("input not cleared, got %q", s.input.Value())
	}
	if fake.calls() != 0 {
		t.Errorf("dispatcher called %d times on cancel", fake.calls())
	}
	if !s.Conversation().IsEmpty() {
		t.Error("cancel appended a message")
	}
}

func TestSurface_IgnoresMessagesForOtherSurfaces(t *testing.T) {
	fake := &fakeDispatcher{}
	s := newTestSurface(t, fake)
	s.input.SetValue("hello")
	s.submit()

	s, _ = s.Update(ReplyMsg{Surface: "other", Text: "not for you"})
	if !s.Busy() {
		t.Error("reply for another surface cleared busy state")
	}
	if s.Conversation().Len() != 1 {
		t.Errorf("conversation has %d messages, want 1", s.Conversation().Len())
	}

	s, _ = s.Update(DispatchErrMsg{Surface: "other", Err: errors.New("boom")})
	if !s.Busy() {
		t.Error("error for another surface cleared busy state")
	}
}
