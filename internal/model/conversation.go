// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered transcript for one chat surface.
// Insertion order is chronological and meaningful; the transcript only
// ever grows within a session.
type Conversation struct {
	// Identity
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Messages, oldest first.
	Messages []Message `json:"messages"`
}

// NewConversation creates a new empty conversation with a generated ID.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        "conv_" + uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Messages:  make([]Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// AppendUser appends a user turn. Blank or whitespace-only text is
// rejected: nothing is appended and nil is returned.
func (c *Conversation) AppendUser(text string) *Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return c.append(NewUserMessage(text))
}

// AppendAI appends an AI turn with an optional provenance tag.
// Unlike AppendUser it always succeeds, including for empty text.
func (c *Conversation) AppendAI(text, via string) *Message {
	return c.append(NewAIMessage(text, via))
}

func (c *Conversation) append(msg Message) *Message {
	c.Messages = append(c.Messages, msg)
	c.UpdatedAt = time.Now()
	return &c.Messages[len(c.Messages)-1]
}

// Last returns the most recent message, or nil if the conversation is empty.
func (c *Conversation) Last() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return &c.Messages[len(c.Messages)-1]
}

// LastUser returns the most recent user message, or nil if there is none.
func (c *Conversation) LastUser() *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleUser {
			return &c.Messages[i]
		}
	}
	return nil
}

// History returns the transcript for display, oldest first.
// Callers must treat the returned slice as read-only.
func (c *Conversation) History() []Message {
	return c.Messages
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.Messages) == 0
}

// Preview returns a short preview of the conversation for status display.
func (c *Conversation) Preview() string {
	if len(c.Messages) == 0 {
		return "Empty conversation"
	}
	last := c.LastUser()
	if last == nil {
		last = &c.Messages[0]
	}
	return last.Preview(80)
}
