// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notify implements transient notification banners.
package notify

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// =============================================================================
// NOTIFICATION TYPES
// =============================================================================

// Kind represents the type of notification.
type Kind int

const (
	// KindInfo is an informational notification.
	KindInfo Kind = iota
	// KindError is an error notification.
	KindError
	// KindSuccess is a confirmation notification.
	KindSuccess
)

// TTL is how long every notification stays visible before auto-dismissing.
const TTL = 3500 * time.Millisecond

// Notification is one transient banner.
type Notification struct {
	ID        string
	Text      string
	Kind      Kind
	CreatedAt time.Time
}

// ExpireMsg requests removal of one notification whose TTL elapsed.
// Stale expirations (item already dismissed) are harmless no-ops.
type ExpireMsg struct {
	ID string
}

// =============================================================================
// CENTER
// =============================================================================

// Center holds the active notifications for one application root.
// Construct it with NewCenter and route ExpireMsg values back into Expire
// from the program's update loop.
type Center struct {
	mu    sync.Mutex
	items []Notification
}

// NewCenter creates an empty notification center.
func NewCenter() *Center {
	return &Center{items: make([]Notification, 0)}
}

// Push appends a notification and returns the command that expires it.
// Every item gets its own timer; timers are independent per item.
func (c *Center) Push(text string, kind Kind) tea.Cmd {
	n := Notification{
		ID:        "ntf_" + uuid.NewString(),
		Text:      text,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	return expireCmd(n.ID)
}

// Info pushes an informational notification.
func (c *Center) Info(text string) tea.Cmd {
	return c.Push(text, KindInfo)
}

// Error pushes an error notification.
func (c *Center) Error(text string) tea.Cmd {
	return c.Push(text, KindError)
}

// Success pushes a confirmation notification.
func (c *Center) Success(text string) tea.Cmd {
	return c.Push(text, KindSuccess)
}

// Expire removes the notification with the given ID, if still present.
// Expiry of one item never affects the timers of the others.
func (c *Center) Expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Active returns a copy of the current notifications in insertion order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// HasActive returns true if any notification is currently displayed.
func (c *Center) HasActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) > 0
}

// Len returns the number of active notifications.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// =============================================================================
// COMMANDS
// =============================================================================

// expireCmd schedules the per-item expiry message.
func expireCmd(id string) tea.Cmd {
	return tea.Tick(TTL, func(time.Time) tea.Msg {
		return ExpireMsg{ID: id}
	})
}
