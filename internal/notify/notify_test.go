// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package notify

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain executes a push command and returns the resulting expiry message ID.
// tea.Tick commands block for the tick duration, so tests that only care
// about routing call Expire directly instead.
func pushAndID(t *testing.T, c *Center, text string, kind Kind) (string, tea.Cmd) {
	t.Helper()
	cmd := c.Push(text, kind)
	require.NotNil(t, cmd, "Push must return an expiry command")
	items := c.Active()
	require.NotEmpty(t, items)
	return items[len(items)-1].ID, cmd
}

func TestCenter_PushAssignsUniqueIDs(t *testing.T) {
	c := NewCenter()
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		id, _ := pushAndID(t, c, "msg", KindInfo)
		require.False(t, seen[id], "duplicate notification ID")
		seen[id] = true
	}
	assert.Equal(t, 20, c.Len())
}

func TestCenter_InsertionOrder(t *testing.T) {
	c := NewCenter()
	c.Error("first")
	c.Info("second")
	c.Success("third")

	items := c.Active()
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].Text)
	assert.Equal(t, KindError, items[0].Kind)
	assert.Equal(t, "second", items[1].Text)
	assert.Equal(t, "third", items[2].Text)
}

func TestCenter_ExpireRemovesOnlyItsOwnItem(t *testing.T) {
	c := NewCenter()
	idA, _ := pushAndID(t, c, "a", KindError)
	idB, _ := pushAndID(t, c, "b", KindInfo)
	idC, _ := pushAndID(t, c, "c", KindSuccess)

	c.Expire(idB)

	items := c.Active()
	require.Len(t, items, 2)
	assert.Equal(t, idA, items[0].ID)
	assert.Equal(t, idC, items[1].ID)
}

func TestCenter_StaleExpireIsNoOp(t *testing.T) {
	c := NewCenter()
	id, _ := pushAndID(t, c, "a", KindInfo)

	c.Expire(id)
	require.Zero(t, c.Len())

	// A second (stale) expiry for the same ID must not disturb newer items.
	c.Info("b")
	c.Expire(id)
	assert.Equal(t, 1, c.Len())
}

func TestCenter_ActiveReturnsACopy(t *testing.T) {
	c := NewCenter()
	c.Info("a")

	items := c.Active()
	items[0].Text = "mutated"

	assert.Equal(t, "a", c.Active()[0].Text)
}

func TestCenter_HasActive(t *testing.T) {
	c := NewCenter()
	assert.False(t, c.HasActive())
	id, _ := pushAndID(t, c, "a", KindInfo)
	assert.True(t, c.HasActive())
	c.Expire(id)
	assert.False(t, c.HasActive())
}
