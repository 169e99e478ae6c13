// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// A Conversation is an append-only transcript owned by exactly one chat
// surface. Messages are immutable once appended; the only mutations a
// conversation supports are AppendUser and AppendAI. There is no editing,
// removal, or reordering, and nothing here is persisted across sessions.
package model
