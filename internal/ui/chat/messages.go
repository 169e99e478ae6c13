// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea messages exchanged by chat surfaces.
// Every message carries the surface name so the root model can fan
// messages out to multiple surfaces without cross-talk.
package chat

// ReplyMsg delivers a successful backend reply to a surface.
type ReplyMsg struct {
	Surface string
	Text    string
	Via     string
}

// DispatchErrMsg reports a failed dispatch. The surface clears its busy
// state; the root model turns the error into a notification.
type DispatchErrMsg struct {
	Surface string
	Err     error
}
