// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notify implements transient notification banners.
//
// Unlike modal error dialogs, notifications appear stacked in a corner and
// auto-dismiss, letting the user keep interacting while errors and
// confirmations are displayed. The Center is an explicitly constructed store
// with one instance per application root; it is never package-global state.
// Each notification expires independently exactly TTL after its own push —
// there is no shared sweep timer, and dismissing one item never disturbs
// another.
package notify
