// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	"github.com/jeranaias/modeldeck-tui/internal/explorer"
	"github.com/jeranaias/modeldeck-tui/internal/registry"
)

// =============================================================================
// DISPATCHERS
// =============================================================================

// Reply is the backend answer to one query.
type Reply struct {
	Text string
	Via  string
}

// Dispatcher carries a submitted query to a backend. Implementations
// must be safe for use from a Bubble Tea command goroutine.
type Dispatcher interface {
	Dispatch(ctx context.Context, query string) (Reply, error)
}

// RegistryDispatcher routes queries to the registry chat endpoint. Ref
// is sampled at dispatch time so a picker selection made between
// submissions takes effect without rebuilding the dispatcher.
type RegistryDispatcher struct {
	Client *registry.Client
	Ref    func() registry.ModelRef
}

// Dispatch implements Dispatcher.
func (d RegistryDispatcher) Dispatch(ctx context.Context, query string) (Reply, error) {
	ref := registry.Auto()
	if d.Ref != nil {
		ref = d.Ref()
	}
	reply, err := d.Client.Chat(ctx, query, ref)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: reply.Response, Via: reply.GeneratedVia}, nil
}

// ExplorerDispatcher routes queries to the block-explorer chat endpoint.
type ExplorerDispatcher struct {
	Client *explorer.Client
}

// Dispatch implements Dispatcher.
func (d ExplorerDispatcher) Dispatch(ctx context.Context, query string) (Reply, error) {
	text, err := d.Client.Ask(ctx, query)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: text}, nil
}
