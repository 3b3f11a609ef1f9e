// SPDX-License-Identifier: MIT
// Package: FlowLM/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg,
//     runs constructors in order.
//   - Functional options resolve into an immutable builderConfig; no globals.
//   - Determinism: same options/seed and constructor order yield identical
//     graphs.
//   - Constructors return sentinel errors and never panic at runtime.
package builder

import (
	"fmt"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must validate parameters early, return
// sentinel errors, and preserve determinism for the same config and call
// order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from opts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately; no partial cleanup
// is attempted.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// BuildConnectedGraph repeatedly samples BuildGraph(opts, ctor) until the
// result is connected, up to the configured attempt budget (WithMaxAttempts,
// default 100). The RNG stream advances across attempts, so each retry sees
// a fresh sample while the whole sequence stays reproducible per seed.
//
// Returns ErrConstructFailed (wrapped) when the budget is exhausted.
func BuildConnectedGraph(opts []Option, ctor Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if ctor == nil {
		return nil, fmt.Errorf("BuildConnectedGraph: nil constructor: %w", ErrConstructFailed)
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
		g := core.NewGraph()
		if err := ctor(g, cfg); err != nil {
			// Parameter validation does not improve with retries; fail now.
			return nil, fmt.Errorf("BuildConnectedGraph: %w", err)
		}
		if g.Connected() {
			return g, nil
		}
		lastErr = fmt.Errorf("attempt %d/%d produced a disconnected graph", attempt, cfg.maxAttempts)
	}

	return nil, fmt.Errorf("BuildConnectedGraph: %v: %w", lastErr, ErrConstructFailed)
}
