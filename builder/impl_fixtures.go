// SPDX-License-Identifier: MIT
// Package: FlowLM/builder
//
// impl_fixtures.go - deterministic Path and Cycle fixtures.
//
// Contract:
//   - Path: n >= 2; Cycle: n >= 3 (else ErrTooFewVertices).
//   - Vertices added via cfg.idFn in index order, positioned evenly on a
//     horizontal line (Path) or the unit circle (Cycle).
//   - Edge emission order is i -> i+1 ascending (Cycle closes n-1 -> 0 last).
//   - Weight/Capacity come from cfg.weightFn / cfg.capacityFn; with no RNG
//     configured both fall back to their deterministic defaults.
package builder

import (
	"fmt"
	"math"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"

	minPathVertices  = 2
	minCycleVertices = 3
)

// Path builds a simple path P_n: 0—1—...—(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}

		step := 1.0 / float64(n-1)
		for i := 0; i < n; i++ {
			if err := g.AddVertex(cfg.idFn(i), float64(i)*step, 0); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPath, cfg.idFn(i), err)
			}
		}
		for i := 0; i < n-1; i++ {
			u, v := cfg.idFn(i), cfg.idFn(i+1)
			if _, err := g.AddEdge(u, v, cfg.weightFn(cfg.rng), cfg.capacityFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}

// Cycle builds a simple cycle C_n: 0—1—...—(n-1)—0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			x := 0.5 + 0.5*math.Cos(angle)
			y := 0.5 + 0.5*math.Sin(angle)
			if err := g.AddVertex(cfg.idFn(i), x, y); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, cfg.idFn(i), err)
			}
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(u, v, cfg.weightFn(cfg.rng), cfg.capacityFn(cfg.rng)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}
