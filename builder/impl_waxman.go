// SPDX-License-Identifier: MIT
// Package: FlowLM/builder
//
// impl_waxman.go - implementation of the Waxman(n, beta, alpha) constructor.
//
// Canonical model:
//   - Scatter n nodes uniformly over the unit square.
//   - Let L be the maximum pairwise Euclidean distance.
//   - Link each unordered pair {i,j} with probability
//     beta * exp(-d(i,j) / (alpha * L)).
//
// Contract:
//   - n >= 2 (else ErrTooFewVertices).
//   - 0 < beta <= 1 and alpha > 0 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Vertices are added via cfg.idFn in ascending index order; edge trials
//     iterate i asc, j asc with j > i, so outcomes are deterministic for a
//     fixed seed.
//   - Weight/Capacity come from cfg.weightFn / cfg.capacityFn.
//
// Complexity: O(n) placements + O(n^2) distance and Bernoulli trials.
package builder

import (
	"fmt"
	"math"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

const (
	methodWaxman      = "Waxman"
	minWaxmanVertices = 2
)

// Waxman returns a Constructor sampling a Waxman random geometric graph over
// n vertices with shape parameters beta and alpha.
func Waxman(n int, beta, alpha float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// Validate parameters early; zero side-effects on invalid input.
		if n < minWaxmanVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodWaxman, n, minWaxmanVertices, ErrTooFewVertices)
		}
		if beta <= 0 || beta > 1 {
			return fmt.Errorf("%s: beta=%.4f not in (0,1]: %w", methodWaxman, beta, ErrInvalidProbability)
		}
		if alpha <= 0 {
			return fmt.Errorf("%s: alpha=%.4f must be > 0: %w", methodWaxman, alpha, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodWaxman, ErrNeedRandSource)
		}
		rng := cfg.rng

		// Scatter nodes uniformly over the unit square, in index order.
		xs := make([]float64, n)
		ys := make([]float64, n)
		for i := 0; i < n; i++ {
			xs[i] = rng.Float64()
			ys[i] = rng.Float64()
			if err := g.AddVertex(cfg.idFn(i), xs[i], ys[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodWaxman, cfg.idFn(i), err)
			}
		}

		// L = maximum pairwise distance; normalizes the exponential decay.
		var maxDist float64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j]); d > maxDist {
					maxDist = d
				}
			}
		}
		if maxDist == 0 {
			// All nodes coincide; no geometry to link over.
			return fmt.Errorf("%s: degenerate placement (all nodes coincide): %w",
				methodWaxman, ErrConstructFailed)
		}

		// Bernoulli trial per unordered pair, in a stable order.
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				d := math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
				p := beta * math.Exp(-d/(alpha*maxDist))
				if rng.Float64() > p {
					continue
				}
				v := cfg.idFn(j)
				w := cfg.weightFn(rng)
				c := cfg.capacityFn(rng)
				if _, err := g.AddEdge(u, v, w, c); err != nil {
					return fmt.Errorf("%s: AddEdge(%s—%s, w=%d, cap=%d): %w",
						methodWaxman, u, v, w, c, err)
				}
			}
		}

		return nil
	}
}
