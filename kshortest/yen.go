// yen.go - Yen's k-shortest simple paths over the single-pair Dijkstra.
package kshortest

import (
	"container/heap"
	"fmt"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// KShortest enumerates up to K simple paths from Source to Target ordered
// by non-decreasing total weight, with lexicographic node-sequence
// tie-break. Fewer than K paths may exist; the result is never empty on
// success (a reachable pair always yields at least the shortest path).
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. Target must be non-empty (ErrEmptyTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. Source and Target must differ (ErrSameEndpoints).
//  5. Both endpoints must exist in g (ErrVertexNotFound).
//
// A hop bound restricts enumeration to paths of at most MaxHops edges; the
// underlying search is hop-aware, so a heavier within-bound path is still
// found when the unconstrained shortest path is too long. A pair with no
// connecting path (within the bound, if any) yields ErrNoPath.
func KShortest(g *core.Graph, opts ...Option) ([]Path, error) {
	cfg := DefaultOptions("", "")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if cfg.Target == "" {
		return nil, ErrEmptyTarget
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Source == cfg.Target {
		return nil, ErrSameEndpoints
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}
	if !g.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Target)
	}

	first, ok := shortestPath(g, cfg.Source, cfg.Target, nil, nil, cfg.MaxHops)
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoPath, cfg.Source, cfg.Target)
	}

	accepted := []Path{first}
	candidates := &candidateHeap{}
	heap.Init(candidates)
	seen := map[string]bool{pathKey(first.Nodes): true}

	for len(accepted) < cfg.K {
		prev := accepted[len(accepted)-1].Nodes

		// Deviate at every spur node of the previously accepted path.
		for i := 0; i < len(prev)-1; i++ {
			spur := prev[i]
			root := prev[:i+1]

			// Ban the next edge of every accepted path sharing this root,
			// so the spur search cannot reproduce one of them.
			bannedEdges := make(map[string]bool)
			for _, p := range accepted {
				if len(p.Nodes) > i+1 && sameNodes(p.Nodes[:i+1], root) {
					if e, err := g.EdgeBetween(p.Nodes[i], p.Nodes[i+1]); err == nil {
						bannedEdges[e.ID] = true
					}
				}
			}
			// Ban the root vertices before the spur node to keep paths simple.
			bannedVertices := make(map[string]bool, i)
			for j := 0; j < i; j++ {
				bannedVertices[root[j]] = true
			}

			// The root already spends i edges of the hop budget.
			spurPath, ok := shortestPath(g, spur, cfg.Target, bannedEdges, bannedVertices, cfg.MaxHops-i)
			if !ok {
				continue
			}

			total := make([]string, 0, i+len(spurPath.Nodes))
			total = append(total, root[:i]...)
			total = append(total, spurPath.Nodes...)

			weight, err := pathWeight(g, total)
			if err != nil {
				return nil, err
			}
			key := pathKey(total)
			if seen[key] {
				continue
			}
			seen[key] = true
			heap.Push(candidates, Path{Nodes: total, Weight: weight})
		}

		if candidates.Len() == 0 {
			break // the spur searches are exhausted; fewer than K paths exist
		}
		accepted = append(accepted, heap.Pop(candidates).(Path))
	}

	return accepted, nil
}

// pathWeight sums edge weights along the node sequence.
func pathWeight(g *core.Graph, nodes []string) (int64, error) {
	var w int64
	for i := 0; i < len(nodes)-1; i++ {
		e, err := g.EdgeBetween(nodes[i], nodes[i+1])
		if err != nil {
			return 0, fmt.Errorf("kshortest: edge %s—%s: %w", nodes[i], nodes[i+1], err)
		}
		w += e.Weight
	}

	return w, nil
}

// sameNodes reports element-wise equality of two node sequences.
func sameNodes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// candidateHeap is a min-heap of candidate paths ordered by pathLess.
type candidateHeap []Path

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return pathLess(h[i], h[j]) }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(Path)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	p := old[n-1]
	*h = old[:n-1]

	return p
}
