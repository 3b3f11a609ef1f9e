// dijkstra.go - single-pair hop-bounded Dijkstra with exclusion sets, the
// primitive Yen's algorithm deviates on.
//
// Search states are (vertex, hops) pairs so a hop bound restricts the
// search itself rather than filtering its result: when the unconstrained
// shortest path is too long, a heavier within-bound path is still found.
// The heap uses the lazy decrease-key strategy: shorter rediscoveries push
// duplicate entries, and stale entries are skipped on pop via the visited
// set. Neighbors() iterates edges in a deterministic order, so relaxation
// outcomes (and therefore predecessor chains) are reproducible.
package kshortest

import (
	"container/heap"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// hopState identifies one search state: a vertex reached over hops edges.
type hopState struct {
	id   string
	hops int
}

// shortestPath computes the minimum-weight path from source to target using
// at most maxHops edges, ignoring banned edges (by edge ID) and banned
// vertices. It returns the path and true, or a zero Path and false when
// target is unreachable under the exclusions and the hop budget.
//
// Assumes endpoints were validated by the caller.
// Complexity: O(H · (V + E) log(H · V)) with H the effective hop bound.
func shortestPath(g *core.Graph, source, target string, bannedEdges, bannedVertices map[string]bool, maxHops int) (Path, bool) {
	// A simple path has at most V-1 edges; clamping keeps the state space
	// finite when no bound was configured.
	if limit := g.VertexCount() - 1; maxHops > limit {
		maxHops = limit
	}
	if maxHops < 1 {
		return Path{}, false
	}

	start := hopState{id: source}
	dist := map[hopState]int64{start: 0}
	prev := make(map[hopState]hopState)
	visited := make(map[hopState]bool)

	pq := make(nodePQ, 0, g.VertexCount())
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		s := hopState{id: item.id, hops: item.hops}
		if visited[s] {
			continue // stale lazy-decrease-key entry
		}
		visited[s] = true

		if s.id == target {
			// A zero-weight cycle can produce a hop-indexed chain that
			// revisits a vertex; skip it, an equal-weight simple chain
			// with fewer hops pops right after.
			if nodes, simple := walkBack(prev, s); simple {
				return Path{Nodes: nodes, Weight: dist[s]}, true
			}
			continue
		}
		if s.hops == maxHops {
			continue // hop budget spent; no further relaxation
		}

		edges, err := g.Neighbors(s.id)
		if err != nil {
			return Path{}, false
		}
		for _, e := range edges {
			if bannedEdges[e.ID] {
				continue
			}
			v, ok := e.Other(s.id)
			if !ok || bannedVertices[v] {
				continue
			}
			next := hopState{id: v, hops: s.hops + 1}
			if visited[next] {
				continue
			}
			newDist := dist[s] + e.Weight
			if cur, seen := dist[next]; !seen || newDist < cur {
				dist[next] = newDist
				prev[next] = s
				heap.Push(&pq, &nodeItem{id: v, hops: next.hops, dist: newDist})
			}
		}
	}

	return Path{}, false
}

// walkBack reconstructs the node sequence ending at s from the predecessor
// chain. The second result is false when the chain repeats a vertex.
func walkBack(prev map[hopState]hopState, s hopState) ([]string, bool) {
	nodes := []string{s.id}
	seen := map[string]bool{s.id: true}
	for cur := s; cur.hops > 0; {
		cur = prev[cur]
		if seen[cur.id] {
			return nil, false
		}
		seen[cur.id] = true
		nodes = append(nodes, cur.id)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes, true
}

// nodeItem pairs a search state with its tentative distance from the source.
type nodeItem struct {
	id   string
	hops int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with a
// numeric-aware ID tie-break (then fewer hops) to keep pop order
// deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	if pq[i].id != pq[j].id {
		return core.IDLess(pq[i].id, pq[j].id)
	}

	return pq[i].hops < pq[j].hops
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
