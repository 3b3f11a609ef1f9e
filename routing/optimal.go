// optimal.go - brute-force minimum-MLU route search.
//
// DFS enumerates every simple path for one demand (bounded by a hop budget
// to keep the search tractable) and ranks each candidate by the MLU the
// graph would see with that route added on top of an existing base plan.
package routing

import (
	"fmt"
	"sort"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// DefaultOptimalMaxHops bounds the brute-force path search; beyond ~10 hops
// the enumeration explodes on dense topologies.
const DefaultOptimalMaxHops = 10

// Candidate is one enumerated route with the MLU it would induce.
type Candidate struct {
	Nodes []string
	MLU   float64
}

// MinimizeMLU enumerates all simple source→target paths for demand d (up to
// maxHops edges; non-positive maxHops means DefaultOptimalMaxHops) and
// returns them ranked by induced MLU ascending, ties broken
// lexicographically by node sequence. The base plan's loads are counted as
// already present; pass a zero Plan for a fresh graph.
//
// Returns ErrNoRoute when no simple path exists within the bound.
func MinimizeMLU(g *core.Graph, base Plan, d Demand, maxHops int) ([]Candidate, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err := BindDemands(g, []Demand{d}); err != nil {
		return nil, err
	}
	if maxHops <= 0 {
		maxHops = DefaultOptimalMaxHops
	}

	// Base loads are computed once; route MLU only needs the path edges
	// bumped on top of them.
	baseReport, err := Evaluate(g, base)
	if err != nil {
		return nil, fmt.Errorf("evaluating base plan: %w", err)
	}
	baseLoads := make(map[string]int64, len(baseReport.Loads))
	for _, l := range baseReport.Loads {
		baseLoads[l.EdgeID] = l.Load
	}

	var candidates []Candidate
	visited := map[string]bool{d.Source: true}
	path := []string{d.Source}

	var dfs func(current string) error
	dfs = func(current string) error {
		if current == d.Target {
			nodes := make([]string, len(path))
			copy(nodes, path)
			mlu, err := inducedMLU(g, baseLoads, nodes, d.Bandwidth)
			if err != nil {
				return err
			}
			candidates = append(candidates, Candidate{Nodes: nodes, MLU: mlu})
			return nil
		}
		if len(path)-1 >= maxHops {
			return nil
		}

		nbrs, err := g.NeighborIDs(current)
		if err != nil {
			return err
		}
		for _, next := range nbrs {
			if visited[next] {
				continue
			}
			visited[next] = true
			path = append(path, next)
			if err := dfs(next); err != nil {
				return err
			}
			path = path[:len(path)-1]
			visited[next] = false
		}

		return nil
	}
	if err := dfs(d.Source); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%s to %s within %d hops: %w",
			d.Source, d.Target, maxHops, ErrNoRoute)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].MLU != candidates[j].MLU {
			return candidates[i].MLU < candidates[j].MLU
		}
		return nodesLess(candidates[i].Nodes, candidates[j].Nodes)
	})

	return candidates, nil
}

// inducedMLU computes the graph-wide MLU with bw added along nodes.
func inducedMLU(g *core.Graph, baseLoads map[string]int64, nodes []string, bw int64) (float64, error) {
	onPath := make(map[string]bool, len(nodes)-1)
	for i := 0; i < len(nodes)-1; i++ {
		e, err := g.EdgeBetween(nodes[i], nodes[i+1])
		if err != nil {
			return 0, fmt.Errorf("route %v: hop %s—%s: %w", nodes, nodes[i], nodes[i+1], ErrRouteEdge)
		}
		onPath[e.ID] = true
	}

	var mlu float64
	for _, e := range g.Edges() {
		load := baseLoads[e.ID]
		if onPath[e.ID] {
			load += bw
		}
		if util := float64(load) / float64(e.Capacity); util > mlu {
			mlu = util
		}
	}

	return mlu, nil
}

// nodesLess is the lexicographic, numeric-aware node-sequence order.
func nodesLess(a, b []string) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return core.IDLess(a[i], b[i])
		}
	}

	return len(a) < len(b)
}
