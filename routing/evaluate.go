// evaluate.go - feasibility and maximum-link-utilization evaluation.
package routing

import (
	"fmt"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// Evaluate aggregates the plan's allocations onto the graph's edges and
// reports feasibility, MLU, and the per-link load breakdown.
//
// The computation is pure and stateless: neither g nor plan is mutated,
// and identical inputs always yield identical reports. Infeasibility
// (some load exceeding its capacity) is expressed in the Report, not as
// an error; errors are reserved for structurally invalid plans.
//
// Complexity: O(R·H + E) for R routes of at most H hops over E edges.
func Evaluate(g *core.Graph, plan Plan) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGraph
	}

	loads := make(map[string]int64) // edge ID → aggregate load
	var warnings []string

	for _, a := range plan.Assignments {
		if len(a.Routes) == 0 {
			warnings = append(warnings, fmt.Sprintf(
				"demand %s->%s (%d units) has no routes; left unsatisfied",
				a.Demand.Source, a.Demand.Target, a.Demand.Bandwidth))
			continue
		}

		var allocated int64
		for _, r := range a.Routes {
			if r.Bandwidth <= 0 {
				return Report{}, fmt.Errorf("route %v: allocation %d: %w",
					r.Nodes, r.Bandwidth, ErrRouteBandwidth)
			}
			if err := accumulate(g, r, loads); err != nil {
				return Report{}, err
			}
			allocated += r.Bandwidth
		}
		if allocated > a.Demand.Bandwidth {
			warnings = append(warnings, fmt.Sprintf(
				"demand %s->%s over-allocated: %d of %d units requested",
				a.Demand.Source, a.Demand.Target, allocated, a.Demand.Bandwidth))
		} else if allocated < a.Demand.Bandwidth {
			warnings = append(warnings, fmt.Sprintf(
				"demand %s->%s under-allocated: %d of %d units requested",
				a.Demand.Source, a.Demand.Target, allocated, a.Demand.Bandwidth))
		}
	}

	report := Report{Feasible: true, Warnings: warnings}
	for _, e := range g.Edges() {
		load := loads[e.ID]
		util := float64(load) / float64(e.Capacity)
		report.Loads = append(report.Loads, LinkLoad{
			From: e.From, To: e.To, EdgeID: e.ID,
			Load: load, Capacity: e.Capacity, Utilization: util,
		})
		if load > e.Capacity {
			report.Feasible = false
		}
		if util > report.MLU {
			report.MLU = util
		}
	}

	return report, nil
}

// accumulate walks a route and adds its allocation to every traversed edge.
func accumulate(g *core.Graph, r Route, loads map[string]int64) error {
	if len(r.Nodes) < 2 {
		return fmt.Errorf("route %v has fewer than two nodes: %w", r.Nodes, ErrRouteVertex)
	}
	seen := make(map[string]bool, len(r.Nodes))
	for _, n := range r.Nodes {
		if !g.HasVertex(n) {
			return fmt.Errorf("route %v: vertex %q: %w", r.Nodes, n, ErrRouteVertex)
		}
		// Routes must be simple; a repeated vertex would multi-count edges.
		if seen[n] {
			return fmt.Errorf("route %v: vertex %q repeated: %w", r.Nodes, n, ErrRouteVertex)
		}
		seen[n] = true
	}
	for i := 0; i < len(r.Nodes)-1; i++ {
		e, err := g.EdgeBetween(r.Nodes[i], r.Nodes[i+1])
		if err != nil {
			return fmt.Errorf("route %v: hop %s—%s: %w",
				r.Nodes, r.Nodes[i], r.Nodes[i+1], ErrRouteEdge)
		}
		loads[e.ID] += r.Bandwidth
	}

	return nil
}

// SingleRoutePlan wraps one demand and one route into a Plan; the common
// case for baseline and brute-force comparisons.
func SingleRoutePlan(d Demand, nodes []string) Plan {
	return Plan{Assignments: []Assignment{{
		Demand: d,
		Routes: []Route{{Nodes: nodes, Bandwidth: d.Bandwidth}},
	}}}
}
