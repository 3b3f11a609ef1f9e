// Package routing defines flow demands and routing plans, parses both from
// their textual forms, and evaluates plan feasibility against the bandwidth
// capacities of a core.Graph.
//
// The evaluation contract is the heart of the FlowLM harness:
//
//   - Evaluate aggregates the allocated bandwidth of every route of every
//     demand onto the edges it traverses, reports per-link loads, whether
//     every load fits under its link capacity (Feasible), and the maximum
//     link utilization (MLU) — the largest load/capacity ratio across the
//     graph. Infeasibility is a result, never an error.
//   - A route referencing a vertex or edge that does not exist, or
//     revisiting a vertex (routes must be simple paths), is an invalid
//     plan and fails with ErrRouteVertex / ErrRouteEdge.
//   - Over-allocating a demand (route allocations summing past the
//     requested bandwidth) and leaving a demand without routes are
//     reported as warnings; the policy decision stays with the caller.
//
// Evaluate is a pure function over immutable inputs: evaluating the same
// graph and plan twice yields identical reports.
//
// Plan text grammar (for LLM-produced plans): one route per line, a node
// sequence joined by "->" (or "→") with an optional ": N" allocation
// suffix, e.g.
//
//	0 -> 3 -> 7 : 2
//
// Lines that do not contain a route, and route-shaped fragments whose
// endpoints match no demand, are ignored, so prose around the plan is
// tolerated. A route without an allocation carries the demand's full
// bandwidth.
//
// Demand files list one "source target bandwidth" triple per line with "#"
// comments, mirroring the flow-descriptor files the harness reads.
//
// MinimizeMLU supplements the evaluator with a brute-force DFS over simple
// paths that ranks candidate routes for one demand by the MLU they would
// induce on top of an existing plan.
package routing
