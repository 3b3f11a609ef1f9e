// Package maxflow computes maximum flow over the bandwidth capacities of a
// core.Graph using the Edmonds–Karp algorithm (BFS shortest augmenting
// paths).
//
// FlowLM uses it as an admissibility pre-check: a demand whose requested
// bandwidth exceeds the max flow between its endpoints cannot be satisfied
// by any routing plan, which lets the harness distinguish "this plan is
// infeasible" from "no plan could ever work".
//
// Each undirected link of capacity c becomes a pair of residual arcs with
// capacity c in both directions, matching the usual reduction for
// undirected flow networks.
//
// Complexity: O(V · E²). The algorithmic core is pure; the context is
// checked once per BFS wave so long runs remain cancellable.
package maxflow
