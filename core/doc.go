// Package core defines the central Graph, Vertex, and Edge types used by
// every FlowLM component: topology generation, path enumeration, feasibility
// evaluation, and max-flow admissibility checks.
//
// A core.Graph models a network topology as an undirected, connected,
// weighted, capacitated graph:
//
//   - Vertex: string ID plus a 2D position (the Waxman generator derives
//     link weights from geometric distance; GML round-trips preserve it).
//   - Edge: unordered vertex pair with an int64 Weight (routing cost, used
//     for shortest-path ranking) and an int64 Capacity (bandwidth units).
//
// Self-loops and duplicate edges are rejected at insertion time; the
// connectivity invariant is queryable via Connected() and enforced by the
// builder's retry loop rather than by the graph itself.
//
// All mutating and reading APIs are guarded by a sync.RWMutex, so a Graph
// may be shared across goroutines, though the FlowLM pipeline itself is
// sequential.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop attempted.
//	ErrDuplicateEdge  - an edge between the endpoints already exists.
//	ErrBadWeight      - negative edge weight.
//	ErrBadCapacity    - zero or negative edge capacity.
package core
