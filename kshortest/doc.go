// Package kshortest enumerates the k shortest simple paths between two
// vertices of a weighted core.Graph.
//
// The implementation is Yen's algorithm: the first path comes from a
// heap-based Dijkstra run (lazy decrease-key, as in the classic
// presentation), and each subsequent path is found by deviating at every
// spur node of the previous one while excluding the edges and root vertices
// that would reproduce an already-accepted path.
//
// Ordering guarantees:
//
//   - Returned paths are sorted by non-decreasing total edge weight.
//   - Equal-weight paths are ordered lexicographically by node sequence
//     (numeric-aware, "2" before "10"), so output is reproducible across
//     runs and platforms.
//
// An optional hop bound (WithMaxHops) restricts enumeration to paths of at
// most that many edges. The Dijkstra runs over (vertex, hops) states, so a
// within-bound path is returned even when the unconstrained shortest path
// exceeds the bound.
//
// Complexity: O(K · V · H · (E + V) log(H · V)) in the worst case — one
// hop-bounded Dijkstra per spur node per accepted path.
//
// Usage:
//
//	paths, err := kshortest.KShortest(g,
//	    kshortest.Source("0"),
//	    kshortest.Target("7"),
//	    kshortest.WithK(3),
//	)
//
// A disconnected (source, target) pair yields ErrNoPath.
package kshortest
