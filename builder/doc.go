// Package builder constructs network topologies for the FlowLM harness.
//
// The centerpiece is Waxman(n, beta, alpha): a random geometric graph in
// which n nodes are scattered uniformly over the unit square and each pair
// is linked with probability beta * exp(-d/(alpha*L)), d being the pair's
// Euclidean distance and L the largest distance between any two nodes.
// Link weights default to uniform integers in [1,5] and capacities to a
// constant 10 bandwidth units, both overridable via options.
//
// A single Waxman sample may come out disconnected; BuildConnectedGraph
// wraps any constructor in a bounded resampling loop and fails with
// ErrConstructFailed once the attempt budget is exhausted.
//
// Determinism: for a fixed seed, option set, and constructor order, the
// produced graph is identical across runs. Constructors validate their
// parameters eagerly and return sentinel errors; they never panic at
// runtime (option constructors may panic on programmer error, e.g. a nil
// weight function).
//
// Path(n) and Cycle(n) provide small deterministic fixtures for tests and
// examples.
package builder
