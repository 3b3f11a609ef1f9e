// Package kshortest: result type, configuration options, and sentinel errors.
package kshortest

import (
	"errors"
	"math"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// Sentinel errors returned by KShortest.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("kshortest: graph is nil")

	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("kshortest: source vertex ID is empty")

	// ErrEmptyTarget indicates that no target vertex ID was provided.
	ErrEmptyTarget = errors.New("kshortest: target vertex ID is empty")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the graph.
	ErrVertexNotFound = errors.New("kshortest: vertex not found in graph")

	// ErrSameEndpoints indicates that source and target are the same vertex.
	ErrSameEndpoints = errors.New("kshortest: source and target must differ")

	// ErrNoPath indicates that no path exists between source and target.
	ErrNoPath = errors.New("kshortest: no path between source and target")

	// ErrBadK indicates a non-positive K.
	ErrBadK = errors.New("kshortest: K must be positive")

	// ErrBadMaxHops indicates a non-positive hop bound.
	ErrBadMaxHops = errors.New("kshortest: MaxHops must be positive")
)

// Path is a simple path through the graph with its cumulative edge weight.
type Path struct {
	// Nodes is the vertex sequence from source to target inclusive.
	Nodes []string

	// Weight is the sum of edge weights along Nodes.
	Weight int64
}

// Hops returns the number of edges traversed by the path.
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// Options configures a KShortest run.
//
// Source, Target - endpoint vertex IDs (required, must differ).
// K              - number of paths to enumerate (default 1).
// MaxHops        - paths longer than this many edges are discarded
//
//	(default math.MaxInt: no bound).
type Options struct {
	Source  string
	Target  string
	K       int
	MaxHops int
}

// Option is a functional option for configuring KShortest.
type Option func(*Options)

// Source sets the source vertex ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the target vertex ID.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithK sets the number of paths to enumerate.
// Panics on k < 1; invalid configuration is programmer error.
func WithK(k int) Option {
	return func(o *Options) {
		if k < 1 {
			panic(ErrBadK.Error())
		}
		o.K = k
	}
}

// WithMaxHops discards candidate paths longer than h edges.
// Panics on h < 1.
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 1 {
			panic(ErrBadMaxHops.Error())
		}
		o.MaxHops = h
	}
}

// DefaultOptions returns Options with sensible defaults: K=1, no hop bound.
func DefaultOptions(source, target string) Options {
	return Options{
		Source:  source,
		Target:  target,
		K:       1,
		MaxHops: math.MaxInt,
	}
}

// pathLess orders paths by weight, then lexicographically by node sequence
// (numeric-aware). This is the deterministic tie-break the package
// guarantees.
func pathLess(a, b Path) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	n := len(a.Nodes)
	if len(b.Nodes) < n {
		n = len(b.Nodes)
	}
	for i := 0; i < n; i++ {
		if a.Nodes[i] != b.Nodes[i] {
			return core.IDLess(a.Nodes[i], b.Nodes[i])
		}
	}

	return len(a.Nodes) < len(b.Nodes)
}

// pathKey renders a node sequence as a map key for deduplication.
func pathKey(nodes []string) string {
	key := ""
	for i, n := range nodes {
		if i > 0 {
			key += "\x00"
		}
		key += n
	}

	return key
}
