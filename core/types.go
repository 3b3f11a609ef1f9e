// Package core: type declarations, sentinel errors, and the NewGraph
// constructor. Methods live in methods.go.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID was the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; topologies are simple graphs.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted between endpoints
	// that are already connected.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrBadCapacity indicates a zero or negative edge capacity.
	ErrBadCapacity = errors.New("core: edge capacity must be positive")
)

// Vertex represents a network node.
//
// ID uniquely identifies the Vertex within its Graph; the convention across
// FlowLM is decimal IDs "0".."N-1". X and Y place the node in the unit square
// and are what the Waxman generator samples and GML files carry.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// X, Y are the 2D coordinates of the node.
	X, Y float64
}

// Edge represents an undirected link between two vertices.
//
// From/To record the endpoints in insertion order; the link itself carries
// traffic in both directions. Weight is the routing cost used by shortest-path
// ranking; Capacity is the bandwidth budget the evaluator checks loads against.
type Edge struct {
	// ID uniquely identifies this edge within the Graph.
	ID string

	// From and To are the endpoint vertex IDs (unordered pair).
	From, To string

	// Weight is the routing cost of the link.
	Weight int64

	// Capacity is the bandwidth budget of the link, in bandwidth units.
	Capacity int64
}

// Other returns the endpoint of e opposite to id, and whether id is an
// endpoint of e at all.
func (e *Edge) Other(id string) (string, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	default:
		return "", false
	}
}

// Graph is the in-memory topology.
//
// It is always undirected and simple: no self-loops, no parallel edges.
// mu guards vertices, edges and the adjacency index; nextEdgeID feeds
// unique Edge.ID generation.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64             // edge ID counter
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID of the unique u—v link.
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}

// Distance returns the Euclidean distance between the positions of u and v.
// Unknown vertices yield ErrVertexNotFound.
func (g *Graph) Distance(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.vertices[u]
	if !ok {
		return 0, ErrVertexNotFound
	}
	b, ok := g.vertices[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return math.Hypot(a.X-b.X, a.Y-b.Y), nil
}
