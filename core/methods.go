package core

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex with the given ID and position.
// Re-adding an existing ID updates its position in place.
// Complexity: O(1).
func (g *Graph) AddVertex(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if v, ok := g.vertices[id]; ok {
		v.X, v.Y = x, y
		return nil
	}
	g.vertices[id] = &Vertex{ID: id, X: x, Y: y}
	g.adjacency[id] = make(map[string]string)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the vertex with the given ID, or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// AddEdge inserts an undirected edge between from and to with the given
// routing weight and bandwidth capacity, returning the generated edge ID.
//
// Validation order: empty IDs, self-loop, endpoint existence, duplicate
// edge, weight/capacity domains. Both endpoints must already exist;
// edges never create vertices implicitly.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight, capacity int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	if weight < 0 {
		return "", ErrBadWeight
	}
	if capacity <= 0 {
		return "", ErrBadCapacity
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.adjacency[from][to]; ok {
		return "", ErrDuplicateEdge
	}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, Capacity: capacity}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether an edge exists between u and v (either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeBetween returns the unique edge connecting u and v,
// or ErrEdgeNotFound when the endpoints are not adjacent.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adjacency[u][v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Neighbors returns the edges incident to id, sorted by edge ID for
// deterministic iteration. Unknown id yields ErrVertexNotFound.
// Complexity: O(deg log deg).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge, 0, len(adj))
	for _, eid := range adj {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out, nil
}

// NeighborIDs returns the IDs adjacent to id, sorted numerically-then-lexically.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(adj))
	for v := range adj {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return IDLess(out[i], out[j]) })

	return out, nil
}

// Vertices returns all vertex IDs in deterministic order
// (numeric IDs ascending, then lexicographic).
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return IDLess(out[i], out[j]) })

	return out
}

// Edges returns all edges sorted by insertion order (edge ID ascending).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })

	return out
}

// VertexCount returns the number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Connected reports whether every vertex is reachable from every other.
// The empty graph counts as connected. BFS from an arbitrary root.
// Complexity: O(V + E).
func (g *Graph) Connected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.vertices) == 0 {
		return true
	}

	var root string
	for id := range g.vertices {
		root = id
		break
	}

	seen := make(map[string]bool, len(g.vertices))
	seen[root] = true
	queue := []string{root}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range g.adjacency[u] {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(seen) == len(g.vertices)
}

// IDLess orders vertex IDs numerically when both parse as integers,
// falling back to lexicographic order. Keeps "2" before "10" for the
// decimal ID convention while staying total for arbitrary labels.
func IDLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}

	return a < b
}

// edgeIDLess orders generated edge IDs ("e1","e2",...) by insertion order.
func edgeIDLess(a, b string) bool {
	if len(a) > 1 && len(b) > 1 && a[0] == 'e' && b[0] == 'e' {
		ai, aerr := strconv.ParseUint(a[1:], 10, 64)
		bi, berr := strconv.ParseUint(b[1:], 10, 64)
		if aerr == nil && berr == nil {
			return ai < bi
		}
	}

	return a < b
}
