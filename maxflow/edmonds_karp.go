package maxflow

import (
	"context"
	"errors"

	"github.com/JosephLeeeeeee/FlowLM/core"
)

// Sentinel errors for max-flow computation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("maxflow: graph is nil")

	// ErrSourceNotFound indicates that the source vertex is missing.
	ErrSourceNotFound = errors.New("maxflow: source vertex not found")

	// ErrSinkNotFound indicates that the sink vertex is missing.
	ErrSinkNotFound = errors.New("maxflow: sink vertex not found")

	// ErrSameEndpoints indicates that source and sink are the same vertex.
	ErrSameEndpoints = errors.New("maxflow: source and sink must differ")
)

// EdmondsKarp computes the maximum flow from source to sink over edge
// capacities, treating every undirected link as a residual arc pair.
//
// Returns the total flow value; ctx cancellation aborts the search and
// returns the flow accumulated so far with ctx.Err().
//
// Complexity: O(V · E²). Memory: O(V + E).
func EdmondsKarp(ctx context.Context, g *core.Graph, source, sink string) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return 0, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, ErrSinkNotFound
	}
	if source == sink {
		return 0, ErrSameEndpoints
	}

	// Residual capacities per directed arc. Undirected link u—v of
	// capacity c starts as c on both u→v and v→u.
	residual := make(map[string]map[string]int64, g.VertexCount())
	for _, id := range g.Vertices() {
		residual[id] = make(map[string]int64)
	}
	for _, e := range g.Edges() {
		residual[e.From][e.To] += e.Capacity
		residual[e.To][e.From] += e.Capacity
	}

	var maxFlow int64
	for {
		select {
		case <-ctx.Done():
			return maxFlow, ctx.Err()
		default:
		}

		path, bottleneck := augmentingPath(g, residual, source, sink)
		if bottleneck == 0 {
			break
		}
		maxFlow += bottleneck

		// Augment: push flow forward, open reverse capacity.
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
		}
	}

	return maxFlow, nil
}

// augmentingPath finds the fewest-edges path from source to sink with
// positive residual capacity, returning the path and its bottleneck.
// A zero bottleneck means no augmenting path remains.
func augmentingPath(g *core.Graph, residual map[string]map[string]int64, source, sink string) ([]string, int64) {
	parent := make(map[string]string, len(residual))
	bottle := map[string]int64{source: int64(1) << 62}
	visited := map[string]bool{source: true}

	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		// Deterministic expansion order keeps augmentation reproducible.
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, 0
		}
		for _, v := range nbrs {
			cap := residual[u][v]
			if visited[v] || cap <= 0 {
				continue
			}
			visited[v] = true
			parent[v] = u
			b := bottle[u]
			if cap < b {
				b = cap
			}
			bottle[v] = b

			if v == sink {
				path := []string{sink}
				for cur := sink; cur != source; {
					cur = parent[cur]
					path = append(path, cur)
				}
				for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
					path[i], path[j] = path[j], path[i]
				}
				return path, bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}
