package maxflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JosephLeeeeeee/FlowLM/core"
	"github.com/JosephLeeeeeee/FlowLM/maxflow"
)

func build(t *testing.T, n int, links [][4]int64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"0", "1", "2", "3", "4"}
	for i := 0; i < n; i++ {
		if err := g.AddVertex(ids[i], 0, 0); err != nil {
			t.Fatalf("AddVertex: %v", err)
		}
	}
	for _, l := range links {
		if _, err := g.AddEdge(ids[int(l[0])], ids[int(l[1])], l[2], l[3]); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

func TestEdmondsKarp_Validation(t *testing.T) {
	g := build(t, 2, [][4]int64{{0, 1, 1, 5}})
	ctx := context.Background()

	if _, err := maxflow.EdmondsKarp(ctx, nil, "0", "1"); !errors.Is(err, maxflow.ErrNilGraph) {
		t.Errorf("nil graph: got %v", err)
	}
	if _, err := maxflow.EdmondsKarp(ctx, g, "9", "1"); !errors.Is(err, maxflow.ErrSourceNotFound) {
		t.Errorf("missing source: got %v", err)
	}
	if _, err := maxflow.EdmondsKarp(ctx, g, "0", "9"); !errors.Is(err, maxflow.ErrSinkNotFound) {
		t.Errorf("missing sink: got %v", err)
	}
	if _, err := maxflow.EdmondsKarp(ctx, g, "0", "0"); !errors.Is(err, maxflow.ErrSameEndpoints) {
		t.Errorf("same endpoints: got %v", err)
	}
}

func TestEdmondsKarp_ChainBottleneck(t *testing.T) {
	// 0—1 cap 5, 1—2 cap 3: min cut is 3.
	g := build(t, 3, [][4]int64{{0, 1, 1, 5}, {1, 2, 1, 3}})

	flow, err := maxflow.EdmondsKarp(context.Background(), g, "0", "2")
	if err != nil {
		t.Fatalf("EdmondsKarp: %v", err)
	}
	if flow != 3 {
		t.Errorf("flow = %d, want 3", flow)
	}
}

func TestEdmondsKarp_ParallelPathsSum(t *testing.T) {
	// Two disjoint 0→3 paths with caps 2 and 4: max flow 6.
	g := build(t, 4, [][4]int64{
		{0, 1, 1, 2}, {1, 3, 1, 2},
		{0, 2, 1, 4}, {2, 3, 1, 4},
	})

	flow, err := maxflow.EdmondsKarp(context.Background(), g, "0", "3")
	if err != nil {
		t.Fatalf("EdmondsKarp: %v", err)
	}
	if flow != 6 {
		t.Errorf("flow = %d, want 6", flow)
	}
}

func TestEdmondsKarp_Disconnected(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("0", 0, 0)
	_ = g.AddVertex("1", 1, 1)

	flow, err := maxflow.EdmondsKarp(context.Background(), g, "0", "1")
	if err != nil {
		t.Fatalf("EdmondsKarp: %v", err)
	}
	if flow != 0 {
		t.Errorf("flow = %d, want 0", flow)
	}
}
