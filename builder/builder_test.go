// Package builder_test verifies constructor validation, fixture shapes,
// Waxman determinism per seed, and the connectivity retry loop.
package builder_test

import (
	"errors"
	"testing"

	"github.com/JosephLeeeeeee/FlowLM/builder"
	"github.com/JosephLeeeeeee/FlowLM/core"
)

func TestBuildGraph_Fixtures(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Path(4)", builder.Path(4), 4, 3},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertices = %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges = %d, want %d", got, tc.wantE)
			}
			if !g.Connected() {
				t.Error("fixture should be connected")
			}
		})
	}
}

func TestConstructors_Validation(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.Option
		want error
	}{
		{"Path too small", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle too small", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Waxman too small", builder.Waxman(1, 0.8, 0.3), seed(1), builder.ErrTooFewVertices},
		{"Waxman bad beta", builder.Waxman(10, 1.5, 0.3), seed(1), builder.ErrInvalidProbability},
		{"Waxman zero beta", builder.Waxman(10, 0, 0.3), seed(1), builder.ErrInvalidProbability},
		{"Waxman bad alpha", builder.Waxman(10, 0.8, 0), seed(1), builder.ErrInvalidProbability},
		{"Waxman no rng", builder.Waxman(10, 0.8, 0.3), nil, builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := builder.BuildGraph(tc.opts, tc.ctor); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func seed(s int64) []builder.Option { return []builder.Option{builder.WithSeed(s)} }

func TestWaxman_DeterministicPerSeed(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildConnectedGraph(seed(42), builder.Waxman(20, 0.8, 0.3))
		if err != nil {
			t.Fatalf("BuildConnectedGraph: %v", err)
		}
		return g
	}

	a, b := build(), build()
	if a.VertexCount() != b.VertexCount() || a.EdgeCount() != b.EdgeCount() {
		t.Fatalf("seeded builds differ in size: (%d,%d) vs (%d,%d)",
			a.VertexCount(), a.EdgeCount(), b.VertexCount(), b.EdgeCount())
	}
	ea, eb := a.Edges(), b.Edges()
	for i := range ea {
		if ea[i].From != eb[i].From || ea[i].To != eb[i].To ||
			ea[i].Weight != eb[i].Weight || ea[i].Capacity != eb[i].Capacity {
			t.Fatalf("edge %d differs: %+v vs %+v", i, ea[i], eb[i])
		}
	}
}

func TestWaxman_WeightAndCapacityDomains(t *testing.T) {
	g, err := builder.BuildConnectedGraph(seed(7), builder.Waxman(20, 0.8, 0.3))
	if err != nil {
		t.Fatalf("BuildConnectedGraph: %v", err)
	}
	for _, e := range g.Edges() {
		if e.Weight < 1 || e.Weight > 5 {
			t.Errorf("edge %s weight %d outside default [1,5]", e.ID, e.Weight)
		}
		if e.Capacity != 10 {
			t.Errorf("edge %s capacity %d, want default 10", e.ID, e.Capacity)
		}
	}
}

func TestBuildConnectedGraph_ExhaustsBudget(t *testing.T) {
	// Near-zero beta makes edges so unlikely that 20 nodes never connect.
	opts := []builder.Option{builder.WithSeed(3), builder.WithMaxAttempts(3)}
	_, err := builder.BuildConnectedGraph(opts, builder.Waxman(20, 0.001, 0.01))
	if !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("expected ErrConstructFailed, got %v", err)
	}
}

func TestWithCapacityFn_Override(t *testing.T) {
	opts := []builder.Option{
		builder.WithSeed(11),
		builder.WithCapacityFn(builder.UniformCapacityFn(1, 5)),
	}
	g, err := builder.BuildConnectedGraph(opts, builder.Waxman(15, 0.9, 0.4))
	if err != nil {
		t.Fatalf("BuildConnectedGraph: %v", err)
	}
	for _, e := range g.Edges() {
		if e.Capacity < 1 || e.Capacity > 5 {
			t.Errorf("edge %s capacity %d outside [1,5]", e.ID, e.Capacity)
		}
	}
}
