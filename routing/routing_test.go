// Package routing_test validates demand parsing, LLM plan extraction, the
// feasibility/MLU evaluator, and the brute-force route search.
package routing_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosephLeeeeeee/FlowLM/core"
	"github.com/JosephLeeeeeee/FlowLM/routing"
)

// chain3 builds 0—1 and 1—2, both weight 1 and capacity 5.
func chain3(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"0", "1", "2"} {
		require.NoError(t, g.AddVertex(id, 0, 0))
	}
	_, err := g.AddEdge("0", "1", 1, 5)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 1, 5)
	require.NoError(t, err)
	return g
}

// --- demand parsing ---

func TestParseDemands(t *testing.T) {
	input := `
# demand file
0 2 3

1 2 1
`
	demands, err := routing.ParseDemands(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, demands, 2)
	assert.Equal(t, routing.Demand{Source: "0", Target: "2", Bandwidth: 3}, demands[0])
	assert.Equal(t, routing.Demand{Source: "1", Target: "2", Bandwidth: 1}, demands[1])
}

func TestParseDemands_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"wrong arity", "0 2\n", routing.ErrDemandSyntax},
		{"non-numeric bandwidth", "0 2 x\n", routing.ErrDemandSyntax},
		{"zero bandwidth", "0 2 0\n", routing.ErrDemandInvalid},
		{"bandwidth above max", "0 2 6\n", routing.ErrDemandInvalid},
		{"equal endpoints", "2 2 3\n", routing.ErrDemandInvalid},
		{"empty file", "# only comments\n", routing.ErrDemandSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := routing.ParseDemands(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBindDemands_UnknownVertex(t *testing.T) {
	g := chain3(t)
	_, err := routing.BindDemands(g, []routing.Demand{{Source: "0", Target: "9", Bandwidth: 1}})
	assert.ErrorIs(t, err, routing.ErrDemandInvalid)
}

// --- plan parsing ---

func TestParsePlan_ToleratesProse(t *testing.T) {
	demands := []routing.Demand{{Source: "0", Target: "2", Bandwidth: 3}}
	text := `
Here is my routing plan for the requested flow.

The best route is 0 -> 1 -> 2 : 3

This keeps every link well under capacity.
`
	plan, err := routing.ParsePlan(text, demands)
	require.NoError(t, err)
	require.Len(t, plan.Assignments, 1)
	require.Len(t, plan.Assignments[0].Routes, 1)
	r := plan.Assignments[0].Routes[0]
	assert.Equal(t, []string{"0", "1", "2"}, r.Nodes)
	assert.Equal(t, int64(3), r.Bandwidth)
}

func TestParsePlan_SkipsNonDemandFragments(t *testing.T) {
	// Trailing reasoning may contain route-shaped prose between nodes
	// that are no demand's endpoints; it must not poison the parse.
	demands := []routing.Demand{{Source: "0", Target: "2", Bandwidth: 3}}
	text := `
0 -> 1 -> 2 : 3

I avoided the detour because edge 3 -> 4 is congested.
`
	plan, err := routing.ParsePlan(text, demands)
	require.NoError(t, err)
	require.Len(t, plan.Assignments[0].Routes, 1)
	assert.Equal(t, []string{"0", "1", "2"}, plan.Assignments[0].Routes[0].Nodes)
}

func TestParsePlan_UnicodeArrowAndDefaultAllocation(t *testing.T) {
	demands := []routing.Demand{{Source: "0", Target: "2", Bandwidth: 2}}
	plan, err := routing.ParsePlan("route: 0 → 1 → 2", demands)
	require.NoError(t, err)
	r := plan.Assignments[0].Routes[0]
	assert.Equal(t, []string{"0", "1", "2"}, r.Nodes)
	// No explicit allocation: the route carries the full demand bandwidth.
	assert.Equal(t, int64(2), r.Bandwidth)
}

func TestParsePlan_ReversedRouteIsNormalized(t *testing.T) {
	demands := []routing.Demand{{Source: "0", Target: "2", Bandwidth: 1}}
	plan, err := routing.ParsePlan("2 -> 1 -> 0", demands)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, plan.Assignments[0].Routes[0].Nodes)
}

func TestParsePlan_Errors(t *testing.T) {
	demands := []routing.Demand{{Source: "0", Target: "2", Bandwidth: 3}}

	_, err := routing.ParsePlan("I cannot find a route, sorry.", demands)
	assert.ErrorIs(t, err, routing.ErrPlanSyntax)

	_, err = routing.ParsePlan("5 -> 6 -> 7", demands)
	assert.ErrorIs(t, err, routing.ErrPlanSyntax)

	_, err = routing.ParsePlan("0 -> 1 -> 2 : 0", demands)
	assert.ErrorIs(t, err, routing.ErrRouteBandwidth)

	_, err = routing.ParsePlan("0 -> 1 -> 2", nil)
	assert.ErrorIs(t, err, routing.ErrPlanSyntax)
}

func TestParsePlan_DuplicateDemandsFillInOrder(t *testing.T) {
	demands := []routing.Demand{
		{Source: "0", Target: "2", Bandwidth: 3},
		{Source: "0", Target: "2", Bandwidth: 3},
	}
	plan, err := routing.ParsePlan("0 -> 1 -> 2 : 3\n0 -> 2 : 3\n", demands)
	require.NoError(t, err)
	assert.Len(t, plan.Assignments[0].Routes, 1)
	assert.Len(t, plan.Assignments[1].Routes, 1)
}

// --- evaluation ---

func TestEvaluate_FeasibleScenario(t *testing.T) {
	// Graph 0—1, 1—2 (cap 5 each); demand (0,2,3) on path 0-1-2:
	// feasible, MLU = 3/5.
	g := chain3(t)
	d := routing.Demand{Source: "0", Target: "2", Bandwidth: 3}
	plan := routing.SingleRoutePlan(d, []string{"0", "1", "2"})

	report, err := routing.Evaluate(g, plan)
	require.NoError(t, err)
	assert.True(t, report.Feasible)
	assert.InDelta(t, 0.6, report.MLU, 1e-12)
	assert.Empty(t, report.Warnings)

	for _, l := range report.Loads {
		assert.Equal(t, int64(3), l.Load)
		assert.Equal(t, int64(5), l.Capacity)
	}
}

func TestEvaluate_CapacityExceeded(t *testing.T) {
	// Two identical demands on the same path: load 6 over capacity 5.
	g := chain3(t)
	d := routing.Demand{Source: "0", Target: "2", Bandwidth: 3}
	plan := routing.Plan{Assignments: []routing.Assignment{
		{Demand: d, Routes: []routing.Route{{Nodes: []string{"0", "1", "2"}, Bandwidth: 3}}},
		{Demand: d, Routes: []routing.Route{{Nodes: []string{"0", "1", "2"}, Bandwidth: 3}}},
	}}

	report, err := routing.Evaluate(g, plan)
	require.NoError(t, err)
	assert.False(t, report.Feasible)
	assert.InDelta(t, 1.2, report.MLU, 1e-12)

	worst := report.Bottleneck()
	require.NotNil(t, worst)
	assert.Equal(t, int64(6), worst.Load)
}

func TestEvaluate_InvalidPlan(t *testing.T) {
	g := chain3(t)
	d := routing.Demand{Source: "0", Target: "2", Bandwidth: 1}

	// Hop with no edge (0—2 is not a link).
	_, err := routing.Evaluate(g, routing.SingleRoutePlan(d, []string{"0", "2"}))
	assert.ErrorIs(t, err, routing.ErrRouteEdge)

	// Unknown vertex.
	_, err = routing.Evaluate(g, routing.SingleRoutePlan(d, []string{"0", "9", "2"}))
	assert.ErrorIs(t, err, routing.ErrRouteVertex)

	// Looping route: the repeated vertices would triple-count edge 0—1.
	_, err = routing.Evaluate(g, routing.SingleRoutePlan(d, []string{"0", "1", "0", "1", "2"}))
	assert.ErrorIs(t, err, routing.ErrRouteVertex)

	// Non-positive allocation.
	bad := routing.Plan{Assignments: []routing.Assignment{
		{Demand: d, Routes: []routing.Route{{Nodes: []string{"0", "1", "2"}, Bandwidth: 0}}},
	}}
	_, err = routing.Evaluate(g, bad)
	assert.ErrorIs(t, err, routing.ErrRouteBandwidth)
}

func TestEvaluate_Warnings(t *testing.T) {
	g := chain3(t)
	d := routing.Demand{Source: "0", Target: "2", Bandwidth: 3}

	// Unsatisfied demand: zero load, feasible, warned.
	report, err := routing.Evaluate(g, routing.Plan{
		Assignments: []routing.Assignment{{Demand: d}},
	})
	require.NoError(t, err)
	assert.True(t, report.Feasible)
	assert.Zero(t, report.MLU)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "no routes")

	// Over-allocation: warned, not rejected.
	over := routing.Plan{Assignments: []routing.Assignment{
		{Demand: d, Routes: []routing.Route{{Nodes: []string{"0", "1", "2"}, Bandwidth: 4}}},
	}}
	report, err = routing.Evaluate(g, over)
	require.NoError(t, err)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "over-allocated")
}

func TestEvaluate_Idempotent(t *testing.T) {
	g := chain3(t)
	d := routing.Demand{Source: "0", Target: "2", Bandwidth: 3}
	plan := routing.SingleRoutePlan(d, []string{"0", "1", "2"})

	first, err := routing.Evaluate(g, plan)
	require.NoError(t, err)
	second, err := routing.Evaluate(g, plan)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// --- brute-force search ---

func TestMinimizeMLU_PrefersSpareCapacity(t *testing.T) {
	// Triangle: direct 0—2 has capacity 4, detour 0—1—2 capacity 10 each.
	// For bandwidth 3, the detour induces MLU 0.3 vs 0.75 on the direct link.
	g := core.NewGraph()
	for _, id := range []string{"0", "1", "2"} {
		require.NoError(t, g.AddVertex(id, 0, 0))
	}
	_, err := g.AddEdge("0", "2", 1, 4)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", 1, 10)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 1, 10)
	require.NoError(t, err)

	d := routing.Demand{Source: "0", Target: "2", Bandwidth: 3}
	ranked, err := routing.MinimizeMLU(g, routing.Plan{}, d, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, []string{"0", "1", "2"}, ranked[0].Nodes)
	assert.InDelta(t, 0.3, ranked[0].MLU, 1e-12)
	assert.Equal(t, []string{"0", "2"}, ranked[1].Nodes)
	assert.InDelta(t, 0.75, ranked[1].MLU, 1e-12)
}

func TestMinimizeMLU_CountsBaseLoads(t *testing.T) {
	g := chain3(t)
	d := routing.Demand{Source: "0", Target: "2", Bandwidth: 2}
	base := routing.SingleRoutePlan(
		routing.Demand{Source: "0", Target: "2", Bandwidth: 2}, []string{"0", "1", "2"})

	ranked, err := routing.MinimizeMLU(g, base, d, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	// 2 existing + 2 new over capacity 5.
	assert.InDelta(t, 0.8, ranked[0].MLU, 1e-12)
}

func TestMinimizeMLU_HopBound(t *testing.T) {
	g := chain3(t)
	d := routing.Demand{Source: "0", Target: "2", Bandwidth: 1}
	_, err := routing.MinimizeMLU(g, routing.Plan{}, d, 1)
	assert.ErrorIs(t, err, routing.ErrNoRoute)
}

// --- admissibility ---

func TestAdmissible(t *testing.T) {
	g := chain3(t) // min cut between 0 and 2 is 5
	ctx := context.Background()

	ok, flow, err := routing.Admissible(ctx, g, routing.Demand{Source: "0", Target: "2", Bandwidth: 5})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), flow)

	// MaxDemandBandwidth caps requests at 5, so shrink a capacity instead.
	tight := core.NewGraph()
	for _, id := range []string{"0", "1", "2"} {
		require.NoError(t, tight.AddVertex(id, 0, 0))
	}
	_, err = tight.AddEdge("0", "1", 1, 2)
	require.NoError(t, err)
	_, err = tight.AddEdge("1", "2", 1, 5)
	require.NoError(t, err)

	ok, flow, err = routing.Admissible(ctx, tight, routing.Demand{Source: "0", Target: "2", Bandwidth: 3})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(2), flow)
}
