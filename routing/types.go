// Package routing: demand/plan/report types and sentinel errors.
package routing

import "errors"

// MaxDemandBandwidth is the largest bandwidth a single demand may request,
// in bandwidth units. Demand files are validated against it.
const MaxDemandBandwidth = int64(5)

// Sentinel errors for demand parsing, plan parsing, and evaluation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrDemandInvalid indicates an out-of-domain demand: equal endpoints,
	// unknown vertex, or bandwidth outside (0, MaxDemandBandwidth].
	ErrDemandInvalid = errors.New("routing: invalid demand")

	// ErrDemandSyntax indicates an unparseable demand-file line.
	ErrDemandSyntax = errors.New("routing: malformed demand line")

	// ErrPlanSyntax indicates that no route could be extracted from a plan
	// text, or a route matched no demand.
	ErrPlanSyntax = errors.New("routing: unparseable routing plan")

	// ErrRouteVertex indicates a route referencing a non-existent vertex,
	// or repeating a vertex (routes must be simple paths).
	ErrRouteVertex = errors.New("routing: route vertex unknown or repeated")

	// ErrRouteEdge indicates a route hop with no corresponding edge.
	ErrRouteEdge = errors.New("routing: route references unknown edge")

	// ErrRouteBandwidth indicates a route carrying a non-positive allocation.
	ErrRouteBandwidth = errors.New("routing: route bandwidth must be positive")

	// ErrNoRoute indicates that no simple path exists for a demand within
	// the configured hop bound.
	ErrNoRoute = errors.New("routing: no route within hop bound")
)

// Demand is a flow request: route Bandwidth units from Source to Target.
type Demand struct {
	Source    string
	Target    string
	Bandwidth int64
}

// Route carries part (or all) of a demand along one node sequence.
type Route struct {
	// Nodes is the vertex sequence from the demand's source to its target.
	Nodes []string

	// Bandwidth is the allocation this route carries.
	Bandwidth int64
}

// Assignment binds a demand to the routes serving it. An empty Routes slice
// means the demand is unsatisfied (legal, but reported as a warning).
type Assignment struct {
	Demand Demand
	Routes []Route
}

// Plan is a complete routing plan covering one or more demands.
type Plan struct {
	Assignments []Assignment
}

// LinkLoad is the per-edge diagnostic breakdown of an evaluation.
type LinkLoad struct {
	// From, To are the link endpoints; EdgeID identifies the core edge.
	From, To string
	EdgeID   string

	// Load is the aggregate bandwidth routed over the link; Capacity its
	// budget; Utilization the Load/Capacity ratio.
	Load        int64
	Capacity    int64
	Utilization float64
}

// Report is the outcome of evaluating a plan against a graph.
type Report struct {
	// Feasible is true iff every link load fits under its capacity.
	Feasible bool

	// MLU is the maximum link utilization across all edges (0 for an
	// empty plan on a non-empty graph).
	MLU float64

	// Loads lists every edge of the graph with its aggregate load,
	// in deterministic edge order.
	Loads []LinkLoad

	// Warnings records policy findings that are not errors: demands with
	// no routes, allocations deviating from the requested bandwidth.
	Warnings []string
}

// Bottleneck returns the link with the highest utilization, or nil for an
// edgeless graph.
func (r *Report) Bottleneck() *LinkLoad {
	var worst *LinkLoad
	for i := range r.Loads {
		if worst == nil || r.Loads[i].Utilization > worst.Utilization {
			worst = &r.Loads[i]
		}
	}

	return worst
}
