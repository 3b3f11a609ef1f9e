// admissible.go - max-flow admissibility pre-check for demands.
package routing

import (
	"context"
	"fmt"

	"github.com/JosephLeeeeeee/FlowLM/core"
	"github.com/JosephLeeeeeee/FlowLM/maxflow"
)

// Admissible reports whether demand d can be satisfied by any routing plan
// at all: its bandwidth must fit under the max flow (min cut) between its
// endpoints. The max-flow value is returned for diagnostics.
//
// An inadmissible demand makes every plan covering it infeasible; the
// harness uses this to report "impossible demand" instead of blaming the
// plan.
func Admissible(ctx context.Context, g *core.Graph, d Demand) (bool, int64, error) {
	if g == nil {
		return false, 0, ErrNilGraph
	}
	if _, err := BindDemands(g, []Demand{d}); err != nil {
		return false, 0, err
	}

	flow, err := maxflow.EdmondsKarp(ctx, g, d.Source, d.Target)
	if err != nil {
		return false, 0, fmt.Errorf("routing: admissibility check: %w", err)
	}

	return d.Bandwidth <= flow, flow, nil
}
