// parse.go - extracting a Plan from LLM free text.
//
// Grammar: a route is a line containing a node sequence joined by "->"
// (ASCII) or "→", optionally followed by ": N" (or "= N") giving the
// allocation in bandwidth units. Everything else on the line, and every
// line without a route, is ignored — LLMs wrap plans in prose.
package routing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// routePattern captures a node sequence with optional allocation suffix.
// Node IDs are decimal per the harness convention.
var routePattern = regexp.MustCompile(
	`(\d+(?:\s*(?:->|→)\s*\d+)+)(?:\s*[:=]\s*(\d+))?`)

// nodeSplit breaks a matched sequence into its node IDs.
var nodeSplit = regexp.MustCompile(`\s*(?:->|→)\s*`)

// ParsePlan extracts a routing plan for the given demands from text.
//
// Each parsed route is attached to the first demand whose endpoints match
// the route's first and last node, in either orientation (the network is
// undirected; a route written target-to-source is reversed on attachment).
// A route-shaped fragment matching no demand is treated as prose and
// skipped; a text yielding no route for any demand fails with
// ErrPlanSyntax. A missing allocation defaults to the demand's full
// bandwidth; an explicit zero allocation fails with ErrRouteBandwidth.
func ParsePlan(text string, demands []Demand) (Plan, error) {
	if len(demands) == 0 {
		return Plan{}, fmt.Errorf("no demands to plan for: %w", ErrPlanSyntax)
	}

	plan := Plan{Assignments: make([]Assignment, len(demands))}
	for i, d := range demands {
		plan.Assignments[i] = Assignment{Demand: d}
	}

	found := 0
	for _, line := range strings.Split(text, "\n") {
		m := routePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		nodes := nodeSplit.Split(strings.TrimSpace(m[1]), -1)
		if len(nodes) < 2 {
			continue
		}

		idx := matchDemand(plan.Assignments, nodes)
		if idx < 0 {
			// Prose like "edge 3 -> 4 is congested" matches the route
			// shape without naming a demand; skip it.
			continue
		}
		d := plan.Assignments[idx].Demand
		if nodes[0] != d.Source {
			reverse(nodes)
		}

		bw := d.Bandwidth
		if m[2] != "" {
			parsed, err := strconv.ParseInt(m[2], 10, 64)
			if err != nil {
				return Plan{}, fmt.Errorf("allocation %q: %w", m[2], ErrPlanSyntax)
			}
			bw = parsed
		}
		if bw <= 0 {
			return Plan{}, fmt.Errorf("route %s: allocation %d: %w",
				strings.Join(nodes, "->"), bw, ErrRouteBandwidth)
		}

		plan.Assignments[idx].Routes = append(plan.Assignments[idx].Routes,
			Route{Nodes: nodes, Bandwidth: bw})
		found++
	}

	if found == 0 {
		return Plan{}, fmt.Errorf("no routes found in plan text: %w", ErrPlanSyntax)
	}

	return plan, nil
}

// matchDemand picks the first assignment whose demand endpoints match the
// route ends in either orientation, preferring demands that still have no
// route so duplicated (source,target) pairs fill in input order.
func matchDemand(assignments []Assignment, nodes []string) int {
	first, last := nodes[0], nodes[len(nodes)-1]
	fallback := -1
	for i, a := range assignments {
		d := a.Demand
		forward := d.Source == first && d.Target == last
		backward := d.Source == last && d.Target == first
		if !forward && !backward {
			continue
		}
		if len(a.Routes) == 0 {
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}

	return fallback
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
