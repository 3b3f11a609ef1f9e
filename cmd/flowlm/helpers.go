package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/JosephLeeeeeee/FlowLM/core"
	"github.com/JosephLeeeeeee/FlowLM/gml"
	"github.com/JosephLeeeeeee/FlowLM/kshortest"
	"github.com/JosephLeeeeeee/FlowLM/routing"
)

// loadGraph decodes a GML topology file.
func loadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening graph file: %w", err)
	}
	defer f.Close()

	g, err := gml.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	logger.Debug("graph loaded",
		zap.String("path", path),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

// loadDemands parses a flow-descriptor file and binds it to the graph.
func loadDemands(path string, g *core.Graph) ([]routing.Demand, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening flow file: %w", err)
	}
	defer f.Close()

	demands, err := routing.ParseDemands(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return routing.BindDemands(g, demands)
}

// baselinePlan routes every demand on its shortest path.
func baselinePlan(g *core.Graph, demands []routing.Demand) (routing.Plan, error) {
	plan := routing.Plan{}
	for _, d := range demands {
		paths, err := kshortest.KShortest(g,
			kshortest.Source(d.Source),
			kshortest.Target(d.Target),
		)
		if err != nil {
			return routing.Plan{}, fmt.Errorf("demand %s->%s: %w", d.Source, d.Target, err)
		}
		plan.Assignments = append(plan.Assignments, routing.Assignment{
			Demand: d,
			Routes: []routing.Route{{Nodes: paths[0].Nodes, Bandwidth: d.Bandwidth}},
		})
	}

	return plan, nil
}

// printReport writes the evaluation outcome to stdout.
func printReport(report routing.Report) {
	if report.Feasible {
		fmt.Println("feasible: yes")
	} else {
		fmt.Println("feasible: no (capacity exceeded)")
	}
	fmt.Printf("MLU: %.3f\n", report.MLU)

	if worst := report.Bottleneck(); worst != nil && worst.Load > 0 {
		fmt.Printf("bottleneck: %s—%s load %d/%d (%.3f)\n",
			worst.From, worst.To, worst.Load, worst.Capacity, worst.Utilization)
	}
	for _, w := range report.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
}

// routeString renders a node sequence in the plan grammar.
func routeString(nodes []string) string {
	out := ""
	for i, n := range nodes {
		if i > 0 {
			out += " -> "
		}
		out += n
	}

	return out
}
