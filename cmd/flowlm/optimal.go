package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JosephLeeeeeee/FlowLM/routing"
)

func newOptimalCmd() *cobra.Command {
	var (
		graphPath string
		flowPath  string
		maxHops   int
		top       int
	)

	cmd := &cobra.Command{
		Use:   "optimal",
		Short: "Brute-force the MLU-minimizing single route for each demand",
		Long: `Enumerates every simple path up to --max-hops for each demand in turn,
routing earlier demands on their best path before ranking the next one.
Prints each demand's candidate routes ordered by the maximum link
utilization they would induce.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			demands, err := loadDemands(flowPath, g)
			if err != nil {
				return err
			}

			plan := routing.Plan{}
			for _, d := range demands {
				candidates, err := routing.MinimizeMLU(g, plan, d, maxHops)
				if err != nil {
					return fmt.Errorf("demand %s->%s: %w", d.Source, d.Target, err)
				}

				fmt.Printf("demand %s->%s (%d units):\n", d.Source, d.Target, d.Bandwidth)
				shown := candidates
				if top > 0 && len(shown) > top {
					shown = shown[:top]
				}
				for i, c := range shown {
					fmt.Printf("  %d. %s (MLU %.3f)\n", i+1, routeString(c.Nodes), c.MLU)
				}

				best := candidates[0]
				plan.Assignments = append(plan.Assignments, routing.Assignment{
					Demand: d,
					Routes: []routing.Route{{Nodes: best.Nodes, Bandwidth: d.Bandwidth}},
				})
			}

			report, err := routing.Evaluate(g, plan)
			if err != nil {
				return err
			}
			printReport(report)

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "GML topology file")
	cmd.Flags().StringVarP(&flowPath, "flows", "f", "", "flow-descriptor file")
	cmd.Flags().IntVar(&maxHops, "max-hops", routing.DefaultOptimalMaxHops, "longest simple path considered")
	cmd.Flags().IntVar(&top, "top", 5, "number of ranked candidates to print per demand (0 prints all)")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("flows")

	return cmd
}
