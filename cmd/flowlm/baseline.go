package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JosephLeeeeeee/FlowLM/kshortest"
	"github.com/JosephLeeeeeee/FlowLM/routing"
)

func newBaselineCmd() *cobra.Command {
	var (
		graphPath string
		flowPath  string
		k         int
	)

	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Route every demand on its k-shortest path and evaluate the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			demands, err := loadDemands(flowPath, g)
			if err != nil {
				return err
			}

			ctx := context.Background()
			plan := routing.Plan{}
			for _, d := range demands {
				ok, flow, err := routing.Admissible(ctx, g, d)
				if err != nil {
					return err
				}
				if !ok {
					logger.Warn("demand exceeds min cut; no plan can satisfy it",
						zap.String("source", d.Source),
						zap.String("target", d.Target),
						zap.Int64("bandwidth", d.Bandwidth),
						zap.Int64("maxflow", flow),
					)
				}

				paths, err := kshortest.KShortest(g,
					kshortest.Source(d.Source),
					kshortest.Target(d.Target),
					kshortest.WithK(k),
				)
				if err != nil {
					return fmt.Errorf("demand %s->%s: %w", d.Source, d.Target, err)
				}
				// The baseline routes the whole demand on the k-th ranked
				// path (the last one found when fewer than k exist).
				chosen := paths[len(paths)-1]
				fmt.Printf("demand %s->%s (%d units): path %s, weight %d\n",
					d.Source, d.Target, d.Bandwidth, routeString(chosen.Nodes), chosen.Weight)

				plan.Assignments = append(plan.Assignments, routing.Assignment{
					Demand: d,
					Routes: []routing.Route{{Nodes: chosen.Nodes, Bandwidth: d.Bandwidth}},
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
	cmd.Flags().IntVarP(&k, "k", "k", 1, "which shortest path to route on")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("flows")

	return cmd
}
