package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JosephLeeeeeee/FlowLM/routing"
)

func newCheckCmd() *cobra.Command {
	var (
		graphPath string
		flowPath  string
		planPath  string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a saved routing plan for feasibility and MLU",
		Long: `Parses route lines out of a plan file (an archived model reply works
as-is), matches them against the flow demands, and reports feasibility,
maximum link utilization, and the bottleneck edge.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			demands, err := loadDemands(flowPath, g)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(planPath)
			if err != nil {
				return fmt.Errorf("reading plan file: %w", err)
			}

			plan, err := routing.ParsePlan(string(raw), demands)
			if err != nil {
				return err
			}
			for _, a := range plan.Assignments {
				for _, r := range a.Routes {
					fmt.Printf("demand %s->%s: %s : %d\n",
						a.Demand.Source, a.Demand.Target, routeString(r.Nodes), r.Bandwidth)
				}
			}

			report, err := routing.Evaluate(g, plan)
			if err != nil {
				return err
			}
			printReport(report)

			if !report.Feasible {
				// Separates "bad plan" from "no plan could work".
				ctx := context.Background()
				for _, d := range demands {
					ok, flow, err := routing.Admissible(ctx, g, d)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Printf("demand %s->%s requests %d but the min cut allows %d\n",
							d.Source, d.Target, d.Bandwidth, flow)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "GML topology file")
	cmd.Flags().StringVarP(&flowPath, "flows", "f", "", "flow-descriptor file")
	cmd.Flags().StringVarP(&planPath, "plan", "p", "", "plan file to evaluate")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("flows")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}
