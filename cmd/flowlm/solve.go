package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JosephLeeeeeee/FlowLM/internal/results"
	"github.com/JosephLeeeeeee/FlowLM/llm"
	"github.com/JosephLeeeeeee/FlowLM/routing"
)

func newSolveCmd() *cobra.Command {
	var (
		problemPath string
		graphPath   string
		flowPath    string
		model       string
		noSave      bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Ask the configured model for a routing plan and evaluate it",
		Long: `Builds a prompt from the problem, graph, and flow description files,
sends it to the configured chat-completions endpoint, archives the raw
reply under the results directory, then parses the reply as a routing
plan and reports its feasibility and maximum link utilization.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if model != "" {
				cfg.Model = model
			}
			if err := cfg.ValidateLLM(); err != nil {
				return err
			}

			if problemPath == "" {
				problemPath = cfg.ProblemFile
			}
			if graphPath == "" {
				graphPath = cfg.GraphFile
			}
			if flowPath == "" {
				flowPath = cfg.FlowFile
			}

			problem, err := os.ReadFile(problemPath)
			if err != nil {
				return fmt.Errorf("reading problem description: %w", err)
			}
			graphText, err := os.ReadFile(graphPath)
			if err != nil {
				return fmt.Errorf("reading graph description: %w", err)
			}
			flowText, err := os.ReadFile(flowPath)
			if err != nil {
				return fmt.Errorf("reading flow description: %w", err)
			}

			template := ""
			if cfg.TemplateFile != "" {
				raw, err := os.ReadFile(cfg.TemplateFile)
				if err != nil {
					return fmt.Errorf("reading prompt template: %w", err)
				}
				template = string(raw)
			}

			client, err := llm.New(llm.Config{
				BaseURL:  cfg.BaseURL,
				APIKey:   cfg.APIKey,
				Model:    cfg.Model,
				Timeout:  cfg.RequestTimeout,
				Template: template,
			})
			if err != nil {
				return err
			}

			logger.Info("requesting routing plan",
				zap.String("model", cfg.Model),
				zap.String("graph", graphPath),
			)

			reply, err := client.Solve(context.Background(), llm.PromptData{
				Problem: string(problem),
				Graph:   string(graphText),
				Flows:   string(flowText),
			})
			if err != nil {
				return err
			}

			if !noSave {
				path, err := results.Save(cfg.ResultsDir, cfg.Model, reply)
				if err != nil {
					return err
				}
				logger.Info("reply archived", zap.String("path", path))
			}

			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			demands, err := loadDemands(flowPath, g)
			if err != nil {
				return err
			}

			plan, err := routing.ParsePlan(reply, demands)
			if err != nil {
				return fmt.Errorf("model reply is not a valid plan: %w", err)
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

			if base, err := baselinePlan(g, demands); err != nil {
				logger.Warn("baseline comparison unavailable", zap.Error(err))
			} else if baseReport, err := routing.Evaluate(g, base); err == nil {
				fmt.Printf("baseline MLU: %.3f (model %+.3f)\n",
					baseReport.MLU, report.MLU-baseReport.MLU)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&problemPath, "problem", "", "problem description file (default from config)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "model name (default from config)")
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "GML topology file (default from config)")
	cmd.Flags().StringVarP(&flowPath, "flows", "f", "", "flow-descriptor file (default from config)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip archiving the raw model reply")

	return cmd
}
