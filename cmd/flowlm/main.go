// Command flowlm is the research harness CLI: generate capacitated Waxman
// topologies, route flow demands with a k-shortest-paths baseline or a
// brute-force optimum, solicit routing plans from an LLM, and check any
// plan's feasibility and maximum link utilization.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/JosephLeeeeeee/FlowLM/internal/config"
)

// Version is set at build time.
var Version = "dev"

var (
	logger *zap.Logger
	cfg    *config.Config

	configPath string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "flowlm",
		Short:         "Compare LLM routing plans against classical baselines on random topologies",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is a developer convenience; absence is normal.
			_ = godotenv.Load()

			var err error
			if cfg, err = config.Load(configPath); err != nil {
				return err
			}
			if logLevel == "" {
				logLevel = cfg.LogLevel
			}
			if logger, err = initLogger(logLevel); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default config/flowlm.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newBaselineCmd(),
		newOptimalCmd(),
		newSolveCmd(),
		newCheckCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initLogger builds a console zap logger at the requested level.
func initLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true

	return zc.Build()
}
