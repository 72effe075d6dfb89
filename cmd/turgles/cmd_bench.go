package main

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/turgles/internal/bench"
	"github.com/nvandessel/turgles/internal/config"
	"github.com/nvandessel/turgles/internal/logging"
	"github.com/nvandessel/turgles/internal/walk"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run the random-walk benchmark",
		Long: `Scatter a population of turtles, step it a fixed number of times, and
print the total time spent stepping in seconds.

Only the stepping is timed; scattering the population is not. Logs go to
stderr so stdout carries a single result line.

Examples:
  turgles bench                                  # Reference settings
  turgles bench --boundary wrap --noise exponential
  turgles bench --population 100000 --workers 8  # Parallel chunks
  turgles bench --log-level debug                # Trace each step as JSONL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			applyBenchFlags(cmd, cfg)

			stderr := cmd.ErrOrStderr()
			logger := logging.NewLogger(cfg.Logging.Level, stderr)
			tracer := logging.NewStepTracer(stderr, cfg.Logging.Level)

			h, err := bench.New(cfg, logger, tracer)
			if err != nil {
				return err
			}
			res := h.Run()

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"total_seconds":     res.Total.Seconds(),
					"mean_step_seconds": res.Mean().Seconds(),
					"steps":             res.Steps,
					"population":        cfg.Bench.Population,
					"noise":             cfg.Walk.Noise,
					"boundary":          cfg.Walk.Boundary,
					"workers":           cfg.Bench.Workers,
				})
			}
			fmt.Fprintf(out, "%f\n", res.Total.Seconds())
			return nil
		},
	}

	cmd.Flags().Int("population", 0, "Number of turtles")
	cmd.Flags().Int("steps", 0, "Number of timed steps")
	cmd.Flags().Uint64("seed", 0, "Seed for every generator of the run")
	cmd.Flags().Int("workers", 0, "Goroutines stepping chunks in parallel")
	cmd.Flags().Int("chunk-size", 0, "Turtles per noise stream")
	cmd.Flags().String("noise", "", "Turn-noise model: uniform or exponential")
	cmd.Flags().String("boundary", "", "Boundary policy: bounce or wrap")
	cmd.Flags().String("log-level", "", "Log level: info, debug, or trace")

	return cmd
}

// applyBenchFlags overrides cfg with the flags the user set explicitly.
func applyBenchFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("population") {
		cfg.Bench.Population, _ = flags.GetInt("population")
	}
	if flags.Changed("steps") {
		cfg.Bench.Steps, _ = flags.GetInt("steps")
	}
	if flags.Changed("seed") {
		cfg.Bench.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("workers") {
		cfg.Bench.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("chunk-size") {
		cfg.Bench.ChunkSize, _ = flags.GetInt("chunk-size")
	}
	if flags.Changed("noise") {
		v, _ := flags.GetString("noise")
		cfg.Walk.Noise = walk.NoiseModel(v)
	}
	if flags.Changed("boundary") {
		v, _ := flags.GetString("boundary")
		cfg.Walk.Boundary = walk.BoundaryPolicy(v)
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
}
