package main

import (
	"fmt"
	"os"

	"github.com/nvandessel/turgles/internal/config"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "turgles",
		Short: "Turtle random-walk throughput benchmark",
		Long: `turgles times a population of turtles performing a bounded random walk.

Each step perturbs every turtle's heading with turn noise, integrates its
position, and applies the configured boundary policy. The bench command
prints the total time spent stepping as a single number.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default ~/.turgles/config.yaml)")

	rootCmd.AddCommand(
		newBenchCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// loadConfig resolves configuration for a command from --config, the
// default file location and the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
