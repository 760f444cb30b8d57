package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "spindlewrit",
	Short: "Spindlewrit - Project skeleton generator",
	Long: `Spindlewrit scaffolds new project skeletons (directory layout,
manifests, README, test stub) from a small configuration, or derives
that configuration from a task description through a function-calling
completion endpoint.

Commands:
  create      Create a project from explicit flags
  from-task   Create a project from a task in the task store
  config      Show effective configuration
  version     Show version info

Quick Start:
  1. spindlewrit create --name my-tool --description "A CLI tool" --type python
  2. spindlewrit from-task --task-id 42 --offline`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
