// Package main provides the entry point for the episurv CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for episurv.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "episurv",
		Short: "Transform tabular disease-surveillance records",
		Long: `episurv transforms tabular disease-surveillance records through five
sequential stages: preprocess (strip blank rows), clean (deduplicate
lines), run-analysis (tally counts by category), summarize (compute
rates), and visualize (render a dashboard image).

Each stage reads one file and writes one file; stages compose only
through the filesystem. Run them individually, or describe a whole
pipeline in a YAML file and execute it with the run subcommand.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewPreprocessCmd())
	cmd.AddCommand(NewCleanCmd())
	cmd.AddCommand(NewAnalysisCmd())
	cmd.AddCommand(NewSummarizeCmd())
	cmd.AddCommand(NewVisualizeCmd())
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
