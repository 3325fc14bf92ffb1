package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/pipeline"
)

// NewSummarizeCmd creates the summarize command.
func NewSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize --input PATH --output PATH",
		Short: "Compute epidemiological rates from the analysis report",
		Long: `Summarize re-parses the three scalar counts from the analysis report
and derives the hospitalization rate and case fatality rate. The output
is a five-row tab-separated metric table consumed by the visualize and
report subcommands.

Malformed numeric values in the input are skipped (the metric keeps its
default) and reported as warnings.

Example:
  episurv summarize --input results/analysis.txt --output results/summary.tsv`,
		Args: cobra.NoArgs,
		RunE: runSummarizeCmd,
	}

	addStageFlags(cmd)

	return cmd
}

// runSummarizeCmd executes the summarize command.
func runSummarizeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStageConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	stage := pipeline.NewSummarizeStage(cfg.InputPath, cfg.OutputPath,
		pipeline.WithSummarizeLogger(logger),
	)
	return runStage(cmd, cfg, logger, stage)
}
