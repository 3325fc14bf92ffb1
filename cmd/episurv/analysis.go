package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/pipeline"
)

// NewAnalysisCmd creates the run-analysis command.
func NewAnalysisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run-analysis --input PATH --output PATH",
		Short: "Tally surveillance case counts by category",
		Long: `Run-analysis parses a comma-delimited table with a header row and
tallies case counts by disease, outcome, and vaccination status, plus
the totals for hospitalizations and deaths. The result is a fixed-layout
text report consumed by the summarize stage.

The input is expected to carry disease, outcome, and vaccination_status
columns; missing columns are not an error and tally under the empty
string.

Example:
  episurv run-analysis --input data/cleaned.csv --output results/analysis.txt`,
		Args: cobra.NoArgs,
		RunE: runAnalysisCmd,
	}

	addStageFlags(cmd)

	return cmd
}

// runAnalysisCmd executes the run-analysis command.
func runAnalysisCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStageConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	stage := pipeline.NewAnalyzeStage(cfg.InputPath, cfg.OutputPath,
		pipeline.WithAnalyzeLogger(logger),
	)
	return runStage(cmd, cfg, logger, stage)
}
