package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/pipeline"
)

// NewVisualizeCmd creates the visualize command.
func NewVisualizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize --input PATH --output PATH",
		Short: "Render the summary metrics as a dashboard image",
		Long: `Visualize reads the summary metric table and renders a fixed-size
2x2 dashboard PNG: outcome counts, epidemiological rates, and two text
panels. Missing or malformed metrics default to zero and never fail the
render.

Example:
  episurv visualize --input results/summary.tsv --output results/dashboard.png`,
		Args: cobra.NoArgs,
		RunE: runVisualizeCmd,
	}

	addStageFlags(cmd)

	return cmd
}

// runVisualizeCmd executes the visualize command.
func runVisualizeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStageConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	stage := pipeline.NewVisualizeStage(cfg.InputPath, cfg.OutputPath,
		pipeline.WithVisualizeLogger(logger),
	)
	return runStage(cmd, cfg, logger, stage)
}
