package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/pipeline"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean --input PATH --output PATH",
		Short: "Remove duplicate lines, preserving first-occurrence order",
		Long: `Clean reads a text file line by line and writes each line only the
first time its exact content is seen. The comparison is on raw bytes,
so it works for any delimiter, and the header is treated like any
other line.

Example:
  episurv clean --input data/preprocessed.csv --output data/cleaned.csv`,
		Args: cobra.NoArgs,
		RunE: runCleanCmd,
	}

	addStageFlags(cmd)

	return cmd
}

// runCleanCmd executes the clean command.
func runCleanCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStageConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	stage := pipeline.NewCleanStage(cfg.InputPath, cfg.OutputPath,
		pipeline.WithCleanLogger(logger),
	)
	return runStage(cmd, cfg, logger, stage)
}
