package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/config"
	"github.com/episurv/episurv/internal/pipeline"
)

// NewPreprocessCmd creates the preprocess command.
func NewPreprocessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preprocess --input PATH --output PATH",
		Short: "Strip blank rows from a delimited table",
		Long: `Preprocess reads a delimited text table and writes only the rows that
contain at least one cell with non-whitespace content. Row order and
cell structure are preserved; the header survives like any other row
with content.

Examples:
  # Comma-delimited input (the default)
  episurv preprocess --input data/raw.csv --output data/preprocessed.csv

  # Semicolon-delimited input
  episurv preprocess -i raw.csv -o out.csv --delimiter ";"`,
		Args: cobra.NoArgs,
		RunE: runPreprocessCmd,
	}

	addStageFlags(cmd)
	cmd.Flags().StringP("delimiter", "d", ",", "Single-character field delimiter")

	return cmd
}

// runPreprocessCmd executes the preprocess command.
func runPreprocessCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildStageConfig(cmd)
	if err != nil {
		return err
	}

	delimStr, err := cmd.Flags().GetString("delimiter")
	if err != nil {
		return err
	}
	cfg.Delimiter, err = config.ParseDelimiter(delimStr)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	stage := pipeline.NewPreprocessStage(cfg.InputPath, cfg.OutputPath,
		pipeline.WithPreprocessDelimiter(cfg.Delimiter),
		pipeline.WithPreprocessLogger(logger),
	)
	return runStage(cmd, cfg, logger, stage)
}
