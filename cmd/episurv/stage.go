package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/config"
	"github.com/episurv/episurv/internal/history"
	"github.com/episurv/episurv/internal/log"
	"github.com/episurv/episurv/internal/model"
	"github.com/episurv/episurv/internal/pipeline"
)

// addStageFlags registers the flags every transforming subcommand takes.
func addStageFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input file path (required)")
	cmd.Flags().StringP("output", "o", "", "Output file path (required)")
	cmd.Flags().Bool("save-history", false,
		"Record this run in the local history database")
	cmd.Flags().String("data-dir", config.XDGDataDir(),
		"Directory holding the history database")

	_ = cmd.MarkFlagRequired("input")  //nolint:errcheck // Flag exists
	_ = cmd.MarkFlagRequired("output") //nolint:errcheck // Flag exists
}

// buildStageConfig creates a Config from the shared stage flags.
func buildStageConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.InputPath, err = cmd.Flags().GetString("input")
	if err != nil {
		return nil, err
	}
	cfg.OutputPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory, err = cmd.Flags().GetBool("save-history")
	if err != nil {
		return nil, err
	}
	cfg.DataDir, err = cmd.Flags().GetString("data-dir")
	if err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger for one invocation.
// The sink is the command's stdout so tests can inject their own.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	return log.New(cmd.OutOrStdout(), verbose)
}

// runStage executes a single stage through a one-stage pipeline,
// surfaces its issues, and records it in the history database if asked.
func runStage(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, stage pipeline.Stage) error {
	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddStage(stage)

	run := &model.RunReport{}
	if err := p.Execute(cmd.Context(), run); err != nil {
		return err
	}

	for _, result := range run.Results {
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", result.Stage, issue)
		}
	}

	if cfg.SaveHistory {
		if err := saveRunHistory(cmd, cfg, run, logger); err != nil {
			// History is bookkeeping; the transformation itself
			// succeeded and its output file is valid.
			logger.Error("failed to save run history", "error", err)
		}
	}

	return nil
}

// saveRunHistory records all stage results of a run in the history database.
func saveRunHistory(cmd *cobra.Command, cfg *config.Config, run *model.RunReport, logger *slog.Logger) error {
	db, err := history.Open(cfg.DataDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close() //nolint:errcheck // Best effort cleanup

	for i := range run.Results {
		if err := db.RecordRun(cmd.Context(), &run.Results[i]); err != nil {
			return err
		}
	}

	logger.Debug("run history saved", "db", db.Path(), "stages", len(run.Results))
	return nil
}
