package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/analyze"
	"github.com/episurv/episurv/internal/chart"
	"github.com/episurv/episurv/internal/config"
	"github.com/episurv/episurv/internal/model"
	"github.com/episurv/episurv/internal/pipeline"
	"github.com/episurv/episurv/internal/summary"
	"github.com/episurv/episurv/internal/table"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [--config PATH]",
		Short: "Execute a pipeline described by a YAML file",
		Long: `Run executes a sequence of stages described in a YAML pipeline file.
Stages run strictly in order; each reads the file the previous one
wrote. The run stops at the first stage error.

Pipeline file (.episurv.yaml) example:
  defaults:
    delimiter: ","
  stages:
    - name: preprocess
      input: data/raw.csv
      output: data/preprocessed.csv
    - name: clean
      input: data/preprocessed.csv
      output: data/cleaned.csv
    - name: run-analysis
      input: data/cleaned.csv
      output: results/analysis.txt
    - name: summarize
      input: results/analysis.txt
      output: results/summary.tsv
    - name: visualize
      input: results/summary.tsv
      output: results/dashboard.png`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	cmd.Flags().StringP("config", "c", "",
		"Pipeline file path (default: .episurv.yaml in current or home directory)")
	cmd.Flags().Bool("save-history", false,
		"Record the stage runs in the local history database")
	cmd.Flags().String("data-dir", config.XDGDataDir(),
		"Directory holding the history database")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	// If the user explicitly specified a config file, error if not found.
	explicitConfigPath := configPath != ""
	found := config.FindConfigFile(configPath)
	if found == "" {
		if explicitConfigPath {
			return fmt.Errorf("pipeline file not found: %s", configPath)
		}
		return fmt.Errorf("no pipeline file found (create %s or pass --config)", config.DefaultConfigFile)
	}

	pf, err := config.LoadFile(found)
	if err != nil {
		return fmt.Errorf("failed to load pipeline file %s: %w", found, err)
	}
	if err := pf.Validate(); err != nil {
		return fmt.Errorf("invalid pipeline file %s: %w", found, err)
	}

	logger := setupLogger(cmd, getVerboseFlag(cmd))

	// Handle interrupt signals so a long pipeline can be cancelled
	// cleanly between stages.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	p, err := buildPipeline(pf, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Running pipeline from %s (%d stages)...\n", found, p.StageCount())
	startTime := time.Now()

	run := &model.RunReport{}
	if err := p.Execute(ctx, run); err != nil {
		return err
	}

	elapsed := time.Since(startTime)
	fmt.Fprintf(cmd.OutOrStdout(), "Pipeline completed in %s (%d issues)\n",
		elapsed.Round(time.Millisecond), run.TotalIssues())

	for _, result := range run.Results {
		for _, issue := range result.Issues {
			fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", result.Stage, issue)
		}
	}

	saveHistory, err := cmd.Flags().GetBool("save-history")
	if err != nil {
		return err
	}
	if saveHistory {
		cfg := config.NewConfig()
		cfg.DataDir, err = cmd.Flags().GetString("data-dir")
		if err != nil {
			return err
		}
		if err := saveRunHistory(cmd, cfg, run, logger); err != nil {
			logger.Error("failed to save run history", "error", err)
		}
	}

	return nil
}

// buildPipeline translates a pipeline file into an executable Pipeline.
func buildPipeline(pf *config.File, logger *slog.Logger) (*pipeline.Pipeline, error) {
	p := pipeline.New(pipeline.WithLogger(logger))

	for i, sc := range pf.Stages {
		switch sc.Name {
		case table.StagePreprocess:
			delimiter, err := pf.StageDelimiter(sc)
			if err != nil {
				return nil, fmt.Errorf("stage %d (%s): %w", i+1, sc.Name, err)
			}
			p.AddStage(pipeline.NewPreprocessStage(sc.Input, sc.Output,
				pipeline.WithPreprocessDelimiter(delimiter),
				pipeline.WithPreprocessLogger(logger),
			))
		case table.StageClean:
			p.AddStage(pipeline.NewCleanStage(sc.Input, sc.Output,
				pipeline.WithCleanLogger(logger),
			))
		case analyze.StageName:
			p.AddStage(pipeline.NewAnalyzeStage(sc.Input, sc.Output,
				pipeline.WithAnalyzeLogger(logger),
			))
		case summary.StageName:
			p.AddStage(pipeline.NewSummarizeStage(sc.Input, sc.Output,
				pipeline.WithSummarizeLogger(logger),
			))
		case chart.StageName:
			p.AddStage(pipeline.NewVisualizeStage(sc.Input, sc.Output,
				pipeline.WithVisualizeLogger(logger),
			))
		default:
			// Validate() already rejected unknown names.
			return nil, fmt.Errorf("stage %d: %w: %q", i+1, config.ErrUnknownStage, sc.Name)
		}
	}

	return p, nil
}
