package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/model"
	"github.com/episurv/episurv/internal/report"
	"github.com/episurv/episurv/internal/summary"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report --input PATH [--output PATH]",
		Short: "Render the summary metrics as a readable report",
		Long: `Report reads the summary metric table and renders it for humans.
The default format is plain text; --markdown produces GitHub Flavored
Markdown with a mermaid pie chart of the outcome distribution, and
--json produces structured JSON for other tools.

Examples:
  # Text report to the terminal
  episurv report --input results/summary.tsv

  # Markdown report to a file
  episurv report --input results/summary.tsv --output report.md --markdown`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("input", "i", "", "Summary metric table path (required)")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolP("markdown", "m", false, "Output Markdown (mutually exclusive with --json)")
	cmd.Flags().BoolP("json", "j", false, "Output JSON (mutually exclusive with --markdown)")

	_ = cmd.MarkFlagRequired("input")                //nolint:errcheck // Flag exists
	cmd.MarkFlagsMutuallyExclusive("markdown", "json")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	inputPath, err := cmd.Flags().GetString("input")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	asMarkdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, getVerboseFlag(cmd))

	in, err := os.Open(inputPath) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	result := &model.StageResult{Stage: "report", InputPath: inputPath}
	metrics, err := summary.ParseMetrics(in, result)
	if err != nil {
		return err
	}
	for _, issue := range result.Issues {
		logger.Warn("report issue", "issue", issue)
	}

	output := cmd.OutOrStdout()
	if outputPath != "" {
		dir := filepath.Dir(outputPath)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Write error surfaced by writer below
		output = f
	}

	var writer report.Writer
	switch {
	case asJSON:
		writer = report.NewJSONWriter(output)
	case asMarkdown:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output)
	}

	_, err = writer.Write(metrics)
	return err
}
