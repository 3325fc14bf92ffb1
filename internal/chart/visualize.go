package chart

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/episurv/episurv/internal/model"
	"github.com/episurv/episurv/internal/summary"
)

// StageName is the stage name recorded for the visualize stage.
const StageName = "visualize"

// Visualize reads the summary metric table at inputPath and renders the
// dashboard PNG to outputPath. Missing or malformed metrics default to
// zero (recorded as issues) and never fail the render. The output
// directory is created if absent. I/O errors propagate.
func Visualize(inputPath, outputPath string, logger *slog.Logger) (*model.StageResult, error) {
	result := &model.StageResult{
		Stage:      StageName,
		InputPath:  inputPath,
		OutputPath: outputPath,
		StartedAt:  time.Now(),
	}

	logger.Info("starting visualization", "input", inputPath)

	in, err := os.Open(inputPath) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	metrics, err := summary.ParseMetrics(in, result)
	if err != nil {
		return nil, err
	}
	for _, issue := range result.Issues {
		logger.Warn("visualization issue", "issue", issue)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close() //nolint:errcheck // Close error surfaced via explicit Close below

	if err := RenderDashboard(metrics, out); err != nil {
		return nil, fmt.Errorf("failed to render dashboard: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output: %w", err)
	}

	result.RowsWritten = 1 // One image.
	result.Duration = time.Since(result.StartedAt)

	logger.Info("visualization saved", "output", outputPath)

	return result, nil
}
