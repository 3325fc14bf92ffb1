package analyze

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/episurv/episurv/internal/model"
)

// StageName is the stage name recorded for the analysis stage.
// It matches the CLI subcommand that drives it.
const StageName = "run-analysis"

// Analyze reads the comma-delimited table at inputPath, tallies the
// surveillance counts, and writes the text report to outputPath.
// The output directory is created if absent. I/O errors propagate.
func Analyze(inputPath, outputPath string, logger *slog.Logger) (*model.StageResult, error) {
	result := &model.StageResult{
		Stage:      StageName,
		InputPath:  inputPath,
		OutputPath: outputPath,
		StartedAt:  time.Now(),
	}

	logger.Info("starting analysis", "input", inputPath)

	in, err := os.Open(inputPath) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	report, rowsRead, err := Tabulate(in)
	if err != nil {
		return nil, err
	}
	result.RowsRead = rowsRead

	logger.Info("analysis results",
		"totalCases", report.TotalCases,
		"hospitalized", report.Hospitalized,
		"deaths", report.Deaths,
	)

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

	if err := WriteReport(out, report); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output: %w", err)
	}

	// Scalar lines plus the three sections and their entries.
	result.RowsWritten = 3 + len(report.ByDisease) + len(report.ByOutcome) + len(report.ByVaccination)
	result.Duration = time.Since(result.StartedAt)

	logger.Info("analysis complete",
		"rowsRead", result.RowsRead,
		"output", outputPath,
	)

	return result, nil
}

// Tabulate parses a header-bearing comma-delimited table from r and
// returns the analysis report plus the number of data rows read.
//
// Each data row becomes a record keyed by the header column names.
// Short rows leave their trailing fields absent (they tally as empty
// strings); cells beyond the header width are ignored. An input with no
// rows at all yields an all-zero report.
func Tabulate(r io.Reader) (*model.AnalysisReport, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	report := model.NewAnalysisReport()

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return report, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to read header: %w", err)
	}

	rows := 0
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, rows, fmt.Errorf("failed to read row %d: %w", rows+1, err)
		}
		rows++

		rec := make(model.Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		report.CountCase(rec)
	}

	return report, rows, nil
}
