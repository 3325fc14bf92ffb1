package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/episurv/episurv/internal/model"
)

// StagePreprocess is the stage name recorded for blank-row removal.
const StagePreprocess = "preprocess"

// Preprocess reads the delimited table at inputPath and writes to
// outputPath only the rows that contain at least one cell with
// non-whitespace content. Row order and cell structure are preserved;
// the header is an ordinary row and survives because it has content.
// The output directory is created if absent. I/O errors propagate.
//
// Rows may have varying cell counts; no column-count enforcement is
// applied and ragged rows pass through unchanged.
func Preprocess(inputPath, outputPath string, delimiter rune, logger *slog.Logger) (*model.StageResult, error) {
	result := &model.StageResult{
		Stage:      StagePreprocess,
		InputPath:  inputPath,
		OutputPath: outputPath,
		StartedAt:  time.Now(),
	}

	logger.Info("starting preprocessing", "input", inputPath)

	if err := ensureOutputDir(outputPath); err != nil {
		return nil, err
	}

	in, err := os.Open(inputPath) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	out, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}
	defer out.Close() //nolint:errcheck // Close error surfaced via writer.Error below

	reader := csv.NewReader(in)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // Rows may be ragged; pass them through.
	reader.LazyQuotes = true

	writer := csv.NewWriter(out)
	writer.Comma = delimiter

	for {
		row, err := reader.Read()
		if err != nil {
			if isEOF(err) {
				break
			}
			return nil, fmt.Errorf("failed to read row %d: %w", result.RowsRead+1, err)
		}
		result.RowsRead++

		if !hasContent(row) {
			continue
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
		result.RowsWritten++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush output: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output: %w", err)
	}

	result.Duration = time.Since(result.StartedAt)
	logger.Info("preprocessing complete",
		"rowsRead", result.RowsRead,
		"rowsWritten", result.RowsWritten,
		"output", outputPath,
	)

	return result, nil
}

// isEOF reports whether err signals a clean end of input.
func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// hasContent reports whether any cell of the row contains non-whitespace.
func hasContent(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}

// ensureOutputDir creates the parent directory of path if needed.
func ensureOutputDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
