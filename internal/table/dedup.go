package table

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/episurv/episurv/internal/model"
)

// StageClean is the stage name recorded for duplicate-line removal.
const StageClean = "clean"

// Dedup reads inputPath line by line and writes each line to outputPath
// only the first time its exact content is seen. First-occurrence order
// is preserved. The comparison key includes the trailing newline, so a
// final unterminated line is distinct from the same text with one.
//
// Dedup operates on raw text, not parsed cells: it is delimiter-agnostic
// and treats the header like any other line. A later line byte-identical
// to the header is dropped like any other duplicate.
func Dedup(inputPath, outputPath string, logger *slog.Logger) (*model.StageResult, error) {
	result := &model.StageResult{
		Stage:      StageClean,
		InputPath:  inputPath,
		OutputPath: outputPath,
		StartedAt:  time.Now(),
	}

	logger.Info("starting cleaning", "input", inputPath)

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
	defer out.Close() //nolint:errcheck // Close error surfaced via explicit Close below

	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(out)

	// Memory scales with distinct line count. Bounded inputs only;
	// external-sort dedup for unbounded files is an explicit non-goal.
	seen := make(map[string]struct{})

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			result.RowsRead++
			if _, dup := seen[line]; !dup {
				seen[line] = struct{}{}
				if _, werr := writer.WriteString(line); werr != nil {
					return nil, fmt.Errorf("failed to write line: %w", werr)
				}
				result.RowsWritten++
			}
		}
		if err != nil {
			if isEOF(err) {
				break
			}
			return nil, fmt.Errorf("failed to read line %d: %w", result.RowsRead+1, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush output: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output: %w", err)
	}

	result.Duration = time.Since(result.StartedAt)
	logger.Info("cleaning complete",
		"rowsRead", result.RowsRead,
		"rowsWritten", result.RowsWritten,
		"output", outputPath,
	)

	return result, nil
}
