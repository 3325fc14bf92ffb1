package summary

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/episurv/episurv/internal/analyze"
	"github.com/episurv/episurv/internal/model"
)

// StageName is the stage name recorded for the summarize stage.
const StageName = "summarize"

// Counts holds the three integers re-parsed from the analysis report.
// Present flags distinguish "absent from the report" from "present with
// value zero": an absent total defaults to 1 to avoid division by zero,
// while a present-but-zero total forces the rates to 0 instead.
type Counts struct {
	// TotalCases is the parsed total_cases value.
	TotalCases int

	// TotalPresent is true if a valid total_cases line was seen.
	TotalPresent bool

	// Hospitalized is the parsed hospitalized value (default 0).
	Hospitalized int

	// Deaths is the parsed deaths value (default 0).
	Deaths int
}

// EffectiveTotal returns the total used as the rate denominator:
// the parsed value when present, otherwise 1.
func (c Counts) EffectiveTotal() int {
	if c.TotalPresent {
		return c.TotalCases
	}
	return 1
}

// ParseCounts reads an analysis report from r and extracts the scalar
// counts. Lines are split on tab; only lines whose first token is
// total_cases, hospitalized, or deaths are considered. Non-numeric
// values are skipped and recorded as issues; the categorical sections
// never match a known key and are ignored.
func ParseCounts(r io.Reader, result *model.StageResult) (Counts, error) {
	var counts Counts

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		result.RowsRead++

		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		key, valStr := parts[0], parts[1]

		switch key {
		case analyze.KeyTotalCases, analyze.KeyHospitalized, analyze.KeyDeaths:
		default:
			continue
		}

		val, err := strconv.Atoi(valStr)
		if err != nil {
			result.AddIssue("skipped malformed %s value %q", key, valStr)
			continue
		}

		switch key {
		case analyze.KeyTotalCases:
			counts.TotalCases = val
			counts.TotalPresent = true
		case analyze.KeyHospitalized:
			counts.Hospitalized = val
		case analyze.KeyDeaths:
			counts.Deaths = val
		}
	}
	if err := scanner.Err(); err != nil {
		return counts, fmt.Errorf("failed to read report: %w", err)
	}

	return counts, nil
}

// Compute derives the metrics bundle from the parsed counts.
// Rates are hospitalized/total and deaths/total in percent, rounded to
// one decimal at output time. Division is skipped only when the
// effective total is zero or negative; in that case both rates are 0.
func Compute(counts Counts) *model.Metrics {
	total := counts.EffectiveTotal()

	m := &model.Metrics{
		TotalCases:   float64(total),
		Hospitalized: float64(counts.Hospitalized),
		Deaths:       float64(counts.Deaths),
	}

	if total > 0 {
		m.HospitalizationRate = float64(counts.Hospitalized) / float64(total) * 100
		m.CaseFatalityRate = float64(counts.Deaths) / float64(total) * 100
	}

	return m
}

// WriteMetrics emits the five-row tab-separated metric table with its
// "metric\tvalue" header. Counts are written as integers, rates with
// one decimal place.
func WriteMetrics(w io.Writer, m *model.Metrics) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "metric\tvalue\n")
	fmt.Fprintf(bw, "%s\t%d\n", model.MetricTotalCases, int(m.TotalCases))
	fmt.Fprintf(bw, "%s\t%d\n", model.MetricHospitalized, int(m.Hospitalized))
	fmt.Fprintf(bw, "%s\t%d\n", model.MetricDeaths, int(m.Deaths))
	fmt.Fprintf(bw, "%s\t%.1f\n", model.MetricHospitalizationRate, m.HospitalizationRate)
	fmt.Fprintf(bw, "%s\t%.1f\n", model.MetricCaseFatalityRate, m.CaseFatalityRate)

	return bw.Flush()
}

// Summarize reads the analysis report at inputPath, computes the rates,
// and writes the metric table to outputPath. The output directory is
// created if absent. I/O errors propagate; malformed numeric lines do
// not (they are skipped and surfaced in the result's Issues).
func Summarize(inputPath, outputPath string, logger *slog.Logger) (*model.StageResult, error) {
	result := &model.StageResult{
		Stage:      StageName,
		InputPath:  inputPath,
		OutputPath: outputPath,
		StartedAt:  time.Now(),
	}

	logger.Info("starting summarization", "input", inputPath)

	in, err := os.Open(inputPath) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	counts, err := ParseCounts(in, result)
	if err != nil {
		return nil, err
	}

	metrics := Compute(counts)
	logger.Info("computed rates",
		"hospitalizationRate", fmt.Sprintf("%.1f", metrics.HospitalizationRate),
		"caseFatalityRate", fmt.Sprintf("%.1f", metrics.CaseFatalityRate),
	)
	for _, issue := range result.Issues {
		logger.Warn("summarization issue", "issue", issue)
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

	if err := WriteMetrics(out, metrics); err != nil {
		return nil, fmt.Errorf("failed to write summary: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close output: %w", err)
	}

	result.RowsWritten = 5
	result.Duration = time.Since(result.StartedAt)

	logger.Info("summary complete", "output", outputPath)

	return result, nil
}

// ParseMetrics reads a summary metric table (as written by WriteMetrics)
// from r into a Metrics bundle. The header row is skipped; unknown metric
// names and malformed values are skipped and recorded as issues, leaving
// the corresponding metric at zero.
//
// This lives here rather than in the consumers because the format is
// owned by the summarize stage; visualize and report both call it.
func ParseMetrics(r io.Reader, result *model.StageResult) (*model.Metrics, error) {
	metrics := &model.Metrics{}

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		result.RowsRead++

		if first {
			first = false // Header row.
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		name, valStr := parts[0], parts[1]

		val, err := strconv.ParseFloat(valStr, 64)
		if err != nil {
			result.AddIssue("skipped malformed metric %q value %q", name, valStr)
			continue
		}
		if !metrics.Set(name, val) {
			result.AddIssue("skipped unknown metric %q", name)
		}
	}
	if err := scanner.Err(); err != nil {
		return metrics, fmt.Errorf("failed to read metrics: %w", err)
	}

	return metrics, nil
}
