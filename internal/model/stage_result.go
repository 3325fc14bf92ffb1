package model

import (
	"fmt"
	"time"
)

// StageResult describes the outcome of one pipeline stage execution.
//
// Design decision: Silent defaulting (malformed metric lines skipped,
// missing columns counted as empty-string buckets) is part of the stage
// contracts, but it must be observable without parsing log output. Each
// stage therefore reports what it skipped in Issues, and tests assert on
// that value directly.
type StageResult struct {
	// Stage is the stage name (e.g. "preprocess", "clean").
	Stage string `json:"stage"`

	// InputPath is the file the stage read.
	InputPath string `json:"input_path"`

	// OutputPath is the file the stage wrote.
	OutputPath string `json:"output_path"`

	// RowsRead is the number of rows (or lines) read from the input.
	RowsRead int `json:"rows_read"`

	// RowsWritten is the number of rows (or lines) written to the output.
	RowsWritten int `json:"rows_written"`

	// Issues lists non-fatal anomalies encountered while processing,
	// such as malformed numeric values that were skipped and left at
	// their defaults. An empty list means a clean run.
	Issues []string `json:"issues,omitempty"`

	// StartedAt is when the stage began executing.
	StartedAt time.Time `json:"started_at"`

	// Duration is how long the stage took.
	Duration time.Duration `json:"duration"`
}

// AddIssue records a non-fatal anomaly on the result.
func (r *StageResult) AddIssue(format string, args ...any) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
}

// RunReport accumulates the results of a pipeline run. Stages append
// their StageResult as they complete; the runner records errors here
// before deciding whether to continue.
type RunReport struct {
	// Results holds one entry per completed stage, in execution order.
	Results []StageResult `json:"results"`

	// PerformedStages lists the names of executed stages in order.
	PerformedStages []string `json:"performed_stages"`

	// Error is the first error that stopped the run, if any.
	// It is not serialized; ErrorMessage carries the text.
	Error error `json:"-"`

	// ErrorMessage is the text of Error for serialized reports.
	ErrorMessage string `json:"error_message,omitempty"`
}

// Add appends a completed stage result to the report.
func (r *RunReport) Add(result StageResult) {
	r.Results = append(r.Results, result)
}

// TotalIssues returns the number of issues across all stages.
func (r *RunReport) TotalIssues() int {
	total := 0
	for _, res := range r.Results {
		total += len(res.Issues)
	}
	return total
}
