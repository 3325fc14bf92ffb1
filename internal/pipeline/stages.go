package pipeline

import (
	"context"
	"log/slog"

	"github.com/episurv/episurv/internal/analyze"
	"github.com/episurv/episurv/internal/chart"
	"github.com/episurv/episurv/internal/config"
	"github.com/episurv/episurv/internal/model"
	"github.com/episurv/episurv/internal/summary"
	"github.com/episurv/episurv/internal/table"
)

// PreprocessStage strips blank rows from a delimited table.
type PreprocessStage struct {
	// input is the path of the table to read.
	input string

	// output is the path the filtered table is written to.
	output string

	// delimiter is the single-character field delimiter.
	delimiter rune

	// logger for structured logging.
	logger *slog.Logger
}

// PreprocessOption configures a PreprocessStage.
type PreprocessOption func(*PreprocessStage)

// WithPreprocessDelimiter sets the field delimiter (default comma).
func WithPreprocessDelimiter(delimiter rune) PreprocessOption {
	return func(s *PreprocessStage) {
		s.delimiter = delimiter
	}
}

// WithPreprocessLogger sets a custom logger for the stage.
func WithPreprocessLogger(logger *slog.Logger) PreprocessOption {
	return func(s *PreprocessStage) {
		s.logger = logger
	}
}

// NewPreprocessStage creates a preprocess stage for the given paths.
func NewPreprocessStage(input, output string, opts ...PreprocessOption) *PreprocessStage {
	s := &PreprocessStage{
		input:     input,
		output:    output,
		delimiter: config.DefaultDelimiter,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stage name.
func (s *PreprocessStage) Name() string { return table.StagePreprocess }

// Do executes the preprocess stage.
func (s *PreprocessStage) Do(_ context.Context, run *model.RunReport) error {
	result, err := table.Preprocess(s.input, s.output, s.delimiter, s.logger)
	if err != nil {
		return err
	}
	run.Add(*result)
	return nil
}

// CleanStage removes duplicate lines while preserving first-occurrence order.
type CleanStage struct {
	input  string
	output string
	logger *slog.Logger
}

// CleanOption configures a CleanStage.
type CleanOption func(*CleanStage)

// WithCleanLogger sets a custom logger for the stage.
func WithCleanLogger(logger *slog.Logger) CleanOption {
	return func(s *CleanStage) {
		s.logger = logger
	}
}

// NewCleanStage creates a clean stage for the given paths.
func NewCleanStage(input, output string, opts ...CleanOption) *CleanStage {
	s := &CleanStage{input: input, output: output, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stage name.
func (s *CleanStage) Name() string { return table.StageClean }

// Do executes the clean stage.
func (s *CleanStage) Do(_ context.Context, run *model.RunReport) error {
	result, err := table.Dedup(s.input, s.output, s.logger)
	if err != nil {
		return err
	}
	run.Add(*result)
	return nil
}

// AnalyzeStage tallies surveillance counts into the analysis report file.
type AnalyzeStage struct {
	input  string
	output string
	logger *slog.Logger
}

// AnalyzeOption configures an AnalyzeStage.
type AnalyzeOption func(*AnalyzeStage)

// WithAnalyzeLogger sets a custom logger for the stage.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeOption {
	return func(s *AnalyzeStage) {
		s.logger = logger
	}
}

// NewAnalyzeStage creates an analysis stage for the given paths.
func NewAnalyzeStage(input, output string, opts ...AnalyzeOption) *AnalyzeStage {
	s := &AnalyzeStage{input: input, output: output, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stage name.
func (s *AnalyzeStage) Name() string { return analyze.StageName }

// Do executes the analysis stage.
func (s *AnalyzeStage) Do(_ context.Context, run *model.RunReport) error {
	result, err := analyze.Analyze(s.input, s.output, s.logger)
	if err != nil {
		return err
	}
	run.Add(*result)
	return nil
}

// SummarizeStage derives the rate metrics from the analysis report.
type SummarizeStage struct {
	input  string
	output string
	logger *slog.Logger
}

// SummarizeOption configures a SummarizeStage.
type SummarizeOption func(*SummarizeStage)

// WithSummarizeLogger sets a custom logger for the stage.
func WithSummarizeLogger(logger *slog.Logger) SummarizeOption {
	return func(s *SummarizeStage) {
		s.logger = logger
	}
}

// NewSummarizeStage creates a summarize stage for the given paths.
func NewSummarizeStage(input, output string, opts ...SummarizeOption) *SummarizeStage {
	s := &SummarizeStage{input: input, output: output, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stage name.
func (s *SummarizeStage) Name() string { return summary.StageName }

// Do executes the summarize stage.
func (s *SummarizeStage) Do(_ context.Context, run *model.RunReport) error {
	result, err := summary.Summarize(s.input, s.output, s.logger)
	if err != nil {
		return err
	}
	run.Add(*result)
	return nil
}

// VisualizeStage renders the metrics dashboard PNG.
type VisualizeStage struct {
	input  string
	output string
	logger *slog.Logger
}

// VisualizeOption configures a VisualizeStage.
type VisualizeOption func(*VisualizeStage)

// WithVisualizeLogger sets a custom logger for the stage.
func WithVisualizeLogger(logger *slog.Logger) VisualizeOption {
	return func(s *VisualizeStage) {
		s.logger = logger
	}
}

// NewVisualizeStage creates a visualize stage for the given paths.
func NewVisualizeStage(input, output string, opts ...VisualizeOption) *VisualizeStage {
	s := &VisualizeStage{input: input, output: output, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the stage name.
func (s *VisualizeStage) Name() string { return chart.StageName }

// Do executes the visualize stage.
func (s *VisualizeStage) Do(_ context.Context, run *model.RunReport) error {
	result, err := chart.Visualize(s.input, s.output, s.logger)
	if err != nil {
		return err
	}
	run.Add(*result)
	return nil
}
