package pipeline

import (
	"context"
	"log/slog"

	"github.com/episurv/episurv/internal/model"
)

// Stage defines the interface all pipeline stages implement.
// Stages are executed in sequence; each appends its StageResult to the
// shared run report.
type Stage interface {
	// Do executes the stage. It receives the context for cancellation
	// and the run report to record its result in. A returned error is
	// fatal for the stage; recoverable anomalies belong in the stage
	// result's Issues instead.
	Do(ctx context.Context, run *model.RunReport) error

	// Name returns the stage's name for logging and run reports.
	Name() string
}

// Pipeline orchestrates the execution of multiple stages in order.
type Pipeline struct {
	// stages contains the ordered list of stages to execute.
	stages []Stage

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing stages
	// after one fails. The default is to stop: each stage's input is
	// the previous stage's output, so a failure starves everything
	// downstream.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to keep executing stages
// after one fails. Failed stages are logged and recorded in the run
// report, but subsequent stages still execute (and will usually fail on
// their missing input; this option mainly exists for diagnostics).
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Stages should be added using AddStage after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		stages:          make([]Stage, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStage appends a stage to the pipeline.
// Stages are executed in the order they are added.
func (p *Pipeline) AddStage(stage Stage) {
	p.stages = append(p.stages, stage)
}

// AddStages appends multiple stages to the pipeline.
func (p *Pipeline) AddStages(stages ...Stage) {
	p.stages = append(p.stages, stages...)
}

// Execute runs all stages in sequence, checking for cancellation before
// each one. The first error stops the pipeline unless continueOnError is
// set; either way the error is recorded in the run report.
func (p *Pipeline) Execute(ctx context.Context, run *model.RunReport) error {
	for _, stage := range p.stages {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"stage", stage.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Info("executing stage", "stage", stage.Name())

		if err := stage.Do(ctx, run); err != nil {
			p.logger.Error("stage failed",
				"stage", stage.Name(),
				"error", err,
			)

			run.Error = err
			run.ErrorMessage = err.Error()

			if !p.continueOnError {
				return err
			}
		} else {
			p.logger.Debug("stage completed", "stage", stage.Name())
		}

		run.PerformedStages = append(run.PerformedStages, stage.Name())
	}

	return nil
}

// StageCount returns the number of stages in the pipeline.
func (p *Pipeline) StageCount() int {
	return len(p.stages)
}

// StageNames returns the names of all stages in execution order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name()
	}
	return names
}
