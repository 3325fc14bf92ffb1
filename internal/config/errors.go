package config

import "errors"

// Configuration validation errors.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no input path is specified.
	ErrNoInput = errors.New("no input specified: provide --input")

	// ErrNoOutput is returned when no output path is specified.
	ErrNoOutput = errors.New("no output specified: provide --output")

	// ErrInvalidDelimiter is returned when the delimiter is not exactly
	// one character.
	ErrInvalidDelimiter = errors.New("invalid delimiter: must be a single character")

	// ErrNoStages is returned when a pipeline file declares no stages.
	ErrNoStages = errors.New("pipeline has no stages")

	// ErrUnknownStage is returned when a pipeline file names a stage
	// that does not exist.
	ErrUnknownStage = errors.New("unknown stage name")

	// ErrConfigNotFound is returned when the pipeline configuration
	// file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
