// Package pipeline provides a framework for executing transformation
// stages in sequence.
//
// Each of the five stages (preprocess, clean, run-analysis, summarize,
// visualize) is wrapped as a Stage that reads one file and writes one
// file. Stages compose only through the filesystem: no stage calls
// another directly, and the Pipeline simply runs them in order, checking
// for cancellation between stages.
//
// Design decision: We use an interface rather than function types because
// stages carry configuration state (paths, delimiter, logger) and a
// Name() method keeps logging and run reports consistent. Execution is
// strictly sequential: the stages form a linear data dependency, so there
// is nothing to parallelize.
package pipeline
