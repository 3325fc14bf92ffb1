// Package model defines the core data structures used throughout episurv.
//
// This package contains the following main types:
//   - Record: A single surveillance case row keyed by column name
//   - Tally: Frequency counts over a categorical field
//   - AnalysisReport: Counts and tallies produced by the analysis stage
//   - Metrics: The five named metrics exchanged between summarize and visualize
//   - StageResult: The outcome of one pipeline stage execution
//   - RunReport: Accumulated results of a full pipeline run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (analyze, summary, report, pipeline) need to
// use these types, so centralizing them prevents import cycles.
package model
