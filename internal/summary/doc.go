// Package summary implements the summarize stage: it re-parses the three
// scalar counts from the analysis report, derives the hospitalization and
// case fatality rates, and emits the five-row tab-separated metric table
// consumed by the visualize and report stages.
//
// Parsing is deliberately forgiving: only lines whose first tab-separated
// token is one of the three known keys are considered, and malformed
// numeric values are skipped, leaving the count at its default. Every
// skipped line is recorded in the stage result's Issues so the defaulting
// is observable without reading logs.
package summary
