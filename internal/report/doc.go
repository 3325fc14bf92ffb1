// Package report provides human-facing renderings of the summary metrics.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - MarkdownWriter: GitHub Flavored Markdown with a mermaid pie chart
//   - JSONWriter: Structured JSON output for tool integration
//
// Design decision: We separate report writing from the metric data
// structures (which are in the model package) so new output formats can
// be added without touching the pipeline stages. Writers implement the
// Writer interface, allowing them to be used interchangeably and composed
// for multi-format output.
package report
