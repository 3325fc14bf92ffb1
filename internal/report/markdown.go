package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/episurv/episurv/internal/model"
)

// MarkdownWriter outputs the metrics in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. Mermaid pie charts for the outcome distribution
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the metrics in Markdown format.
func (w *MarkdownWriter) Write(metrics *model.Metrics) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Disease Surveillance Report")
	md.PlainText("")

	w.writeMetricsTable(md, metrics)
	w.writePieChart(md, metrics)
	w.writeAlert(md, metrics)

	return len(md.String()), md.Build()
}

// writeMetricsTable writes the five metrics as a two-column table.
func (w *MarkdownWriter) writeMetricsTable(md *markdown.Markdown, metrics *model.Metrics) {
	md.H2("Summary Metrics")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{model.MetricTotalCases, fmt.Sprintf("%d", int(metrics.TotalCases))},
			{model.MetricHospitalized, fmt.Sprintf("%d", int(metrics.Hospitalized))},
			{model.MetricDeaths, fmt.Sprintf("%d", int(metrics.Deaths))},
			{model.MetricHospitalizationRate, fmt.Sprintf("%.1f", metrics.HospitalizationRate)},
			{model.MetricCaseFatalityRate, fmt.Sprintf("%.1f", metrics.CaseFatalityRate)},
		},
	})
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of the outcome distribution.
// Recovered is derived from the totals, matching the dashboard panel.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, metrics *model.Metrics) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Outcome Distribution"),
		piechart.WithShowData(true),
	)

	if recovered := metrics.Recovered(); recovered > 0 {
		chart.LabelAndIntValue("Recovered", uint64(recovered))
	}
	if metrics.Hospitalized > 0 {
		chart.LabelAndIntValue("Hospitalized", uint64(metrics.Hospitalized))
	}
	if metrics.Deaths > 0 {
		chart.LabelAndIntValue("Deaths", uint64(metrics.Deaths))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert reflecting the severity of the fatality rate.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, metrics *model.Metrics) {
	switch {
	case metrics.CaseFatalityRate >= 10:
		md.Cautionf("Case fatality rate is %.1f%%. Immediate review recommended.", metrics.CaseFatalityRate)
	case metrics.CaseFatalityRate > 0:
		md.Warningf("Case fatality rate is %.1f%%.", metrics.CaseFatalityRate)
	case metrics.HospitalizationRate > 0:
		md.Importantf("Hospitalization rate is %.1f%% with no recorded deaths.", metrics.HospitalizationRate)
	default:
		md.Tip("No hospitalizations or deaths recorded.")
	}
	md.PlainText("")
}
