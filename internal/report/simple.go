package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/episurv/episurv/internal/model"
)

// SimpleWriter outputs a human-readable text summary of the metrics.
// The format is plain ASCII so it pipes cleanly to files and other tools.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the metrics in human-readable format.
func (w *SimpleWriter) Write(metrics *model.Metrics) (int, error) {
	var sb strings.Builder

	sb.WriteString("=== Disease Surveillance Summary ===\n\n")

	fmt.Fprintf(&sb, "Cases\n")
	fmt.Fprintf(&sb, "  Total:        %d\n", int(metrics.TotalCases))
	fmt.Fprintf(&sb, "  Recovered:    %d\n", int(metrics.Recovered()))
	fmt.Fprintf(&sb, "  Hospitalized: %d\n", int(metrics.Hospitalized))
	fmt.Fprintf(&sb, "  Deaths:       %d\n", int(metrics.Deaths))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "Rates\n")
	fmt.Fprintf(&sb, "  Hospitalization Rate: %.1f%%\n", metrics.HospitalizationRate)
	fmt.Fprintf(&sb, "  Case Fatality Rate:   %.1f%%\n", metrics.CaseFatalityRate)

	return io.WriteString(w.output, sb.String())
}
