package report

import (
	"io"

	"github.com/episurv/episurv/internal/model"
)

// Writer defines the interface for metric report output.
// Implementations render the metrics bundle in various formats.
type Writer interface {
	// Write outputs the metrics to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(metrics *model.Metrics) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
//
// Design decision: We implement this as a separate type rather than
// using io.MultiWriter because our Writer interface is different
// from io.Writer - we write metric bundles, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the metrics to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(metrics *model.Metrics) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(metrics)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
