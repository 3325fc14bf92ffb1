package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/episurv/episurv/internal/model"
)

// JSONWriter outputs the metrics as indented JSON.
// This format is intended for consumption by other tools.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the metrics as JSON.
func (w *JSONWriter) Write(metrics *model.Metrics) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(metrics); err != nil {
		return 0, err
	}
	n, err := w.output.Write(buf.Bytes())
	return n, err
}
