package chart

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/episurv/episurv/internal/model"
)

// discardLogger returns a logger that drops all records.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestRenderDashboard tests the PNG dashboard renderer.
func TestRenderDashboard(t *testing.T) {
	t.Parallel()

	t.Run("renders populated metrics", func(t *testing.T) {
		t.Parallel()

		m := &model.Metrics{
			TotalCases:          100,
			Hospitalized:        20,
			Deaths:              5,
			HospitalizationRate: 20,
			CaseFatalityRate:    5,
		}

		var buf bytes.Buffer
		if err := RenderDashboard(m, &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("expected decodable PNG: %v", err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != Width || bounds.Dy() != Height {
			t.Errorf("expected %dx%d image, got %dx%d", Width, Height, bounds.Dx(), bounds.Dy())
		}
	})

	t.Run("renders all-zero metrics without error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if err := RenderDashboard(&model.Metrics{}, &buf); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := png.Decode(&buf); err != nil {
			t.Fatalf("expected decodable PNG: %v", err)
		}
	})
}

// TestVisualize tests the file-to-file visualize stage.
func TestVisualize(t *testing.T) {
	t.Parallel()

	t.Run("writes dashboard PNG", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "summary.tsv")
		content := "metric\tvalue\n" +
			"Total Cases\t100\n" +
			"Hospitalized\t20\n" +
			"Deaths\t5\n" +
			"Hospitalization Rate (%)\t20.0\n" +
			"Case Fatality Rate (%)\t5.0\n"
		if err := os.WriteFile(input, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		output := filepath.Join(dir, "charts", "dashboard.png")

		result, err := Visualize(input, output, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.Stage != StageName {
			t.Errorf("expected stage %q, got %q", StageName, result.Stage)
		}
		if result.RowsRead != 6 {
			t.Errorf("expected 6 rows read, got %d", result.RowsRead)
		}
		if result.RowsWritten != 1 {
			t.Errorf("expected 1 image written, got %d", result.RowsWritten)
		}

		f, err := os.Open(output) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to open dashboard: %v", err)
		}
		defer f.Close() //nolint:errcheck // Read-only file
		if _, err := png.Decode(f); err != nil {
			t.Errorf("expected decodable PNG: %v", err)
		}
	})

	t.Run("malformed metrics default to zero with issues", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "summary.tsv")
		content := "metric\tvalue\n" +
			"Total Cases\toops\n" +
			"Made Up\t3\n"
		if err := os.WriteFile(input, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		output := filepath.Join(dir, "dashboard.png")

		result, err := Visualize(input, output, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Issues) != 2 {
			t.Errorf("expected 2 issues, got %v", result.Issues)
		}
		for _, issue := range result.Issues {
			if !strings.Contains(issue, "skipped") {
				t.Errorf("unexpected issue text: %s", issue)
			}
		}
		if _, err := os.Stat(output); err != nil {
			t.Errorf("expected dashboard to exist despite issues: %v", err)
		}
	})

	t.Run("propagates missing input error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := Visualize(filepath.Join(dir, "missing.tsv"), filepath.Join(dir, "out.png"), discardLogger()); err == nil {
			t.Error("expected error for missing input")
		}
	})
}
