package summary

import (
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

// TestParseCounts tests scalar extraction from the analysis report.
func TestParseCounts(t *testing.T) {
	t.Parallel()

	t.Run("extracts the three scalar lines", func(t *testing.T) {
		t.Parallel()

		input := "total_cases\t100\n" +
			"hospitalized\t20\n" +
			"deaths\t5\n" +
			"\nby_disease\n" +
			"  Flu\t80\n"

		result := &model.StageResult{Stage: StageName}
		counts, err := ParseCounts(strings.NewReader(input), result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !counts.TotalPresent {
			t.Error("expected total_cases to be marked present")
		}
		if counts.TotalCases != 100 || counts.Hospitalized != 20 || counts.Deaths != 5 {
			t.Errorf("unexpected counts: %+v", counts)
		}
		if len(result.Issues) != 0 {
			t.Errorf("expected no issues, got %v", result.Issues)
		}
	})

	t.Run("malformed values become issues", func(t *testing.T) {
		t.Parallel()

		input := "total_cases\tabc\nhospitalized\t3\n"

		result := &model.StageResult{Stage: StageName}
		counts, err := ParseCounts(strings.NewReader(input), result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if counts.TotalPresent {
			t.Error("expected total_cases to stay absent after parse failure")
		}
		if counts.Hospitalized != 3 {
			t.Errorf("expected hospitalized 3, got %d", counts.Hospitalized)
		}
		if len(result.Issues) != 1 || !strings.Contains(result.Issues[0], "total_cases") {
			t.Errorf("expected one total_cases issue, got %v", result.Issues)
		}
	})

	t.Run("ignores section entries and unknown keys", func(t *testing.T) {
		t.Parallel()

		input := "something_else\t7\n  Flu\t80\nno-tab-here\n"

		result := &model.StageResult{Stage: StageName}
		counts, err := ParseCounts(strings.NewReader(input), result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts != (Counts{}) {
			t.Errorf("expected zero counts, got %+v", counts)
		}
		if len(result.Issues) != 0 {
			t.Errorf("expected no issues, got %v", result.Issues)
		}
	})

	t.Run("empty input yields zero counts", func(t *testing.T) {
		t.Parallel()

		result := &model.StageResult{Stage: StageName}
		counts, err := ParseCounts(strings.NewReader(""), result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if counts.TotalPresent {
			t.Error("expected total to be absent")
		}
		if counts.EffectiveTotal() != 1 {
			t.Errorf("expected effective total 1, got %d", counts.EffectiveTotal())
		}
	})
}

// TestCompute tests rate derivation.
func TestCompute(t *testing.T) {
	t.Parallel()

	t.Run("derives percentage rates", func(t *testing.T) {
		t.Parallel()

		m := Compute(Counts{TotalCases: 100, TotalPresent: true, Hospitalized: 20, Deaths: 5})

		if m.HospitalizationRate != 20.0 {
			t.Errorf("expected hospitalization rate 20.0, got %v", m.HospitalizationRate)
		}
		if m.CaseFatalityRate != 5.0 {
			t.Errorf("expected case fatality rate 5.0, got %v", m.CaseFatalityRate)
		}
		if m.TotalCases != 100 {
			t.Errorf("expected total 100, got %v", m.TotalCases)
		}
	})

	t.Run("zero total forces zero rates", func(t *testing.T) {
		t.Parallel()

		m := Compute(Counts{TotalCases: 0, TotalPresent: true, Hospitalized: 20, Deaths: 5})

		if m.HospitalizationRate != 0 || m.CaseFatalityRate != 0 {
			t.Errorf("expected zero rates, got %v / %v", m.HospitalizationRate, m.CaseFatalityRate)
		}
	})

	t.Run("absent total defaults the denominator to one", func(t *testing.T) {
		t.Parallel()

		m := Compute(Counts{Hospitalized: 2, Deaths: 1})

		if m.TotalCases != 1 {
			t.Errorf("expected total 1, got %v", m.TotalCases)
		}
		if m.HospitalizationRate != 200.0 {
			t.Errorf("expected hospitalization rate 200.0, got %v", m.HospitalizationRate)
		}
	})
}

// TestWriteMetrics tests the metric table layout.
func TestWriteMetrics(t *testing.T) {
	t.Parallel()

	m := &model.Metrics{
		TotalCases:          100,
		Hospitalized:        20,
		Deaths:              5,
		HospitalizationRate: 20,
		CaseFatalityRate:    5,
	}

	var sb strings.Builder
	if err := WriteMetrics(&sb, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "metric\tvalue\n" +
		"Total Cases\t100\n" +
		"Hospitalized\t20\n" +
		"Deaths\t5\n" +
		"Hospitalization Rate (%)\t20.0\n" +
		"Case Fatality Rate (%)\t5.0\n"
	if got := sb.String(); got != want {
		t.Errorf("expected table:\n%s\ngot:\n%s", want, got)
	}
}

// TestParseMetrics tests re-parsing of the metric table.
func TestParseMetrics(t *testing.T) {
	t.Parallel()

	t.Run("round-trips WriteMetrics output", func(t *testing.T) {
		t.Parallel()

		in := &model.Metrics{
			TotalCases:          100,
			Hospitalized:        20,
			Deaths:              5,
			HospitalizationRate: 20,
			CaseFatalityRate:    5,
		}
		var sb strings.Builder
		if err := WriteMetrics(&sb, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result := &model.StageResult{Stage: "visualize"}
		out, err := ParseMetrics(strings.NewReader(sb.String()), result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if *out != *in {
			t.Errorf("expected %+v, got %+v", in, out)
		}
		if len(result.Issues) != 0 {
			t.Errorf("expected no issues, got %v", result.Issues)
		}
	})

	t.Run("unknown names and bad values become issues", func(t *testing.T) {
		t.Parallel()

		input := "metric\tvalue\n" +
			"Total Cases\tnot-a-number\n" +
			"Mystery Metric\t3\n" +
			"Deaths\t2\n"

		result := &model.StageResult{Stage: "visualize"}
		m, err := ParseMetrics(strings.NewReader(input), result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if m.TotalCases != 0 {
			t.Errorf("expected TotalCases to stay 0, got %v", m.TotalCases)
		}
		if m.Deaths != 2 {
			t.Errorf("expected Deaths 2, got %v", m.Deaths)
		}
		if len(result.Issues) != 2 {
			t.Errorf("expected 2 issues, got %v", result.Issues)
		}
	})

	t.Run("empty input yields zero metrics", func(t *testing.T) {
		t.Parallel()

		result := &model.StageResult{Stage: "visualize"}
		m, err := ParseMetrics(strings.NewReader(""), result)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *m != (model.Metrics{}) {
			t.Errorf("expected zero metrics, got %+v", m)
		}
	})
}

// TestSummarize tests the file-to-file summarize stage.
func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("writes metric table", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		input := filepath.Join(dir, "report.txt")
		content := "total_cases\t100\nhospitalized\t20\ndeaths\t5\n"
		if err := os.WriteFile(input, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		output := filepath.Join(dir, "summary.tsv")

		result, err := Summarize(input, output, discardLogger())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RowsWritten != 5 {
			t.Errorf("expected 5 rows written, got %d", result.RowsWritten)
		}

		data, err := os.ReadFile(output) //nolint:gosec // Test-controlled path
		if err != nil {
			t.Fatalf("failed to read summary: %v", err)
		}
		if !strings.Contains(string(data), "Hospitalization Rate (%)\t20.0\n") {
			t.Errorf("unexpected summary:\n%s", data)
		}
		if !strings.Contains(string(data), "Case Fatality Rate (%)\t5.0\n") {
			t.Errorf("unexpected summary:\n%s", data)
		}
	})

	t.Run("propagates missing input error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if _, err := Summarize(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.tsv"), discardLogger()); err == nil {
			t.Error("expected error for missing input")
		}
	})
}
