package log

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

// TestNew tests level selection and output formatting.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default level hides debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, false)

		logger.Debug("hidden")
		logger.Info("visible", "rows", 3)

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("expected debug record to be suppressed:\n%s", out)
		}
		if !strings.Contains(out, "visible") || !strings.Contains(out, "rows=3") {
			t.Errorf("expected info record with attributes:\n%s", out)
		}
	})

	t.Run("verbose level shows debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := New(&buf, true)

		logger.Debug("now visible")

		if !strings.Contains(buf.String(), "now visible") {
			t.Errorf("expected debug record:\n%s", buf.String())
		}
	})
}

// TestMemoryHandler tests the in-memory record capture used by the
// stage tests.
func TestMemoryHandler(t *testing.T) {
	t.Parallel()

	t.Run("captures messages and attributes", func(t *testing.T) {
		t.Parallel()

		handler := NewMemoryHandler()
		logger := slog.New(handler)

		logger.Info("stage done", "rowsRead", 5)
		logger.Warn("odd row")

		entries := handler.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[0].Level != slog.LevelInfo || entries[0].Message != "stage done" {
			t.Errorf("unexpected first entry: %+v", entries[0])
		}
		if got := entries[0].Attrs["rowsRead"].Int64(); got != 5 {
			t.Errorf("expected rowsRead 5, got %d", got)
		}
		if entries[1].Level != slog.LevelWarn {
			t.Errorf("expected warn level, got %v", entries[1].Level)
		}

		want := []string{"stage done", "odd row"}
		if got := handler.Messages(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected messages %v, got %v", want, got)
		}
	})

	t.Run("derived loggers share the store", func(t *testing.T) {
		t.Parallel()

		handler := NewMemoryHandler()
		derived := slog.New(handler).With("stage", "clean")

		derived.Info("deduplication complete", "rowsWritten", 4)

		entries := handler.Entries()
		if len(entries) != 1 {
			t.Fatalf("expected record from derived logger, got %d entries", len(entries))
		}
		if got := entries[0].Attrs["stage"].String(); got != "clean" {
			t.Errorf("expected inherited stage attribute, got %q", got)
		}
		if got := entries[0].Attrs["rowsWritten"].Int64(); got != 4 {
			t.Errorf("expected rowsWritten 4, got %d", got)
		}
	})

	t.Run("captures every level", func(t *testing.T) {
		t.Parallel()

		handler := NewMemoryHandler()
		logger := slog.New(handler)

		logger.Debug("d")
		logger.Error("e")

		if got := len(handler.Entries()); got != 2 {
			t.Errorf("expected both records captured, got %d", got)
		}
	})
}
