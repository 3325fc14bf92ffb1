package history

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/episurv/episurv/internal/model"
)

// TestOpen tests database creation behavior.
func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("creates database when allowed", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "data")
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer db.Close() //nolint:errcheck // Test cleanup

		if db.Path() != filepath.Join(dir, "episurv.db") {
			t.Errorf("unexpected database path: %s", db.Path())
		}
	})

	t.Run("missing database is an error when creation is off", func(t *testing.T) {
		t.Parallel()

		opts := DefaultOptions()
		opts.CreateIfNotExists = false

		if _, err := Open(t.TempDir(), opts); err == nil {
			t.Error("expected error for missing database")
		}
	})

	t.Run("reopens an existing database without creation", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db, err := Open(dir, DefaultOptions())
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}

		opts := DefaultOptions()
		opts.CreateIfNotExists = false
		db, err = Open(dir, opts)
		if err != nil {
			t.Fatalf("failed to reopen database: %v", err)
		}
		defer db.Close() //nolint:errcheck // Test cleanup
	})
}

// TestRecordRun tests round-tripping stage results through the database.
func TestRecordRun(t *testing.T) {
	t.Parallel()

	t.Run("stores and lists runs newest first", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close() //nolint:errcheck // Test cleanup

		ctx := context.Background()
		base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

		first := &model.StageResult{
			Stage:       "preprocess",
			InputPath:   "raw.csv",
			OutputPath:  "preprocessed.csv",
			RowsRead:    5,
			RowsWritten: 3,
			StartedAt:   base,
			Duration:    42 * time.Millisecond,
		}
		second := &model.StageResult{
			Stage:       "summarize",
			InputPath:   "analysis.txt",
			OutputPath:  "summary.tsv",
			RowsRead:    12,
			RowsWritten: 5,
			Issues:      []string{`skipped malformed deaths value "abc"`},
			StartedAt:   base.Add(time.Minute),
			Duration:    7 * time.Millisecond,
		}

		if err := db.RecordRun(ctx, first); err != nil {
			t.Fatalf("failed to record first run: %v", err)
		}
		if err := db.RecordRun(ctx, second); err != nil {
			t.Fatalf("failed to record second run: %v", err)
		}

		records, err := db.ListRuns(ctx, 10)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(records))
		}

		// Newest first.
		if records[0].Stage != "summarize" || records[1].Stage != "preprocess" {
			t.Errorf("unexpected order: %s, %s", records[0].Stage, records[1].Stage)
		}

		got := records[0]
		if got.RowsRead != 12 || got.RowsWritten != 5 {
			t.Errorf("unexpected row counts: %d/%d", got.RowsRead, got.RowsWritten)
		}
		if !reflect.DeepEqual(got.Issues, second.Issues) {
			t.Errorf("expected issues %v, got %v", second.Issues, got.Issues)
		}
		if got.Duration != 7*time.Millisecond {
			t.Errorf("expected duration 7ms, got %v", got.Duration)
		}
		if !got.StartedAt.Equal(second.StartedAt) {
			t.Errorf("expected start %v, got %v", second.StartedAt, got.StartedAt)
		}

		if records[1].Issues != nil {
			t.Errorf("expected no issues on first run, got %v", records[1].Issues)
		}
	})

	t.Run("limit caps the result set", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close() //nolint:errcheck // Test cleanup

		ctx := context.Background()
		for i := 0; i < 5; i++ {
			result := &model.StageResult{
				Stage:     "clean",
				StartedAt: time.Now().Add(time.Duration(i) * time.Second),
			}
			if err := db.RecordRun(ctx, result); err != nil {
				t.Fatalf("failed to record run: %v", err)
			}
		}

		records, err := db.ListRuns(ctx, 2)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("empty database lists nothing", func(t *testing.T) {
		t.Parallel()

		db, err := Open(t.TempDir(), DefaultOptions())
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close() //nolint:errcheck // Test cleanup

		records, err := db.ListRuns(context.Background(), 10)
		if err != nil {
			t.Fatalf("failed to list runs: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected no records, got %d", len(records))
		}
	})
}
