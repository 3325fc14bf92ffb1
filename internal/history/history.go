package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/episurv/episurv/internal/model"
)

// DB provides SQLite-based storage for stage run history.
//
// Design decision: We use a single database file for all stages rather
// than one per stage. Runs of different stages are usually inspected
// together (one pipeline execution produces five rows), and a single
// file simplifies backup and cleanup.
type DB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures DB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent
	// read performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a history database in the specified directory.
// If CreateIfNotExists is true, the directory and database file are
// created; otherwise a missing database is an error.
func Open(dbDir string, opts Options) (*DB, error) {
	dbPath := filepath.Join(dbDir, "episurv.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection strings: mode=rw prevents creating
	// new files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY on concurrent history writes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &DB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *DB) Close() error {
	return hdb.db.Close()
}

// Path returns the path of the underlying database file.
func (hdb *DB) Path() string {
	return hdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (hdb *DB) createTables() error {
	schema := `
	-- Stage runs store one row per executed pipeline stage
	CREATE TABLE IF NOT EXISTS stage_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		stage TEXT NOT NULL,
		input_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		rows_read INTEGER NOT NULL DEFAULT 0,
		rows_written INTEGER NOT NULL DEFAULT 0,
		issues TEXT,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_runs_stage ON stage_runs(stage);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON stage_runs(started_at);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// RunRecord is a stored stage run.
type RunRecord struct {
	// ID is the database row identifier.
	ID int64

	// Stage is the stage name.
	Stage string

	// InputPath is the file the stage read.
	InputPath string

	// OutputPath is the file the stage wrote.
	OutputPath string

	// RowsRead is the number of rows read.
	RowsRead int

	// RowsWritten is the number of rows written.
	RowsWritten int

	// Issues lists non-fatal anomalies recorded by the stage.
	Issues []string

	// StartedAt is when the stage began.
	StartedAt time.Time

	// Duration is how long the stage took.
	Duration time.Duration
}

// RecordRun stores a completed stage result.
func (hdb *DB) RecordRun(ctx context.Context, result *model.StageResult) error {
	var issuesJSON []byte
	if len(result.Issues) > 0 {
		var err error
		issuesJSON, err = json.Marshal(result.Issues)
		if err != nil {
			return fmt.Errorf("failed to marshal issues: %w", err)
		}
	}

	_, err := hdb.db.ExecContext(ctx, `
		INSERT INTO stage_runs
			(stage, input_path, output_path, rows_read, rows_written, issues, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.Stage,
		result.InputPath,
		result.OutputPath,
		result.RowsRead,
		result.RowsWritten,
		string(issuesJSON),
		result.StartedAt.UTC(),
		result.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert stage run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent stage runs, newest first.
func (hdb *DB) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := hdb.db.QueryContext(ctx, `
		SELECT id, stage, input_path, output_path, rows_read, rows_written, issues, started_at, duration_ms
		FROM stage_runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query stage runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only cursor

	var records []RunRecord
	for rows.Next() {
		var (
			rec        RunRecord
			issuesJSON sql.NullString
			durationMS int64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Stage,
			&rec.InputPath,
			&rec.OutputPath,
			&rec.RowsRead,
			&rec.RowsWritten,
			&issuesJSON,
			&rec.StartedAt,
			&durationMS,
		); err != nil {
			return nil, fmt.Errorf("failed to scan stage run: %w", err)
		}
		if issuesJSON.Valid && issuesJSON.String != "" {
			if err := json.Unmarshal([]byte(issuesJSON.String), &rec.Issues); err != nil {
				return nil, fmt.Errorf("failed to unmarshal issues: %w", err)
			}
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stage runs: %w", err)
	}

	return records, nil
}
