package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/episurv/episurv/internal/config"
	"github.com/episurv/episurv/internal/history"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [--limit N]",
		Short: "List recorded stage runs",
		Long: `History lists stage runs recorded with --save-history, newest first.
Each entry shows the stage, its input and output, row counts, and any
issues encountered.

Example:
  episurv history --limit 10`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit, "Maximum number of runs to list")
	cmd.Flags().String("data-dir", config.XDGDataDir(),
		"Directory holding the history database")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	dataDir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return err
	}

	opts := history.DefaultOptions()
	opts.CreateIfNotExists = false // Listing must not create an empty database.

	db, err := history.Open(dataDir, opts)
	if err != nil {
		return fmt.Errorf("no run history recorded yet: %w", err)
	}
	defer db.Close() //nolint:errcheck // Read-only session

	records, err := db.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stage runs recorded.")
		return nil
	}

	out := cmd.OutOrStdout()
	for _, rec := range records {
		fmt.Fprintf(out, "%s  %-12s  %s -> %s  (%d read, %d written, %s)\n",
			rec.StartedAt.Local().Format(time.DateTime),
			rec.Stage,
			rec.InputPath,
			rec.OutputPath,
			rec.RowsRead,
			rec.RowsWritten,
			rec.Duration.Round(time.Millisecond),
		)
		if len(rec.Issues) > 0 {
			fmt.Fprintf(out, "    issues: %s\n", strings.Join(rec.Issues, "; "))
		}
	}

	return nil
}
