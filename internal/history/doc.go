// Package history provides SQLite-based storage of stage runs.
//
// Recording is opt-in (--save-history): by default the five stages have
// no side effect beyond their output file. When enabled, each run stores
// its stage name, paths, row counts, issues, and timing, and the history
// subcommand lists recent runs for a quick audit of what was processed
// when.
package history
