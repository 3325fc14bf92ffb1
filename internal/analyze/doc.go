// Package analyze implements the analysis stage: it parses a
// header-bearing comma-delimited surveillance table into records, tallies
// case counts across the disease, outcome, and vaccination status fields,
// and emits the fixed-layout text report consumed by the summarize stage.
//
// No column validation is performed. A table without the expected columns
// still analyzes cleanly; the missing fields tally under the empty-string
// bucket, which downstream consumers see like any other category.
package analyze
