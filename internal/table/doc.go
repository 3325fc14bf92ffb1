// Package table implements the two table-hygiene stages of the pipeline:
// blank-row removal (preprocess) and duplicate-line removal (clean).
//
// Preprocess parses the input as a delimited table so that cell structure
// is preserved; Dedup deliberately does not parse at all and operates on
// raw lines, which makes it delimiter-agnostic. Both stages stream the
// input once and hold only what they must in memory (Dedup keeps a set of
// distinct lines, so its memory use grows with distinct line count —
// acceptable for the bounded inputs this tool targets).
package table
