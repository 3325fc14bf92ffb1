// Package main provides the entry point for the episurv CLI.
//
// episurv transforms tabular disease-surveillance records through five
// sequential, file-mediated stages: preprocess, clean, run-analysis,
// summarize, and visualize.
//
// Usage:
//
//	episurv preprocess --input raw.csv --output clean.csv
//	episurv run --config pipeline.yaml
//
// See --help for all available options.
package main

// main is the entry point for episurv.
func main() {
	Execute()
}
