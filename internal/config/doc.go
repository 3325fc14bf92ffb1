// Package config holds configuration for episurv.
//
// Two kinds of configuration live here: the per-invocation Config built
// from CLI flags (one stage, one input, one output), and the pipeline
// File loaded from YAML for the run subcommand, which describes a whole
// sequence of stages the way the external workflow tool used to.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// Validation uses package-level sentinel errors so callers can use
// errors.Is() for programmatic handling.
package config
