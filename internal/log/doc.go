// Package log provides logger construction for episurv.
//
// Design decision: Logging is never configured through package-global
// state. Each CLI invocation builds its own *slog.Logger with an
// explicitly injected sink and passes it down to the stages. This keeps
// repeated invocations inside one process (as happens in tests) from
// double-configuring handlers or leaking output between runs.
//
// The package also provides MemoryHandler, an slog.Handler that captures
// records in memory so tests can assert on logged output without
// scraping text.
package log
