// Package logging assembles structured slog loggers and formatting helpers used
// across imdbooo.
//
// It owns the configurable console/JSON handlers, routes records to stderr and
// an optional size-rotated log file, and exposes context-aware helpers so crawl
// code can tag log lines with the run identifier. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so new components emit
// records with the same shape as the rest of the system.
package logging
