// Package diag defines the diagnostic model shared by the lexer, the driver
// and the CLI.
//
// Diagnostic is the central record: Severity, a compact numeric Code with a
// stable string ID (LEX1001, ...), a short Message, a Primary span and
// optional Notes. Producers emit through a Reporter so they stay decoupled
// from storage; BagReporter collects into a capped Bag, DedupReporter drops
// repeats.
//
// Package diag does no terminal formatting. Rendering lives in
// internal/diagfmt; FormatShortDiagnostics is the one plain-text form kept
// here because tests and the REPL compare against it.
package diag
