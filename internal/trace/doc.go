// Package trace provides structured tracing for the mygo toolchain.
//
// Tracing follows a run of the tokenizer through its phases and files, which
// helps diagnose slow directories or stuck workers.
//
// # Usage
//
//	mygo tokenize --trace=- --trace-level=detail ./src
//
// # Tracers
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes every event immediately (text or NDJSON)
//
// # Levels and scopes
//
// LevelPhase emits driver and pass events, LevelDetail adds per-file events,
// LevelDebug emits everything.
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "tokenize", parentID)
//	defer span.End("")
package trace
