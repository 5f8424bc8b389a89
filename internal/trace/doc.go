// Package trace records what the emitter does while it runs.
//
// Tracing is off by default. The CLI enables it with:
//
//	asmir emit --trace=- --trace-level=detail
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: failures only
//   - LevelPhase: command and program boundaries
//   - LevelDetail: adds one span per section
//   - LevelDebug: adds one point per expression
//
// # Context propagation
//
// The tracer travels in a context.Context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeProgram, "render", 0)
//	defer span.End("")
package trace
