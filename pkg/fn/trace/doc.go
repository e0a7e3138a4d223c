// Package trace records pipeline executions without touching composition
// semantics. A Recorder accumulates per-step invocation counts and elapsed
// time; Step wraps an fn.Step so every invocation is timed under a name.
// Recording is strictly opt-in: the fn core never records anything.
package trace
