// Package draw renders the structure of composed pipelines as DOT digraphs.
//
// A Drawer accumulates one vertex per pipeline step, linked left to right in
// application order. Labeled entries keep their name; anonymous steps and
// groups get synthetic step-N / group-N names. Vertices are tinted on a
// blue-to-red gradient by nesting depth, and when a trace.Recorder is
// attached, average step durations appear as external labels.
package draw
