// Package fn provides synchronous function-composition primitives used as
// low-level utilities across the toolkit. A pipeline threads a primary value
// of type T through an ordered list of steps; an immutable env value of type
// E is broadcast unchanged to every step of a run.
//
// Key operations:
// - Flow: build a left-to-right pipeline from entries (steps, nested groups)
// - Compose: build a right-to-left pipeline from steps
// - Group: nest an ordered sequence of entries inside a flow
// - Label: name an entry for introspection (see packages draw and trace)
// - Tee: side-effect step that returns its input unchanged
//
// Everything here is strict and single-threaded: no channels, no suspension
// points, no state shared between runs. Panics raised by supplied steps
// propagate to the caller unchanged.
package fn
