// Package collect applies an iteratee over the values of a collection and
// gathers the results into a slice.
//
// The static surface is exhaustive at compile time: Map accepts the sealed
// Collection sum type, whose only variants are Seq (an ordered sequence,
// keyed by index) and Dict (a mapping, visited in ascending key order).
//
// Apply is the dynamic boundary for call sites that only hold an `any`
// value, such as template glue. It iterates slices, arrays, maps, and the
// declared exported fields of structs, and reports ErrNotIterable for
// anything else, naming the actual runtime kind. Nil values pass through
// unchanged.
package collect
