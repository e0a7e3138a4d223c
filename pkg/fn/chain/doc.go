// Package chain provides a fluent builder over fn entries for constructing
// pipelines step by step instead of as one variadic Flow call.
//
// Key operations:
// - New: start an empty chain
// - Then/Label: append a step, optionally named
// - Tee: append a side-effect step that leaves the value unchanged
// - Group: append a nested sequence of entries
// - When: append a step only when a condition holds
// - Build/Run: collapse the chain into a runnable step, or run it directly
//
// Chains are immutable values: every method returns a new chain, so a
// partially built chain can be branched without the branches interfering.
package chain
