package chain

import (
	"github.com/kestrel-ui/fnkit/pkg/fn"
)

// Chain accumulates pipeline entries in application order.
type Chain[T, E any] struct {
	entries []fn.Entry[T, E]
}

// New starts an empty chain.
func New[T, E any]() Chain[T, E] {
	return Chain[T, E]{}
}

// From starts a chain from existing entries.
func From[T, E any](entries ...fn.Entry[T, E]) Chain[T, E] {
	return Chain[T, E]{}.add(entries...)
}

// Then appends a step.
func (c Chain[T, E]) Then(step fn.Step[T, E]) Chain[T, E] {
	return c.add(step)
}

// Label appends a step under a name visible to drawers and recorders.
func (c Chain[T, E]) Label(name string, step fn.Step[T, E]) Chain[T, E] {
	return c.add(fn.Label[T, E](name, step))
}

// Tee appends a side-effect step that returns its input unchanged.
func (c Chain[T, E]) Tee(observe func(value T, env E)) Chain[T, E] {
	return c.add(fn.Tee(observe))
}

// Group appends a nested sequence run as one entry.
func (c Chain[T, E]) Group(entries ...fn.Entry[T, E]) Chain[T, E] {
	return c.add(fn.Group[T, E](entries))
}

// When appends step only if cond holds; otherwise it appends a nil entry,
// which the flow skips silently.
func (c Chain[T, E]) When(cond bool, step fn.Step[T, E]) Chain[T, E] {
	if !cond {
		return c.add(nil)
	}
	return c.add(step)
}

// Entries returns a copy of the accumulated entries.
func (c Chain[T, E]) Entries() []fn.Entry[T, E] {
	out := make([]fn.Entry[T, E], len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports how many entries have been appended, nil entries included.
func (c Chain[T, E]) Len() int {
	return len(c.entries)
}

// Build collapses the chain into a single left-to-right step.
func (c Chain[T, E]) Build() fn.Step[T, E] {
	return fn.Flow(c.entries...)
}

// Run builds and invokes the chain in one call.
func (c Chain[T, E]) Run(value T, env E) T {
	return c.Build()(value, env)
}

func (c Chain[T, E]) add(entries ...fn.Entry[T, E]) Chain[T, E] {
	// copy so branched chains never share a backing array
	next := make([]fn.Entry[T, E], len(c.entries), len(c.entries)+len(entries))
	copy(next, c.entries)
	return Chain[T, E]{entries: append(next, entries...)}
}
