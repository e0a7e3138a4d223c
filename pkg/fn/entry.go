package fn

// Step is a single transformation: it receives the current value together
// with the run's env and returns the next value. The env must be treated as
// read-only; only the value changes between steps.
type Step[T, E any] func(value T, env E) T

// Entry is one element of a flow's step list: a Step, a nested Group, or a
// Labeled wrapper. The interface is sealed; a nil entry applies as identity.
type Entry[T, E any] interface {
	apply(value T, env E) T
}

func (s Step[T, E]) apply(value T, env E) T {
	if s == nil {
		return value
	}
	return s(value, env)
}

// Group is an ordered sequence of entries run as a nested flow with the
// same env. Groups may nest to arbitrary depth.
type Group[T, E any] []Entry[T, E]

func (g Group[T, E]) apply(value T, env E) T {
	return Flow(g...)(value, env)
}

// Labeled names an entry so drawers and recorders can refer to it. It is
// transparent to composition.
type Labeled[T, E any] struct {
	Name  string
	Entry Entry[T, E]
}

// Label wraps entry under the given name.
func Label[T, E any](name string, entry Entry[T, E]) Labeled[T, E] {
	return Labeled[T, E]{Name: name, Entry: entry}
}

func (l Labeled[T, E]) apply(value T, env E) T {
	if l.Entry == nil {
		return value
	}
	return l.Entry.apply(value, env)
}
