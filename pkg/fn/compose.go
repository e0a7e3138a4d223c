package fn

// Compose builds a right-to-left pipeline: Compose(f, g, h) applies h to the
// input first, then g, then f, broadcasting the same env to every step.
//
// With no steps it returns the identity on value (env is dropped). With one
// step it returns that step as-is. Unlike Flow, Compose does not skip nil
// steps; a nil step panics when the composed step is invoked.
func Compose[T, E any](steps ...Step[T, E]) Step[T, E] {
	switch len(steps) {
	case 0:
		return func(value T, _ E) T { return value }
	case 1:
		return steps[0]
	}

	composed := steps[0]
	for _, next := range steps[1:] {
		composed = combine(composed, next)
	}
	return composed
}

func combine[T, E any](outer, inner Step[T, E]) Step[T, E] {
	return func(value T, env E) T {
		return outer(inner(value, env), env)
	}
}
