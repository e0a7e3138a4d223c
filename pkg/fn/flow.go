package fn

// Flow builds a left-to-right pipeline from the given entries. The returned
// step threads its value through every entry in order, passing the same env
// to each one. Nil entries are skipped silently; a Group entry runs as a
// nested flow. With no entries the returned step is the identity on value.
func Flow[T, E any](entries ...Entry[T, E]) Step[T, E] {
	return func(value T, env E) T {
		out := value
		for _, entry := range entries {
			if entry == nil {
				continue
			}
			out = entry.apply(out, env)
		}
		return out
	}
}

// Tee returns a step that calls observe with the current value and env and
// returns the value unchanged.
func Tee[T, E any](observe func(value T, env E)) Step[T, E] {
	return func(value T, env E) T {
		if observe != nil {
			observe(value, env)
		}
		return value
	}
}
