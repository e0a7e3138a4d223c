package collect

import (
	"cmp"
	"maps"
	"slices"
)

// Collection is the sealed sum of collections Map accepts: an ordered Seq or
// a key-sorted Dict.
type Collection[K comparable, V any] interface {
	// Len reports the number of values the collection holds.
	Len() int

	each(visit func(key K, value V))
}

// Iteratee transforms one collection value. It receives the value, its key
// (the index for a Seq), and the collection being iterated.
type Iteratee[K comparable, V, R any] func(value V, key K, col Collection[K, V]) R

// Map returns a function that applies iteratee to every value of a
// collection, in iteration order, and collects the results. A nil collection
// passes through as a nil result.
func Map[K comparable, V, R any](iteratee Iteratee[K, V, R]) func(Collection[K, V]) []R {
	return func(col Collection[K, V]) []R {
		if col == nil {
			return nil
		}
		out := make([]R, 0, col.Len())
		col.each(func(key K, value V) {
			out = append(out, iteratee(value, key, col))
		})
		return out
	}
}

// Seq is an ordered sequence keyed by index.
type Seq[V any] []V

func (s Seq[V]) Len() int {
	return len(s)
}

func (s Seq[V]) each(visit func(key int, value V)) {
	for i, v := range s {
		visit(i, v)
	}
}

// Dict is a mapping visited in ascending key order, so iteration is
// deterministic even though the underlying map is not.
type Dict[K cmp.Ordered, V any] map[K]V

func (d Dict[K, V]) Len() int {
	return len(d)
}

func (d Dict[K, V]) each(visit func(key K, value V)) {
	for _, k := range slices.Sorted(maps.Keys(d)) {
		visit(k, d[k])
	}
}
