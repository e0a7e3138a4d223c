package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap_SeqPreservesOrderAndLength(t *testing.T) {
	t.Parallel()

	double := Map(func(v int, _ int, _ Collection[int, int]) int { return v * 2 })

	assert.Equal(t, []int{2, 4, 6}, double(Seq[int]{1, 2, 3}))
}

func TestMap_SeqIterateeReceivesIndexAndCollection(t *testing.T) {
	t.Parallel()

	col := Seq[string]{"a", "b"}
	var keys []int

	result := Map(func(v string, k int, c Collection[int, string]) string {
		keys = append(keys, k)
		assert.Equal(t, col.Len(), c.Len())
		return v
	})(col)

	assert.Equal(t, []string{"a", "b"}, result)
	assert.Equal(t, []int{0, 1}, keys)
}

func TestMap_DictVisitsKeysInAscendingOrder(t *testing.T) {
	t.Parallel()

	keysOf := Map(func(_ int, k string, _ Collection[string, int]) string { return k })

	got := keysOf(Dict[string, int]{"b": 2, "a": 1, "c": 3})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestMap_DictTransformsValues(t *testing.T) {
	t.Parallel()

	double := Map(func(v int, _ string, _ Collection[string, int]) int { return v * 2 })

	assert.Equal(t, []int{2, 4}, double(Dict[string, int]{"a": 1, "b": 2}))
}

func TestMap_NilCollectionPassesThrough(t *testing.T) {
	t.Parallel()

	identity := Map(func(v int, _ int, _ Collection[int, int]) int { return v })

	assert.Nil(t, identity(nil))
}

func TestMap_EmptySeq(t *testing.T) {
	t.Parallel()

	identity := Map(func(v int, _ int, _ Collection[int, int]) int { return v })

	assert.Empty(t, identity(Seq[int]{}))
}
