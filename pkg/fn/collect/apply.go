package collect

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

// ErrNotIterable reports a value that is neither a sequence nor a mapping.
var ErrNotIterable = errors.New("value is not iterable")

// Apply maps iteratee over an arbitrary runtime value:
//   - slices and arrays are visited by index, in order;
//   - maps are visited by key, sorted by the key's string form;
//   - structs are visited by their declared exported fields, in declaration
//     order; fields promoted from embedded structs are excluded;
//   - nil values (untyped nil or a nil pointer) pass through as (nil, nil);
//   - pointers to any of the above are dereferenced first.
//
// Any other value yields ErrNotIterable wrapped with its runtime kind.
func Apply(iteratee func(value, key any) any, v any) ([]any, error) {
	if isNilValue(v) {
		return nil, nil
	}

	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer {
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, 0, val.Len())
		for i := range val.Len() {
			out = append(out, iteratee(val.Index(i).Interface(), i))
		}
		return out, nil

	case reflect.Map:
		keys := val.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, iteratee(val.MapIndex(k).Interface(), k.Interface()))
		}
		return out, nil

	case reflect.Struct:
		typ := val.Type()
		out := make([]any, 0, typ.NumField())
		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() || field.Anonymous {
				continue
			}
			out = append(out, iteratee(val.Field(i).Interface(), field.Name))
		}
		return out, nil
	}

	return nil, errors.Wrapf(ErrNotIterable, "unexpected kind %s", val.Kind())
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
