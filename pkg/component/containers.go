package component

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Tuple is a fixed-size ordered container. Its canonical text form is
// `(e1, e2)`, with a trailing comma for single-element tuples.
type Tuple []any

// Dict is an insertion-ordered mapping; its canonical text form lists entries
// in insertion order as `{k1: v1, ...}`. Plain map[string]any values are also
// accepted by substitution but render with sorted keys, since Go maps carry
// no insertion order.
type Dict = orderedmap.OrderedMap[string, any]

// NewDict creates an empty insertion-ordered mapping.
func NewDict() *Dict {
	return orderedmap.New[string, any]()
}

// DictOf builds a Dict from alternating key/value pairs, preserving order.
// Keys must be strings; the call panics on malformed pairs, mirroring the
// fail-fast behavior of literal construction.
func DictOf(pairs ...any) *Dict {
	if len(pairs)%2 != 0 {
		panic("component: DictOf requires an even number of arguments")
	}
	d := NewDict()
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic("component: DictOf keys must be strings")
		}
		d.Set(key, pairs[i+1])
	}
	return d
}
