package vector

import (
	"fmt"

	"github.com/sandflow/ttconv/maybe"
)

// Vector is an immutable persistent vector: every "modification" returns a
// new Vector, leaving the receiver untouched. Push/Set/Pop copy the whole
// backing array into a fresh one, so each is O(n); no storage is shared
// between incarnations.
//
// isd/significant.go uses Vector[unit.Time] to accumulate the
// significant-time sequence sig(D) while it walks the document, then
// returns the result to its caller as a sorted plain slice.
type Vector[T any] struct {
	props
	items []T
}

// Immutable constructs an empty vector. Options are accepted for
// compatibility with callers migrating off the original trie-based
// implementation; the degree they configure is irrelevant to this simpler
// backing store and is recorded only for introspection.
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option configures a Vector at construction time.
type Option struct {
	config func(props) props
}

// DegreeExponent is accepted for API compatibility with code written
// against the trie-based design; this vector has no branching factor, so
// the value is stored but otherwise unused.
func DegreeExponent(n int) Option {
	return Option{config: func(p props) props {
		if n <= 0 {
			n = 2
		} else if n > 5 {
			n = 5
		}
		p.bits = uint32(n)
		p.degree = 1 << p.bits
		return p
	}}
}

// Len reports the number of elements held.
func (v Vector[T]) Len() int {
	return len(v.items)
}

// Last returns the final element, or Nothing if v is empty.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if len(v.items) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.items[len(v.items)-1])
}

// Get returns the element at index i.
func (v Vector[T]) Get(i int) T {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("vector index out of bounds: %d with length %d", i, len(v.items)))
	}
	return v.items[i]
}

// Set returns a copy of v with the element at index i replaced by value.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	if i < 0 || i >= len(v.items) {
		panic(fmt.Sprintf("vector index out of bounds: %d with length %d", i, len(v.items)))
	}
	items := make([]T, len(v.items))
	copy(items, v.items)
	items[i] = value
	return Vector[T]{props: v.props, items: items}
}

// Push returns a copy of v with value appended.
func (v Vector[T]) Push(value T) Vector[T] {
	items := make([]T, len(v.items)+1)
	copy(items, v.items)
	items[len(items)-1] = value
	return Vector[T]{props: v.props, items: items}
}

// Pop returns a copy of v with its last element removed. It panics if v is
// empty.
func (v Vector[T]) Pop() Vector[T] {
	if len(v.items) == 0 {
		panic("attempt to remove item from empty vector")
	}
	items := make([]T, len(v.items)-1)
	copy(items, v.items[:len(v.items)-1])
	return Vector[T]{props: v.props, items: items}
}

// Slice returns the elements of v as a plain, independent slice.
func (v Vector[T]) Slice() []T {
	items := make([]T, len(v.items))
	copy(items, v.items)
	return items
}
