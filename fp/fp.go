// Package fp collects small generic functional-programming helpers shared
// across the ttconv packages: function composition, constant functions and
// a Pair type used wherever the spec calls for a "pair" of values (length
// pairs such as extent and origin).
package fp

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g. It is used to build up filter chains from
// individually named transforms (see package filter).
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Pair is a generic two-valued tuple. The style vocabulary uses it for
// style properties whose domain is a pair of values, e.g. `extent`,
// `origin` and `position` (each a pair of lengths); `padding` is held as
// an array of four lengths instead.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P constructs a Pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{Left: x, Right: y}
}
