package vec

import "golang.org/x/exp/constraints"

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if *a.buf.at(i) != *b.buf.at(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(*a.buf.at(i), *b.buf.at(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically using the element ordering:
// -1 when a < b, 0 when they are equal, +1 when a > b. A strict prefix
// orders before its extension.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		x, y := *a.buf.at(i), *b.buf.at(i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case a.size > b.size:
		return 1
	}
	return 0
}

// CompareFunc is Compare with a caller-supplied element comparison, which
// must return a negative number when its first argument orders first, zero
// on equality, and a positive number otherwise.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], cmp func(T, U) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp(*a.buf.at(i), *b.buf.at(i)); c != 0 {
			return c
		}
	}
	switch {
	case a.size < b.size:
		return -1
	case a.size > b.size:
		return 1
	}
	return 0
}

// Less reports whether a orders strictly before b. The remaining relations
// follow from Compare: a <= b is Compare(a, b) <= 0, a > b is Less(b, a),
// a >= b is !Less(a, b).
func Less[T constraints.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
