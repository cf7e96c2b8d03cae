package vec

import (
	"fmt"
	"iter"
)

// Slice returns a view over the live elements [0, Len()). The view shares
// storage with the vector and is valid until the next operation that
// reallocates or shifts elements. An empty vector yields an empty slice,
// nil when no buffer has been allocated yet.
func (v *Vector[T]) Slice() []T {
	return v.buf.slice(v.size)
}

// All returns an index/element iterator over the live elements. Each call
// yields a fresh cursor.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.at(i)) {
				return
			}
		}
	}
}

// Values returns an element iterator over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.at(i)) {
				return
			}
		}
	}
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v", v.Slice())
}
