package vec

import "github.com/pkg/errors"

// ErrOutOfRange is returned by At when the index does not reference a live
// element.
var ErrOutOfRange = errors.New("vec: index out of range")

// Vector is a growable contiguous sequence of T with an explicit
// size/capacity split and a deterministic growth policy (capacity 0 grows to
// 1, anything else doubles). The zero value is an empty vector ready for
// use. Not goroutine-safe; callers provide their own synchronization.
type Vector[T any] struct {
	buf     rawBuf[T]
	size    int
	growths uint64
}

// New returns an empty vector. No buffer is allocated until the first
// growth.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n default-valued elements.
// Size and capacity both equal n. n <= 0 yields an empty vector.
func NewSize[T any](n int) *Vector[T] {
	if n <= 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{buf: newRawBuf[T](n), size: n}
}

// NewFill returns a vector of n copies of fill.
func NewFill[T any](n int, fill T) *Vector[T] {
	v := NewSize[T](n)
	for i := 0; i < v.size; i++ {
		*v.buf.at(i) = fill
	}
	return v
}

// Of returns a vector holding elems in order. Size and capacity equal
// len(elems).
func Of[T any](elems ...T) *Vector[T] {
	v := NewSize[T](len(elems))
	copy(v.buf.slice(v.size), elems)
	return v
}

// WithCapacity returns an empty vector with room for n elements, so the
// first n pushes do not reallocate.
func WithCapacity[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.Reserve(n)
	return v
}

// Clone returns a deep copy with independent storage. The copy preserves
// the receiver's capacity as well as its elements.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{buf: newRawBuf[T](v.buf.cap), size: v.size}
	copy(c.buf.slice(c.size), v.buf.slice(v.size))
	return c
}

// Move transfers the receiver's storage into a new vector and leaves the
// receiver empty. O(1), no element movement.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{}
	m.Swap(v)
	return m
}

// CopyFrom replaces the receiver's contents with a deep copy of other.
// Self-assignment is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	v.Swap(tmp)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.buf.cap
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Get returns element i without bounds checking. i outside [0, Len()) is
// undefined behavior; builds with the vecdebug tag panic instead.
func (v *Vector[T]) Get(i int) T {
	assertf(i >= 0 && i < v.size, "Get(%d) with len %d", i, v.size)
	return *v.buf.at(i)
}

// Set overwrites element i without bounds checking.
func (v *Vector[T]) Set(i int, x T) {
	assertf(i >= 0 && i < v.size, "Set(%d) with len %d", i, v.size)
	*v.buf.at(i) = x
}

// Ptr returns a pointer to element i without bounds checking. The pointer
// is valid until the next operation that reallocates or shifts elements.
func (v *Vector[T]) Ptr(i int) *T {
	assertf(i >= 0 && i < v.size, "Ptr(%d) with len %d", i, v.size)
	return v.buf.at(i)
}

// At returns a pointer to element i, or an error wrapping ErrOutOfRange
// when i does not reference a live element.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, len %d", i, v.size)
	}
	return v.buf.at(i), nil
}

// grow replaces the buffer with one of newCap slots, relocating the live
// elements in order and swapping ownership.
func (v *Vector[T]) grow(newCap int) {
	nb := newRawBuf[T](newCap)
	copy(nb.slice(v.size), v.buf.slice(v.size))
	v.buf.swap(&nb)
	v.growths++
}

// nextCap is the growth policy: 0 -> 1, otherwise double.
func (v *Vector[T]) nextCap() int {
	if v.buf.cap == 0 {
		return 1
	}
	return v.buf.cap * 2
}

// Push appends x. A full vector grows first (capacity 0 -> 1, else double).
// Amortized O(1); O(Len) on a growth step.
func (v *Vector[T]) Push(x T) {
	if v.size == v.buf.cap {
		v.grow(v.nextCap())
	}
	*v.buf.at(v.size) = x
	v.size++
}

// Pop drops the last element. No-op on an empty vector. Capacity is
// retained and the slot keeps its stale value until overwritten.
func (v *Vector[T]) Pop() {
	if v.size > 0 {
		v.size--
	}
}

// Insert places x immediately before position i, shifting later elements
// one slot toward the end. 0 <= i <= Len() is a precondition. Growth policy
// matches Push and applies only when the vector is full at the time of the
// call. Returns the index of the inserted element; an index stays valid
// across the reallocation where a pointer into the old buffer would not.
func (v *Vector[T]) Insert(i int, x T) int {
	assertf(i >= 0 && i <= v.size, "Insert(%d) with len %d", i, v.size)
	if v.size == v.buf.cap {
		v.grow(v.nextCap())
	}
	s := v.buf.slice(v.size + 1)
	copy(s[i+1:], s[i:v.size])
	s[i] = x
	v.size++
	return i
}

// Erase removes the element at position i, shifting later elements one slot
// toward the beginning. 0 <= i < Len() is a precondition. Returns the index
// now holding the successor element (== Len() when the last element was
// removed). Capacity never shrinks.
func (v *Vector[T]) Erase(i int) int {
	assertf(i >= 0 && i < v.size, "Erase(%d) with len %d", i, v.size)
	s := v.buf.slice(v.size)
	copy(s[i:], s[i+1:])
	v.size--
	return i
}

// Reserve grows capacity to exactly n slots when n exceeds the current
// capacity; otherwise it does nothing. Never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n > v.buf.cap {
		v.grow(n)
	}
}

// Resize sets the length to n. Shrinking truncates in O(1) and keeps
// capacity. Growing default-initializes the newly exposed slots; when n
// exceeds capacity the buffer grows to max(n, 2*cap), preferring the double
// when it gives more headroom.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n <= v.size:
		if n < 0 {
			n = 0
		}
		v.size = n
	case n <= v.buf.cap:
		// Slots past the old length may hold stale values from earlier
		// Pop/Clear/Resize calls.
		clear(v.buf.slice(n)[v.size:])
		v.size = n
	default:
		newCap := v.buf.cap * 2
		if n > newCap {
			newCap = n
		}
		v.grow(newCap)
		// The fresh buffer is already zeroed past the relocated elements.
		v.size = n
	}
}

// Clear sets the length to zero. Capacity is retained; slots keep their
// stale values until overwritten.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Swap exchanges storage, length and growth accounting with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.growths, other.growths = other.growths, v.growths
}
