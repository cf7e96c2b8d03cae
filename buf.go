package vec

import "unsafe"

// rawBuf owns a contiguous run of cap slots of T. At any instant exactly one
// vector holds a given buffer; ownership moves only through swap, never by
// aliasing. Access is unchecked, bounds are the caller's responsibility.
type rawBuf[T any] struct {
	ptr unsafe.Pointer // slot 0, nil when cap == 0
	cap int
}

// newRawBuf allocates n slots. n <= 0 yields the null buffer.
// The stored slot pointer keeps the whole allocation reachable.
func newRawBuf[T any](n int) rawBuf[T] {
	if n <= 0 {
		return rawBuf[T]{}
	}
	s := make([]T, n)
	return rawBuf[T]{ptr: unsafe.Pointer(&s[0]), cap: n}
}

// get returns a pointer to slot 0, or nil for the null buffer.
func (b *rawBuf[T]) get() *T {
	return (*T)(b.ptr)
}

// at returns a pointer to slot i without bounds checking.
func (b *rawBuf[T]) at(i int) *T {
	var zero T
	return (*T)(unsafe.Add(b.ptr, uintptr(i)*unsafe.Sizeof(zero)))
}

// slice returns a view over the first n slots.
func (b *rawBuf[T]) slice(n int) []T {
	return unsafe.Slice(b.get(), n)
}

// swap exchanges owned storage with other in O(1), no element movement.
func (b *rawBuf[T]) swap(other *rawBuf[T]) {
	b.ptr, other.ptr = other.ptr, b.ptr
	b.cap, other.cap = other.cap, b.cap
}
