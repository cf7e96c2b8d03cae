// Package vec implements a growable contiguous vector with an explicit
// size/capacity split and a deterministic growth policy.
//
// # Overview
//
// A Vector stores its elements in a single owned allocation and tracks how
// many of the allocated slots are live. Unlike a plain slice, the growth
// policy is part of the contract: a full vector doubles its capacity (a
// capacity of 0 grows to 1), and capacity never shrinks. This is useful for:
//
//   - Code that needs predictable reallocation points
//   - Index-stable edits (Insert/Erase return index cursors)
//   - Interop with APIs that expect pointer+length access to contiguous data
//   - Porting code written against a classic vector contract
//
// # Basic Usage
//
//	v := vec.New[int]()   // or var v vec.Vector[int]
//	v.Push(1)
//	v.Push(2)
//	v.Push(3)
//
//	v.Insert(1, 9)        // [1 9 2 3]
//	v.Erase(1)            // [1 2 3]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth Policy
//
// Every growth step allocates a fresh buffer, relocates the live elements in
// order, and swaps ownership in O(1). Push and Insert grow 0 -> 1 and then
// double. Reserve(n) grows to exactly n. Resize(n) past capacity grows to
// max(n, 2*cap). Capacity is never reduced; Clear, Pop and shrinking Resize
// only move the length.
//
// # Checked and Unchecked Access
//
// Get, Set and Ptr do not bounds-check: an index outside [0, Len()) is
// undefined behavior. Builds with the vecdebug tag turn these violations
// into panics. At is the checked counterpart and returns an error wrapping
// ErrOutOfRange instead.
//
// # Thread Safety
//
// Vector is not safe for concurrent mutation. Callers that share a vector
// across goroutines must synchronize externally.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized, O(Len) on a growth step
//   - Insert/Erase: O(Len - i) element moves
//   - Get/Set/At/Len/Cap: O(1)
//   - Clear, Pop, shrinking Resize, Swap, Move: O(1)
//
// # Important Notes
//
//   - Slice views and Ptr results are valid only until the next operation
//     that reallocates or shifts elements
//   - Slots between Len() and Cap() may hold stale values; Resize zeroes
//     the slots it exposes
//   - Clone and CopyFrom are the deep-copy paths; assignment of Vector
//     values is not supported (the buffer would be aliased)
package vec
