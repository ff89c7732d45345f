// Package pool is the fixed-record allocator behind jet term storage.
//
// What & Why:
//
//	A truncated series over a few variables at a moderate order holds
//	hundreds to thousands of (monomial, coefficient) records, and every
//	arithmetic operation produces a fresh series. Allocating those records
//	one by one would hand the garbage collector a steady stream of tiny
//	objects. Pool instead carves records out of large slabs ("blocks"),
//	hands them out as small integer Handles, and recycles released slots
//	through an intrusive free list.
//
// Contract:
//
//	Acquire() Handle      O(1) amortised; grows by one block when exhausted.
//	Release(h) error      returns the slot to the free list.
//	Slot(h) *Record[T]    in-place access to the record behind h.
//
// Algebra code only ever talks to this interface, so the allocation
// policy (block size, growth, recycling) can change without touching it.
//
// Pools are generic in the coefficient ring: Pool[float64] and
// Pool[complex128] have different record sizes and never share storage.
//
// Concurrency:
//
//	A Pool is NOT safe for concurrent use. Keep one pool per goroutine.
package pool
