package pool

import "sync"

// SlicePool reuses scratch slices of T between calls.
//
// The correlation routines need short-lived index caches sized by the bin
// edges. Reusing them keeps repeated live-acquisition calls free of
// steady-state allocations.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves a slice of exactly size elements.
//
// The contents of the returned slice are unspecified; callers overwrite every
// element they read. The caller must call the returned cleanup function,
// typically with defer, and must not use the slice afterwards.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []T: A slice with length equal to size
//   - func(): Cleanup function returning the slice to the pool
//
// Example:
//
//	cache, cleanup := pool.GetIntSlice(len(edges))
//	defer cleanup()
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}

var intSlicePool = NewSlicePool[int]()

// GetIntSlice retrieves an int scratch slice, used for search index caches.
func GetIntSlice(size int) ([]int, func()) {
	return intSlicePool.Get(size)
}
