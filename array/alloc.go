package array

// Allocator supplies the raw memory behind a Buffer. The three methods map
// one-to-one onto the allocate/reallocate/free triple that every Buffer
// operation is expressed in terms of.
//
// A nil return from Allocate or Reallocate signals allocation failure; the
// engine maps it to ErrOutOfMemory without touching prior storage. Reallocate
// must leave b valid and unchanged when it fails.
type Allocator interface {
	// Allocate returns a zeroed slice of exactly size bytes, or nil on failure.
	Allocate(size int) []byte

	// Reallocate resizes b to size bytes, preserving the first
	// min(len(b), size) bytes. It returns nil on failure, leaving b intact.
	// b may be nil, in which case Reallocate behaves like Allocate.
	Reallocate(size int, b []byte) []byte

	// Free releases a slice previously returned by Allocate or Reallocate.
	// A nil slice is a no-op.
	Free(b []byte)
}

// heapAllocator is the default Go-heap backed allocator.
// Allocation failure surfaces as a runtime panic, as with any make call,
// so in practice Allocate and Reallocate never return nil.
type heapAllocator struct{}

func (heapAllocator) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (heapAllocator) Reallocate(size int, b []byte) []byte {
	if size <= 0 {
		return nil
	}
	if size == len(b) {
		return b
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb
}

func (heapAllocator) Free(b []byte) {}

// DefaultAllocator returns the heap allocator used by New.
func DefaultAllocator() Allocator {
	return heapAllocator{}
}
