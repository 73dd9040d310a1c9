// Package array implements a type-erased, contiguous resizable buffer of
// fixed-size elements. It supports insertion, removal and random access at any
// position, with amortized-O(1) append and power-of-two capacity growth.
//
// The engine is byte addressed: a Buffer owns a single contiguous storage
// region and expresses every operation in element-size-scaled byte offsets.
// The Vector type layers a typed view on top for callers that know their
// element type at compile time.
//
// Buffers are single-owner and not safe for concurrent use.
package array

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrOutOfBounds = errors.New("index is out of bounds")
	ErrOutOfMemory = errors.New("allocation failed")
	ErrEmpty       = errors.New("buffer is empty")
)

// Buffer is a growable contiguous store of fixed-size elements.
//
// A Buffer is valid only when it holds storage, a positive capacity and a
// positive element size; the zero Buffer is invalid. Invalid buffers reject
// positional operations and degrade gracefully on queries (zero lengths, nil
// views). Validity is established by New and lost by Destroy.
//
// Views returned by At, Front, Back and Bytes alias the storage region and
// are invalidated by any mutating call that may reallocate.
type Buffer struct {
	alloc    Allocator
	storage  []byte // capacity*elemSize bytes; uninitialized past count*elemSize.
	count    int    // Live elements; 0 <= count <= capacity.
	capacity int    // Allocated element slots.
	elemSize int    // Bytes per element; fixed at creation.
}

// New creates a buffer with room for capacity elements of elemSize bytes.
// It fails soft: on zero arguments or allocation failure the returned buffer
// is the zero Buffer, detectable via IsValid.
func New(capacity, elemSize int) Buffer {
	return NewIn(DefaultAllocator(), capacity, elemSize)
}

// NewIn is like New but draws storage from the given allocator.
func NewIn(alloc Allocator, capacity, elemSize int) Buffer {
	if capacity <= 0 || elemSize <= 0 {
		return Buffer{}
	}
	storage := alloc.Allocate(capacity * elemSize)
	if storage == nil {
		return Buffer{}
	}
	return Buffer{
		alloc:    alloc,
		storage:  storage,
		capacity: capacity,
		elemSize: elemSize,
	}
}

// Destroy releases the storage and zeroes all fields. It is safe to call on
// an already-destroyed or invalid buffer.
func (b *Buffer) Destroy() {
	if b.storage != nil {
		b.alloc.Free(b.storage)
	}
	*b = Buffer{}
}

// Clone returns an independent buffer holding a byte-for-byte duplicate of
// the live elements, with capacity trimmed to the element count. An empty or
// invalid source yields the zero Buffer.
func (b *Buffer) Clone() Buffer {
	n := b.count * b.elemSize
	if n == 0 {
		return Buffer{}
	}
	storage := b.alloc.Allocate(n)
	if storage == nil {
		return Buffer{}
	}
	copy(storage, b.storage[:n])
	return Buffer{
		alloc:    b.alloc,
		storage:  storage,
		count:    b.count,
		capacity: b.count,
		elemSize: b.elemSize,
	}
}

// IsValid reports whether the buffer holds storage, a positive capacity and a
// positive element size.
func (b *Buffer) IsValid() bool {
	return b.storage != nil && b.capacity > 0 && b.elemSize > 0
}

// IsEmpty reports whether the buffer holds no live elements.
// It is independent of validity.
func (b *Buffer) IsEmpty() bool {
	return b.count == 0
}

// Equal reports whether both buffers hold the same element count, element
// size and identical live bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.count != other.count || b.elemSize != other.elemSize {
		return false
	}
	n := b.count * b.elemSize
	return bytes.Equal(b.storage[:n], other.storage[:n])
}

// Sum64 returns an xxhash fingerprint of the live bytes.
func (b *Buffer) Sum64() uint64 {
	return xxhash.Sum64(b.Bytes())
}

// Len returns the number of live elements.
func (b *Buffer) Len() int { return b.count }

// Cap returns the number of allocated element slots.
func (b *Buffer) Cap() int { return b.capacity }

// ElemSize returns the fixed byte width of each element.
func (b *Buffer) ElemSize() int { return b.elemSize }

// Bytes returns a view of the live region, elements 0 through Len.
func (b *Buffer) Bytes() []byte {
	return b.storage[:b.count*b.elemSize]
}

// End returns the byte offset one past the last live element. It is a
// comparison sentinel for range arithmetic over Bytes, never an index of a
// live element.
func (b *Buffer) End() int {
	return b.count * b.elemSize
}

// Reserve grows the allocation to hold at least n elements. It is a no-op
// success when the current capacity suffices and never shrinks. On
// reallocation failure it returns ErrOutOfMemory with the buffer unchanged;
// the prior allocation remains valid and untouched.
func (b *Buffer) Reserve(n int) error {
	if b.capacity >= n {
		return nil
	}
	if b.elemSize <= 0 {
		// A destroyed or zero buffer has no element size to scale by.
		return ErrOutOfMemory
	}
	storage := b.alloc.Reallocate(n*b.elemSize, b.storage)
	if storage == nil {
		return ErrOutOfMemory
	}
	b.storage = storage
	b.capacity = n
	return nil
}

// ShrinkToFit reallocates storage down to exactly the live element count.
// It returns (false, nil) when count already equals capacity, and
// (false, ErrEmpty) when there are no live elements to shrink to; capacity is
// untouched in both cases. On reallocation failure the buffer keeps its prior
// valid state.
func (b *Buffer) ShrinkToFit() (shrunk bool, err error) {
	if b.count == b.capacity {
		return false, nil
	}
	if b.count == 0 {
		return false, ErrEmpty
	}
	storage := b.alloc.Reallocate(b.count*b.elemSize, b.storage)
	if storage == nil {
		return false, ErrOutOfMemory
	}
	b.storage = storage
	b.capacity = b.count
	return true, nil
}

// Clear sets the element count to zero. Storage and capacity are untouched;
// previously written bytes past the new count remain until overwritten.
func (b *Buffer) Clear() {
	b.count = 0
}

// Fill overwrites every slot from 0 to capacity with a copy of elem and sets
// the count to the capacity. It is a no-op on an invalid buffer.
func (b *Buffer) Fill(elem []byte) {
	if !b.IsValid() {
		return
	}
	b.checkElem(elem)
	for off := 0; off < b.capacity*b.elemSize; off += b.elemSize {
		copy(b.storage[off:off+b.elemSize], elem)
	}
	b.count = b.capacity
}

// Insert inserts len(elems)/ElemSize contiguous elements starting at index,
// shifting existing elements at and after index right to make room. Growth
// follows GrowCapacity computed against the resulting element count.
// It returns ErrOutOfBounds when index exceeds Len, and panics when elems is
// not a whole number of elements.
func (b *Buffer) Insert(index int, elems []byte) error {
	if index < 0 || index > b.count {
		return ErrOutOfBounds
	}
	if b.elemSize <= 0 {
		return ErrOutOfMemory
	}
	if len(elems)%b.elemSize != 0 {
		panic(fmt.Errorf("array: inserting %d bytes, element size is %d", len(elems), b.elemSize))
	}
	n := len(elems) / b.elemSize
	if n == 0 {
		return nil
	}
	if err := b.grow(b.count + n); err != nil {
		return err
	}
	off := index * b.elemSize
	end := b.count * b.elemSize
	shift := n * b.elemSize

	// Move elements at and after index right, then write the new ones.
	copy(b.storage[off+shift:end+shift], b.storage[off:end])
	copy(b.storage[off:off+shift], elems)

	b.count += n
	return nil
}

// InsertZero inserts n zero-filled slots starting at index, shifting existing
// elements right. It is the hole-punching counterpart to Insert for callers
// that want default-initialized elements without supplying bytes.
func (b *Buffer) InsertZero(index, n int) error {
	if index < 0 || index > b.count {
		return ErrOutOfBounds
	}
	if n <= 0 {
		return nil
	}
	if b.elemSize <= 0 {
		return ErrOutOfMemory
	}
	if err := b.grow(b.count + n); err != nil {
		return err
	}
	off := index * b.elemSize
	end := b.count * b.elemSize
	shift := n * b.elemSize

	copy(b.storage[off+shift:end+shift], b.storage[off:end])
	clear(b.storage[off : off+shift])

	b.count += n
	return nil
}

// PushBack appends one element, growing if needed.
func (b *Buffer) PushBack(elem []byte) error {
	if b.elemSize <= 0 {
		return ErrOutOfMemory
	}
	b.checkElem(elem)
	if err := b.grow(b.count + 1); err != nil {
		return err
	}
	copy(b.storage[b.count*b.elemSize:], elem)
	b.count++
	return nil
}

// PushFront inserts one element at index 0, shifting all existing elements
// right by one slot and growing if needed.
func (b *Buffer) PushFront(elem []byte) error {
	if b.elemSize <= 0 {
		return ErrOutOfMemory
	}
	b.checkElem(elem)
	return b.Insert(0, elem)
}

// PushAt inserts one element at an existing index, displacing the element
// currently there. Unlike Insert, the index must address a live element;
// PushAt returns ErrOutOfBounds when index >= Len.
func (b *Buffer) PushAt(index int, elem []byte) error {
	if index < 0 || index >= b.count {
		return ErrOutOfBounds
	}
	b.checkElem(elem)
	return b.Insert(index, elem)
}

// PopBack removes the last element and returns a copy of it.
func (b *Buffer) PopBack() ([]byte, error) {
	if b.count == 0 {
		return nil, ErrEmpty
	}
	out := make([]byte, b.elemSize)
	b.popAt(b.count-1, out)
	return out, nil
}

// PopFront removes the first element and returns a copy of it, shifting all
// remaining elements left by one slot.
func (b *Buffer) PopFront() ([]byte, error) {
	if b.count == 0 {
		return nil, ErrEmpty
	}
	out := make([]byte, b.elemSize)
	b.popAt(0, out)
	return out, nil
}

// PopAt removes the element at index and returns a copy of it, shifting
// subsequent elements left to close the gap.
func (b *Buffer) PopAt(index int) ([]byte, error) {
	if index < 0 || index >= b.count {
		return nil, ErrOutOfBounds
	}
	out := make([]byte, b.elemSize)
	b.popAt(index, out)
	return out, nil
}

// popAt copies element index into dst when dst is non-nil, closes the gap and
// decrements the count. The caller has validated index.
func (b *Buffer) popAt(index int, dst []byte) {
	off := index * b.elemSize
	if dst != nil {
		copy(dst, b.storage[off:off+b.elemSize])
	}
	end := b.count * b.elemSize
	copy(b.storage[off:], b.storage[off+b.elemSize:end])
	b.count--
}

// At returns a view of element index, or nil when index is not a live
// element. Callers must check for nil; an out-of-range index is never fatal.
func (b *Buffer) At(index int) []byte {
	if index < 0 || index >= b.count {
		return nil
	}
	off := index * b.elemSize
	return b.storage[off : off+b.elemSize : off+b.elemSize]
}

// Front returns a view of the first live element. The buffer must be
// non-empty; this precondition is not checked, mirroring direct array access.
func (b *Buffer) Front() []byte {
	return b.storage[0:b.elemSize:b.elemSize]
}

// Back returns a view of the last live element. The buffer must be
// non-empty; this precondition is not checked, mirroring direct array access.
func (b *Buffer) Back() []byte {
	off := (b.count - 1) * b.elemSize
	return b.storage[off : off+b.elemSize : off+b.elemSize]
}

// grow ensures capacity for required elements, applying the power-of-two
// growth policy when the current allocation is too small.
func (b *Buffer) grow(required int) error {
	if required <= b.capacity {
		return nil
	}
	return b.Reserve(GrowCapacity(required))
}

func (b *Buffer) checkElem(elem []byte) {
	if len(elem) != b.elemSize {
		panic(fmt.Errorf("array: element is %d bytes, element size is %d", len(elem), b.elemSize))
	}
}
