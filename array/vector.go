package array

import "unsafe"

// Vector is a typed view over the byte-addressed Buffer engine. The element
// size is fixed at unsafe.Sizeof(T) and the growth, shift and validation
// semantics are exactly those of Buffer.
//
// T must be a fixed-size type that contains no pointers: storage may live
// outside the Go heap (see MmapAllocator) and elements are moved with raw
// byte copies the garbage collector never observes.
//
// Element pointers returned by At, Front, Back and Slice are invalidated by
// any mutating call that may reallocate.
type Vector[T any] struct {
	buf Buffer
}

// NewVector creates a vector with room for capacity elements. Like New, it
// fails soft: the result is invalid on zero capacity, zero-sized T or
// allocation failure.
func NewVector[T any](capacity int) Vector[T] {
	return NewVectorIn[T](DefaultAllocator(), capacity)
}

// NewVectorIn is like NewVector but draws storage from the given allocator.
func NewVectorIn[T any](alloc Allocator, capacity int) Vector[T] {
	var zero T
	return Vector[T]{buf: NewIn(alloc, capacity, int(unsafe.Sizeof(zero)))}
}

// Raw returns the underlying byte-addressed buffer.
func (v *Vector[T]) Raw() *Buffer { return &v.buf }

// Destroy releases the storage and zeroes all fields; safe to call twice.
func (v *Vector[T]) Destroy() { v.buf.Destroy() }

// Clone returns an independent copy of the live elements with capacity
// trimmed to the element count.
func (v *Vector[T]) Clone() Vector[T] {
	return Vector[T]{buf: v.buf.Clone()}
}

func (v *Vector[T]) IsValid() bool { return v.buf.IsValid() }
func (v *Vector[T]) IsEmpty() bool { return v.buf.IsEmpty() }
func (v *Vector[T]) Len() int      { return v.buf.Len() }
func (v *Vector[T]) Cap() int      { return v.buf.Cap() }

// Equal reports whether both vectors hold identical live elements,
// compared as raw bytes.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	return v.buf.Equal(&other.buf)
}

// Sum64 returns an xxhash fingerprint of the live element bytes.
func (v *Vector[T]) Sum64() uint64 { return v.buf.Sum64() }

func (v *Vector[T]) Reserve(n int) error { return v.buf.Reserve(n) }

func (v *Vector[T]) ShrinkToFit() (bool, error) { return v.buf.ShrinkToFit() }

func (v *Vector[T]) Clear() { v.buf.Clear() }

// Fill overwrites every slot up to the capacity with x and sets the length
// to the capacity.
func (v *Vector[T]) Fill(x T) {
	v.buf.Fill(elemBytes(&x))
}

// InsertSlice inserts the elements of xs starting at index, shifting
// existing elements right.
func (v *Vector[T]) InsertSlice(index int, xs []T) error {
	if len(xs) == 0 {
		if index < 0 || index > v.buf.count {
			return ErrOutOfBounds
		}
		return nil
	}
	return v.buf.Insert(index, sliceBytes(xs))
}

// InsertZero inserts n zero-valued slots starting at index.
func (v *Vector[T]) InsertZero(index, n int) error {
	return v.buf.InsertZero(index, n)
}

func (v *Vector[T]) PushBack(x T) error {
	return v.buf.PushBack(elemBytes(&x))
}

func (v *Vector[T]) PushFront(x T) error {
	return v.buf.PushFront(elemBytes(&x))
}

// PushAt inserts x at an existing index, displacing the element there.
func (v *Vector[T]) PushAt(index int, x T) error {
	return v.buf.PushAt(index, elemBytes(&x))
}

func (v *Vector[T]) PopBack() (T, error) {
	var out T
	if v.buf.count == 0 {
		return out, ErrEmpty
	}
	v.buf.popAt(v.buf.count-1, elemBytes(&out))
	return out, nil
}

func (v *Vector[T]) PopFront() (T, error) {
	var out T
	if v.buf.count == 0 {
		return out, ErrEmpty
	}
	v.buf.popAt(0, elemBytes(&out))
	return out, nil
}

func (v *Vector[T]) PopAt(index int) (T, error) {
	var out T
	if index < 0 || index >= v.buf.count {
		return out, ErrOutOfBounds
	}
	v.buf.popAt(index, elemBytes(&out))
	return out, nil
}

// At returns a pointer to element index, or ok == false when index is not a
// live element.
func (v *Vector[T]) At(index int) (_ *T, ok bool) {
	raw := v.buf.At(index)
	if raw == nil {
		return nil, false
	}
	return (*T)(unsafe.Pointer(&raw[0])), true
}

// Front returns a pointer to the first live element. The vector must be
// non-empty; this precondition is not checked.
func (v *Vector[T]) Front() *T {
	return (*T)(unsafe.Pointer(&v.buf.Front()[0]))
}

// Back returns a pointer to the last live element. The vector must be
// non-empty; this precondition is not checked.
func (v *Vector[T]) Back() *T {
	return (*T)(unsafe.Pointer(&v.buf.Back()[0]))
}

// Slice returns a typed view of the live elements.
func (v *Vector[T]) Slice() []T {
	if v.buf.count == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&v.buf.storage[0])), v.buf.count)
}

func elemBytes[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), int(unsafe.Sizeof(*p)))
}

func sliceBytes[T any](xs []T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&xs[0])), len(xs)*int(unsafe.Sizeof(xs[0])))
}
