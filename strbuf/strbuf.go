// Package strbuf implements a growable byte string: the textually-specialized
// counterpart to the array engine. It keeps its own length-tracked storage but
// shares the engine's allocator surface and power-of-two growth policy, so
// reallocation behaves identically across the collection: growth never settles
// on a tight fit, and a failed reallocation leaves the prior state valid.
package strbuf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/hexkit/hexkit/array"
)

var (
	ErrInvalidDst  = errors.New("destination string is invalid")
	ErrInvalidSrc  = errors.New("source string is invalid")
	ErrOutOfRange  = errors.New("substring start is out of range")
	ErrOutOfMemory = array.ErrOutOfMemory
)

// String is a growable byte string. The zero String is invalid; validity is
// established by the constructors and lost by Destroy. Mutating operations on
// an invalid String return ErrInvalidDst.
type String struct {
	alloc  array.Allocator
	data   []byte // Allocated storage; the live prefix holds length bytes.
	length int
}

// New creates a string holding a copy of s. An empty s yields a valid empty
// string with a single-byte allocation.
func New(s string) String {
	return NewIn(array.DefaultAllocator(), s)
}

// NewIn is like New but draws storage from the given allocator.
func NewIn(alloc array.Allocator, s string) String {
	capacity := len(s)
	if capacity == 0 {
		capacity = 1
	}
	data := alloc.Allocate(capacity)
	if data == nil {
		return String{}
	}
	copy(data, s)
	return String{alloc: alloc, data: data, length: len(s)}
}

// Repeat creates a string of n copies of c. Zero n yields an invalid string.
func Repeat(c byte, n int) String {
	if n <= 0 {
		return String{}
	}
	alloc := array.DefaultAllocator()
	data := alloc.Allocate(n)
	if data == nil {
		return String{}
	}
	for i := range data {
		data[i] = c
	}
	return String{alloc: alloc, data: data, length: n}
}

// Format creates a string from a fmt format specifier.
func Format(format string, args ...any) String {
	return New(fmt.Sprintf(format, args...))
}

// Destroy releases the storage and zeroes all fields; safe to call twice.
func (s *String) Destroy() {
	if s.data != nil {
		s.alloc.Free(s.data)
	}
	*s = String{}
}

// Clone returns an independent copy. An invalid source yields an invalid
// result.
func (s *String) Clone() String {
	if !s.IsValid() {
		return String{}
	}
	return NewIn(s.alloc, s.String())
}

// IsValid reports whether the string owns storage.
func (s *String) IsValid() bool { return s.data != nil }

// IsEmpty reports whether the string is invalid or holds no bytes.
func (s *String) IsEmpty() bool { return !s.IsValid() || s.length == 0 }

// Len returns the number of live bytes.
func (s *String) Len() int { return s.length }

// Cap returns the allocated byte capacity.
func (s *String) Cap() int { return len(s.data) }

// String returns a copy of the live bytes as a Go string.
func (s *String) String() string { return string(s.data[:s.length]) }

// Bytes returns a view of the live bytes. The view is invalidated by any
// mutating call that may reallocate.
func (s *String) Bytes() []byte { return s.data[:s.length] }

// Hash returns an xxhash fingerprint of the live bytes.
func (s *String) Hash() uint64 { return xxhash.Sum64(s.Bytes()) }

// Append appends str, growing the storage by the engine's power-of-two
// policy when needed.
func (s *String) Append(str string) error {
	if !s.IsValid() {
		return ErrInvalidDst
	}
	if len(str) == 0 {
		return nil
	}
	if err := s.grow(s.length + len(str)); err != nil {
		return err
	}
	copy(s.data[s.length:], str)
	s.length += len(str)
	return nil
}

// AppendString appends the live bytes of other.
func (s *String) AppendString(other *String) error {
	if other == nil || !other.IsValid() {
		return ErrInvalidSrc
	}
	return s.Append(other.String())
}

// AppendByte appends a single byte, growing if needed.
func (s *String) AppendByte(c byte) error {
	if !s.IsValid() {
		return ErrInvalidDst
	}
	if err := s.grow(s.length + 1); err != nil {
		return err
	}
	s.data[s.length] = c
	s.length++
	return nil
}

// HasPrefix reports whether the string starts with prefix.
func (s *String) HasPrefix(prefix string) bool {
	return s.IsValid() && bytes.HasPrefix(s.Bytes(), []byte(prefix))
}

// HasSuffix reports whether the string ends with suffix.
func (s *String) HasSuffix(suffix string) bool {
	return s.IsValid() && bytes.HasSuffix(s.Bytes(), []byte(suffix))
}

// Substring reduces the string in place to the range [start, start+length),
// shifting the retained bytes to the front. A length that overruns the live
// bytes is clamped. Capacity is untouched.
func (s *String) Substring(start, length int) error {
	if !s.IsValid() {
		return ErrInvalidDst
	}
	if start < 0 || start >= s.length {
		return ErrOutOfRange
	}
	if max := s.length - start; length > max {
		length = max
	}
	if length < 0 {
		length = 0
	}
	copy(s.data, s.data[start:start+length])
	s.length = length
	return nil
}

// Equal reports whether both strings hold identical live bytes.
func (s *String) Equal(other *String) bool {
	if other == nil || s.length != other.length {
		return false
	}
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// grow ensures capacity for required bytes. On reallocation failure the
// prior storage remains valid and untouched.
func (s *String) grow(required int) error {
	if required <= len(s.data) {
		return nil
	}
	data := s.alloc.Reallocate(array.GrowCapacity(required), s.data)
	if data == nil {
		return ErrOutOfMemory
	}
	s.data = data
	return nil
}
