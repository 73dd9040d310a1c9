package array

import (
	"errors"
	"io"
)

// Reader reads a Buffer's live bytes sequentially.
// It implements the [io.Reader], [io.ByteReader] and [io.Seeker] interface.
//
// A Reader observes the buffer live: mutations between reads move the live
// region underneath it. Like interior views, a Reader position should not be
// trusted across mutating calls.
type Reader struct {
	b   *Buffer
	pos int
}

func NewReader(b *Buffer) *Reader {
	return &Reader{b: b}
}

// Reset resets the reader to the start of the live region.
func (r *Reader) Reset() *Reader {
	r.pos = 0
	return r
}

// Offset returns the byte offset of the next read.
func (r *Reader) Offset() int {
	return r.pos
}

// Read reads data from the live region into p and returns the number of
// bytes read. It returns [io.EOF] once the read position reaches the end of
// the live region.
func (r *Reader) Read(p []byte) (n int, err error) {
	live := r.b.Bytes()
	if r.pos >= len(live) {
		return 0, io.EOF
	}
	n = copy(p, live[r.pos:])
	r.pos += n
	return n, nil
}

// ReadByte reads a single byte from the live region.
func (r *Reader) ReadByte() (byte, error) {
	live := r.b.Bytes()
	if r.pos >= len(live) {
		return 0, io.EOF
	}
	c := live[r.pos]
	r.pos++
	return c, nil
}

// Seek sets the offset for the next read, modifying the reader's internal
// state. It implements the [io.Seeker] interface.
//
// Seeking to an offset before the start of the live region is an error.
// Seeking past its end is allowed; subsequent reads return io.EOF.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = int64(r.pos) + offset
	case io.SeekEnd:
		abs = int64(r.b.End()) + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("invalid offset: cannot be negative")
	}
	r.pos = int(abs)
	return abs, nil
}
