package array

// White box testing of the buffer engine.

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/hexkit/hexkit/internal/testutils"
)

// newTestBuffer is a helper for creating a valid buffer with cleanup.
func newTestBuffer(t *testing.T, capacity, elemSize int) *Buffer {
	t.Helper()
	b := New(capacity, elemSize)
	if !b.IsValid() {
		t.Fatalf("New(%d, %d) returned an invalid buffer", capacity, elemSize)
	}
	t.Cleanup(b.Destroy)
	return &b
}

// u32 encodes v as a 4-byte little-endian element.
func u32(v uint32) []byte {
	e := make([]byte, 4)
	binary.LittleEndian.PutUint32(e, v)
	return e
}

// at32 decodes element i as uint32, failing the test when i is not live.
func at32(t *testing.T, b *Buffer, i int) uint32 {
	t.Helper()
	raw := b.At(i)
	if raw == nil {
		t.Fatalf("At(%d) = nil, want a live element (count=%d)", i, b.Len())
	}
	return binary.LittleEndian.Uint32(raw)
}

// assertElements asserts that the buffer holds exactly the given uint32 elements.
func assertElements(t *testing.T, b *Buffer, want []uint32) {
	t.Helper()
	if b.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(want))
	}
	for i, w := range want {
		if got := at32(t, b, i); got != w {
			t.Errorf("element %d = %d, want %d", i, got, w)
		}
	}
}

func pushAll(t *testing.T, b *Buffer, vals ...uint32) {
	t.Helper()
	for _, v := range vals {
		if err := b.PushBack(u32(v)); err != nil {
			t.Fatalf("PushBack(%d) failed: %v", v, err)
		}
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		elemSize  int
		wantValid bool
	}{
		{"valid", 4, 8, true},
		{"single slot", 1, 1, true},
		{"zero capacity", 0, 8, false},
		{"zero elem size", 4, 0, false},
		{"both zero", 0, 0, false},
		{"negative capacity", -1, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.capacity, tt.elemSize)
			defer b.Destroy()
			if got := b.IsValid(); got != tt.wantValid {
				t.Errorf("IsValid() = %v, want %v", got, tt.wantValid)
			}
			if !tt.wantValid {
				if b.Len() != 0 || b.Cap() != 0 || b.ElemSize() != 0 {
					t.Errorf("invalid buffer is not zeroed: len=%d cap=%d elemSize=%d",
						b.Len(), b.Cap(), b.ElemSize())
				}
			}
		})
	}
}

func TestNewAllocationFailure(t *testing.T) {
	alloc := &testutils.FailingAllocator{FailAfter: 0}
	b := NewIn(alloc, 4, 8)
	if b.IsValid() {
		t.Fatal("NewIn with a failing allocator returned a valid buffer")
	}
}

func TestGrowCapacity(t *testing.T) {
	tests := []struct {
		required int
		want     int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 4},
		{4, 8},
		{5, 8},
		{7, 8},
		{8, 16},
		{9, 16},
		{1023, 1024},
		{1024, 2048},
	}
	for _, tt := range tests {
		if got := GrowCapacity(tt.required); got != tt.want {
			t.Errorf("GrowCapacity(%d) = %d, want %d", tt.required, got, tt.want)
		}
	}
}

func TestPushBackGrowth(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 10, 20, 30, 40)
	if b.Len() != 4 || b.Cap() != 4 {
		t.Fatalf("after 4 pushes: len=%d cap=%d, want 4/4", b.Len(), b.Cap())
	}

	// The fifth push needs 5 slots; the policy grows to the next power of two.
	if err := b.PushBack(u32(50)); err != nil {
		t.Fatalf("PushBack failed: %v", err)
	}
	if b.Len() != 5 || b.Cap() != 8 {
		t.Fatalf("after growth: len=%d cap=%d, want 5/8", b.Len(), b.Cap())
	}
	if got := at32(t, b, 4); got != 50 {
		t.Errorf("At(4) = %d, want 50", got)
	}
	assertElements(t, b, []uint32{10, 20, 30, 40, 50})
}

func TestPushPopRoundTrip(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2)

	before := b.Len()
	if err := b.PushBack(u32(99)); err != nil {
		t.Fatalf("PushBack failed: %v", err)
	}
	out, err := b.PopBack()
	if err != nil {
		t.Fatalf("PopBack failed: %v", err)
	}
	if got := binary.LittleEndian.Uint32(out); got != 99 {
		t.Errorf("PopBack = %d, want 99", got)
	}
	if b.Len() != before {
		t.Errorf("Len() = %d after round trip, want %d", b.Len(), before)
	}
}

func TestInsertShift(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2, 3) // [x, y, z]

	elems := append(u32(7), u32(8)...)
	if err := b.Insert(2, elems); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	assertElements(t, b, []uint32{1, 2, 7, 8, 3})
}

func TestInsertBounds(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2)

	// Insert at count appends.
	if err := b.Insert(2, u32(3)); err != nil {
		t.Fatalf("Insert at count failed: %v", err)
	}
	if err := b.Insert(4, u32(9)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Insert past count = %v, want ErrOutOfBounds", err)
	}
	if err := b.Insert(-1, u32(9)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Insert at -1 = %v, want ErrOutOfBounds", err)
	}
	assertElements(t, b, []uint32{1, 2, 3})
}

func TestInsertEmptySlice(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1)
	if err := b.Insert(0, nil); err != nil {
		t.Fatalf("Insert of zero elements failed: %v", err)
	}
	assertElements(t, b, []uint32{1})
}

func TestInsertZero(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2, 3)
	if err := b.InsertZero(1, 2); err != nil {
		t.Fatalf("InsertZero failed: %v", err)
	}
	assertElements(t, b, []uint32{1, 0, 0, 2, 3})

	if err := b.InsertZero(9, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("InsertZero past count = %v, want ErrOutOfBounds", err)
	}
}

func TestPushFront(t *testing.T) {
	b := newTestBuffer(t, 2, 4)
	pushAll(t, b, 2, 3)
	if err := b.PushFront(u32(1)); err != nil {
		t.Fatalf("PushFront failed: %v", err)
	}
	assertElements(t, b, []uint32{1, 2, 3})
}

func TestPushAt(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 3)

	if err := b.PushAt(1, u32(2)); err != nil {
		t.Fatalf("PushAt failed: %v", err)
	}
	assertElements(t, b, []uint32{1, 2, 3})

	// PushAt requires a live element to displace; the one-past-the-end index
	// accepted by Insert is rejected here.
	if err := b.PushAt(3, u32(9)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("PushAt(count) = %v, want ErrOutOfBounds", err)
	}
}

func TestPopFront(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2, 3)

	out, err := b.PopFront()
	if err != nil {
		t.Fatalf("PopFront failed: %v", err)
	}
	if got := binary.LittleEndian.Uint32(out); got != 1 {
		t.Errorf("PopFront = %d, want 1", got)
	}
	assertElements(t, b, []uint32{2, 3})
}

func TestPopAt(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2, 3)

	out, err := b.PopAt(1)
	if err != nil {
		t.Fatalf("PopAt failed: %v", err)
	}
	if got := binary.LittleEndian.Uint32(out); got != 2 {
		t.Errorf("PopAt(1) = %d, want 2", got)
	}
	assertElements(t, b, []uint32{1, 3})

	if _, err := b.PopAt(b.Len()); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("PopAt(count) = %v, want ErrOutOfBounds", err)
	}
}

func TestPopEmpty(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	if _, err := b.PopBack(); !errors.Is(err, ErrEmpty) {
		t.Errorf("PopBack on empty = %v, want ErrEmpty", err)
	}
	if _, err := b.PopFront(); !errors.Is(err, ErrEmpty) {
		t.Errorf("PopFront on empty = %v, want ErrEmpty", err)
	}
}

func TestAtBounds(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	for count := 0; count < 4; count++ {
		if got := b.At(count); got != nil {
			t.Errorf("At(%d) with count=%d = %v, want nil", count, count, got)
		}
		pushAll(t, b, uint32(count))
	}
	if got := b.At(-1); got != nil {
		t.Errorf("At(-1) = %v, want nil", got)
	}
}

func TestFrontBack(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2, 3)
	if got := binary.LittleEndian.Uint32(b.Front()); got != 1 {
		t.Errorf("Front() = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(b.Back()); got != 3 {
		t.Errorf("Back() = %d, want 3", got)
	}
}

func TestEnd(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	if b.End() != 0 {
		t.Errorf("End() on empty = %d, want 0", b.End())
	}
	pushAll(t, b, 1, 2)
	if b.End() != 8 {
		t.Errorf("End() = %d, want 8", b.End())
	}
	if len(b.Bytes()) != b.End() {
		t.Errorf("len(Bytes()) = %d, End() = %d; want equal", len(b.Bytes()), b.End())
	}
}

func TestClear(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2, 3)
	capBefore := b.Cap()

	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", b.Len())
	}
	if b.Cap() != capBefore {
		t.Errorf("Cap() = %d after Clear, want %d", b.Cap(), capBefore)
	}
	if !b.IsValid() {
		t.Error("buffer became invalid after Clear")
	}
	// The cleared bytes remain until overwritten.
	if got := binary.LittleEndian.Uint32(b.storage[:4]); got != 1 {
		t.Errorf("storage byte remnant = %d, want 1", got)
	}
}

func TestFill(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1)

	b.Fill(u32(7))
	if b.Len() != b.Cap() {
		t.Fatalf("Len() = %d after Fill, want capacity %d", b.Len(), b.Cap())
	}
	assertElements(t, b, []uint32{7, 7, 7, 7})

	var invalid Buffer
	invalid.Fill(u32(7)) // Must not panic.
	if invalid.Len() != 0 {
		t.Errorf("Fill on invalid buffer set count = %d", invalid.Len())
	}
}

func TestReserve(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	pushAll(t, b, 1, 2)

	if err := b.Reserve(2); err != nil {
		t.Fatalf("Reserve below capacity failed: %v", err)
	}
	if b.Cap() != 4 {
		t.Errorf("Cap() = %d after no-op Reserve, want 4", b.Cap())
	}

	if err := b.Reserve(100); err != nil {
		t.Fatalf("Reserve failed: %v", err)
	}
	if b.Cap() != 100 {
		t.Errorf("Cap() = %d, want 100", b.Cap())
	}
	assertElements(t, b, []uint32{1, 2})
}

func TestReserveFailureLeavesBufferIntact(t *testing.T) {
	alloc := &testutils.FailingAllocator{FailAfter: 1}
	b := NewIn(alloc, 4, 4)
	if !b.IsValid() {
		t.Fatal("NewIn failed before the allocator was exhausted")
	}
	pushAll(t, &b, 1, 2, 3)

	if err := b.Reserve(100); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("Reserve with exhausted allocator = %v, want ErrOutOfMemory", err)
	}
	if !b.IsValid() || b.Cap() != 4 {
		t.Fatalf("buffer changed after failed Reserve: valid=%v cap=%d", b.IsValid(), b.Cap())
	}
	assertElements(t, &b, []uint32{1, 2, 3})
}

func TestPushBackOutOfMemory(t *testing.T) {
	alloc := &testutils.FailingAllocator{FailAfter: 1}
	b := NewIn(alloc, 2, 4)
	pushAll(t, &b, 1, 2)

	if err := b.PushBack(u32(3)); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("PushBack with exhausted allocator = %v, want ErrOutOfMemory", err)
	}
	assertElements(t, &b, []uint32{1, 2})
}

func TestShrinkToFit(t *testing.T) {
	b := newTestBuffer(t, 8, 4)
	pushAll(t, b, 1, 2, 3)

	shrunk, err := b.ShrinkToFit()
	if err != nil || !shrunk {
		t.Fatalf("ShrinkToFit = (%v, %v), want (true, nil)", shrunk, err)
	}
	if b.Cap() != 3 {
		t.Errorf("Cap() = %d after shrink, want 3", b.Cap())
	}
	assertElements(t, b, []uint32{1, 2, 3})

	// Already fit.
	shrunk, err = b.ShrinkToFit()
	if err != nil || shrunk {
		t.Fatalf("second ShrinkToFit = (%v, %v), want (false, nil)", shrunk, err)
	}
	if b.Cap() != 3 {
		t.Errorf("Cap() = %d after no-op shrink, want 3", b.Cap())
	}
}

func TestShrinkToFitEmpty(t *testing.T) {
	b := newTestBuffer(t, 8, 4)
	shrunk, err := b.ShrinkToFit()
	if !errors.Is(err, ErrEmpty) || shrunk {
		t.Fatalf("ShrinkToFit on empty = (%v, %v), want (false, ErrEmpty)", shrunk, err)
	}
	if b.Cap() != 8 {
		t.Errorf("Cap() = %d, want untouched 8", b.Cap())
	}
}

func TestDestroyIdempotent(t *testing.T) {
	b := New(4, 4)
	pushAll(t, &b, 1, 2)

	b.Destroy()
	if b.IsValid() || b.Len() != 0 || b.Cap() != 0 || b.ElemSize() != 0 {
		t.Fatalf("buffer not zeroed after Destroy: %+v", b)
	}
	b.Destroy() // Must be a no-op, not a fault.
	if b.Len() != 0 || b.Cap() != 0 {
		t.Fatal("second Destroy mutated the buffer")
	}
	// A destroyed buffer still answers queries gracefully.
	if b.At(0) != nil || !b.IsEmpty() {
		t.Error("destroyed buffer does not degrade gracefully")
	}
}

func TestDestroyReturnsStorage(t *testing.T) {
	alloc := &testutils.CountingAllocator{}
	b := NewIn(alloc, 4, 4)
	b.Destroy()
	b.Destroy()
	if alloc.FreeCalls != 1 {
		t.Errorf("FreeCalls = %d, want 1", alloc.FreeCalls)
	}
}

func TestCloneIndependence(t *testing.T) {
	b := newTestBuffer(t, 8, 4)
	pushAll(t, b, 1, 2, 3)

	c := b.Clone()
	defer c.Destroy()
	if c.Cap() != c.Len() || c.Len() != 3 {
		t.Fatalf("clone len=%d cap=%d, want 3/3", c.Len(), c.Cap())
	}
	if !b.Equal(&c) {
		t.Fatal("clone is not equal to its source")
	}

	// Mutating the clone must never affect the source bytes.
	copy(c.At(0), u32(99))
	if got := at32(t, b, 0); got != 1 {
		t.Errorf("source element 0 = %d after clone mutation, want 1", got)
	}
}

func TestCloneEmpty(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	c := b.Clone()
	if c.IsValid() {
		t.Error("clone of an empty buffer should be invalid")
	}
}

func TestEqual(t *testing.T) {
	a := newTestBuffer(t, 4, 4)
	b := newTestBuffer(t, 8, 4)
	pushAll(t, a, 1, 2)
	pushAll(t, b, 1, 2)

	// Capacity does not participate in equality.
	if !a.Equal(b) {
		t.Error("buffers with identical live bytes are not equal")
	}

	pushAll(t, b, 3)
	if a.Equal(b) {
		t.Error("buffers with different counts are equal")
	}

	c := newTestBuffer(t, 4, 8)
	if a.Equal(c) {
		t.Error("buffers with different element sizes are equal")
	}

	d := newTestBuffer(t, 4, 4)
	pushAll(t, d, 1, 9)
	if a.Equal(d) {
		t.Error("buffers with different bytes are equal")
	}
}

func TestSum64(t *testing.T) {
	a := newTestBuffer(t, 4, 4)
	b := newTestBuffer(t, 16, 4)
	pushAll(t, a, 1, 2, 3)
	pushAll(t, b, 1, 2, 3)

	if a.Sum64() != b.Sum64() {
		t.Error("equal buffers produced different fingerprints")
	}
	pushAll(t, b, 4)
	if a.Sum64() == b.Sum64() {
		t.Error("different buffers produced the same fingerprint")
	}
}

func TestElemSizePanics(t *testing.T) {
	b := newTestBuffer(t, 4, 4)
	assertPanics(t, "short element", func() { _ = b.PushBack([]byte{1}) })
	assertPanics(t, "ragged insert", func() { _ = b.Insert(0, []byte{1, 2, 3, 4, 5}) })
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", name)
		}
	}()
	fn()
}

// TestCountInvariant drives a random operation sequence and asserts the
// count <= capacity invariant after every call.
func TestCountInvariant(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	t.Logf("Using random seed: %d", seed)

	b := newTestBuffer(t, 2, 4)
	for i := 0; i < 1000; i++ {
		switch r.Intn(6) {
		case 0:
			_ = b.PushBack(u32(r.Uint32()))
		case 1:
			_ = b.PushFront(u32(r.Uint32()))
		case 2:
			_, _ = b.PopBack()
		case 3:
			_, _ = b.PopFront()
		case 4:
			if n := b.Len(); n > 0 {
				_, _ = b.PopAt(r.Intn(n))
			}
		case 5:
			_ = b.Insert(r.Intn(b.Len()+1), append(u32(1), u32(2)...))
		}
		if b.Len() > b.Cap() {
			t.Fatalf("invariant violation after op %d: count=%d capacity=%d", i, b.Len(), b.Cap())
		}
	}
}

func TestBytesOrder(t *testing.T) {
	b := newTestBuffer(t, 4, 2)
	for _, e := range [][]byte{{1, 2}, {3, 4}, {5, 6}} {
		if err := b.PushBack(e); err != nil {
			t.Fatalf("PushBack failed: %v", err)
		}
	}
	want := []byte{1, 2, 3, 4, 5, 6}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Bytes() = % x, want % x", b.Bytes(), want)
	}
}

func BenchmarkPushBack(b *testing.B) {
	buf := New(16, 8)
	defer buf.Destroy()
	elem := make([]byte, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.PushBack(elem)
	}
}

func BenchmarkPopFront(b *testing.B) {
	buf := New(b.N+1, 8)
	defer buf.Destroy()
	elem := make([]byte, 8)
	for i := 0; i < b.N; i++ {
		_ = buf.PushBack(elem)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = buf.PopFront()
	}
}

func BenchmarkInsertMiddle(b *testing.B) {
	buf := New(16, 8)
	defer buf.Destroy()
	elem := make([]byte, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Insert(buf.Len()/2, elem)
	}
}
