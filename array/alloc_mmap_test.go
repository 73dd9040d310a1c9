//go:build unix

package array

import (
	"bytes"
	"testing"
)

func TestMmapAllocatorRoundTrip(t *testing.T) {
	var alloc MmapAllocator

	data := alloc.Allocate(4096)
	if data == nil {
		t.Fatal("Allocate returned nil")
	}
	copy(data, []byte("hexkit"))

	data = alloc.Reallocate(8192, data)
	if data == nil {
		t.Fatal("Reallocate returned nil")
	}
	if !bytes.Equal(data[:6], []byte("hexkit")) {
		t.Errorf("contents lost across Reallocate: % x", data[:6])
	}
	alloc.Free(data)
	alloc.Free(nil) // Must be a no-op.
}

func TestBufferOnMmapStorage(t *testing.T) {
	b := NewIn(MmapAllocator{}, 2, 4)
	if !b.IsValid() {
		t.Fatal("NewIn with MmapAllocator returned an invalid buffer")
	}
	defer b.Destroy()

	for i := uint32(0); i < 100; i++ {
		if err := b.PushBack(u32(i)); err != nil {
			t.Fatalf("PushBack(%d) failed: %v", i, err)
		}
	}
	for i := uint32(0); i < 100; i++ {
		if got := at32(t, &b, int(i)); got != i {
			t.Fatalf("element %d = %d after mmap growth", i, got)
		}
	}
}
