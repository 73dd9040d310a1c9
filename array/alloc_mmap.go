//go:build unix

package array

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

// MmapAllocator draws buffer storage from anonymous mapped pages outside the
// Go heap, keeping large buffers invisible to the garbage collector.
//
// Storage obtained from this allocator must never hold Go pointers; the
// engine only ever stores raw element bytes, and typed views enforce the same
// restriction (see Vector).
type MmapAllocator struct{}

func (MmapAllocator) Allocate(size int) []byte {
	if size <= 0 {
		return nil
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil
	}
	return data
}

func (a MmapAllocator) Reallocate(size int, b []byte) []byte {
	if size <= 0 {
		return nil
	}
	data := a.Allocate(size)
	if data == nil {
		return nil // Failure leaves b mapped and untouched.
	}
	copy(data, b)
	a.Free(b)
	return data
}

// Free releases the mapping back to the operating system.
func (a MmapAllocator) Free(b []byte) {
	if b == nil {
		return
	}
	if err := unix.Munmap(b); err != nil {
		slog.Error("failed to unmap buffer storage", "error", err)
	}
}
