package testutils

// CountingAllocator is a heap-backed allocator that records call counts so
// tests can assert on allocation traffic and leak-freedom.
type CountingAllocator struct {
	AllocCalls   int
	ReallocCalls int
	FreeCalls    int
}

func (a *CountingAllocator) Allocate(size int) []byte {
	a.AllocCalls++
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (a *CountingAllocator) Reallocate(size int, b []byte) []byte {
	a.ReallocCalls++
	if size <= 0 {
		return nil
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb
}

func (a *CountingAllocator) Free(b []byte) {
	if b != nil {
		a.FreeCalls++
	}
}

func (a *CountingAllocator) Reset() {
	a.AllocCalls = 0
	a.ReallocCalls = 0
	a.FreeCalls = 0
}

// FailingAllocator is a heap-backed allocator that starts failing after a
// fixed number of successful allocation calls. Free always succeeds.
type FailingAllocator struct {
	FailAfter int // Successful Allocate/Reallocate calls before failures begin.
	calls     int
}

func (a *FailingAllocator) Allocate(size int) []byte {
	if a.nextFails() || size <= 0 {
		return nil
	}
	return make([]byte, size)
}

func (a *FailingAllocator) Reallocate(size int, b []byte) []byte {
	if a.nextFails() || size <= 0 {
		return nil
	}
	nb := make([]byte, size)
	copy(nb, b)
	return nb
}

func (a *FailingAllocator) Free(b []byte) {}

func (a *FailingAllocator) nextFails() bool {
	a.calls++
	return a.calls > a.FailAfter
}
