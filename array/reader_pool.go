package array

import "sync"

// ReaderPool is a pool of reusable Readers over one Buffer.
// A pool is safe for concurrent use by multiple goroutines.
type ReaderPool struct {
	pool sync.Pool
}

func NewReaderPool(b *Buffer) *ReaderPool {
	return &ReaderPool{
		pool: sync.Pool{
			New: func() any {
				return NewReader(b)
			},
		},
	}
}

// Get retrieves a reader from the pool or creates a new one.
func (p *ReaderPool) Get() *Reader {
	return p.pool.Get().(*Reader)
}

// Put rewinds a reader and returns it to the pool for reuse.
func (p *ReaderPool) Put(r *Reader) {
	p.pool.Put(r.Reset())
}
