package bitmap

import "sync"

// Pool is a thread-safe pool for reusing Float scratch buffers.
//
// Pool groups buffers by their dimensions and channel count. Renderers take
// scratch buffers from a pool and return them on Destroy, so repeated
// renders of the same geometry do not reallocate.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Float
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical float buffer shapes.
type poolKey struct {
	width    int
	height   int
	channels int
}

// NewPool creates a pool retaining at most maxPerBucket buffers per shape.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Float),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed float buffer of the given shape, reusing a pooled one
// when available.
func (p *Pool) Get(w, h, channels int) (*Float, error) {
	key := poolKey{width: w, height: h, channels: channels}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		f := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		f.Clear()
		return f, nil
	}
	p.mu.Unlock()

	return NewFloat(w, h, channels)
}

// Put returns a buffer to the pool. Nil buffers and buffers beyond the
// bucket capacity are discarded.
func (p *Pool) Put(f *Float) {
	if f == nil {
		return
	}
	key := poolKey{width: f.W, height: f.H, channels: f.Channels}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, f)
}

// Len returns the number of pooled buffers across all shapes.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool backs renderers created without an explicit pool.
var defaultPool = NewPool(8)

// DefaultPool returns the package-level pool.
func DefaultPool() *Pool {
	return defaultPool
}
