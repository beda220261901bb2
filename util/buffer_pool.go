package util

import (
	"sync"
	"sync/atomic"
)

// BytePool provides pooling for fixed-size byte scratch buffers to reduce
// allocations in full-buffer filter passes. Buffers are keyed by length so
// repeated passes over the same raster reuse the same storage.
type BytePool struct {
	pools map[int]*sync.Pool
	mu    sync.RWMutex

	// Metrics
	hits   atomic.Int64
	misses atomic.Int64
}

var scratchPool = &BytePool{pools: make(map[int]*sync.Pool)}

// NewBytePool creates an empty pool.
func NewBytePool() *BytePool {
	return &BytePool{pools: make(map[int]*sync.Pool)}
}

// Get retrieves a zeroed buffer of exactly size bytes from the pool or
// creates a new one.
func (p *BytePool) Get(size int) []uint8 {
	if size == 0 {
		return nil
	}

	// Fast path: read lock
	p.mu.RLock()
	pool, exists := p.pools[size]
	p.mu.RUnlock()

	if exists {
		if buf := pool.Get(); buf != nil {
			p.hits.Add(1)
			return buf.([]uint8)
		}
	} else {
		// Slow path: create new pool
		p.mu.Lock()
		// Double-check after acquiring write lock
		pool, exists = p.pools[size]
		if !exists {
			pool = &sync.Pool{}
			p.pools[size] = pool
		}
		p.mu.Unlock()
	}

	p.misses.Add(1)
	return make([]uint8, size)
}

// Put returns a buffer to the pool after clearing it.
func (p *BytePool) Put(buf []uint8) {
	if len(buf) == 0 {
		return
	}

	size := len(buf)

	p.mu.RLock()
	pool, exists := p.pools[size]
	p.mu.RUnlock()

	if exists {
		for i := range buf {
			buf[i] = 0
		}
		pool.Put(buf)
	}
}

// GetMetrics returns pool usage statistics.
func (p *BytePool) GetMetrics() (hits, misses int64) {
	return p.hits.Load(), p.misses.Load()
}

// Public API functions

// GetScratchBuffer retrieves a zeroed scratch buffer from the shared pool.
func GetScratchBuffer(size int) []uint8 {
	return scratchPool.Get(size)
}

// ReturnScratchBuffer returns a scratch buffer to the shared pool.
func ReturnScratchBuffer(buf []uint8) {
	scratchPool.Put(buf)
}

// GetScratchPoolMetrics returns hit/miss counts for the shared pool.
func GetScratchPoolMetrics() (hits, misses int64) {
	return scratchPool.GetMetrics()
}
