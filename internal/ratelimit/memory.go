package ratelimit

import (
	"context"
	"sync"
)

// MemoryCounter is the single-instance counter backend. The mutex guarantees
// concurrent increments for the same phone/day key are never lost.
type MemoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{counts: make(map[string]int64)}
}

func (c *MemoryCounter) Increment(_ context.Context, phone string, day string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := phone + ":" + day
	c.counts[key]++
	return c.counts[key], nil
}
