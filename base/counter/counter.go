package counter

import "sync"

// Counter is a set of named counts safe for concurrent use
type Counter struct {
	mu     sync.RWMutex
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: map[string]int{}}
}

func (c *Counter) Add(key string, val int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[key] += val
}

func (c *Counter) Count(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[key]
}

// Snapshot copies the current counts
func (c *Counter) Snapshot() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		res[k] = v
	}
	return res
}
