package qualify

import "sync"

// resultCache is a bounded FIFO cache of qualification results keyed by
// lead ID. When full, the oldest entry is evicted regardless of access
// pattern. Safe for concurrent use.
type resultCache struct {
	mu      sync.Mutex
	maxSize int
	order   []string
	entries map[string]QualificationResult
}

func newResultCache(maxSize int) *resultCache {
	return &resultCache{
		maxSize: maxSize,
		entries: make(map[string]QualificationResult, maxSize),
	}
}

func (c *resultCache) get(key string) (QualificationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.entries[key]
	return result, ok
}

func (c *resultCache) put(key string, result QualificationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = result
		return
	}

	if len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = result
	c.order = append(c.order, key)
}

func (c *resultCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
