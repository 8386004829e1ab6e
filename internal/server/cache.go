package server

import (
	"sync"
	"time"

	"github.com/deepdish/chicagotrail/internal/trivia"
)

// batchCache holds generated question batches per date key so each
// day's batch is produced at most once per process. Entries expire
// after the TTL; expired dates simply regenerate.
type batchCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	questions []trivia.Question
	storedAt  time.Time
}

func newBatchCache(ttl time.Duration) *batchCache {
	return &batchCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *batchCache) get(dateKey string) ([]trivia.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[dateKey]
	if !ok {
		return nil, false
	}
	if time.Since(entry.storedAt) > c.ttl {
		delete(c.entries, dateKey)
		return nil, false
	}
	return entry.questions, true
}

func (c *batchCache) put(dateKey string, questions []trivia.Question) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[dateKey] = cacheEntry{questions: questions, storedAt: time.Now()}
}
