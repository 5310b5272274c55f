package questgen

import (
	"context"
	"sync"

	"github.com/chemcat/chemcat/internal/practice"
)

// LessonKey builds the cache key for a lesson's question set.
func LessonKey(lessonID string) string {
	return "lesson-" + lessonID
}

// UnitKey builds the cache key for a unit review's question set.
func UnitKey(unitID string) string {
	return "unit-" + unitID
}

// entry is one cached (or in-flight) question set. done is closed when
// the result fields are populated.
type entry struct {
	done      chan struct{}
	questions []practice.Question
	err       error
}

// Cache deduplicates concurrent question generation per key and keeps
// finished sets for reuse. Failed generations are cached too — the
// caller surfaces the error and offers a retry, which regenerates.
// There is no eviction; the working set is one learner's session.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewCache creates an empty question cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// GetOrGenerate returns the cached question set for key, or runs
// generate to produce it. Concurrent calls for the same key share one
// generate call. force discards any existing entry and regenerates.
func (c *Cache) GetOrGenerate(ctx context.Context, key string, force bool, generate func(context.Context) ([]practice.Question, error)) ([]practice.Question, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !force {
		c.mu.Unlock()
		select {
		case <-e.done:
			return e.questions, e.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	e = &entry{done: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	e.questions, e.err = generate(ctx)
	close(e.done)
	return e.questions, e.err
}

// Invalidate drops the entry for key, if any. An in-flight generation
// keeps running for its existing waiters.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached (or in-flight) entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
