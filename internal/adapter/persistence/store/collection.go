package store

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// collection is the shared machinery behind the four entity stores: an
// ordered in-memory slice (newest first), synchronous write-through to
// the blob cache, and subscriber notification after every mutation.
//
// Mutations are serialized behind a mutex so concurrent callers keep the
// read-your-writes and ordering guarantees the orchestrator relies on.
type collection[T any] struct {
	mu       sync.Mutex
	items    []T
	idOf     func(T) string
	cache    BlobCache
	cacheKey string
	log      *slog.Logger

	subs    map[int]func([]T)
	nextSub int
}

func newCollection[T any](cache BlobCache, cacheKey string, idOf func(T) string, log *slog.Logger) *collection[T] {
	if log == nil {
		log = slog.Default()
	}
	c := &collection[T]{
		idOf:     idOf,
		cache:    cache,
		cacheKey: cacheKey,
		log:      log,
		subs:     map[int]func([]T){},
	}
	c.loadFromCache()
	return c
}

// loadFromCache seeds the collection from the cached blob. A missing
// key or malformed payload degrades to an empty collection.
func (c *collection[T]) loadFromCache() {
	if c.cache == nil {
		return
	}
	blob, ok := c.cache.Load(c.cacheKey)
	if !ok {
		return
	}
	var items []T
	if err := json.Unmarshal(blob, &items); err != nil {
		c.log.Warn("discarding malformed cached collection",
			"key", c.cacheKey, "error", err)
		return
	}
	c.items = items
}

func (c *collection[T]) snapshotLocked() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Snapshot returns a copy of the full collection, newest first.
func (c *collection[T]) Snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// GetByID returns the record with the given id, if present.
func (c *collection[T]) GetByID(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if c.idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Upsert replaces the record with a matching id, or inserts the record
// at the head of the collection when unseen.
func (c *collection[T]) Upsert(item T) {
	c.mu.Lock()
	id := c.idOf(item)
	replaced := false
	for i, it := range c.items {
		if c.idOf(it) == id {
			c.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		c.items = append([]T{item}, c.items...)
	}
	c.finishMutationLocked()
}

// Patch applies mutate to the record with the given id and stores the
// result as a full replacement. Reports false without side effects when
// the id is absent.
func (c *collection[T]) Patch(id string, mutate func(*T)) bool {
	c.mu.Lock()
	for i, it := range c.items {
		if c.idOf(it) == id {
			mutate(&it)
			c.items[i] = it
			c.finishMutationLocked()
			return true
		}
	}
	c.mu.Unlock()
	return false
}

// Subscribe registers fn to receive the full collection synchronously
// after every mutation. The returned cancel func removes the
// subscription.
func (c *collection[T]) Subscribe(fn func([]T)) (cancel func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// finishMutationLocked persists the collection, then notifies
// subscribers outside the lock so a listener may re-read the store.
// Called with c.mu held; unlocks it.
func (c *collection[T]) finishMutationLocked() {
	c.persistLocked()
	snap := c.snapshotLocked()
	subs := make([]func([]T), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

// persistLocked re-serializes the full collection into the blob cache.
// Failures are logged and swallowed: the cache is best-effort and must
// never abort a mutation that already succeeded in memory.
func (c *collection[T]) persistLocked() {
	if c.cache == nil {
		return
	}
	blob, err := json.Marshal(c.items)
	if err != nil {
		c.log.Warn("failed to serialize collection", "key", c.cacheKey, "error", err)
		return
	}
	if err := c.cache.Store(c.cacheKey, blob); err != nil {
		c.log.Warn("failed to persist collection", "key", c.cacheKey, "error", err)
	}
}
