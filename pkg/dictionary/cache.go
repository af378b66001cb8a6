package dictionary

import (
	"container/list"
	"sync"

	"github.com/japaniel/wakachi/pkg/model"
)

// positiveCacheSize and negativeCacheSize bound the two LRU caches a
// BoundedCache keeps: one for inputs that resolved to entries, one for
// inputs known to resolve to nothing. The negative cache is larger because
// word search probes many more losing suffixes than winning ones.
const (
	positiveCacheSize = 10000
	negativeCacheSize = 100000
)

type cacheKey struct {
	text      string
	max       int
	matching  string
}

// lru is a small fixed-capacity least-recently-used map, used for both the
// positive and negative sides of BoundedCache. It is not a general-purpose
// cache; eviction is purely size-based, with no TTL.
type lru struct {
	mu       sync.Mutex
	capacity int
	items    map[cacheKey]*list.Element
	order    *list.List
}

type lruEntry struct {
	key   cacheKey
	value []*model.WordEntry
}

func newLRU(capacity int) *lru {
	return &lru{
		capacity: capacity,
		items:    make(map[cacheKey]*list.Element, capacity),
		order:    list.New(),
	}
}

func (c *lru) get(key cacheKey) ([]*model.WordEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).value, true
}

func (c *lru) put(key cacheKey, value []*model.WordEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry).value = value
		c.order.MoveToFront(el)
		return
	}
	el := c.order.PushFront(&lruEntry{key: key, value: value})
	c.items[key] = el
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*lruEntry).key)
		}
	}
}

// BoundedCache wraps a Dictionary with a bounded positive/negative lookup
// cache, so repeated word-search probes over the same text (common when
// backing off failed suffixes) do not repeatedly hit the underlying store.
type BoundedCache struct {
	inner    Dictionary
	positive *lru
	negative *lru
}

// NewBoundedCache wraps inner with default-sized positive and negative caches.
func NewBoundedCache(inner Dictionary) *BoundedCache {
	return &BoundedCache{
		inner:    inner,
		positive: newLRU(positiveCacheSize),
		negative: newLRU(negativeCacheSize),
	}
}

// GetWords implements Dictionary.
func (c *BoundedCache) GetWords(inputText string, maxResults int, matchingText ...string) []*model.WordEntry {
	key := cacheKey{text: inputText, max: maxResults, matching: resolveMatchingText(inputText, matchingText)}

	if hit, ok := c.positive.get(key); ok {
		return hit
	}
	if _, ok := c.negative.get(key); ok {
		return nil
	}

	result := c.inner.GetWords(inputText, maxResults, matchingText...)
	if len(result) == 0 {
		c.negative.put(key, nil)
		return nil
	}
	c.positive.put(key, result)
	return result
}
