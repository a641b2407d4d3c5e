package memory

import (
	"time"

	"noteshare-be/internal/dto"

	"github.com/patrickmn/go-cache"
)

// ListingCache holds rendered public note listings for a short TTL. The
// index, per-category and most-liked pages are read-heavy and anonymous,
// so serving a slightly stale copy is acceptable; any note mutation
// flushes the whole cache.
type ListingCache struct {
	cache *cache.Cache
}

func NewListingCache(ttl time.Duration) *ListingCache {
	return &ListingCache{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (c *ListingCache) Get(key string) ([]dto.NoteListItem, bool) {
	if x, found := c.cache.Get(key); found {
		return x.([]dto.NoteListItem), true
	}
	return nil, false
}

func (c *ListingCache) Set(key string, items []dto.NoteListItem) {
	c.cache.Set(key, items, cache.DefaultExpiration)
}

func (c *ListingCache) Invalidate() {
	c.cache.Flush()
}
