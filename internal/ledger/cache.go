package ledger

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/PrizeDraw_Go/internal/domain"
)

// viewKey identifies a per-tier view at a specific ledger version.
// Appends bump the version so stale entries are never read again and age out.
type viewKey struct {
	version uint64
	level   int
}

// viewCache memoises per-tier winner lists between appends
type viewCache struct {
	lru *lru.Cache[viewKey, []domain.WinnerRecord]
}

func newViewCache(size int) *viewCache {
	if size <= 0 {
		size = DefaultViewCacheSize
	}
	// lru.New only fails for a non-positive size
	c, _ := lru.New[viewKey, []domain.WinnerRecord](size)
	return &viewCache{lru: c}
}

func (c *viewCache) get(version uint64, level int) ([]domain.WinnerRecord, bool) {
	return c.lru.Get(viewKey{version: version, level: level})
}

func (c *viewCache) set(version uint64, level int, records []domain.WinnerRecord) {
	c.lru.Add(viewKey{version: version, level: level}, records)
}

func (c *viewCache) purge() {
	c.lru.Purge()
}

func (c *viewCache) len() int {
	return c.lru.Len()
}
