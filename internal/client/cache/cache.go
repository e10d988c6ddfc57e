// Package cache holds the coordinator's two in-process caches: list results
// keyed by query fingerprint and single entities keyed by id. Both are
// constructed objects injected into the coordinator, never package globals,
// so tests can run against isolated instances. Neither cache persists across
// process restarts.
//
// Invalidation is always a full clear: the coordinator cannot know which
// cached pages contain a mutated entity, so after any write both caches are
// wiped entirely.
package cache

import (
	"sync"

	"github.com/msurana/gemvault/internal/client/models"
)

// QueryCache maps query fingerprints to the last fetched result page.
type QueryCache struct {
	mu    sync.RWMutex
	pages map[string]models.Page
}

func NewQueryCache() *QueryCache {
	return &QueryCache{pages: make(map[string]models.Page)}
}

// Get returns the cached page for a fingerprint, if present.
func (c *QueryCache) Get(fingerprint string) (models.Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pages[fingerprint]
	return p, ok
}

// Put stores or overwrites the page for a fingerprint.
func (c *QueryCache) Put(fingerprint string, page models.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[fingerprint] = page
}

// Clear wipes every entry.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages = make(map[string]models.Page)
}

// Len reports the number of cached pages.
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// GemstoneCache maps entity ids to the last fetched gemstone.
type GemstoneCache struct {
	mu    sync.RWMutex
	items map[string]models.Gemstone
}

func NewGemstoneCache() *GemstoneCache {
	return &GemstoneCache{items: make(map[string]models.Gemstone)}
}

// Get returns the cached gemstone for an id, if present.
func (c *GemstoneCache) Get(id string) (models.Gemstone, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	g, ok := c.items[id]
	return g, ok
}

// Put stores or overwrites a gemstone under its id.
func (c *GemstoneCache) Put(g models.Gemstone) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[g.ID] = g
}

// Clear wipes every entry.
func (c *GemstoneCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]models.Gemstone)
}

// Len reports the number of cached gemstones.
func (c *GemstoneCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
