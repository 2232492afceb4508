package catalog_cache

import (
	"sync"
	"time"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

const TTL = 5 * time.Minute

// ── Per-module catalog snapshot cache ────────────────────────────────────────
// Stores the active products and categories of one module, fetched wholesale.
// The storefront listing and product-detail handlers both read from this;
// CMS mutations invalidate it.

type snapshotEntry struct {
	products   []models.Product
	categories []models.Category
	fetchedAt  time.Time
}

var (
	snapMu    sync.RWMutex
	snapshots = make(map[string]*snapshotEntry)
)

// GetSnapshot returns the cached catalog of a module, if fresh.
func GetSnapshot(module string) (products []models.Product, categories []models.Category, ok bool) {
	snapMu.RLock()
	defer snapMu.RUnlock()
	entry := snapshots[module]
	if entry != nil && time.Since(entry.fetchedAt) < TTL {
		return entry.products, entry.categories, true
	}
	return nil, nil, false
}

// SetSnapshot stores a freshly fetched module catalog.
func SetSnapshot(module string, products []models.Product, categories []models.Category) {
	snapMu.Lock()
	defer snapMu.Unlock()
	snapshots[module] = &snapshotEntry{
		products:   products,
		categories: categories,
		fetchedAt:  time.Now(),
	}
}

// ── Invalidation (call on any product/category create/update/delete) ─────────

// Invalidate drops one module's snapshot.
func Invalidate(module string) {
	snapMu.Lock()
	delete(snapshots, module)
	snapMu.Unlock()
}

// InvalidateAll drops every snapshot.
func InvalidateAll() {
	snapMu.Lock()
	snapshots = make(map[string]*snapshotEntry)
	snapMu.Unlock()
}
