// Package coordinator owns the client-visible gemstone list state: the
// active filter/sort criteria, the pagination cursor, and the two caches.
// Query changes are debounced, results are memoized by query fingerprint,
// and every successful write invalidates both caches in full.
package coordinator

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/msurana/gemvault/internal/client/cache"
	"github.com/msurana/gemvault/internal/client/catalog"
	"github.com/msurana/gemvault/internal/client/models"
	"github.com/msurana/gemvault/internal/client/notify"
	"github.com/msurana/gemvault/internal/logging"
)

const (
	DefaultDebounce = 400 * time.Millisecond
	DefaultPageSize = 12
)

// Snapshot is the coordinator's published state: the latest fetched page plus
// pagination metadata. Consumers doing infinite scroll layer successive pages
// themselves; the coordinator tracks only the most recent one.
type Snapshot struct {
	Items      []models.Gemstone
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
	Loading    bool
	Err        error
	HasMore    bool
}

// Coordinator is the query & cache coordinator. All exported methods are safe
// for concurrent use; internal state is guarded by a single mutex.
type Coordinator struct {
	client   catalog.Client
	queries  *cache.QueryCache
	entities *cache.GemstoneCache
	notifier notify.Sink
	log      logging.Logger

	debounce time.Duration
	onChange func(Snapshot)

	mu         sync.Mutex
	filter     models.Filter
	page       int
	pageSize   int
	totalItems int
	current    models.Page
	loading    bool
	lastErr    error

	// Debounce bookkeeping. A newly scheduled fetch cancels the previous
	// timer and its context; a sequence number guards against a stale, slow
	// response overwriting a newer result that was applied first.
	timer         *time.Timer
	pendingCtx    context.Context
	pendingCancel context.CancelFunc
	pendingQuery  models.Query
	pendingSeq    uint64
	seq           uint64
	applied       uint64
}

// Option customizes a Coordinator.
type Option func(*Coordinator)

// WithDebounce overrides the quiet period between a query change and the
// resulting fetch.
func WithDebounce(d time.Duration) Option {
	return func(c *Coordinator) { c.debounce = d }
}

// WithPageSize overrides the page size for list queries.
func WithPageSize(n int) Option {
	return func(c *Coordinator) { c.pageSize = n }
}

// WithOnChange registers a callback invoked with a fresh Snapshot whenever
// published state changes.
func WithOnChange(fn func(Snapshot)) Option {
	return func(c *Coordinator) { c.onChange = fn }
}

// New constructs a Coordinator over the given catalog client and caches.
func New(client catalog.Client, queries *cache.QueryCache, entities *cache.GemstoneCache, notifier notify.Sink, log logging.Logger, opts ...Option) *Coordinator {
	if notifier == nil {
		notifier = notify.Discard
	}
	if log == nil {
		log = logging.NewDefault(io.Discard, "error")
	}
	c := &Coordinator{
		client:   client,
		queries:  queries,
		entities: entities,
		notifier: notifier,
		log:      log,
		debounce: DefaultDebounce,
		page:     1,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetFilters replaces the active filter/sort criteria, resets to page 1 and
// schedules a (debounced) fetch. A cache hit for the new query resolves
// synchronously instead.
func (c *Coordinator) SetFilters(f models.Filter) {
	c.mu.Lock()
	c.filter = f.Normalize()
	c.page = 1
	snap := c.scheduleLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// Filters returns the active filter criteria.
func (c *Coordinator) Filters() models.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// LoadMore advances to the next page and schedules a fetch. It never
// decreases the page counter and is a no-op once the last known page has
// been reached.
func (c *Coordinator) LoadMore() {
	c.mu.Lock()
	if c.page >= c.totalPagesLocked() {
		c.mu.Unlock()
		return
	}
	c.page++
	snap := c.scheduleLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// Refresh evaluates the current query immediately, bypassing the debounce
// (but not the cache). It blocks until the result is applied and returns the
// resulting snapshot.
func (c *Coordinator) Refresh(ctx context.Context) Snapshot {
	c.mu.Lock()
	c.cancelPendingLocked()
	q := c.queryLocked()

	if page, ok := c.queries.Get(q.Fingerprint()); ok {
		snap := c.applyHitLocked(page)
		c.mu.Unlock()
		c.emit(&snap)
		return snap
	}

	c.seq++
	seq := c.seq
	c.loading = true
	c.mu.Unlock()

	c.runFetch(ctx, q, seq)
	return c.Snapshot()
}

// Flush runs a pending debounced fetch right away, if there is one, and
// blocks until it completes. It exists for synchronous consumers (the CLI)
// that do not want to wait out the quiet period.
func (c *Coordinator) Flush(ctx context.Context) Snapshot {
	c.mu.Lock()
	if c.timer == nil {
		c.mu.Unlock()
		return c.Snapshot()
	}
	stopped := c.timer.Stop()
	c.timer = nil
	q, seq := c.pendingQuery, c.pendingSeq
	c.mu.Unlock()

	if stopped {
		c.runFetch(ctx, q, seq)
	}
	return c.Snapshot()
}

// GetGemstone returns the gemstone with the given id, from the single-entity
// cache when possible. The second result is false when the gemstone is
// missing or the fetch failed; callers cannot tell the two apart, and the
// failure has already been notified.
func (c *Coordinator) GetGemstone(ctx context.Context, id string) (models.Gemstone, bool) {
	if g, ok := c.entities.Get(id); ok {
		return g, true
	}

	g, err := c.client.Get(ctx, id)
	if err != nil {
		c.log.Error(ctx, "fetch gemstone failed", "id", id, "err", err)
		c.notifier.Error("Failed to fetch gemstone details")
		return models.Gemstone{}, false
	}

	c.entities.Put(*g)
	return *g, true
}

// AddGemstone creates a gemstone through the catalog. On success both caches
// are cleared in full and the current query is refetched immediately. On
// failure all state is left unchanged and the error is returned so the
// calling workflow can stop (e.g. not navigate to a missing record).
func (c *Coordinator) AddGemstone(ctx context.Context, g models.Gemstone) (*models.Gemstone, error) {
	created, err := c.client.Create(ctx, g)
	if err != nil {
		c.log.Error(ctx, "add gemstone failed", "err", err)
		c.notifier.Error("Failed to add gemstone")
		return nil, err
	}

	c.invalidateAndRefetch(ctx)
	c.notifier.Success("Gemstone added")
	return created, nil
}

// UpdateGemstone applies a partial update. Cache and error semantics match
// AddGemstone.
func (c *Coordinator) UpdateGemstone(ctx context.Context, id string, patch models.GemstonePatch) (*models.Gemstone, error) {
	updated, err := c.client.Update(ctx, id, patch)
	if err != nil {
		c.log.Error(ctx, "update gemstone failed", "id", id, "err", err)
		c.notifier.Error("Failed to update gemstone")
		return nil, err
	}

	c.invalidateAndRefetch(ctx)
	c.notifier.Success("Gemstone updated")
	return updated, nil
}

// DeleteGemstone removes a gemstone. It reports success as a boolean instead
// of an error; a failure has already been notified.
func (c *Coordinator) DeleteGemstone(ctx context.Context, id string) bool {
	if err := c.client.Delete(ctx, id); err != nil {
		c.log.Error(ctx, "delete gemstone failed", "id", id, "err", err)
		c.notifier.Error("Failed to delete gemstone")
		return false
	}

	c.invalidateAndRefetch(ctx)
	c.notifier.Success("Gemstone deleted")
	return true
}

// Categories lists the distinct category values present in the currently
// loaded page only. This is a display convenience, not server-side faceting.
func (c *Coordinator) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]struct{})
	var out []string
	for _, g := range c.current.Items {
		if _, ok := seen[g.Category]; ok || g.Category == "" {
			continue
		}
		seen[g.Category] = struct{}{}
		out = append(out, g.Category)
	}
	return out
}

// Tags lists the union of tag values present in the currently loaded page
// only, in canonical order.
func (c *Coordinator) Tags() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var all []string
	for _, g := range c.current.Items {
		all = append(all, g.Tags...)
	}
	return models.NormalizeTags(all)
}

// Snapshot returns a copy of the published state.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Coordinator) queryLocked() models.Query {
	return models.Query{Page: c.page, PageSize: c.pageSize, Filter: c.filter}
}

func (c *Coordinator) totalPagesLocked() int {
	if c.pageSize <= 0 {
		return 0
	}
	return (c.totalItems + c.pageSize - 1) / c.pageSize
}

func (c *Coordinator) snapshotLocked() Snapshot {
	items := append([]models.Gemstone(nil), c.current.Items...)
	totalPages := c.totalPagesLocked()
	return Snapshot{
		Items:      items,
		Page:       c.page,
		PageSize:   c.pageSize,
		TotalItems: c.totalItems,
		TotalPages: totalPages,
		Loading:    c.loading,
		Err:        c.lastErr,
		HasMore:    c.page < totalPages,
	}
}

func (c *Coordinator) cancelPendingLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.pendingCancel != nil {
		c.pendingCancel()
		c.pendingCancel = nil
	}
}

// applyHitLocked applies a cached page synchronously and bumps the sequence
// counter so any slower in-flight fetch for a superseded query is discarded.
func (c *Coordinator) applyHitLocked(page models.Page) Snapshot {
	c.seq++
	c.applied = c.seq
	c.loading = false
	c.lastErr = nil
	c.current = page
	c.totalItems = page.TotalItems
	return c.snapshotLocked()
}

// scheduleLocked evaluates the current query: a cached fingerprint resolves
// synchronously, anything else arms the debounce timer. Any previously
// pending fetch is cancelled rather than merely out-raced.
func (c *Coordinator) scheduleLocked() *Snapshot {
	c.cancelPendingLocked()

	q := c.queryLocked()
	if page, ok := c.queries.Get(q.Fingerprint()); ok {
		snap := c.applyHitLocked(page)
		return &snap
	}

	c.seq++
	seq := c.seq
	ctx, cancel := context.WithCancel(context.Background())
	c.pendingCtx = ctx
	c.pendingCancel = cancel
	c.pendingQuery = q
	c.pendingSeq = seq
	c.loading = true
	c.timer = time.AfterFunc(c.debounce, func() {
		c.runFetch(ctx, q, seq)
	})

	snap := c.snapshotLocked()
	return &snap
}

// runFetch performs the network call and applies the result unless it has
// been superseded by a later-applied fetch or cancelled.
func (c *Coordinator) runFetch(ctx context.Context, q models.Query, seq uint64) {
	page, err := c.client.List(ctx, q)

	c.mu.Lock()
	if seq <= c.applied || ctx.Err() != nil {
		c.mu.Unlock()
		return
	}
	c.applied = seq
	c.loading = false
	if c.pendingSeq == seq {
		c.pendingCancel = nil
		c.timer = nil
	}

	if err != nil {
		// Existing cache entries stay untouched.
		c.lastErr = err
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.log.Error(ctx, "fetch gemstones failed", "fingerprint", q.Fingerprint(), "err", err)
		c.notifier.Error("Failed to fetch gemstones")
		c.emit(&snap)
		return
	}

	c.lastErr = nil
	c.queries.Put(q.Fingerprint(), page)
	c.current = page
	c.totalItems = page.TotalItems
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.log.Debug(ctx, "fetched gemstones", "page", page.Page, "items", len(page.Items), "total", page.TotalItems)
	c.emit(&snap)
}

// invalidateAndRefetch clears both caches in full (the coordinator cannot
// know which cached pages contain the mutated entity) and refetches the
// current query immediately, without debouncing.
func (c *Coordinator) invalidateAndRefetch(ctx context.Context) {
	c.queries.Clear()
	c.entities.Clear()
	c.Refresh(ctx)
}

func (c *Coordinator) emit(s *Snapshot) {
	if s != nil && c.onChange != nil {
		c.onChange(*s)
	}
}
