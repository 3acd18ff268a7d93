package list

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of visible sets an Engine memoises.
const DefaultCacheSize = 64

type cacheKey struct {
	gen   uint64
	page  int
	query string
}

// Engine owns the grouped source data of one screen together with the
// current page and query, and computes the visible subset on demand.
//
// Engine is confined to a single goroutine.
type Engine struct {
	groups [][]Item
	page   int
	query  string

	// gen is bumped on every SetGroups so cached sets from a previous
	// generation are never served.
	gen   uint64
	cache *lru.Cache[cacheKey, []Item]
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	cacheSize int
}

// WithCacheSize sets how many visible sets are memoised.
func WithCacheSize(n int) Option {
	return func(o *engineOptions) {
		o.cacheSize = n
	}
}

// NewEngine creates an engine over groups, starting on page 0 with no query.
func NewEngine(groups [][]Item, opts ...Option) *Engine {
	o := engineOptions{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cacheSize <= 0 {
		o.cacheSize = DefaultCacheSize
	}
	cache, _ := lru.New[cacheKey, []Item](o.cacheSize)
	return &Engine{
		groups: groups,
		cache:  cache,
	}
}

// SetGroups replaces the whole data set. The query is kept; the page is
// reset to 0 if it no longer exists.
func (e *Engine) SetGroups(groups [][]Item) {
	e.groups = groups
	e.gen++
	if e.page >= len(groups) {
		e.page = 0
	}
	e.cache.Purge()
}

// SetPage makes groups[index] the filtering source. On error the engine is
// left unchanged.
func (e *Engine) SetPage(index int) error {
	if _, err := SelectPage(e.groups, index); err != nil {
		return err
	}
	e.page = index
	return nil
}

// SetQuery updates the search query.
func (e *Engine) SetQuery(query string) {
	e.query = query
}

// Query returns the current search query.
func (e *Engine) Query() string {
	return e.query
}

// Page returns the current page index.
func (e *Engine) Page() int {
	return e.page
}

// PageCount returns the number of groups.
func (e *Engine) PageCount() int {
	return len(e.groups)
}

// Source returns the unfiltered items of the current page.
func (e *Engine) Source() []Item {
	if len(e.groups) == 0 {
		return nil
	}
	return e.groups[e.page]
}

// Len returns the total number of items across all pages.
func (e *Engine) Len() int {
	n := 0
	for _, g := range e.groups {
		n += len(g)
	}
	return n
}

// Visible returns the current page filtered by the current query.
// The returned slice must not be modified.
func (e *Engine) Visible() []Item {
	key := cacheKey{gen: e.gen, page: e.page, query: e.query}
	if v, ok := e.cache.Get(key); ok {
		return v
	}
	v := Filter(e.Source(), e.query)
	e.cache.Add(key, v)
	return v
}

// CacheLen returns the number of memoised visible sets.
func (e *Engine) CacheLen() int {
	return e.cache.Len()
}
