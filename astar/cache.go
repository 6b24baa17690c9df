package astar

import "container/list"

// pathKey identifies a cached route by its ordered endpoints.
type pathKey[N comparable] struct {
	source N
	goal   N
}

// cacheEntry is the payload of one LRU list element.
type cacheEntry[N comparable] struct {
	key  pathKey[N]
	path []N
}

// pathCache maps (source, goal) to a found route. Front of order is the most
// recently used pair. With limit == 0 nothing is ever evicted.
type pathCache[N comparable] struct {
	limit   int
	entries map[pathKey[N]]*list.Element
	order   *list.List
}

func newPathCache[N comparable](limit int) *pathCache[N] {
	return &pathCache[N]{
		limit:   limit,
		entries: make(map[pathKey[N]]*list.Element),
		order:   list.New(),
	}
}

// get returns the cached route for key and marks it most recently used.
func (c *pathCache[N]) get(key pathKey[N]) ([]N, bool) {
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)

	return el.Value.(*cacheEntry[N]).path, true
}

// contains reports presence without touching recency.
func (c *pathCache[N]) contains(key pathKey[N]) bool {
	_, ok := c.entries[key]
	return ok
}

// put stores path under key and returns how many pairs were evicted.
func (c *pathCache[N]) put(key pathKey[N], path []N) int {
	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry[N]).path = path
		c.order.MoveToFront(el)
		return 0
	}
	c.entries[key] = c.order.PushFront(&cacheEntry[N]{key: key, path: path})

	evicted := 0
	for c.limit > 0 && c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry[N]).key)
		evicted++
	}

	return evicted
}

// clear drops every entry.
func (c *pathCache[N]) clear() {
	c.entries = make(map[pathKey[N]]*list.Element)
	c.order.Init()
}

func (c *pathCache[N]) len() int { return len(c.entries) }
