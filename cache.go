package pgnamed

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// templateCacheSize bounds the shared parsed-template cache. Call sites tend
// to reuse a fixed set of literal templates, so a small LRU keeps reparsing
// off the hot path.
const templateCacheSize = 512

var templateCache, _ = lru.New[string, *Template](templateCacheSize)

// parseCached returns the parsed template for src, parsing and caching it on
// a miss. Templates are immutable, so concurrent callers may share the
// cached value; a racing double parse only costs duplicate work.
func parseCached(src string) (*Template, error) {
	if t, ok := templateCache.Get(src); ok {
		return t, nil
	}
	t, err := Parse(src)
	if err != nil {
		return nil, err
	}
	templateCache.Add(src, t)
	return t, nil
}
