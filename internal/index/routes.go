package index

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MrSnakeDoc/garden/internal/routes"
)

// RouteIndex is the in-memory lookup table of every generated route.
// It is filled once at warm-up and read concurrently by the HTTP handlers.
type RouteIndex struct {
	mu      sync.RWMutex
	byPath  map[string]routes.Route // normalized path -> Route
	groups  []routes.Group          // as generated, for listing
	builtAt time.Time               // zero until the first Replace
}

// NewRouteIndex creates an empty index
func NewRouteIndex() *RouteIndex {
	return &RouteIndex{
		byPath: make(map[string]routes.Route),
	}
}

// Replace swaps the content of the index for groups. When two routes share
// a path the first one wins; the number of dropped duplicates is returned.
func (idx *RouteIndex) Replace(groups []routes.Group) int {
	byPath := make(map[string]routes.Route)
	dups := 0
	for _, g := range groups {
		for _, r := range g.Routes {
			key := Normalize(r.Path)
			if _, ok := byPath[key]; ok {
				dups++
				continue
			}
			byPath[key] = r
		}
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.byPath = byPath
	idx.groups = groups
	idx.builtAt = time.Now()
	return dups
}

// Lookup finds the route serving path. Trailing slashes are ignored.
func (idx *RouteIndex) Lookup(path string) (routes.Route, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	r, ok := idx.byPath[Normalize(path)]
	return r, ok
}

// All returns every route sorted by path
func (idx *RouteIndex) All() []routes.Route {
	idx.mu.RLock()
	out := make([]routes.Route, 0, len(idx.byPath))
	for _, r := range idx.byPath {
		out = append(out, r)
	}
	idx.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Groups returns the routes grouped by generator, in generation order
func (idx *RouteIndex) Groups() []routes.Group {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return append([]routes.Group(nil), idx.groups...)
}

// Count returns the number of distinct paths in the index
func (idx *RouteIndex) Count() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.byPath)
}

// BuiltAt returns when the index was last replaced, zero if never
func (idx *RouteIndex) BuiltAt() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.builtAt
}

// Ready reports whether the index has been built at least once
func (idx *RouteIndex) Ready() bool {
	return !idx.BuiltAt().IsZero()
}

// Normalize maps a request path to its index key: a leading slash, no
// trailing slash, except for the root.
func Normalize(path string) string {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	return path
}
